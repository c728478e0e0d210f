package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/shop/storefront/internal/application/identity"
	"github.com/shop/storefront/internal/infrastructure/api"
)

// AuthHandler exposes sign-up/sign-in/sign-out, profile management, and
// the admin account endpoints.
type AuthHandler struct {
	BaseHandler
	identity *identityapp.Service
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(identity *identityapp.Service) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// RegisterRoutes registers the auth and account endpoints
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
		auth.POST("/signout", h.SignOut)
	}

	users := rg.Group("/users")
	{
		users.GET("/profile", h.Profile)
		users.PATCH("/profile", h.UpdateProfile)
		users.PATCH("/profile/password", h.ChangePassword)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// SignUp creates an account and begins a session
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input identityapp.SignUpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "invalid signup payload")
		return
	}

	user, err := h.identity.SignUp(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}

// SignIn authenticates and begins a session
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input identityapp.SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "invalid signin payload")
		return
	}

	user, err := h.identity.SignIn(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// SignOut ends the session
func (h *AuthHandler) SignOut(c *gin.Context) {
	h.identity.SignOut()
	h.NoContent(c)
}

// Profile returns the signed-in user's profile
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.identity.Profile(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// UpdateProfile edits the signed-in user's profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var update api.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.BadRequest(c, "invalid profile payload")
		return
	}

	user, err := h.identity.UpdateProfile(c.Request.Context(), update)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// ChangePassword replaces the signed-in user's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var input identityapp.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, "invalid password payload")
		return
	}

	if err := h.identity.ChangePassword(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// ListUsers lists accounts (admin)
func (h *AuthHandler) ListUsers(c *gin.Context) {
	filter := api.UserFilter{Search: c.Query("search")}
	filter.Page, filter.Limit = pageParams(c)

	users, page, err := h.identity.Users(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, users, page)
}

// GetUser fetches one account (admin)
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.identity.User(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// UpdateUser edits an account (admin)
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var update api.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.BadRequest(c, "invalid user payload")
		return
	}

	user, err := h.identity.UpdateUser(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// DeleteUser removes an account (admin)
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if err := h.identity.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
