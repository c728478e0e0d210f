package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shop/storefront/internal/domain/identity"
)

// Session is the result of a successful signup or signin
type Session struct {
	User  identity.User `json:"user"`
	Token string        `json:"token"`
}

// SignUpInput is the payload for creating an account
type SignUpInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp creates a new account and returns its session
func (c *Client) SignUp(ctx context.Context, input SignUpInput) (*Session, error) {
	env, err := c.do(ctx, http.MethodPost, "/auth/signup", nil, input)
	if err != nil {
		return nil, err
	}
	session, err := decode[Session](env)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SignIn authenticates with email and password and returns a session
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	env, err := c.do(ctx, http.MethodPost, "/auth/signin", nil, body)
	if err != nil {
		return nil, err
	}
	session, err := decode[Session](env)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Profile retrieves the authenticated user's profile
func (c *Client) Profile(ctx context.Context) (*identity.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/profile", nil, nil)
	if err != nil {
		return nil, err
	}
	user, err := decode[identity.User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ProfileUpdate carries the optional fields of a profile edit
type ProfileUpdate struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// UpdateProfile edits the authenticated user's profile
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*identity.User, error) {
	env, err := c.do(ctx, http.MethodPatch, "/users/profile", nil, update)
	if err != nil {
		return nil, err
	}
	user, err := decode[identity.User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword replaces the authenticated user's password
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{CurrentPassword: current, NewPassword: next}

	_, err := c.do(ctx, http.MethodPatch, "/users/profile/password", nil, body)
	return err
}

// UserFilter narrows an account listing
type UserFilter struct {
	Search string
	Page   int
	Limit  int
}

func (f UserFilter) query() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	return v
}

// ListUsers retrieves all accounts (admin)
func (c *Client) ListUsers(ctx context.Context, filter UserFilter) ([]identity.User, *Pagination, error) {
	env, err := c.do(ctx, http.MethodGet, "/users", filter.query(), nil)
	if err != nil {
		return nil, nil, err
	}
	users, err := decode[[]identity.User](env)
	if err != nil {
		return nil, nil, err
	}
	return users, env.Pagination, nil
}

// GetUser retrieves a single account by id (admin)
func (c *Client) GetUser(ctx context.Context, id string) (*identity.User, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	env, err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil)
	if err != nil {
		return nil, err
	}
	user, err := decode[identity.User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserUpdate carries the optional fields of an account edit (admin)
type UserUpdate struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	IsAdmin *bool   `json:"isAdmin,omitempty"`
}

// UpdateUser edits an account (admin)
func (c *Client) UpdateUser(ctx context.Context, id string, update UserUpdate) (*identity.User, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	env, err := c.do(ctx, http.MethodPatch, "/users/"+url.PathEscape(id), nil, update)
	if err != nil {
		return nil, err
	}
	user, err := decode[identity.User](env)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account (admin)
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrEmptyID
	}
	_, err := c.do(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil)
	return err
}
