// Package identity handles sign-up, sign-in, and profile management
// against the backend, and owns the local session lifecycle.
package identity

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shop/storefront/internal/domain/identity"
	"github.com/shop/storefront/internal/domain/shared"
	"github.com/shop/storefront/internal/infrastructure/api"
)

var validate = validator.New()

// API is the slice of the backend client the identity service uses
type API interface {
	SignUp(ctx context.Context, input api.SignUpInput) (*api.Session, error)
	SignIn(ctx context.Context, email, password string) (*api.Session, error)
	Profile(ctx context.Context) (*identity.User, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*identity.User, error)
	ChangePassword(ctx context.Context, current, next string) error
	ListUsers(ctx context.Context, filter api.UserFilter) ([]identity.User, *api.Pagination, error)
	GetUser(ctx context.Context, id string) (*identity.User, error)
	UpdateUser(ctx context.Context, id string, update api.UserUpdate) (*identity.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// SessionStore is the local session the service begins and ends
type SessionStore interface {
	Authenticated() bool
	CurrentUser() *identity.User
	SetUser(user *identity.User)
	Begin(token string, user *identity.User) error
	End()
}

// SignUpInput is a validated account creation request
type SignUpInput struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// SignInInput is a validated sign-in request
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service handles authentication and account operations
type Service struct {
	client  API
	session SessionStore
	logger  *zap.Logger
}

// NewService creates an identity service
func NewService(client API, session SessionStore, logger *zap.Logger) *Service {
	return &Service{client: client, session: session, logger: logger}
}

// SignUp creates an account and begins a session for it
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*identity.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	session, err := s.client.SignUp(ctx, api.SignUpInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	user := session.User
	if err := s.session.Begin(session.Token, &user); err != nil {
		s.logger.Warn("failed to begin session after signup", zap.Error(err))
	}
	s.logger.Info("user signed up", zap.String("user_id", user.ID))
	return &user, nil
}

// SignIn authenticates and begins a session
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*identity.User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	session, err := s.client.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	user := session.User
	if err := s.session.Begin(session.Token, &user); err != nil {
		s.logger.Warn("failed to begin session after signin", zap.Error(err))
	}
	s.logger.Info("user signed in", zap.String("user_id", user.ID))
	return &user, nil
}

// SignOut ends the current session. Signing out while signed out is a
// no-op.
func (s *Service) SignOut() {
	if !s.session.Authenticated() {
		return
	}
	s.session.End()
	s.logger.Info("user signed out")
}

// Profile fetches the signed-in user's profile and caches it on the
// session.
func (s *Service) Profile(ctx context.Context) (*identity.User, error) {
	if !s.session.Authenticated() {
		return nil, shared.ErrSignInRequired
	}

	user, err := s.client.Profile(ctx)
	if err != nil {
		return nil, err
	}
	s.session.SetUser(user)
	return user, nil
}

// UpdateProfile edits the signed-in user's profile
func (s *Service) UpdateProfile(ctx context.Context, update api.ProfileUpdate) (*identity.User, error) {
	if !s.session.Authenticated() {
		return nil, shared.ErrSignInRequired
	}

	user, err := s.client.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}
	s.session.SetUser(user)
	return user, nil
}

// ChangePasswordInput is a validated password change request
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ChangePassword replaces the signed-in user's password
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if !s.session.Authenticated() {
		return shared.ErrSignInRequired
	}
	if err := validate.Struct(input); err != nil {
		return shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	return s.client.ChangePassword(ctx, input.CurrentPassword, input.NewPassword)
}

// CurrentUser returns the session's cached user, nil when signed out
func (s *Service) CurrentUser() *identity.User {
	return s.session.CurrentUser()
}

// Authenticated reports whether a session is active
func (s *Service) Authenticated() bool {
	return s.session.Authenticated()
}

// Users lists accounts (admin; the backend enforces the role)
func (s *Service) Users(ctx context.Context, filter api.UserFilter) ([]identity.User, *api.Pagination, error) {
	if !s.session.Authenticated() {
		return nil, nil, shared.ErrSignInRequired
	}
	return s.client.ListUsers(ctx, filter)
}

// User fetches one account (admin)
func (s *Service) User(ctx context.Context, id string) (*identity.User, error) {
	if !s.session.Authenticated() {
		return nil, shared.ErrSignInRequired
	}
	return s.client.GetUser(ctx, id)
}

// UpdateUser edits an account (admin)
func (s *Service) UpdateUser(ctx context.Context, id string, update api.UserUpdate) (*identity.User, error) {
	if !s.session.Authenticated() {
		return nil, shared.ErrSignInRequired
	}
	return s.client.UpdateUser(ctx, id, update)
}

// DeleteUser removes an account (admin)
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if !s.session.Authenticated() {
		return shared.ErrSignInRequired
	}
	return s.client.DeleteUser(ctx, id)
}
