package authController

import (
	"context"
	"errors"
	"strings"
	"wisma/internal/apperr"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/services"
)

type AuthController struct {
	authService *services.AuthService
	log         logger.Logger
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type AuthResponse struct {
	Tokens *services.TokenPair `json:"tokens"`
	User   *User               `json:"user"`
}

type AuthControllerInterface interface {
	Register(ctx context.Context, request *RegisterRequest) (*User, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, request *RefreshRequest) (*services.TokenPair, error)
	Logout(ctx context.Context, request *RefreshRequest) error
	Me(ctx context.Context, userID int) (*User, error)
}

func New(services services.Service) AuthControllerInterface {
	return &AuthController{
		authService: services.Auth,
		log:         logger.New("authController"),
	}
}

func (r *RegisterRequest) validate() error {
	fields := apperr.FieldErrors{}
	if r.Name == "" {
		fields.Add("name", "The name field is required.")
	}
	if r.Email == "" {
		fields.Add("email", "The email field is required.")
	} else if !strings.Contains(r.Email, "@") {
		fields.Add("email", "The email must be a valid email address.")
	}
	if len(r.Password) < 8 {
		fields.Add("password", "The password must be at least 8 characters.")
	}
	if fields.HasErrors() {
		return apperr.NewValidation(fields)
	}
	return nil
}

func (c *AuthController) Register(
	ctx context.Context,
	request *RegisterRequest,
) (*User, error) {
	log := c.log.Function("Register")

	if err := request.validate(); err != nil {
		return nil, err
	}

	user, err := c.authService.Register(ctx, request.Name, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			fields := apperr.FieldErrors{}
			fields.Add("email", "The email has already been taken.")
			return nil, apperr.NewValidation(fields)
		}
		return nil, log.Err("failed to register user", err)
	}

	return user, nil
}

func (c *AuthController) Login(
	ctx context.Context,
	request *LoginRequest,
) (*AuthResponse, error) {
	log := c.log.Function("Login")

	fields := apperr.FieldErrors{}
	if request.Email == "" {
		fields.Add("email", "The email field is required.")
	}
	if request.Password == "" {
		fields.Add("password", "The password field is required.")
	}
	if fields.HasErrors() {
		return nil, apperr.NewValidation(fields)
	}

	tokens, user, err := c.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return nil, err
		}
		return nil, log.Err("failed to login", err)
	}

	return &AuthResponse{Tokens: tokens, User: user}, nil
}

func (c *AuthController) Refresh(
	ctx context.Context,
	request *RefreshRequest,
) (*services.TokenPair, error) {
	log := c.log.Function("Refresh")

	if request.RefreshToken == "" {
		fields := apperr.FieldErrors{}
		fields.Add("refreshToken", "The refresh token field is required.")
		return nil, apperr.NewValidation(fields)
	}

	tokens, err := c.authService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrSessionExpired) {
			return nil, err
		}
		return nil, log.Err("failed to refresh session", err)
	}

	return tokens, nil
}

func (c *AuthController) Logout(ctx context.Context, request *RefreshRequest) error {
	if request.RefreshToken == "" {
		return nil
	}
	return c.authService.Logout(ctx, request.RefreshToken)
}

func (c *AuthController) Me(ctx context.Context, userID int) (*User, error) {
	user, err := c.authService.GetUser(ctx, userID)
	if err != nil {
		return nil, apperr.ErrNotFound
	}

	return user, nil
}
