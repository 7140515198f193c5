package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"
	"wisma/config"
	"wisma/internal/database"
	"wisma/internal/logger"
	. "wisma/internal/models"
	"wisma/internal/repositories"
	"wisma/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrSessionExpired     = errors.New("refresh session is expired or revoked")
)

const sessionKeyPrefix = "session:"

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthService issues short-lived HS256 access tokens and valkey-backed refresh
// sessions. Refresh tokens are opaque IDs, revocable by deleting the session
// key, so a leaked token dies with its session.
type AuthService struct {
	db         database.DB
	repos      repositories.Repository
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	log        logger.Logger
}

func NewAuthService(
	db database.DB,
	repos repositories.Repository,
	config config.Config,
) *AuthService {
	return &AuthService{
		db:         db,
		repos:      repos,
		secret:     []byte(config.JWTSecret),
		accessTTL:  time.Duration(config.JWTAccessTTLMinutes) * time.Minute,
		refreshTTL: time.Duration(config.JWTRefreshTTLHours) * time.Hour,
		log:        logger.New("AuthService"),
	}
}

func (s *AuthService) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
) (*User, error) {
	log := s.log.Function("Register")

	tx := s.db.SQLWithContext(ctx)
	if _, err := s.repos.User.GetByEmail(ctx, tx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &User{Name: name, Email: email, Password: hash}
	if err := s.repos.User.Create(ctx, tx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AuthService) Login(
	ctx context.Context,
	email string,
	password string,
) (*TokenPair, *User, error) {
	log := s.log.Function("Login")

	user, err := s.repos.User.GetByEmail(ctx, s.db.SQLWithContext(ctx), email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, log.Err("failed to issue tokens", err, "userID", user.ID)
	}

	return pair, user, nil
}

// Refresh rotates the session: the presented refresh token is revoked and a
// fresh pair is issued, so each refresh token is single use.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	log := s.log.Function("Refresh")

	key := sessionKeyPrefix + refreshToken
	stored, err := database.CacheGet(ctx, s.db.Cache.Session, key)
	if err != nil {
		return nil, ErrSessionExpired
	}

	userID, err := strconv.Atoi(stored)
	if err != nil {
		return nil, log.Err("corrupt session record", err)
	}

	if err := database.CacheDelete(ctx, s.db.Cache.Session, key); err != nil {
		return nil, log.Err("failed to revoke session", err)
	}

	pair, err := s.issueTokens(ctx, userID)
	if err != nil {
		return nil, log.Err("failed to issue tokens", err, "userID", userID)
	}

	return pair, nil
}

// Logout revokes the refresh session. Access tokens simply age out.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return database.CacheDelete(ctx, s.db.Cache.Session, sessionKeyPrefix+refreshToken)
}

func (s *AuthService) GetUser(ctx context.Context, userID int) (*User, error) {
	return s.repos.User.GetByID(ctx, s.db.SQLWithContext(ctx), userID)
}

// ParseAccessToken validates an access token and returns the user ID it was
// issued to.
func (s *AuthService) ParseAccessToken(tokenString string) (int, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
	)
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, jwt.ErrTokenInvalidClaims
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, jwt.ErrTokenInvalidSubject
	}

	return userID, nil
}

func (s *AuthService) issueTokens(ctx context.Context, userID int) (*TokenPair, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}

	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	refreshToken := uuid.New().String()
	err = database.CacheSet(
		ctx,
		s.db.Cache.Session,
		sessionKeyPrefix+refreshToken,
		strconv.Itoa(userID),
		s.refreshTTL,
	)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}
