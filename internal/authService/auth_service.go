package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"autoplate/internal/auctionerrors"
	model "autoplate/internal/models"
	"autoplate/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenConfig carries the signing secret and lifetime for issued tokens.
// It is passed in at construction so nothing here reads global state.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

const defaultTokenTTL = 30 * time.Minute

// AuthService owns user registration, credential verification and the
// issuing/validation of stateless bearer tokens.
type AuthService struct {
	repo repository.AuctionDB
	cfg  TokenConfig
}

// NewAuthService creates a new AuthService instance
func NewAuthService(repo repository.AuctionDB, cfg TokenConfig) *AuthService {
	if cfg.TTL == 0 {
		cfg.TTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, cfg: cfg}
}

// Register stores a new user with a bcrypt password hash and returns the
// user together with a fresh token.
func (s *AuthService) Register(username, email, password string, isAdmin bool) (model.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.CreateUser(&user); err != nil {
		return model.User{}, "", fmt.Errorf("service: failed to register user %s: %w", username, err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}

// Login verifies the credentials and issues a token. A missing user and a
// wrong password are reported identically, so callers cannot probe for
// existing usernames.
func (s *AuthService) Login(username, password string) (model.User, string, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrUserNotFound) {
			return model.User{}, "", auctionerrors.ErrInvalidCredentials
		}
		return model.User{}, "", fmt.Errorf("service: failed to look up user %s: %w", username, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return model.User{}, "", auctionerrors.ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return model.User{}, "", err
	}
	return user, token, nil
}

// IssueToken signs an HS256 JWT whose subject is the user id and whose
// expiry is now + TTL.
func (s *AuthService) IssueToken(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("service: failed to sign token for user %d: %w", userID, err)
	}
	return signed, nil
}

// ValidateToken checks signature and expiry and resolves the subject to a
// stored user. An expired token, a malformed/forged token and a dangling
// subject each surface as distinct errors.
func (s *AuthService) ValidateToken(tokenStr string) (model.User, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.User{}, auctionerrors.ErrTokenExpired
		}
		return model.User{}, auctionerrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return model.User{}, auctionerrors.ErrTokenInvalid
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return model.User{}, auctionerrors.ErrTokenInvalid
	}

	user, err := s.repo.GetUserByID(uint(id))
	if err != nil {
		return model.User{}, fmt.Errorf("service: failed to resolve token subject %s: %w", claims.Subject, err)
	}
	return user, nil
}
