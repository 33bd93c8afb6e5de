package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"todoapi/internal/repository"
)

// Low fixed cost: login latency matters more than brute-force margin here.
const passwordHashCost = 5

// Domain errors for auth flows.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles signup, login and token logic.
type AuthService struct {
	users      repository.Users
	signingKey []byte
}

func NewAuthService(users repository.Users, signingKey string) *AuthService {
	return &AuthService{users: users, signingKey: []byte(signingKey)}
}

// SignUp creates a new account and returns its id.
// Returns ErrUserExists when the username is already taken. A concurrent
// signup racing past this check loses on the store's uniqueness constraint
// and surfaces as a plain store error.
func (s *AuthService) SignUp(ctx context.Context, username, password, name string) (string, error) {
	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return "", ErrUserExists
	case !errors.Is(err, repository.ErrNotFound):
		return "", err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return s.users.Create(ctx, username, name, hash)
}

// Claims defines the JWT payload: a single user id claim. No expiry is set,
// so a token stays valid until the signing key changes.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userid"`
}

// Login validates credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(u.ID)
}

// ParseToken verifies the signature and returns the embedded user id.
// Any decode failure maps to ErrInvalidToken.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: userID})
	return token.SignedString(s.signingKey)
}

// helper: hash password
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
