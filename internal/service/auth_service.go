package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"movie-manager/internal/models"
	"movie-manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 30 * time.Minute

// Domain errors for auth flows.
var (
	ErrUserExists          = errors.New("username already registered")
	ErrCredentialsRequired = errors.New("username and password are required")
	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrInvalidToken        = errors.New("invalid or expired token")
)

// dummyHash is compared against when the username is unknown, so a miss
// costs the same bcrypt work as a real password check. The result is
// always discarded.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthConfig carries the signing material injected at process startup. The
// key is fixed for the lifetime of the run; there is no rotation.
type AuthConfig struct {
	SigningKey []byte
	TokenTTL   time.Duration
}

// AuthService handles registration, credential checks and token lifecycle.
type AuthService struct {
	authRepo repository.Authorization
	cfg      AuthConfig
}

func NewAuthService(repo repository.Authorization, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	return &AuthService{authRepo: repo, cfg: cfg}
}

// SignUp hashes the password, creates the user and immediately returns a
// token for it. A taken username comes back as ErrUserExists.
func (s *AuthService) SignUp(username, password string) (string, error) {
	if strings.TrimSpace(username) == "" {
		return "", ErrCredentialsRequired
	}
	hash, err := hashPassword(password)
	if err != nil {
		return "", err
	}
	if _, err := s.authRepo.Create(username, hash); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrUserExists
		}
		return "", err
	}
	return s.issueToken(username)
}

// GenerateToken validates credentials and returns a signed token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) GenerateToken(username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		// Burn a comparison so the unknown-user path is not faster.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.issueToken(u.Username)
}

// ParseToken verifies signature and expiry and returns the username claim.
// Malformed, expired and tampered tokens all come back as ErrInvalidToken.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	token, err := jwt.ParseWithClaims(accessToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.cfg.SigningKey, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}

// Authenticate resolves a bearer token to the stored user. A token whose
// user no longer exists fails closed, same as a bad token.
func (s *AuthService) Authenticate(accessToken string) (*models.User, error) {
	username, err := s.ParseToken(accessToken)
	if err != nil {
		return nil, err
	}
	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	return u, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrCredentialsRequired
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT carrying the username as subject
func (s *AuthService) issueToken(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
	})
	return token.SignedString(s.cfg.SigningKey)
}
