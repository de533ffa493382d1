package auth

import (
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "gearguard-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is an authenticated dashboard user. The credential store is mocked:
// users live in memory for the process lifetime, standing in for the local
// storage the original frontend used.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type credential struct {
	user         User
	passwordHash []byte
}

// Service provides signup, login, and JWT issuance over an in-memory
// credential store. The configurable delay simulates the artificial latency
// the original fake-async auth flow had; operations stay serialized under the
// store mutex, so no two flows race.
type Service struct {
	mu          sync.RWMutex
	credentials map[string]credential // keyed by lowercased email
	jwtSecret   string
	delay       time.Duration
}

// Claims represents JWT token claims
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// NewService creates a new auth service
func NewService(jwtSecret string, delay time.Duration) *Service {
	return &Service{
		credentials: make(map[string]credential),
		jwtSecret:   jwtSecret,
		delay:       delay,
	}
}

// Signup registers a new user and logs them in, returning the user and a
// signed token. A duplicate email is rejected.
func (s *Service) Signup(name, email, password string) (User, string, error) {
	s.simulateLatency()

	key := strings.ToLower(email)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	if _, exists := s.credentials[key]; exists {
		s.mu.Unlock()
		return User{}, "", apperrors.ErrUserExists
	}
	user := User{
		ID:    uuid.NewString(),
		Name:  name,
		Email: email,
	}
	s.credentials[key] = credential{user: user, passwordHash: hash}
	s.mu.Unlock()

	token, err := s.GenerateJWT(user)
	if err != nil {
		return User{}, "", err
	}
	return user, token, nil
}

// Login authenticates by email and password and returns the user and a
// signed token. Unknown email and wrong password are indistinguishable.
func (s *Service) Login(email, password string) (User, string, error) {
	s.simulateLatency()

	s.mu.RLock()
	cred, exists := s.credentials[strings.ToLower(email)]
	s.mu.RUnlock()

	if !exists {
		return User{}, "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(cred.passwordHash, []byte(password)); err != nil {
		return User{}, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(cred.user)
	if err != nil {
		return User{}, "", err
	}
	return cred.user, token, nil
}

// GenerateJWT creates a signed token for the user
func (s *Service) GenerateJWT(user User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "gearguard-backend",
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateJWT validates and parses a token
func (s *Service) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func (s *Service) simulateLatency() {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
}
