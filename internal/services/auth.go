package services

import (
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gallery-backend/internal/config"
)

// Authenticator issues and validates opaque bearer tokens against the single
// configured admin credential pair. Tokens live in memory only: a restart
// invalidates every previously issued token.
type Authenticator struct {
	username     string
	password     string
	passwordHash string

	mu     sync.Mutex
	tokens map[string]struct{}
}

// NewAuthenticator creates an authenticator with an empty token registry.
func NewAuthenticator(cfg config.AuthConfig) *Authenticator {
	return &Authenticator{
		username:     cfg.Username,
		password:     cfg.Password,
		passwordHash: cfg.PasswordHash,
		tokens:       make(map[string]struct{}),
	}
}

// Login checks the credential pair and mints a fresh token on success. Both
// fields are always checked so the error never reveals which one was wrong.
func (a *Authenticator) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1

	var passOK bool
	if a.passwordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1
	}

	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token := uuid.New().String()

	a.mu.Lock()
	a.tokens[token] = struct{}{}
	a.mu.Unlock()

	return token, nil
}

// Authenticate reports whether the token was issued by a prior Login.
func (a *Authenticator) Authenticate(token string) error {
	a.mu.Lock()
	_, ok := a.tokens[token]
	a.mu.Unlock()

	if !ok {
		return ErrInvalidToken
	}
	return nil
}
