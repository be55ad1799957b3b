package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/proposalcraft/proposalcraft-go/internal/crypto"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
	"github.com/proposalcraft/proposalcraft-go/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrLoginDisabled      = errors.New("sign-in is not configured")
)

// AuthService resolves session identities and signs in the owner.
type AuthService struct {
	owner        model.Identity
	passwordHash string
	signer       *session.Signer
}

// NewAuthService creates a new AuthService. An empty passwordHash disables Login.
func NewAuthService(owner model.Identity, passwordHash string, signer *session.Signer) *AuthService {
	owner.Email = strings.ToLower(strings.TrimSpace(owner.Email))
	return &AuthService{
		owner:        owner,
		passwordHash: passwordHash,
		signer:       signer,
	}
}

// Login checks the owner credentials and returns a session token.
func (s *AuthService) Login(req model.LoginRequest) (string, *model.Identity, error) {
	if strings.TrimSpace(req.Email) == "" {
		return "", nil, ErrEmailRequired
	}
	if req.Password == "" {
		return "", nil, ErrPasswordRequired
	}
	if s.passwordHash == "" || s.owner.Email == "" {
		return "", nil, ErrLoginDisabled
	}

	match, err := crypto.VerifyPassword(req.Password, s.passwordHash)
	if err != nil {
		return "", nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	sameEmail := subtle.ConstantTimeCompare([]byte(email), []byte(s.owner.Email)) == 1
	if !match || !sameEmail {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.signer.Issue(s.owner)
	if err != nil {
		return "", nil, err
	}
	id := s.owner
	return token, &id, nil
}

// Me returns the identity behind token, or nil for anonymous callers.
func (s *AuthService) Me(token string) *model.Identity {
	if token == "" {
		return nil
	}
	claims, err := s.signer.Verify(token)
	if err != nil {
		return nil
	}
	return claims.Identity()
}
