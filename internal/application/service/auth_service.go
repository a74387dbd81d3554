package service

import (
	"context"

	"github.com/vendify/salesflow-web/internal/domain/enum"
	"github.com/vendify/salesflow-web/internal/infrastructure/gateway"
	"github.com/vendify/salesflow-web/pkg/utils"
)

// AuthService logs the operator in against the sales API and issues the
// session token the navigation shell reads. The token is a display gate,
// not an authorization boundary; the backend re-checks every request.
type AuthService struct {
	authGateway *gateway.AuthGateway
	sessions    *utils.SessionManager
}

// NewAuthService creates a new auth service
func NewAuthService(authGateway *gateway.AuthGateway, sessions *utils.SessionManager) *AuthService {
	return &AuthService{
		authGateway: authGateway,
		sessions:    sessions,
	}
}

// LoginOutput carries the issued token and the values it encodes
type LoginOutput struct {
	Token       string
	Name        string
	AccessLevel enum.AccessLevel
}

// Login authenticates against the backend and signs the session token
func (s *AuthService) Login(ctx context.Context, name, password string) (*LoginOutput, error) {
	result, err := s.authGateway.Login(ctx, name, password)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(result.Name, result.AccessLevel.String())
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token:       token,
		Name:        result.Name,
		AccessLevel: result.AccessLevel,
	}, nil
}
