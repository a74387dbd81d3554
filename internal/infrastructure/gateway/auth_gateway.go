package gateway

import (
	"context"

	"github.com/vendify/salesflow-web/internal/domain/enum"
)

// LoginResult is what the backend returns on a successful login: the two
// values the shell persists for the session.
type LoginResult struct {
	Name        string           `json:"name"`
	AccessLevel enum.AccessLevel `json:"access_level"`
}

// AuthGateway performs the login call against the sales API
type AuthGateway struct {
	client *Client
}

// NewAuthGateway creates a new auth gateway
func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

// Login posts the credentials; any non-2xx means invalid credentials or
// an unreachable backend, both surfaced as AppErrors by the client
func (g *AuthGateway) Login(ctx context.Context, name, password string) (LoginResult, error) {
	body := struct {
		Name     string `json:"name"`
		Password string `json:"password"`
	}{Name: name, Password: password}

	var result LoginResult
	if err := g.client.Post(ctx, "/login/", body, &result); err != nil {
		return LoginResult{}, err
	}
	result.AccessLevel = result.AccessLevel.Normalize()
	return result, nil
}
