package apiclient

import (
	"context"
	"errors"

	"github.com/Wessamoreira/ambiente-precificador/internal/domain"
)

func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.post(ctx, "/auth/login", nil, req, &resp); err != nil {
		return domain.AuthResponse{}, err
	}
	if resp.AccessToken == "" {
		return domain.AuthResponse{}, errors.New("POST /auth/login: response carries no access token")
	}
	return resp, nil
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (domain.AuthResponse, error) {
	var resp domain.AuthResponse
	err := c.post(ctx, "/auth/refresh", nil, domain.RefreshTokenRequest{RefreshToken: refreshToken}, &resp)
	return resp, err
}

// Logout revokes the refresh token upstream. The API answers with plain text,
// which is discarded.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.post(ctx, "/auth/logout", nil, domain.RefreshTokenRequest{RefreshToken: refreshToken}, nil)
}

func (c *Client) Register(ctx context.Context, req domain.RegisterRequest) error {
	return c.post(ctx, "/auth/register", nil, req, nil)
}
