package backend

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AditiPateria/toursandtravels/internal/gateway"
	"github.com/AditiPateria/toursandtravels/internal/session"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

// AuthClient performs the credential exchange endpoints. It implements
// session.Exchanger.
type AuthClient struct {
	gw *gateway.Gateway
}

// NewAuthClient constructs the client.
func NewAuthClient(gw *gateway.Gateway) *AuthClient {
	return &AuthClient{gw: gw}
}

// loginResponse is the wire shape of a successful login. The scheme label
// defaults to Bearer when the backend omits it.
type loginResponse struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"`
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// Login exchanges credentials for a token. A 401 here means the credentials
// were wrong, not that a session expired, so it maps to ErrInvalidCredentials
// and the gateway applies no session side effects.
func (c *AuthClient) Login(ctx context.Context, creds session.Credentials) (*session.LoginResult, error) {
	var resp loginResponse
	if err := c.gw.CallPublic(ctx, http.MethodPost, "/api/auth/login", creds, &resp); err != nil {
		if util.IsCode(err, util.CodeUnauthorized) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if resp.Token == "" {
		return nil, fmt.Errorf("login response missing token: %w", util.ErrUnexpectedResponse)
	}

	return &session.LoginResult{
		Token:    resp.Token,
		Type:     resp.Type,
		ID:       resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Roles:    resp.Roles,
	}, nil
}

// Register creates a new account. Duplicate username/email rejections come
// back as 400 or 409 with a message naming the offending field.
func (c *AuthClient) Register(ctx context.Context, data session.SignupData) (*session.Identity, error) {
	var identity session.Identity
	if err := c.gw.CallPublic(ctx, http.MethodPost, "/api/auth/register", data, &identity); err != nil {
		if mapped := mapRegisterConflict(err); mapped != nil {
			return nil, mapped
		}
		return nil, err
	}
	return &identity, nil
}

func mapRegisterConflict(err error) error {
	var reqErr *util.RequestError
	if !errors.As(err, &reqErr) {
		return nil
	}
	if reqErr.HTTPStatus != http.StatusConflict && reqErr.HTTPStatus != http.StatusBadRequest {
		return nil
	}

	message := strings.ToLower(reqErr.Message)
	switch {
	case strings.Contains(message, "username"):
		return util.ErrUsernameTaken
	case strings.Contains(message, "email"):
		return util.ErrEmailTaken
	}
	return nil
}
