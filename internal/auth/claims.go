package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken reports a credential that cannot be decoded into claims.
var ErrMalformedToken = errors.New("malformed authentication token")

// Claims are the identity facts decoded from a token. They gate local UI
// affordances only; the backend re-validates the credential on every request,
// so a forged decode never grants access to protected data.
type Claims struct {
	ID        int64
	Username  string
	Email     string
	Roles     []Role
	ExpiresAt time.Time
}

// rawClaims tolerates the loose payload shapes the backend emits: the roles
// claim may be a JSON array, a comma-joined string, or missing entirely.
type rawClaims struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Roles    json.RawMessage `json:"roles"`
	jwt.RegisteredClaims
}

// Decode extracts claims from a bearer credential without contacting the
// backend and without verifying the signature; verification is the backend's
// responsibility. The credential may carry an optional "Bearer " scheme label.
// Expiry is extracted when present but nothing here acts on it.
func Decode(token string) (*Claims, error) {
	raw := StripScheme(token)

	var rc rawClaims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &rc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims := &Claims{
		ID:       rc.ID,
		Username: rc.Username,
		Email:    rc.Email,
		Roles:    normalizeRoles(rc.Roles),
	}
	if claims.Username == "" {
		claims.Username = rc.Subject
	}
	if rc.ExpiresAt != nil {
		claims.ExpiresAt = rc.ExpiresAt.Time
	}
	return claims, nil
}

// StripScheme removes an optional Bearer label from a stored credential.
func StripScheme(token string) string {
	trimmed := strings.TrimSpace(token)
	parts := strings.SplitN(trimmed, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return trimmed
}

// AuthorizationValue returns the header form of a stored credential. A value
// persisted with its scheme label is attached verbatim; a raw one gets the
// Bearer label added.
func AuthorizationValue(token string) string {
	trimmed := strings.TrimSpace(token)
	parts := strings.SplitN(trimmed, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return trimmed
	}
	return "Bearer " + trimmed
}

// normalizeRoles always yields a concrete, possibly empty role set so callers
// never duck-type-check the claim shape.
func normalizeRoles(raw json.RawMessage) []Role {
	roles := []Role{}
	if len(raw) == 0 || string(raw) == "null" {
		return roles
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, r := range list {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, Role(r))
			}
		}
		return roles
	}

	var joined string
	if err := json.Unmarshal(raw, &joined); err == nil {
		for _, r := range strings.Split(joined, ",") {
			if r = strings.TrimSpace(r); r != "" {
				roles = append(roles, Role(r))
			}
		}
	}
	return roles
}
