package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AditiPateria/toursandtravels/internal/auth"
	"github.com/AditiPateria/toursandtravels/internal/backend"
	"github.com/AditiPateria/toursandtravels/internal/events"
	"github.com/AditiPateria/toursandtravels/internal/gateway"
	"github.com/AditiPateria/toursandtravels/internal/observability"
	"github.com/AditiPateria/toursandtravels/internal/session"
	"github.com/AditiPateria/toursandtravels/internal/tokenstore"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

type noSession struct{}

func (noSession) Token() (string, bool)  { return "", false }
func (noSession) Expire(context.Context) {}

func newAuthClient(t *testing.T, baseURL string) *backend.AuthClient {
	t.Helper()
	gw, err := gateway.New(baseURL, 2*time.Second, noSession{}, zap.NewNop(), observability.NewMetrics())
	require.NoError(t, err)
	return backend.NewAuthClient(gw)
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestAuthClient_Login(t *testing.T) {
	token := signToken(t, jwt.MapClaims{"sub": "alice", "roles": "ROLE_USER"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":    token,
			"type":     "Bearer",
			"id":       7,
			"username": "alice",
			"email":    "alice@example.com",
			"roles":    []string{"ROLE_USER"},
		})
	}))
	defer srv.Close()

	result, err := newAuthClient(t, srv.URL).Login(context.Background(), session.Credentials{
		Username: "alice",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, token, result.Token)
	assert.Equal(t, "Bearer", result.Type)
	assert.Equal(t, int64(7), result.ID)
	assert.Equal(t, []string{"ROLE_USER"}, result.Roles)
}

func TestAuthClient_Login_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer srv.Close()

	_, err := newAuthClient(t, srv.URL).Login(context.Background(), session.Credentials{
		Username: "alice",
		Password: "wrong",
	})
	require.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestAuthClient_Login_MissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":7,"username":"alice"}`))
	}))
	defer srv.Close()

	_, err := newAuthClient(t, srv.URL).Login(context.Background(), session.Credentials{
		Username: "alice",
		Password: "secret",
	})
	require.ErrorIs(t, err, util.ErrUnexpectedResponse)
}

func TestAuthClient_Register_Conflicts(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"username taken, plain 400", http.StatusBadRequest, "Username is already taken", util.ErrUsernameTaken},
		{"email taken, structured 400", http.StatusBadRequest, `{"message":"Email is already in use"}`, util.ErrEmailTaken},
		{"username taken, 409", http.StatusConflict, `{"message":"Username is already taken"}`, util.ErrUsernameTaken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/auth/register", r.URL.Path)
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newAuthClient(t, srv.URL).Register(context.Background(), session.SignupData{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret",
			})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAuthClient_Register_OtherErrorsPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
	}))
	defer srv.Close()

	_, err := newAuthClient(t, srv.URL).Register(context.Background(), session.SignupData{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	assert.True(t, util.IsCode(err, util.CodeServerError))
}

// Exercises the whole chain the way a process restart would: login through the
// real gateway, persist the credential, then rebuild a fresh manager from the
// same store.
func TestLoginThenHydrateAcrossRestart(t *testing.T) {
	ctx := context.Background()
	token := signToken(t, jwt.MapClaims{"sub": "alice", "roles": "ROLE_USER"})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds session.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.Username, "username must arrive trimmed")

		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":    token,
			"type":     "Bearer",
			"id":       7,
			"username": "alice",
			"email":    "alice@example.com",
			"roles":    []string{"ROLE_USER"},
		})
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "token")
	store := tokenstore.NewFileStore(path)

	mgr := session.NewManager(store, events.NewInMemoryDispatcher(), zap.NewNop())
	gw, err := gateway.New(srv.URL, 2*time.Second, mgr, zap.NewNop(), observability.NewMetrics())
	require.NoError(t, err)
	mgr.SetExchanger(backend.NewAuthClient(gw))
	mgr.Hydrate(ctx)

	_, err = mgr.Login(ctx, session.Credentials{Username: "  alice  ", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, session.StateAuthenticated, mgr.Current().State)

	restarted := session.NewManager(tokenstore.NewFileStore(path), events.NewInMemoryDispatcher(), zap.NewNop())
	restarted.Hydrate(ctx)

	snap := restarted.Current()
	require.Equal(t, session.StateAuthenticated, snap.State)
	require.NotNil(t, snap.Claims)
	assert.Equal(t, "alice", snap.Claims.Username)
	assert.Equal(t, []auth.Role{auth.RoleUser}, snap.Claims.Roles)

	attached, ok := restarted.Token()
	require.True(t, ok)
	assert.Equal(t, "Bearer "+token, attached)
}
