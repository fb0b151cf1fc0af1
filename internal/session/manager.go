// Package session owns the current-user state machine. All other components
// read the session; only the manager's operations (hydrate, login, logout,
// expire) mutate it.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/AditiPateria/toursandtravels/internal/auth"
	"github.com/AditiPateria/toursandtravels/internal/events"
	"github.com/AditiPateria/toursandtravels/internal/tokenstore"
	"github.com/AditiPateria/toursandtravels/pkg/util"
)

// State is the session lifecycle position.
type State int

const (
	// StateUnresolved means hydration has not completed yet.
	StateUnresolved State = iota
	// StateAnonymous means no valid session exists.
	StateAnonymous
	// StateAuthenticated means a decoded credential backs the session.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unresolved"
	}
}

// Snapshot is an atomic view of the session for readers.
type Snapshot struct {
	State  State
	Claims *auth.Claims
	Token  string
}

// Credentials are the raw login form values.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupData mirrors the registration form.
type SignupData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// LoginResult is the payload echoed by a successful credential exchange.
type LoginResult struct {
	Token    string
	Type     string
	ID       int64
	Username string
	Email    string
	Roles    []string
}

// Identity describes a registered account.
type Identity struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// Exchanger performs the credential exchange against the backend.
type Exchanger interface {
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
	Register(ctx context.Context, data SignupData) (*Identity, error)
}

// Manager holds the single logical session. Transitions replace the whole
// snapshot under one lock, so racing operations resolve last-write-wins
// without ever exposing a half-applied state.
type Manager struct {
	store      tokenstore.Store
	dispatcher events.Dispatcher
	log        *zap.Logger

	mu       sync.RWMutex
	exchange Exchanger
	state    State
	claims   *auth.Claims
	token    string
}

// NewManager builds a manager in the unresolved state. Call Hydrate once at
// startup and SetExchanger before serving logins.
func NewManager(store tokenstore.Store, dispatcher events.Dispatcher, logger *zap.Logger) *Manager {
	return &Manager{
		store:      store,
		dispatcher: dispatcher,
		log:        logger,
		state:      StateUnresolved,
	}
}

// SetExchanger wires the backend exchange collaborator.
func (m *Manager) SetExchanger(ex Exchanger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exchange = ex
}

// Hydrate reconstructs the session from the token store. An undecodable
// persisted token is discarded and the store cleared. Calling Hydrate again
// after the state resolved is a no-op, so the same persisted token can never
// flicker between states.
func (m *Manager) Hydrate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateUnresolved {
		return
	}

	token, err := m.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, tokenstore.ErrNoToken) {
			m.log.Warn("token load failed", zap.Error(err))
		}
		m.state = StateAnonymous
		return
	}

	claims, err := auth.Decode(token)
	if err != nil {
		m.log.Warn("discarding undecodable token", zap.Error(err))
		_ = m.store.Clear(ctx)
		m.state = StateAnonymous
		return
	}

	m.state = StateAuthenticated
	m.claims = claims
	m.token = token
	m.log.Info("session hydrated", zap.String("username", claims.Username))
}

// Login exchanges credentials for a token, persists it and transitions to
// authenticated. On any failure the prior state is left untouched and the
// error is surfaced to the caller, never swallowed.
func (m *Manager) Login(ctx context.Context, creds Credentials) (*auth.Claims, error) {
	creds.Username = strings.TrimSpace(creds.Username)

	m.mu.RLock()
	exchange := m.exchange
	m.mu.RUnlock()
	if exchange == nil {
		return nil, util.NewClientSetup(errors.New("no exchanger configured"))
	}

	result, err := exchange.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	if result == nil || result.Token == "" {
		return nil, fmt.Errorf("login response missing token: %w", util.ErrUnexpectedResponse)
	}

	scheme := result.Type
	if scheme == "" {
		scheme = "Bearer"
	}
	token := scheme + " " + result.Token

	claims := &auth.Claims{
		ID:       result.ID,
		Username: result.Username,
		Email:    result.Email,
		Roles:    toRoles(result.Roles),
	}
	// Expiry lives only inside the token itself.
	if decoded, err := auth.Decode(token); err == nil {
		claims.ExpiresAt = decoded.ExpiresAt
	}

	if err := m.store.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.claims = claims
	m.token = token
	m.mu.Unlock()

	m.publish(ctx, events.EventSessionAuthenticated, claims.Username)
	m.log.Info("session authenticated", zap.String("username", claims.Username))
	return claims, nil
}

// Logout clears the store and transitions to anonymous. It always succeeds
// and never contacts the backend.
func (m *Manager) Logout() {
	ctx := context.Background()
	_ = m.store.Clear(ctx)

	username := m.dropSession()
	m.publish(ctx, events.EventSessionCleared, username)
	m.log.Info("session cleared", zap.String("username", username))
}

// Expire drops the session after the backend rejected the credential. This
// is invoked by the request gateway only.
func (m *Manager) Expire(ctx context.Context) {
	_ = m.store.Clear(ctx)

	username := m.dropSession()
	m.publish(ctx, events.EventSessionExpired, username)
	m.log.Warn("session expired by backend", zap.String("username", username))
}

// Signup registers a new account. Registration does not imply login, so the
// session state is never touched here.
func (m *Manager) Signup(ctx context.Context, data SignupData) (*Identity, error) {
	data.Username = strings.TrimSpace(data.Username)
	data.Email = strings.TrimSpace(data.Email)

	m.mu.RLock()
	exchange := m.exchange
	m.mu.RUnlock()
	if exchange == nil {
		return nil, util.NewClientSetup(errors.New("no exchanger configured"))
	}

	return exchange.Register(ctx, data)
}

// Current returns an atomic view of the session.
func (m *Manager) Current() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Snapshot{State: m.state, Claims: m.claims, Token: m.token}
}

// Token returns the attachable credential for outbound requests.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != StateAuthenticated || m.token == "" {
		return "", false
	}
	return m.token, true
}

func (m *Manager) dropSession() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	username := ""
	if m.claims != nil {
		username = m.claims.Username
	}
	m.state = StateAnonymous
	m.claims = nil
	m.token = ""
	return username
}

func (m *Manager) publish(ctx context.Context, eventType events.EventType, username string) {
	if m.dispatcher == nil {
		return
	}
	m.dispatcher.Publish(ctx, events.Event{
		Type:      eventType,
		Username:  username,
		Timestamp: time.Now().UTC(),
	})
}

func toRoles(raw []string) []auth.Role {
	roles := []auth.Role{}
	for _, r := range raw {
		if r = strings.TrimSpace(r); r != "" {
			roles = append(roles, auth.Role(r))
		}
	}
	return roles
}
