package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AditiPateria/toursandtravels/internal/auth"
	"github.com/AditiPateria/toursandtravels/internal/guard"
	"github.com/AditiPateria/toursandtravels/internal/session"
)

func authenticated(roles ...auth.Role) session.Snapshot {
	return session.Snapshot{
		State:  session.StateAuthenticated,
		Claims: &auth.Claims{Username: "alice", Roles: roles},
	}
}

func TestCheck(t *testing.T) {
	cases := []struct {
		name     string
		required []auth.Role
		snap     session.Snapshot
		want     guard.Decision
	}{
		{
			name: "unresolved session holds the render",
			snap: session.Snapshot{State: session.StateUnresolved},
			want: guard.Pending,
		},
		{
			name:     "unresolved outranks role requirements",
			required: []auth.Role{auth.RoleAdmin},
			snap:     session.Snapshot{State: session.StateUnresolved},
			want:     guard.Pending,
		},
		{
			name: "anonymous goes to login",
			snap: session.Snapshot{State: session.StateAnonymous},
			want: guard.RedirectToLogin,
		},
		{
			name:     "anonymous goes to login even without role requirement",
			required: nil,
			snap:     session.Snapshot{State: session.StateAnonymous},
			want:     guard.RedirectToLogin,
		},
		{
			name: "authenticated with no requirement is allowed",
			snap: authenticated(auth.RoleUser),
			want: guard.Allow,
		},
		{
			name:     "matching role is allowed",
			required: []auth.Role{auth.RoleAdmin},
			snap:     authenticated(auth.RoleUser, auth.RoleAdmin),
			want:     guard.Allow,
		},
		{
			name:     "any one of the required roles suffices",
			required: []auth.Role{auth.RoleUser, auth.RoleAdmin},
			snap:     authenticated(auth.RoleUser),
			want:     guard.Allow,
		},
		{
			name:     "missing role goes home",
			required: []auth.Role{auth.RoleAdmin},
			snap:     authenticated(auth.RoleUser),
			want:     guard.RedirectToHome,
		},
		{
			name:     "authenticated with empty role set goes home",
			required: []auth.Role{auth.RoleUser},
			snap:     authenticated(),
			want:     guard.RedirectToHome,
		},
		{
			name:     "nil claims with role requirement goes home",
			required: []auth.Role{auth.RoleUser},
			snap:     session.Snapshot{State: session.StateAuthenticated},
			want:     guard.RedirectToHome,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, guard.Check(tc.required, tc.snap))
		})
	}
}
