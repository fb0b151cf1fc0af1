package auth

// Role identifies a capability grant attached to a session. Membership is
// tested by exact string match.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// HasAny reports whether any of the required roles is present in roles.
// An empty requirement never matches; callers treat it separately.
func HasAny(roles []Role, required []Role) bool {
	if len(roles) == 0 || len(required) == 0 {
		return false
	}
	held := make(map[Role]struct{}, len(roles))
	for _, role := range roles {
		held[role] = struct{}{}
	}
	for _, role := range required {
		if _, ok := held[role]; ok {
			return true
		}
	}
	return false
}
