package constants

import "strings"

// Closed role set. Role is stored lower-case in the users table and in the
// token's role claim.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var AllRoles = []string{
	RoleUser,
	RoleAdmin,
}

// IsValidRole reports whether s (any case) is one of the two known roles.
func IsValidRole(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range AllRoles {
		if r == s {
			return true
		}
	}
	return false
}

// ClampRole normalizes a requested role to the closed set; anything invalid
// (including empty) falls back to RoleUser.
func ClampRole(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}
