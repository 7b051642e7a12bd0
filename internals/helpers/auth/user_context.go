package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"askonline_backend/internals/constants"
)

// Locals keys set by the auth middleware after token verification.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocEmail    = "user_email"
	LocRole     = "user_role"
)

// UserContext is the caller identity resolved from the bearer token. A nil
// UserID means anonymous. It is built purely from verified claims and is
// passed explicitly into every service call.
type UserContext struct {
	UserID   *uuid.UUID
	UserName string
	Email    string
	Role     string
}

func Anonymous() UserContext {
	return UserContext{}
}

// AsUser builds the context of a known user row; used when shaping a
// response for the subject themself (register/login). An unparsable id
// degrades to anonymous.
func AsUser(id, userName, email, role string) UserContext {
	uid, err := uuid.Parse(id)
	if err != nil {
		return Anonymous()
	}
	return UserContext{
		UserID:   &uid,
		UserName: userName,
		Email:    email,
		Role:     constants.ClampRole(role),
	}
}

func (u UserContext) IsAuthenticated() bool {
	return u.UserID != nil
}

func (u UserContext) IsAdmin() bool {
	return u.IsAuthenticated() && u.Role == constants.RoleAdmin
}

// IsOwner reports whether the caller is the user identified by ownerID.
func (u UserContext) IsOwner(ownerID string) bool {
	return u.IsAuthenticated() && u.UserID.String() == ownerID
}

// CanModify is the shared ownership rule: owner or admin.
func (u UserContext) CanModify(ownerID string) bool {
	return u.IsAdmin() || u.IsOwner(ownerID)
}

// FromFiber rebuilds the UserContext from request locals. Missing or
// malformed locals yield the anonymous context.
func FromFiber(c *fiber.Ctx) UserContext {
	idStr, ok := c.Locals(LocUserID).(string)
	if !ok || idStr == "" {
		return Anonymous()
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return Anonymous()
	}

	ctx := UserContext{UserID: &id}
	if v, ok := c.Locals(LocUserName).(string); ok {
		ctx.UserName = v
	}
	if v, ok := c.Locals(LocEmail).(string); ok {
		ctx.Email = v
	}
	if v, ok := c.Locals(LocRole).(string); ok && constants.IsValidRole(v) {
		ctx.Role = constants.ClampRole(v)
	} else {
		ctx.Role = constants.RoleUser
	}
	return ctx
}
