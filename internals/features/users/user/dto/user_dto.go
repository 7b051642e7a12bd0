package dto

import (
	"time"

	"askonline_backend/internals/constants"
	UserModel "askonline_backend/internals/features/users/user/model"
	helpersAuth "askonline_backend/internals/helpers/auth"
)

/* =======================================================
   RESPONSE DTO (privacy view)
   ======================================================= */

// UserDTO is the user projection embedded everywhere a user appears
// (question author, answer author, listings). Email/CreatedAt are only
// present in the expanded view; Role is forced to "user" in the public view
// so a third party never learns who the admins are.
type UserDTO struct {
	UserID    string     `json:"user_id"`
	UserName  string     `json:"user_name"`
	Role      string     `json:"role"`
	Email     *string    `json:"email,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// ToUserDTO applies the privacy rule: the viewer sees the expanded fields
// iff the viewer is the subject or an admin.
func ToUserDTO(u *UserModel.UserModel, viewer helpersAuth.UserContext) UserDTO {
	if u == nil {
		return UserDTO{}
	}

	if viewer.IsAdmin() || viewer.IsOwner(u.UserID) {
		email := u.Email
		createdAt := u.CreatedAt
		return UserDTO{
			UserID:    u.UserID,
			UserName:  u.UserName,
			Role:      u.Role,
			Email:     &email,
			CreatedAt: &createdAt,
		}
	}

	return UserDTO{
		UserID:   u.UserID,
		UserName: u.UserName,
		Role:     constants.RoleUser,
	}
}
