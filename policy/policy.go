package policy

import (
	"errors"
	"fmt"
)

// Aturan akses manajemen user, dikumpulkan di satu tempat alih-alih
// perbandingan string role tersebar di tiap route.

const (
	RoleAdmin         = "Admin"
	RolePIC           = "PIC"
	RoleChurch        = "Pihak Gereja"
	RoleSemiVolunteer = "Semi Volunteer"
)

var ErrForbidden = errors.New("forbidden")

// Actor pemanggil yang sudah terautentikasi.
type Actor struct {
	ID   uint
	Role string
}

// Target user yang dikenai aksi. Role boleh kosong untuk aksi yang tidak
// peduli role target.
type Target struct {
	UserID uint
	Role   string
}

type Action string

const (
	ActionListUsers     Action = "users:list"
	ActionViewUser      Action = "users:view"
	ActionCreateUser    Action = "users:create"
	ActionUpdateUser    Action = "users:update"
	ActionChangeRole    Action = "users:change-role"
	ActionResetPassword Action = "users:reset-password"
	ActionDeleteUser    Action = "users:delete"
)

// Authorize memutuskan boleh/tidaknya actor menjalankan action pada target.
func Authorize(actor Actor, action Action, target Target) error {
	isAdmin := actor.Role == RoleAdmin
	isSelf := target.UserID != 0 && actor.ID == target.UserID

	switch action {
	case ActionListUsers, ActionCreateUser, ActionDeleteUser:
		if !isAdmin {
			return fmt.Errorf("%w: Admin access required", ErrForbidden)
		}
		return nil

	case ActionViewUser, ActionUpdateUser:
		if !isAdmin && !isSelf {
			return fmt.Errorf("%w: you can only access your own data", ErrForbidden)
		}
		return nil

	case ActionChangeRole:
		if !isAdmin {
			return fmt.Errorf("%w: you cannot change your role", ErrForbidden)
		}
		return nil

	case ActionResetPassword:
		// Non-admin hanya boleh reset password sendiri. Admin hanya boleh
		// reset password user PIC dan Semi Volunteer.
		if !isAdmin {
			if !isSelf {
				return fmt.Errorf("%w: you can only reset your own password", ErrForbidden)
			}
			return nil
		}
		if target.Role != RolePIC && target.Role != RoleSemiVolunteer {
			return fmt.Errorf("%w: admin can only reset passwords for PIC and Semi Volunteer users", ErrForbidden)
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown action %q", ErrForbidden, action)
	}
}
