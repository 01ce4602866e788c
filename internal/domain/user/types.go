package user

import (
	"fleet-workflow/internal/domain/notification"
	"fleet-workflow/internal/pkg/errs"
)

var ErrInvalidRole = errs.Validation("invalid role")

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTecnico Role = "tecnico"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTecnico:
		return true
	default:
		return false
	}
}

// Channel is the notification channel addressed to this role.
func (r Role) Channel() notification.Channel {
	if r == RoleAdmin {
		return notification.ChannelAdmin
	}
	return notification.ChannelTecnico
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
