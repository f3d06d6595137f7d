package models

import "time"

// RoleExpiration is a scheduled removal of a temporary role
type RoleExpiration struct {
	UserID string    `json:"userId"`
	RoleID string    `json:"roleId"`
	FireAt time.Time `json:"fireAt"`

	// RoleName for notifications
	RoleName string `json:"roleName,omitempty"`
}

// Key identifies the job; scheduling the same user and role again replaces it.
func (r *RoleExpiration) Key() string {
	return r.UserID + ":" + r.RoleID
}
