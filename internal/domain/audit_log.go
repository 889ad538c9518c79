package domain

import "time"

const (
	AuditActionCreate  = "create"
	AuditActionUpdate  = "update"
	AuditActionDelete  = "delete"
	AuditActionSignIn  = "login"
	AuditActionSignOut = "logout"
)

type AuditLog struct {
	ID          string    `json:"id"`
	UserEmail   string    `json:"user_email"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
