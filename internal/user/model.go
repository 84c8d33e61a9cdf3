package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleArtisan    Role = "artisan"
	RoleAdmin      Role = "admin"
	RoleFinance    Role = "finance"
	RoleSupervisor Role = "supervisor"
	RoleDriver     Role = "driver"
	RoleSupplier   Role = "supplier"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusSuspended Status = "suspended"
	StatusRejected  Status = "rejected"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusActive, StatusPending, StatusSuspended, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
