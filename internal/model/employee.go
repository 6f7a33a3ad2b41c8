package model

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	RoleID    uuid.UUID  `json:"idRole" gorm:"type:uuid;column:id_role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (Employee) TableName() string {
	return "employee"
}

type Role struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Title     string     `json:"title"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (Role) TableName() string {
	return "role"
}

// Principal is the authenticated caller as seen by handlers.
type Principal struct {
	Subject string
	Email   string
	Role    string
}
