package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID               uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name             string     `json:"name"`
	Email            *string    `json:"email,omitempty"`
	PhoneNumber      *string    `json:"phoneNumber,omitempty"`
	LandlinePhone    *string    `json:"landlinePhone,omitempty"`
	RFC              *string    `json:"rfc,omitempty" gorm:"column:rfc"`
	TaxResidence     *string    `json:"taxResidence,omitempty"`
	ConstitutionDate *time.Time `json:"constitutionDate,omitempty"`
	Archived         bool       `json:"archived"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

func (Company) TableName() string {
	return "company"
}
