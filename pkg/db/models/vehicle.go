package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is the structured extraction produced from a parsed listing.
type Vehicle struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID uuid.UUID `gorm:"column:request_id;type:uuid;not null;uniqueIndex" json:"requestId"`
	Make      string    `gorm:"column:make;type:text" json:"make"`
	Model     string    `gorm:"column:model;type:text" json:"model"`
	Year      *int      `gorm:"column:year" json:"year,omitempty"`
	MileageKM *int      `gorm:"column:mileage_km" json:"mileageKm,omitempty"`
	Spec      *string   `gorm:"column:spec;type:text" json:"spec,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
