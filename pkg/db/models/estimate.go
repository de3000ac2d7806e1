package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

// Estimate is the valuation output consulted when delivering a report.
type Estimate struct {
	ID               uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID        uuid.UUID      `gorm:"column:request_id;type:uuid;not null;uniqueIndex" json:"requestId"`
	MarketValueMinor int64          `gorm:"column:market_value_minor;not null" json:"marketValueMinor"`
	Currency         enums.Currency `gorm:"column:currency;type:text;not null;default:'AED'" json:"currency"`
	Confidence       *float64       `gorm:"column:confidence" json:"confidence,omitempty"`
	CreatedAt        time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
