package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

// Event is one append-only audit record for a request. Rows are never updated
// or deleted; ordering within a request is created_at.
type Event struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID   uuid.UUID       `gorm:"column:request_id;type:uuid;not null;index" json:"requestId"`
	Type        enums.EventType `gorm:"column:type;type:text;not null" json:"type"`
	Description string          `gorm:"column:description;type:text;not null" json:"description"`
	Payload     types.JSONMap   `gorm:"column:payload;type:jsonb;serializer:json" json:"payload,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
