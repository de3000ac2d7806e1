package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

// Message is one entry in a request's customer/operator thread.
type Message struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID   uuid.UUID        `gorm:"column:request_id;type:uuid;not null;index" json:"requestId"`
	SenderID    uuid.UUID        `gorm:"column:sender_id;type:uuid;not null" json:"senderId"`
	SenderName  string           `gorm:"column:sender_name;type:text;not null" json:"senderName"`
	SenderType  enums.SenderType `gorm:"column:sender_type;type:text;not null" json:"senderType"`
	Content     string           `gorm:"column:content;type:text;not null" json:"content"`
	Attachments types.StringList `gorm:"column:attachments;type:jsonb;serializer:json" json:"attachments"`
	Read        bool             `gorm:"column:read;not null;default:false" json:"read"`
	ReadAt      *time.Time       `gorm:"column:read_at" json:"readAt,omitempty"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
