package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

// Report is one generated deliverable for a request. Regenerations append rows;
// "latest" is generated_at descending. SentToUser flips false→true exactly once.
type Report struct {
	ID          uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID   uuid.UUID            `gorm:"column:request_id;type:uuid;not null;index" json:"requestId"`
	Language    enums.ReportLanguage `gorm:"column:language;type:text;not null;default:'en'" json:"language"`
	HTMLContent string               `gorm:"column:html_content;type:text" json:"-"`
	PDFURL      *string              `gorm:"column:pdf_url;type:text" json:"pdfUrl,omitempty"`
	GeneratedAt time.Time            `gorm:"column:generated_at;not null" json:"generatedAt"`
	SentToUser  bool                 `gorm:"column:sent_to_user;not null;default:false" json:"sentToUser"`
	SentAt      *time.Time           `gorm:"column:sent_at" json:"sentAt,omitempty"`
	CreatedAt   time.Time            `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}
