package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	"github.com/souldevsoul/majaz-sub001/pkg/types"
)

// Listing holds the scraped marketplace payload for a request's vehicle.
// At most one per request; re-scrapes upsert in place.
type Listing struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	RequestID  uuid.UUID           `gorm:"column:request_id;type:uuid;not null;uniqueIndex" json:"requestId"`
	Source     enums.ListingSource `gorm:"column:source;type:text;not null;default:'other'" json:"source"`
	OriginURL  string              `gorm:"column:origin_url;type:text;not null" json:"originUrl"`
	RawPayload string              `gorm:"column:raw_payload;type:text" json:"-"`
	PhotoURLs  types.StringList    `gorm:"column:photo_urls;type:jsonb;serializer:json" json:"photoUrls"`
	ScrapedAt  *time.Time          `gorm:"column:scraped_at" json:"scrapedAt,omitempty"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}
