package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

// Request is the aggregate root for one customer's paid assessment job.
type Request struct {
	ID          uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerUserID uuid.UUID          `gorm:"column:owner_user_id;type:uuid;not null" json:"ownerUserId"`
	Mode        enums.ServiceMode  `gorm:"column:mode;type:text;not null" json:"mode"`
	Tier        enums.ServiceTier  `gorm:"column:tier;type:text;not null" json:"tier"`
	Country     enums.Country      `gorm:"column:country;type:text;not null" json:"country"`
	Currency    enums.Currency     `gorm:"column:currency;type:text;not null;default:'AED'" json:"currency"`

	ServiceFeeMinor int64  `gorm:"column:service_fee_minor;not null" json:"serviceFeeMinor"`
	DepositMinor    *int64 `gorm:"column:deposit_minor" json:"depositMinor,omitempty"`
	DepositPct      *int   `gorm:"column:deposit_pct" json:"depositPct,omitempty"`

	PaymentIntentID *string `gorm:"column:payment_intent_id" json:"paymentIntentId,omitempty"`
	DepositIntentID *string `gorm:"column:deposit_intent_id" json:"depositIntentId,omitempty"`

	SourcingBrief *string `gorm:"column:sourcing_brief" json:"sourcingBrief,omitempty"`

	Status enums.RequestStatus `gorm:"column:status;type:text;not null;default:'pending_payment'" json:"status"`

	Listing  *Listing  `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`
	Vehicle  *Vehicle  `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"vehicle,omitempty"`
	Estimate *Estimate `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"estimate,omitempty"`
	Reports  []Report  `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"reports,omitempty"`
	Events   []Event   `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
	Messages []Message `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`

	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`
}
