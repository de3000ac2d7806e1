package requests

import (
	"github.com/shopspring/decimal"

	"github.com/souldevsoul/majaz-sub001/pkg/db/models"
	"github.com/souldevsoul/majaz-sub001/pkg/enums"
)

// CreateRequestInput is the payload for opening a new assessment request.
// ServiceFee is the fee the client was quoted; the service recomputes it from
// the pricing tables and rejects the request if the two disagree.
type CreateRequestInput struct {
	Mode           enums.ServiceMode
	Tier           enums.ServiceTier
	Country        enums.Country
	Currency       enums.Currency
	ServiceFee     decimal.Decimal
	IncludeDeposit bool
	MaxBid         *decimal.Decimal
	ListingURL     *string
	SourcingBrief  *string
}

// CreateRequestResult carries the persisted request plus the client secrets
// the frontend needs to confirm payment.
type CreateRequestResult struct {
	Request             *models.Request `json:"request"`
	PaymentClientSecret string          `json:"paymentClientSecret"`
	DepositClientSecret *string         `json:"depositClientSecret,omitempty"`
}
