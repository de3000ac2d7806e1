package quotes

import (
	"github.com/shopspring/decimal"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
)

// Pricing is anchored in AED. Other currencies derive from the fixed rate
// table below so a quote is reproducible without a rates feed.
var baseFeesAED = map[enums.ServiceTier]decimal.Decimal{
	enums.ServiceTierRemoteSameDay:    decimal.NewFromInt(149),
	enums.ServiceTierRemote24H:        decimal.NewFromInt(89),
	enums.ServiceTierRemote48H:        decimal.NewFromInt(59),
	enums.ServiceTierOnsiteSameDay:    decimal.NewFromInt(299),
	enums.ServiceTierOnsite24H:        decimal.NewFromInt(209),
	enums.ServiceTierOnsite48H:        decimal.NewFromInt(159),
	enums.ServiceTierSourcingStandard: decimal.NewFromInt(99),
	enums.ServiceTierBiddingStandard:  decimal.NewFromInt(129),
}

var slaHoursByTier = map[enums.ServiceTier]int{
	enums.ServiceTierRemoteSameDay:    8,
	enums.ServiceTierRemote24H:        24,
	enums.ServiceTierRemote48H:        48,
	enums.ServiceTierOnsiteSameDay:    8,
	enums.ServiceTierOnsite24H:        24,
	enums.ServiceTierOnsite48H:        48,
	enums.ServiceTierSourcingStandard: 48,
	enums.ServiceTierBiddingStandard:  24,
}

type ratePair struct {
	from enums.Currency
	to   enums.Currency
}

// Only the forward legs are quoted. Reverse legs are derived as exact
// inverses so a conversion round-trips within a cent of rounding.
var conversionRates = map[ratePair]decimal.Decimal{
	{enums.CurrencyAED, enums.CurrencyUSD}: decimal.RequireFromString("0.27"),
	{enums.CurrencyAED, enums.CurrencyEUR}: decimal.RequireFromString("0.25"),
	{enums.CurrencyUSD, enums.CurrencyEUR}: decimal.RequireFromString("0.93"),
}

func init() {
	one := decimal.NewFromInt(1)
	for pair, rate := range conversionRates {
		reverse := ratePair{from: pair.to, to: pair.from}
		if _, ok := conversionRates[reverse]; !ok {
			conversionRates[reverse] = one.Div(rate)
		}
	}
}

// DepositPct is the share of the customer's max bid held as a refundable
// deposit when a quote requests one.
const DepositPct = 20

var depositRate = decimal.RequireFromString("0.20")

// Input describes the quote a caller wants priced.
type Input struct {
	Mode           enums.ServiceMode
	Tier           enums.ServiceTier
	Country        enums.Country
	Currency       enums.Currency
	IncludeDeposit bool
	MaxBid         *decimal.Decimal
}

// Breakdown is a fully priced quote. Amounts are in major units of Currency.
type Breakdown struct {
	Mode       enums.ServiceMode `json:"mode"`
	Tier       enums.ServiceTier `json:"tier"`
	Country    enums.Country     `json:"country"`
	Currency   enums.Currency    `json:"currency"`
	ServiceFee decimal.Decimal   `json:"serviceFee"`
	Deposit    decimal.Decimal   `json:"deposit"`
	DepositPct *int              `json:"depositPct,omitempty"`
	Total      decimal.Decimal   `json:"total"`
	SLAHours   int               `json:"slaHours"`
}

// Convert applies the fixed rate table, rounding half up to two decimals.
// Same-currency conversion is the identity with no rounding applied.
func Convert(amount decimal.Decimal, from, to enums.Currency) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, ok := conversionRates[ratePair{from: from, to: to}]
	if !ok {
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeValidation, "unsupported currency conversion")
	}
	return amount.Mul(rate).Round(2), nil
}

// Calculate prices a quote. It is pure and deterministic so the server can
// recompute a client-submitted quote and compare.
func Calculate(input Input) (*Breakdown, error) {
	if !input.Mode.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid service mode")
	}
	if !input.Tier.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid service tier")
	}
	if !input.Tier.BelongsTo(input.Mode) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tier does not price the requested mode")
	}
	if !input.Country.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid country")
	}
	if !input.Currency.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid currency")
	}
	if input.MaxBid != nil && input.MaxBid.LessThanOrEqual(decimal.Zero) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "max bid must be positive")
	}

	base, ok := baseFeesAED[input.Tier]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tier is not priced")
	}
	sla, ok := slaHoursByTier[input.Tier]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "tier has no service-level window")
	}

	fee, err := Convert(base, enums.CurrencyAED, input.Currency)
	if err != nil {
		return nil, err
	}

	deposit := decimal.Zero
	var pct *int
	if input.IncludeDeposit && input.MaxBid != nil {
		deposit = input.MaxBid.Mul(depositRate).Round(2)
		p := DepositPct
		pct = &p
	}

	return &Breakdown{
		Mode:       input.Mode,
		Tier:       input.Tier,
		Country:    input.Country,
		Currency:   input.Currency,
		ServiceFee: fee,
		Deposit:    deposit,
		DepositPct: pct,
		// Total is the exact sum, no extra rounding on top of the parts.
		Total:    fee.Add(deposit),
		SLAHours: sla,
	}, nil
}
