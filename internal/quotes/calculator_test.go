package quotes

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/souldevsoul/majaz-sub001/pkg/enums"
	pkgerrors "github.com/souldevsoul/majaz-sub001/pkg/errors"
)

func dec(t *testing.T, value string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", value, err)
	}
	return d
}

func TestCalculateOnsiteUSDWithDeposit(t *testing.T) {
	maxBid := decimal.NewFromInt(1000)
	breakdown, err := Calculate(Input{
		Mode:           enums.ServiceModeOnsiteInspection,
		Tier:           enums.ServiceTierOnsite24H,
		Country:        enums.CountryAE,
		Currency:       enums.CurrencyUSD,
		IncludeDeposit: true,
		MaxBid:         &maxBid,
	})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if !breakdown.ServiceFee.Equal(dec(t, "56.43")) {
		t.Fatalf("unexpected service fee %s", breakdown.ServiceFee)
	}
	if !breakdown.Deposit.Equal(dec(t, "200.00")) {
		t.Fatalf("unexpected deposit %s", breakdown.Deposit)
	}
	if !breakdown.Total.Equal(dec(t, "256.43")) {
		t.Fatalf("unexpected total %s", breakdown.Total)
	}
	if breakdown.SLAHours != 24 {
		t.Fatalf("unexpected sla hours %d", breakdown.SLAHours)
	}
	if breakdown.DepositPct == nil || *breakdown.DepositPct != DepositPct {
		t.Fatalf("unexpected deposit pct %v", breakdown.DepositPct)
	}
}

func TestCalculateAEDIdentity(t *testing.T) {
	breakdown, err := Calculate(Input{
		Mode:     enums.ServiceModeRemoteAssessment,
		Tier:     enums.ServiceTierRemote24H,
		Country:  enums.CountryAE,
		Currency: enums.CurrencyAED,
	})
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if !breakdown.ServiceFee.Equal(decimal.NewFromInt(89)) {
		t.Fatalf("unexpected service fee %s", breakdown.ServiceFee)
	}
	if !breakdown.Deposit.IsZero() {
		t.Fatalf("unexpected deposit %s", breakdown.Deposit)
	}
	if !breakdown.Total.Equal(breakdown.ServiceFee) {
		t.Fatalf("total should equal fee when no deposit, got %s", breakdown.Total)
	}
	if breakdown.DepositPct != nil {
		t.Fatalf("deposit pct should be absent, got %d", *breakdown.DepositPct)
	}
}

func TestCalculateSLAHoursPerTier(t *testing.T) {
	cases := []struct {
		mode  enums.ServiceMode
		tier  enums.ServiceTier
		hours int
	}{
		{enums.ServiceModeRemoteAssessment, enums.ServiceTierRemoteSameDay, 8},
		{enums.ServiceModeRemoteAssessment, enums.ServiceTierRemote48H, 48},
		{enums.ServiceModeOnsiteInspection, enums.ServiceTierOnsiteSameDay, 8},
		{enums.ServiceModeSourcing, enums.ServiceTierSourcingStandard, 48},
		{enums.ServiceModeDelegatedBidding, enums.ServiceTierBiddingStandard, 24},
	}
	for _, tc := range cases {
		breakdown, err := Calculate(Input{Mode: tc.mode, Tier: tc.tier, Country: enums.CountryAE, Currency: enums.CurrencyAED})
		if err != nil {
			t.Fatalf("%s: expected success got %v", tc.tier, err)
		}
		if breakdown.SLAHours != tc.hours {
			t.Fatalf("%s: expected %d hours got %d", tc.tier, tc.hours, breakdown.SLAHours)
		}
	}
}

func TestCalculateValidation(t *testing.T) {
	negative := decimal.NewFromInt(-5)
	cases := []struct {
		name  string
		input Input
	}{
		{"invalid mode", Input{Mode: "teleport", Tier: enums.ServiceTierRemote24H, Country: enums.CountryAE, Currency: enums.CurrencyAED}},
		{"invalid tier", Input{Mode: enums.ServiceModeRemoteAssessment, Tier: "instant", Country: enums.CountryAE, Currency: enums.CurrencyAED}},
		{"tier from other mode", Input{Mode: enums.ServiceModeRemoteAssessment, Tier: enums.ServiceTierOnsite24H, Country: enums.CountryAE, Currency: enums.CurrencyAED}},
		{"invalid country", Input{Mode: enums.ServiceModeRemoteAssessment, Tier: enums.ServiceTierRemote24H, Country: "ZZ", Currency: enums.CurrencyAED}},
		{"invalid currency", Input{Mode: enums.ServiceModeRemoteAssessment, Tier: enums.ServiceTierRemote24H, Country: enums.CountryAE, Currency: "GBP"}},
		{"non-positive max bid", Input{Mode: enums.ServiceModeDelegatedBidding, Tier: enums.ServiceTierBiddingStandard, Country: enums.CountryAE, Currency: enums.CurrencyAED, IncludeDeposit: true, MaxBid: &negative}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Calculate(tc.input)
			if err == nil {
				t.Fatal("expected error")
			}
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("unexpected error %v", err)
			}
		})
	}
}

func TestConvertRoundTripWithinOneCent(t *testing.T) {
	oneCent := dec(t, "0.01")
	for _, amount := range []decimal.Decimal{dec(t, "100.00"), dec(t, "209.00")} {
		usd, err := Convert(amount, enums.CurrencyAED, enums.CurrencyUSD)
		if err != nil {
			t.Fatalf("expected success got %v", err)
		}
		back, err := Convert(usd, enums.CurrencyUSD, enums.CurrencyAED)
		if err != nil {
			t.Fatalf("expected success got %v", err)
		}
		diff := back.Sub(amount).Abs()
		if diff.GreaterThan(oneCent) {
			t.Fatalf("round trip drifted more than a cent: %s -> %s -> %s", amount, usd, back)
		}
	}
}

func TestConvertReverseLegsAreInverses(t *testing.T) {
	pairs := []struct{ from, to enums.Currency }{
		{enums.CurrencyAED, enums.CurrencyUSD},
		{enums.CurrencyAED, enums.CurrencyEUR},
		{enums.CurrencyUSD, enums.CurrencyEUR},
	}
	for _, p := range pairs {
		forward := conversionRates[ratePair{from: p.from, to: p.to}]
		reverse := conversionRates[ratePair{from: p.to, to: p.from}]
		product := forward.Mul(reverse)
		if product.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(dec(t, "0.0000000001")) {
			t.Fatalf("%s/%s rates are not inverses, product %s", p.from, p.to, product)
		}
	}
}

func TestConvertIdentityDoesNotRound(t *testing.T) {
	amount := dec(t, "12.345")
	out, err := Convert(amount, enums.CurrencyEUR, enums.CurrencyEUR)
	if err != nil {
		t.Fatalf("expected success got %v", err)
	}
	if !out.Equal(amount) {
		t.Fatalf("identity conversion changed the amount: %s", out)
	}
}
