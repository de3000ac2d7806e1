package enums

import "fmt"

// ServiceTier names a speed/price package for a service mode.
type ServiceTier string

const (
	ServiceTierRemoteSameDay    ServiceTier = "remote_same_day"
	ServiceTierRemote24H        ServiceTier = "remote_24h"
	ServiceTierRemote48H        ServiceTier = "remote_48h"
	ServiceTierOnsiteSameDay    ServiceTier = "onsite_same_day"
	ServiceTierOnsite24H        ServiceTier = "onsite_24h"
	ServiceTierOnsite48H        ServiceTier = "onsite_48h"
	ServiceTierSourcingStandard ServiceTier = "sourcing_standard"
	ServiceTierBiddingStandard  ServiceTier = "bidding_standard"
)

var validServiceTiers = []ServiceTier{
	ServiceTierRemoteSameDay,
	ServiceTierRemote24H,
	ServiceTierRemote48H,
	ServiceTierOnsiteSameDay,
	ServiceTierOnsite24H,
	ServiceTierOnsite48H,
	ServiceTierSourcingStandard,
	ServiceTierBiddingStandard,
}

// tiersByMode binds each tier to the single mode it prices.
var tiersByMode = map[ServiceMode][]ServiceTier{
	ServiceModeRemoteAssessment: {ServiceTierRemoteSameDay, ServiceTierRemote24H, ServiceTierRemote48H},
	ServiceModeOnsiteInspection: {ServiceTierOnsiteSameDay, ServiceTierOnsite24H, ServiceTierOnsite48H},
	ServiceModeSourcing:         {ServiceTierSourcingStandard},
	ServiceModeDelegatedBidding: {ServiceTierBiddingStandard},
}

// String implements fmt.Stringer.
func (t ServiceTier) String() string {
	return string(t)
}

// IsValid reports whether the value is a known ServiceTier.
func (t ServiceTier) IsValid() bool {
	for _, candidate := range validServiceTiers {
		if candidate == t {
			return true
		}
	}
	return false
}

// BelongsTo reports whether the tier prices the given mode.
func (t ServiceTier) BelongsTo(mode ServiceMode) bool {
	for _, candidate := range tiersByMode[mode] {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseServiceTier converts raw input into a ServiceTier.
func ParseServiceTier(value string) (ServiceTier, error) {
	for _, candidate := range validServiceTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service tier %q", value)
}
