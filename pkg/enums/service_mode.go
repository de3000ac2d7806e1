package enums

import "fmt"

// ServiceMode distinguishes the kinds of concierge engagements.
type ServiceMode string

const (
	ServiceModeRemoteAssessment ServiceMode = "remote_assessment"
	ServiceModeOnsiteInspection ServiceMode = "onsite_inspection"
	ServiceModeSourcing         ServiceMode = "sourcing"
	ServiceModeDelegatedBidding ServiceMode = "delegated_bidding"
)

var validServiceModes = []ServiceMode{
	ServiceModeRemoteAssessment,
	ServiceModeOnsiteInspection,
	ServiceModeSourcing,
	ServiceModeDelegatedBidding,
}

// String implements fmt.Stringer.
func (m ServiceMode) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ServiceMode.
func (m ServiceMode) IsValid() bool {
	for _, candidate := range validServiceModes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseServiceMode converts raw input into a ServiceMode.
func ParseServiceMode(value string) (ServiceMode, error) {
	for _, candidate := range validServiceModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid service mode %q", value)
}
