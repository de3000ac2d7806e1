package enums

import "fmt"

// RequestStatus tracks the lifecycle of an assessment request.
type RequestStatus string

const (
	RequestStatusPendingPayment   RequestStatus = "pending_payment"
	RequestStatusPaymentReceived  RequestStatus = "payment_received"
	RequestStatusScraping         RequestStatus = "scraping"
	RequestStatusParsing          RequestStatus = "parsing"
	RequestStatusAnalyzing        RequestStatus = "analyzing"
	RequestStatusGeneratingReport RequestStatus = "generating_report"
	RequestStatusCompleted        RequestStatus = "completed"
	RequestStatusFailed           RequestStatus = "failed"
	RequestStatusRefunded         RequestStatus = "refunded"
)

var validRequestStatuses = []RequestStatus{
	RequestStatusPendingPayment,
	RequestStatusPaymentReceived,
	RequestStatusScraping,
	RequestStatusParsing,
	RequestStatusAnalyzing,
	RequestStatusGeneratingReport,
	RequestStatusCompleted,
	RequestStatusFailed,
	RequestStatusRefunded,
}

// String implements fmt.Stringer.
func (r RequestStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RequestStatus.
func (r RequestStatus) IsValid() bool {
	for _, candidate := range validRequestStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (r RequestStatus) IsTerminal() bool {
	switch r {
	case RequestStatusCompleted, RequestStatusFailed, RequestStatusRefunded:
		return true
	default:
		return false
	}
}

// ParseRequestStatus converts raw input into a RequestStatus.
func ParseRequestStatus(value string) (RequestStatus, error) {
	for _, candidate := range validRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid request status %q", value)
}
