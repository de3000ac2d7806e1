package requests

import "github.com/souldevsoul/majaz-sub001/pkg/enums"

// nextStatuses is the forward edge set of the lifecycle. FAILED is reachable
// from every non-terminal state; REFUNDED only once money has been taken.
var nextStatuses = map[enums.RequestStatus][]enums.RequestStatus{
	enums.RequestStatusPendingPayment: {
		enums.RequestStatusPaymentReceived,
		enums.RequestStatusFailed,
	},
	enums.RequestStatusPaymentReceived: {
		enums.RequestStatusScraping,
		enums.RequestStatusFailed,
		enums.RequestStatusRefunded,
	},
	enums.RequestStatusScraping: {
		enums.RequestStatusParsing,
		enums.RequestStatusFailed,
		enums.RequestStatusRefunded,
	},
	enums.RequestStatusParsing: {
		enums.RequestStatusAnalyzing,
		enums.RequestStatusFailed,
		enums.RequestStatusRefunded,
	},
	enums.RequestStatusAnalyzing: {
		enums.RequestStatusGeneratingReport,
		enums.RequestStatusFailed,
		enums.RequestStatusRefunded,
	},
	enums.RequestStatusGeneratingReport: {
		enums.RequestStatusCompleted,
		enums.RequestStatusFailed,
		enums.RequestStatusRefunded,
	},
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another. Terminal states permit nothing.
func CanTransition(from, to enums.RequestStatus) bool {
	for _, candidate := range nextStatuses[from] {
		if candidate == to {
			return true
		}
	}
	return false
}
