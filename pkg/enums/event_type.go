package enums

import "fmt"

// EventType labels audit-log entries attached to a request.
type EventType string

const (
	EventRequestCreated       EventType = "request_created"
	EventPaymentIntentCreated EventType = "payment_intent_created"
	EventStatusChanged        EventType = "status_changed"
	EventMessageSent          EventType = "message_sent"
	EventScrapingStarted      EventType = "scraping_started"
	EventScrapingCompleted    EventType = "scraping_completed"
	EventScrapingFailed       EventType = "scraping_failed"
	EventReportSent           EventType = "report_sent"
	EventRequestDeleted       EventType = "request_deleted"
)

var validEventTypes = []EventType{
	EventRequestCreated,
	EventPaymentIntentCreated,
	EventStatusChanged,
	EventMessageSent,
	EventScrapingStarted,
	EventScrapingCompleted,
	EventScrapingFailed,
	EventReportSent,
	EventRequestDeleted,
}

// String implements fmt.Stringer.
func (e EventType) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EventType.
func (e EventType) IsValid() bool {
	for _, candidate := range validEventTypes {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEventType converts raw input into an EventType.
func ParseEventType(value string) (EventType, error) {
	for _, candidate := range validEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid event type %q", value)
}
