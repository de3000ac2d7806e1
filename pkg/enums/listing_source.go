package enums

import (
	"fmt"
	"strings"
)

// ListingSource identifies the marketplace a listing was scraped from.
type ListingSource string

const (
	ListingSourceDubizzle   ListingSource = "dubizzle"
	ListingSourceDubicars   ListingSource = "dubicars"
	ListingSourceYallamotor ListingSource = "yallamotor"
	ListingSourceCarswitch  ListingSource = "carswitch"
	ListingSourceOther      ListingSource = "other"
)

var validListingSources = []ListingSource{
	ListingSourceDubizzle,
	ListingSourceDubicars,
	ListingSourceYallamotor,
	ListingSourceCarswitch,
	ListingSourceOther,
}

// String implements fmt.Stringer.
func (l ListingSource) String() string {
	return string(l)
}

// IsValid reports whether the value is a known ListingSource.
func (l ListingSource) IsValid() bool {
	for _, candidate := range validListingSources {
		if candidate == l {
			return true
		}
	}
	return false
}

// ParseListingSource converts raw input into a ListingSource.
func ParseListingSource(value string) (ListingSource, error) {
	for _, candidate := range validListingSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid listing source %q", value)
}

// ListingSourceFromHost detects the marketplace from a URL host.
func ListingSourceFromHost(host string) ListingSource {
	host = strings.ToLower(host)
	switch {
	case strings.Contains(host, "dubizzle"):
		return ListingSourceDubizzle
	case strings.Contains(host, "dubicars"):
		return ListingSourceDubicars
	case strings.Contains(host, "yallamotor"):
		return ListingSourceYallamotor
	case strings.Contains(host, "carswitch"):
		return ListingSourceCarswitch
	default:
		return ListingSourceOther
	}
}
