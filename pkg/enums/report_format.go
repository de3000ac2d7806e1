package enums

import (
	"fmt"
	"strings"
)

// ReportFormat selects how a delivered report is rendered.
type ReportFormat string

const (
	ReportFormatHTML ReportFormat = "html"
	ReportFormatPDF  ReportFormat = "pdf"
)

var validReportFormats = []ReportFormat{ReportFormatHTML, ReportFormatPDF}

// String implements fmt.Stringer.
func (r ReportFormat) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReportFormat.
func (r ReportFormat) IsValid() bool {
	for _, candidate := range validReportFormats {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReportFormat converts raw input into a ReportFormat, case-insensitively.
func ParseReportFormat(value string) (ReportFormat, error) {
	lowered := strings.ToLower(value)
	for _, candidate := range validReportFormats {
		if string(candidate) == lowered {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report format %q", value)
}
