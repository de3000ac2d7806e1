package enums

import (
	"fmt"
	"strings"
)

// ReportLanguage selects the localization of a generated report.
type ReportLanguage string

const (
	ReportLanguageEN ReportLanguage = "en"
	ReportLanguageAR ReportLanguage = "ar"
)

var validReportLanguages = []ReportLanguage{ReportLanguageEN, ReportLanguageAR}

// String implements fmt.Stringer.
func (r ReportLanguage) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReportLanguage.
func (r ReportLanguage) IsValid() bool {
	for _, candidate := range validReportLanguages {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReportLanguage converts raw input into a ReportLanguage, case-insensitively.
func ParseReportLanguage(value string) (ReportLanguage, error) {
	lowered := strings.ToLower(value)
	for _, candidate := range validReportLanguages {
		if string(candidate) == lowered {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report language %q", value)
}
