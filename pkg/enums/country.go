package enums

import "fmt"

// Country enumerates the GCC markets the concierge operates in.
type Country string

const (
	CountryAE Country = "AE"
	CountrySA Country = "SA"
	CountryQA Country = "QA"
	CountryKW Country = "KW"
	CountryBH Country = "BH"
	CountryOM Country = "OM"
)

var validCountries = []Country{CountryAE, CountrySA, CountryQA, CountryKW, CountryBH, CountryOM}

// countryAliases maps the marketing names still sent by older clients.
var countryAliases = map[string]Country{
	"UAE":   CountryAE,
	"KSA":   CountrySA,
	"QATAR": CountryQA,
}

// String implements fmt.Stringer.
func (c Country) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Country.
func (c Country) IsValid() bool {
	for _, candidate := range validCountries {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCountry converts raw input (ISO code or legacy alias) into a Country.
func ParseCountry(value string) (Country, error) {
	for _, candidate := range validCountries {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	if alias, ok := countryAliases[value]; ok {
		return alias, nil
	}
	return "", fmt.Errorf("invalid country %q", value)
}
