// Package audit checks a country catalog for consistency, both internally and
// against libphonenumber and CLDR region metadata.
package audit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/language"

	"github.com/hightemp/dialcc/internal/countries"
)

// Severity of a finding.
type Severity string

const (
	// SeverityError marks a catalog defect that changes lookup results.
	SeverityError Severity = "error"
	// SeverityWarning marks a disagreement with external metadata.
	SeverityWarning Severity = "warning"
)

// Finding is a single audit result.
type Finding struct {
	Severity Severity `json:"severity"`
	ISOCode  string   `json:"iso_code"`
	Code     string   `json:"code,omitempty"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	if f.Code != "" {
		return fmt.Sprintf("%s\t%s\t%s\t%s", f.Severity, f.ISOCode, f.Code, f.Message)
	}
	return fmt.Sprintf("%s\t%s\t-\t%s", f.Severity, f.ISOCode, f.Message)
}

// Check audits list in catalog order.
//
// Errors: duplicate ISO codes, dialing codes claimed by more than one
// country, and codes that are not all digits. Warnings: ISO codes CLDR does
// not know as a region, and countries whose libphonenumber calling code does
// not prefix any of their dialing codes.
func Check(list []countries.Country) []Finding {
	var findings []Finding
	seenISO := make(map[string]bool, len(list))
	owner := make(map[string]string)

	for _, c := range list {
		iso := strings.ToUpper(c.ISOCode)
		if seenISO[iso] {
			findings = append(findings, Finding{SeverityError, iso, "", "duplicate ISO code"})
		}
		seenISO[iso] = true

		for _, code := range c.DialingCodes {
			if !isDigits(code) {
				findings = append(findings, Finding{SeverityError, iso, code, "dialing code is not all digits"})
			}
			if prev, ok := owner[code]; ok && prev != iso {
				findings = append(findings, Finding{SeverityError, iso, code, "dialing code already owned by " + prev})
			}
			owner[code] = iso
		}

		if region, err := language.ParseRegion(iso); err != nil || !region.IsCountry() {
			findings = append(findings, Finding{SeverityWarning, iso, "", "not a CLDR country region"})
		}

		if f, ok := checkCallingCode(iso, c.DialingCodes); !ok {
			findings = append(findings, f)
		}
	}
	return findings
}

// HasErrors reports whether any finding is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

func checkCallingCode(iso string, codes []string) (Finding, bool) {
	cc := phonenumbers.GetCountryCodeForRegion(iso)
	if cc == 0 {
		// libphonenumber has no metadata for the region
		return Finding{}, true
	}
	want := strconv.Itoa(cc)
	for _, code := range codes {
		if strings.HasPrefix(code, want) {
			return Finding{}, true
		}
	}
	return Finding{
		Severity: SeverityWarning,
		ISOCode:  iso,
		Code:     strings.Join(codes, ","),
		Message:  "libphonenumber calling code is +" + want,
	}, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
