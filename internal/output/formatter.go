// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hightemp/dialcc/internal/countries"
)

// LookupResult contains the result of a single lookup.
type LookupResult struct {
	Query        string   `json:"query"`
	CountryCode  string   `json:"country_code"`
	CountryName  string   `json:"country_name"`
	MatchedCode  string   `json:"matched_code,omitempty"`
	DialingCodes []string `json:"dialing_codes"`
	Error        string   `json:"error,omitempty"`
}

// NewResult fills a result from a matched country.
func NewResult(query string, c countries.Country, matched string) *LookupResult {
	return &LookupResult{
		Query:        query,
		CountryCode:  c.ISOCode,
		CountryName:  c.Name,
		MatchedCode:  matched,
		DialingCodes: c.DialingCodes,
	}
}

// FormatText formats result as tab-separated text.
func (r *LookupResult) FormatText() string {
	if r.Error != "" {
		return fmt.Sprintf("%s\t-\t-\t-\tERROR: %s", r.Query, r.Error)
	}

	matched := r.MatchedCode
	if matched == "" {
		matched = strings.Join(r.DialingCodes, ",")
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s",
		r.Query,
		r.CountryCode,
		r.CountryName,
		matched,
	)
}

// FormatJSON formats result as JSON.
func (r *LookupResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*LookupResult
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	results := b.Results
	if results == nil {
		results = []*LookupResult{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatCountry formats a catalog entry as "ISO\tName\tcode,code".
func FormatCountry(c countries.Country) string {
	return fmt.Sprintf("%s\t%s\t%s", c.ISOCode, c.Name, strings.Join(c.DialingCodes, ","))
}
