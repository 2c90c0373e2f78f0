// Package countries provides the ISO-3166 country catalog with international dialing codes.
package countries

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"
)

//go:embed dialing.txt
var dialingData string

// Country is a catalog record. A country may list several dialing codes when
// it shares a calling code with another country and is identified by a longer
// sub-range prefix.
type Country struct {
	ISOCode      string   `json:"iso_code"`
	Name         string   `json:"name"`
	DialingCodes []string `json:"dialing_codes"`
}

// catalog is immutable after init.
var catalog []Country

func init() {
	c, err := Parse(dialingData)
	if err != nil {
		panic(fmt.Sprintf("countries: embedded catalog: %v", err))
	}
	catalog = c
}

// Parse reads a catalog in the "ISO,code code...,Name" line format.
// Blank lines and lines starting with '#' are skipped. ISO codes are
// uppercased. The name may itself contain commas.
func Parse(content string) ([]Country, error) {
	var result []Country
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields, got %d", lineNo, len(parts))
		}
		code := strings.ToUpper(strings.TrimSpace(parts[0]))
		if len(code) != 2 {
			return nil, fmt.Errorf("line %d: invalid ISO code %q", lineNo, code)
		}
		dialingCodes := strings.Fields(parts[1])
		if len(dialingCodes) == 0 {
			return nil, fmt.Errorf("line %d: %s has no dialing codes", lineNo, code)
		}
		result = append(result, Country{
			ISOCode:      code,
			Name:         strings.TrimSpace(parts[2]),
			DialingCodes: dialingCodes,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan catalog: %w", err)
	}
	return result, nil
}

// All returns a copy of the catalog in file order.
func All() []Country {
	result := make([]Country, len(catalog))
	for i, c := range catalog {
		result[i] = c.Clone()
	}
	return result
}

// Count returns the number of countries.
func Count() int {
	return len(catalog)
}

// Clone returns a deep copy so callers cannot mutate catalog state.
func (c Country) Clone() Country {
	codes := make([]string, len(c.DialingCodes))
	copy(codes, c.DialingCodes)
	c.DialingCodes = codes
	return c
}
