// Package dialcode resolves countries by ISO code and by the longest
// dialing-code prefix of an international phone number.
package dialcode

import (
	"strings"
	"sync"

	"github.com/hightemp/dialcc/internal/countries"
)

// DefaultMaxDialingCodeLength is the scan width used before any code is registered.
const DefaultMaxDialingCodeLength = 5

// Match is the result of a dialing-prefix lookup.
type Match struct {
	Country countries.Country
	// Code is the registered dialing code that matched.
	Code string
}

// Engine holds the ISO and dialing-code indices built over a catalog.
// It is immutable after NewEngine and safe for concurrent use.
type Engine struct {
	isoIndex     map[string]countries.Country
	dialingIndex map[string]countries.Country
	maxCodeLen   int
}

// NewEngine builds both indices over list. Later entries win on duplicate keys.
func NewEngine(list []countries.Country) *Engine {
	dialing, maxLen := buildDialingIndex(list)
	return &Engine{
		isoIndex:     buildIsoIndex(list),
		dialingIndex: dialing,
		maxCodeLen:   maxLen,
	}
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return NewEngine(countries.All())
})

// Default returns the process-wide engine over the embedded catalog.
func Default() *Engine {
	return defaultEngine()
}

func buildIsoIndex(list []countries.Country) map[string]countries.Country {
	idx := make(map[string]countries.Country, len(list))
	for _, c := range list {
		c = c.Clone()
		c.ISOCode = strings.ToUpper(c.ISOCode)
		idx[c.ISOCode] = c
	}
	return idx
}

func buildDialingIndex(list []countries.Country) (map[string]countries.Country, int) {
	idx := make(map[string]countries.Country)
	maxLen := DefaultMaxDialingCodeLength
	for _, c := range list {
		c = c.Clone()
		for _, code := range c.DialingCodes {
			idx[code] = c
			if len(code) > maxLen {
				maxLen = len(code)
			}
		}
	}
	return idx, maxLen
}

// MaxDialingCodeLength returns the longest dialing code in the catalog,
// never less than DefaultMaxDialingCodeLength.
func (e *Engine) MaxDialingCodeLength() int {
	return e.maxCodeLen
}

// LookupByISOCode returns the country with the given ISO code, compared
// case-insensitively.
func (e *Engine) LookupByISOCode(code string) (countries.Country, bool) {
	c, ok := e.isoIndex[strings.ToUpper(code)]
	if !ok {
		return countries.Country{}, false
	}
	return c.Clone(), true
}

// DialingCodesForISOCode returns the dialing codes of the country with the
// given ISO code, or nil if code is nil or unknown.
func (e *Engine) DialingCodesForISOCode(code *string) []string {
	if code == nil {
		return nil
	}
	c, ok := e.LookupByISOCode(*code)
	if !ok {
		return nil
	}
	return c.DialingCodes
}

// LookupByDialingPrefix returns the country owning the longest dialing code
// that prefixes number. number must be in international format ("+46...");
// anything else is not found.
func (e *Engine) LookupByDialingPrefix(number string) (countries.Country, bool) {
	m, ok := e.FindDialingPrefix(number)
	return m.Country, ok
}

// FindDialingPrefix is LookupByDialingPrefix that also reports the matched code.
func (e *Engine) FindDialingPrefix(number string) (Match, bool) {
	trimmed := trimInternationalPrefix(number)
	if len(trimmed) == len(number) {
		return Match{}, false
	}
	return e.matchLongestPrefix(trimmed)
}

// IsInternational reports whether number carries an international prefix
// that the dialing-prefix lookup would strip.
func IsInternational(number string) bool {
	return len(trimInternationalPrefix(number)) != len(number)
}

// MatchLongestPrefix matches digits against the dialing index without
// requiring an international prefix.
func (e *Engine) MatchLongestPrefix(digits string) (Match, bool) {
	return e.matchLongestPrefix(digits)
}

func (e *Engine) matchLongestPrefix(digits string) (Match, bool) {
	for i := min(e.maxCodeLen, len(digits)); i > 0; i-- {
		if c, ok := e.dialingIndex[digits[:i]]; ok {
			return Match{Country: c.Clone(), Code: digits[:i]}, true
		}
	}
	return Match{}, false
}

// trimInternationalPrefix strips a single leading '+'.
func trimInternationalPrefix(number string) string {
	return strings.TrimPrefix(number, "+")
}
