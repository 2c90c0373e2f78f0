package countries

import (
	"strings"
	"testing"
)

func TestEmbeddedCatalog(t *testing.T) {
	all := All()

	if len(all) < 200 {
		t.Errorf("Expected at least 200 countries, got %d", len(all))
	}
	if len(all) != Count() {
		t.Errorf("All() count %d != Count() %d", len(all), Count())
	}

	for _, c := range all {
		if c.ISOCode != strings.ToUpper(c.ISOCode) || len(c.ISOCode) != 2 {
			t.Errorf("Country %q has non-canonical ISO code", c.ISOCode)
		}
		if len(c.DialingCodes) == 0 {
			t.Errorf("Country %s has no dialing codes", c.ISOCode)
		}
		if c.Name == "" {
			t.Errorf("Country %s has no name", c.ISOCode)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].DialingCodes[0] = "mutated"
	first[0].ISOCode = "ZZ"

	second := All()
	if second[0].DialingCodes[0] == "mutated" || second[0].ISOCode == "ZZ" {
		t.Error("All() exposed catalog state to the caller")
	}
}

func TestParse(t *testing.T) {
	content := `# Comment line
se,46,Sweden

US,1 699,United States
KR,82,Korea, Republic of
`
	got, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 countries, got %d", len(got))
	}
	if got[0].ISOCode != "SE" {
		t.Errorf("ISO code not uppercased: %q", got[0].ISOCode)
	}
	if len(got[1].DialingCodes) != 2 || got[1].DialingCodes[0] != "1" || got[1].DialingCodes[1] != "699" {
		t.Errorf("US dialing codes = %v", got[1].DialingCodes)
	}
	if got[2].Name != "Korea, Republic of" {
		t.Errorf("Name with comma = %q", got[2].Name)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing fields", "SE,46\n"},
		{"bad iso", "SWE,46,Sweden\n"},
		{"no codes", "SE, ,Sweden\n"},
	}

	for _, tc := range tests {
		if _, err := Parse(tc.content); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected 0 countries, got %d", len(got))
	}
}

func TestOmittedTerritoriesAreDocumented(t *testing.T) {
	var omitted []string
	for _, line := range strings.Split(dialingData, "\n") {
		if rest, ok := strings.CutPrefix(line, "# Omitted:"); ok {
			omitted = strings.Fields(rest)
		}
	}
	if len(omitted) == 0 {
		t.Fatal("catalog header does not list omitted territories")
	}

	listed := make(map[string]bool)
	for _, c := range All() {
		listed[c.ISOCode] = true
	}
	for _, code := range omitted {
		if listed[code] {
			t.Errorf("%s is listed as omitted but present in the catalog", code)
		}
	}
}
