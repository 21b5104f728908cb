package canonical

import "testing"

func TestName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Maria Garcia", "maria garcia"},
		{"  Project Alpha.  ", "project alpha"},
		{"\"QuantumLeap\"", "quantumleap"},
		{"(Global Motors)!", "global motors"},
		{"$100M-Deal$", "100m-deal"},
		{"neo4j", "neo4j"},
		{"", ""},
		{"St. John's", "st. john's"},
	}

	for _, tc := range cases {
		if got := Name(tc.in); got != tc.want {
			t.Errorf("Name(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNameIdempotent(t *testing.T) {
	inputs := []string{
		"Maria Garcia",
		"...Project Alpha...",
		"MIXED case WITH   spaces",
		"-- dashed --",
		"unicode: café, naïve",
	}
	for _, in := range inputs {
		once := Name(in)
		if twice := Name(once); twice != once {
			t.Errorf("Name not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNamePurePunctuationIsEmpty(t *testing.T) {
	for _, in := range []string{"...", "  ", "?!", "---", "\t\n", "$%^&*", ""} {
		if got := Name(in); got != "" {
			t.Errorf("Name(%q) = %q, want empty", in, got)
		}
	}
}

func TestValidLabel(t *testing.T) {
	for _, label := range []string{"Person", "Organization", "Project", "Product", "Technology", "Concept", "Material", "Platform"} {
		if !ValidLabel(label) {
			t.Errorf("expected %q to be a valid label", label)
		}
	}
	for _, label := range []string{"person", "PERSON", "Animal", "", "Person`) DETACH DELETE n //"} {
		if ValidLabel(label) {
			t.Errorf("expected %q to be rejected", label)
		}
	}
}

func TestValidRelationshipType(t *testing.T) {
	valid := []string{"LEADS", "IS_CEO_OF", "COLLABORATES_ON", "ACQUIRED_IN_2024"}
	for _, rt := range valid {
		if !ValidRelationshipType(rt) {
			t.Errorf("expected %q to be valid", rt)
		}
	}
	invalid := []string{"", "leads", "HAS SPACE", "IS-CEO", "1ST", "_LEADS", "LEADS]->(m) DETACH DELETE"}
	for _, rt := range invalid {
		if ValidRelationshipType(rt) {
			t.Errorf("expected %q to be rejected", rt)
		}
	}
}
