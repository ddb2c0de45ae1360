package training

import "testing"

// TestParseKindRoundTrip verifies every kind parses from its own code.
func TestParseKindRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.Code())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k.Code(), err)
		}
		if got != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.Code(), got, k)
		}
		if len(k.Fields()) != k.Arity() {
			t.Errorf("%v: %d fields, arity %d", k, len(k.Fields()), k.Arity())
		}
	}
}

// TestKindNames verifies the display names used in reports.
func TestKindNames(t *testing.T) {
	cases := []struct {
		kind Kind
		want string
	}{
		{Running, "Running"},
		{Walking, "SportsWalking"},
		{Swimming, "Swimming"},
		{Kind(0), "Kind(0)"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("%d.String() = %q, want %q", int(tc.kind), got, tc.want)
		}
	}
}
