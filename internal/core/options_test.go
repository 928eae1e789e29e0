package core

import "testing"

func TestMatchOption_TierOrdering(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string // expected canonical value, "" for nil
	}{
		{"canonical value", "🅿️ Parking", "🅿️ Parking"},
		{"plain label", "Parking", "🅿️ Parking"},
		{"lowercase label", "parking", "🅿️ Parking"},
		{"composite without variation selector", "🅿 Parking", "🅿️ Parking"},
		{"nbsp instead of space", "🅿️\u00a0Parking", "🅿️ Parking"},
		{"doubled spaces", "🅿️  Parking", "🅿️ Parking"},
		{"unknown", "Taxi", ""},
		{"empty", "", ""},
		{"blank", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MatchCategory(tc.raw)
			if tc.want == "" {
				if got != nil {
					t.Fatalf("MatchCategory(%q) = %+v, want nil", tc.raw, got)
				}
				return
			}
			if got == nil {
				t.Fatalf("MatchCategory(%q) = nil, want %q", tc.raw, tc.want)
			}
			if got.Value != tc.want {
				t.Errorf("MatchCategory(%q).Value = %q, want %q", tc.raw, got.Value, tc.want)
			}
		})
	}
}

func TestMatchOption_Idempotent(t *testing.T) {
	// Resolving an option's own canonical value must return that option,
	// so a write-back never drifts across repeated edit cycles.
	for _, opt := range Categories {
		got := MatchCategory(opt.Value)
		if got == nil || got.Value != opt.Value {
			t.Errorf("MatchCategory(%q) did not round-trip: %+v", opt.Value, got)
		}
	}
	for _, opt := range Types {
		got := MatchType(opt.Value)
		if got == nil || got.Value != opt.Value {
			t.Errorf("MatchType(%q) did not round-trip: %+v", opt.Value, got)
		}
	}
}

func TestMatchType_Labels(t *testing.T) {
	got := MatchType("abonnement")
	if got == nil || got.Value != "🔁 Abonnement" {
		t.Fatalf("MatchType(abonnement) = %+v", got)
	}
	if MatchType("Mensualité") != nil {
		t.Error("expected nil for label outside the type set")
	}
}

func TestCategories_UniqueValues(t *testing.T) {
	seen := map[string]bool{}
	for _, opt := range Categories {
		if seen[opt.Value] {
			t.Errorf("duplicate canonical value %q", opt.Value)
		}
		seen[opt.Value] = true
	}
}
