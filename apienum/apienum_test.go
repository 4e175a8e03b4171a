// SPDX-License-Identifier: MIT

package apienum

import (
	"encoding/json"
	"testing"
)

type testBehavior string

func TestConventions(t *testing.T) {
	tests := []struct {
		name   string
		conv   Convention
		symbol string
		want   string
	}{
		{"identity simple", Identity, "LaunchRequest", "LaunchRequest"},
		{"identity empty", Identity, "", ""},
		{"lower camel", LowerCamel, "PlainText", "plainText"},
		{"lower camel single", LowerCamel, "X", "x"},
		{"lower camel empty", LowerCamel, "", ""},
		{"upper snake two words", UpperSnake, "ReplaceAll", "REPLACE_ALL"},
		{"upper snake three words", UpperSnake, "ReplaceEnqueued", "REPLACE_ENQUEUED"},
		{"upper snake leading cap run", UpperSnake, "XSmall", "X_SMALL"},
		{"upper snake single word", UpperSnake, "Enqueue", "ENQUEUE"},
		{"upper snake empty", UpperSnake, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conv(tt.symbol); got != tt.want {
				t.Errorf("conv(%q) = %q, want %q", tt.symbol, got, tt.want)
			}
		})
	}
}

func TestDeclare_DerivedWireStrings(t *testing.T) {
	set := Declare[testBehavior](UpperSnake, "Enqueue", "ReplaceAll")

	if got := set.Value("ReplaceAll"); got != "REPLACE_ALL" {
		t.Errorf("Value(ReplaceAll) = %q, want REPLACE_ALL", got)
	}
	if !set.Known("ENQUEUE") {
		t.Error("ENQUEUE should be known")
	}
	if set.Known("Enqueue") {
		t.Error("symbol name must not be known when the convention rewrites it")
	}
}

func TestDeclareExplicit(t *testing.T) {
	set := DeclareExplicit[testBehavior](map[string]string{
		"English": "en",
		"French":  "fr",
	})

	if got := set.Value("English"); got != "en" {
		t.Errorf("Value(English) = %q, want en", got)
	}
	if name, ok := set.Symbol("fr"); !ok || name != "French" {
		t.Errorf("Symbol(fr) = %q, %v, want French, true", name, ok)
	}
	// Explicit tables enumerate in sorted symbol order.
	want := []testBehavior{"en", "fr"}
	got := set.Values()
	if len(got) != len(want) {
		t.Fatalf("Values() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecode_IsTotal(t *testing.T) {
	set := Declare[testBehavior](Identity, "Simple", "Standard")

	tests := []struct {
		name  string
		wire  string
		known bool
	}{
		{"known", "Simple", true},
		{"unknown", "FooBar", false},
		{"empty string", "", false},
		{"whitespace", "  ", false},
		{"near miss casing", "simple", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := set.Decode(tt.wire)
			if string(v) != tt.wire {
				t.Errorf("Decode(%q) = %q, decode must preserve the wire string", tt.wire, v)
			}
			if set.Known(v) != tt.known {
				t.Errorf("Known(%q) = %v, want %v", v, set.Known(v), tt.known)
			}
			if set.Encode(v) != tt.wire {
				t.Errorf("Encode(Decode(%q)) = %q, round trip must be lossless", tt.wire, set.Encode(v))
			}
		})
	}
}

func TestRoundTrip_AllKnownValues(t *testing.T) {
	set := Declare[testBehavior](UpperSnake, "Enqueue", "ReplaceAll", "ReplaceEnqueued")
	for _, v := range set.Values() {
		if got := set.Decode(set.Encode(v)); got != v {
			t.Errorf("Decode(Encode(%q)) = %q", v, got)
		}
	}
}

func TestDeclare_PanicsOnCollision(t *testing.T) {
	tests := []struct {
		name    string
		declare func()
	}{
		{"duplicate symbol", func() {
			Declare[testBehavior](Identity, "Simple", "Simple")
		}},
		{"colliding wire strings", func() {
			DeclareExplicit[testBehavior](map[string]string{"A": "x", "B": "x"})
		}},
		{"undeclared symbol lookup", func() {
			Declare[testBehavior](Identity, "Simple").Value("Standard")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.declare()
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	set := Declare[testBehavior](UpperSnake, "Enqueue", "ReplaceAll")

	known := set.Value("ReplaceAll")
	b, err := json.Marshal(known)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"REPLACE_ALL"` {
		t.Errorf("marshal = %s, want \"REPLACE_ALL\"", b)
	}

	var back testBehavior
	if err := json.Unmarshal([]byte(`"SOMETHING_NEW"`), &back); err != nil {
		t.Fatalf("unmarshal of unknown value must not fail: %v", err)
	}
	if back != "SOMETHING_NEW" || set.Known(back) {
		t.Errorf("unknown value %q must be carried through unmodified", back)
	}
}
