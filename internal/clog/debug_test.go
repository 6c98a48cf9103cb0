package clog

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestDefaultDebugFlags(t *testing.T) {
	f := DefaultDebugFlags()

	if !f.IsSet(DebugGeneral) {
		t.Error("general debugging should be on by default")
	}
	if !f.IsSet(DebugNotification) {
		t.Error("notification debugging should be on by default")
	}
	if f.IsSet(DebugNetwork) || f.IsSet(DebugCache) {
		t.Errorf("network and cache debugging should be off by default, mask = %#x", f.Mask())
	}
}

func TestDebugFlags_EnableDisableIdempotent(t *testing.T) {
	var f DebugFlags

	f.Enable(DebugCache)
	f.Enable(DebugCache)
	if !f.IsSet(DebugCache) {
		t.Fatal("cache should be set after Enable")
	}
	if f.Mask() != uint32(DebugCache) {
		t.Errorf("Mask() = %#x, want %#x", f.Mask(), uint32(DebugCache))
	}

	f.Disable(DebugCache)
	f.Disable(DebugCache)
	if f.IsSet(DebugCache) {
		t.Error("cache should be clear after Disable")
	}
	if f.Mask() != 0 {
		t.Errorf("Mask() = %#x, want 0", f.Mask())
	}
}

func TestDebugFlags_Reset(t *testing.T) {
	f := NewDebugFlags(Categories()...)
	f.Reset()
	if f.Mask() != 0 {
		t.Errorf("Mask() after Reset = %#x, want 0", f.Mask())
	}
}

func TestDebugFlags_Serialize(t *testing.T) {
	tests := []struct {
		name string
		cats []Category
		want []string
	}{
		{"none", nil, nil},
		{"default", []Category{DebugGeneral, DebugNotification}, []string{"debug zrpc", "debug zrpc notification"}},
		{"canonical order", []Category{DebugCache, DebugNetwork, DebugGeneral}, []string{"debug zrpc", "debug zrpc network", "debug zrpc cache"}},
		{"all", Categories(), []string{"debug zrpc", "debug zrpc notification", "debug zrpc network", "debug zrpc cache"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDebugFlags(tt.cats...).Serialize()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Serialize() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestDebugFlags_SerializeMatchesLastOperation runs random enable/disable
// sequences and checks that Serialize reports exactly the categories whose
// last operation was an enable.
func TestDebugFlags_SerializeMatchesLastOperation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cats := Categories()

	for run := 0; run < 200; run++ {
		var f DebugFlags
		last := make(map[Category]bool)
		ops := rng.Intn(20)
		for op := 0; op < ops; op++ {
			c := cats[rng.Intn(len(cats))]
			if rng.Intn(2) == 0 {
				f.Enable(c)
				last[c] = true
			} else {
				f.Disable(c)
				last[c] = false
			}
		}

		var want []string
		for _, c := range cats {
			if last[c] {
				want = append(want, c.Command())
			}
		}
		if got := f.Serialize(); !reflect.DeepEqual(got, want) {
			t.Fatalf("run %d: Serialize() = %q, want %q", run, got, want)
		}

		// Replaying the lines onto a cleared set reproduces the mask.
		var replay DebugFlags
		for _, line := range f.Serialize() {
			name := ""
			if len(line) > len(debugCommand) {
				name = line[len(debugCommand)+1:]
			}
			c, err := ParseCategory(name)
			if err != nil {
				t.Fatalf("ParseCategory(%q) error = %v", name, err)
			}
			replay.Enable(c)
		}
		if replay.Mask() != f.Mask() {
			t.Fatalf("run %d: replayed mask = %#x, want %#x", run, replay.Mask(), f.Mask())
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{"", DebugGeneral, false},
		{"general", DebugGeneral, false},
		{"notification", DebugNotification, false},
		{"network", DebugNetwork, false},
		{"cache", DebugCache, false},
		{"Cache", DebugCache, false},
		{"bogus", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCategory_Command(t *testing.T) {
	if got := DebugGeneral.Command(); got != "debug zrpc" {
		t.Errorf("DebugGeneral.Command() = %q, want %q", got, "debug zrpc")
	}
	if got := DebugNetwork.Command(); got != "debug zrpc network" {
		t.Errorf("DebugNetwork.Command() = %q, want %q", got, "debug zrpc network")
	}
}
