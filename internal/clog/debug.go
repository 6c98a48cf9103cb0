package clog

import (
	"fmt"
	"strings"
)

// Category is one bit of the debug bitmask. Categories are independent:
// any subset may be enabled at once.
type Category uint32

const (
	// DebugGeneral is toggled by a bare "debug zrpc".
	DebugGeneral Category = 1 << iota
	DebugNotification
	DebugNetwork
	DebugCache
)

// debugCommand is the vty command that enables a category.
const debugCommand = "debug zrpc"

// canonicalCategories is the order used when serializing the bitmask into
// configuration lines.
var canonicalCategories = []Category{
	DebugGeneral,
	DebugNotification,
	DebugNetwork,
	DebugCache,
}

// Categories returns every known category in canonical order.
func Categories() []Category {
	out := make([]Category, len(canonicalCategories))
	copy(out, canonicalCategories)
	return out
}

// Name returns the category keyword as typed on the vty. The general
// category has no keyword of its own on the command line but is named
// "general" in configuration files.
func (c Category) Name() string {
	switch c {
	case DebugGeneral:
		return "general"
	case DebugNotification:
		return "notification"
	case DebugNetwork:
		return "network"
	case DebugCache:
		return "cache"
	default:
		return fmt.Sprintf("category(%#x)", uint32(c))
	}
}

// Command returns the minimal vty command that enables c.
func (c Category) Command() string {
	if c == DebugGeneral {
		return debugCommand
	}
	return debugCommand + " " + c.Name()
}

// ParseCategory maps a keyword to its category. The empty string and
// "general" both select DebugGeneral.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(name) {
	case "", "general":
		return DebugGeneral, nil
	case "notification":
		return DebugNotification, nil
	case "network":
		return DebugNetwork, nil
	case "cache":
		return DebugCache, nil
	default:
		return 0, fmt.Errorf("unknown debug category %q", name)
	}
}

// DebugFlags is the debug category bitmask. The zero value has no
// category enabled.
type DebugFlags struct {
	mask uint32
}

// DefaultDebugFlags returns the startup state: general and notification
// debugging are on, everything else is off.
func DefaultDebugFlags() DebugFlags {
	return NewDebugFlags(DebugGeneral, DebugNotification)
}

// NewDebugFlags returns a bitmask with exactly the given categories set.
func NewDebugFlags(cats ...Category) DebugFlags {
	var f DebugFlags
	for _, c := range cats {
		f.Enable(c)
	}
	return f
}

// Enable sets the bit for c.
func (f *DebugFlags) Enable(c Category) {
	f.mask |= uint32(c)
}

// Disable clears the bit for c.
func (f *DebugFlags) Disable(c Category) {
	f.mask &^= uint32(c)
}

// Reset clears every category.
func (f *DebugFlags) Reset() {
	f.mask = 0
}

// IsSet reports whether c is enabled.
func (f DebugFlags) IsSet(c Category) bool {
	return f.mask&uint32(c) != 0
}

// Mask returns the raw bitmask.
func (f DebugFlags) Mask() uint32 {
	return f.mask
}

// Enabled returns the enabled categories in canonical order.
func (f DebugFlags) Enabled() []Category {
	var out []Category
	for _, c := range canonicalCategories {
		if f.IsSet(c) {
			out = append(out, c)
		}
	}
	return out
}

// Serialize returns one vty command per enabled category, in canonical
// order. Replaying the lines against a cleared bitmask reproduces f.
func (f DebugFlags) Serialize() []string {
	var lines []string
	for _, c := range f.Enabled() {
		lines = append(lines, c.Command())
	}
	return lines
}
