package model

import (
	"fmt"
	"strings"
)

// Schematic is a code artifact kind the generator tool knows how to emit.
// Label is what the user sees, Value is what the tool receives.
type Schematic struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var (
	SchematicClass          = Schematic{Label: "Class", Value: "class"}
	SchematicInterface      = Schematic{Label: "Interface", Value: "interface"}
	SchematicEnum           = Schematic{Label: "Enum", Value: "enum"}
	SchematicInterfaceClass = Schematic{Label: "Interface & Class", Value: "interfaceclass"}
)

// Schematics returns the supported schematics in display order.
// A fresh slice is returned on every call.
func Schematics() []Schematic {
	return []Schematic{
		SchematicClass,
		SchematicInterface,
		SchematicEnum,
		SchematicInterfaceClass,
	}
}

func (s Schematic) String() string {
	return s.Label
}

// Valid reports whether s is one of the supported schematics.
func (s Schematic) Valid() bool {
	for _, known := range Schematics() {
		if s == known {
			return true
		}
	}
	return false
}

// LookupSchematic finds a schematic by value or label, ignoring case and
// surrounding whitespace.
func LookupSchematic(name string) (Schematic, error) {
	name = strings.TrimSpace(name)
	for _, s := range Schematics() {
		if strings.EqualFold(name, s.Value) || strings.EqualFold(name, s.Label) {
			return s, nil
		}
	}
	return Schematic{}, ValidationError{
		Field:   "kind",
		Message: fmt.Sprintf("unknown schematic %q (expected one of %s)", name, strings.Join(SchematicValues(), ", ")),
	}
}

// SchematicValues returns the tool-facing values of all schematics.
func SchematicValues() []string {
	values := make([]string, 0, 4)
	for _, s := range Schematics() {
		values = append(values, s.Value)
	}
	return values
}
