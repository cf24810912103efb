package world

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/omnirun/omnirun/assets"
)

// Ability is the cosmetic power tag of an alien form.
type Ability string

const (
	AbilityFire     Ability = "fire"
	AbilitySpeed    Ability = "speed"
	AbilityCrystal  Ability = "crystal"
	AbilityStrength Ability = "strength"
	AbilityClaws    Ability = "claws"
	AbilityPhase    Ability = "phase"
)

var knownAbilities = map[Ability]bool{
	AbilityFire:     true,
	AbilitySpeed:    true,
	AbilityCrystal:  true,
	AbilityStrength: true,
	AbilityClaws:    true,
	AbilityPhase:    true,
}

// RosterDef is the JSON-serializable definition of the alien roster.
type RosterDef struct {
	Name  string    `json:"name"`
	Forms []FormDef `json:"forms"`
}

// FormDef defines one alien form. UnlockAt is the cumulative coin total
// that unlocks it; zero means unlocked from the start.
type FormDef struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Ability  Ability `json:"ability"`
	UnlockAt int     `json:"unlock_at"`
}

// LoadRoster parses a RosterDef from JSON bytes.
func LoadRoster(data []byte) (*RosterDef, error) {
	var def RosterDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if err := def.validate(); err != nil {
		return nil, fmt.Errorf("roster %q: %w", def.Name, err)
	}
	return &def, nil
}

func (d *RosterDef) validate() error {
	if len(d.Forms) == 0 {
		return fmt.Errorf("no forms")
	}
	seen := make(map[string]bool, len(d.Forms))
	for i, f := range d.Forms {
		if f.ID == "" {
			return fmt.Errorf("form %d has no id", i)
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate form id %q", f.ID)
		}
		seen[f.ID] = true
		if !knownAbilities[f.Ability] {
			return fmt.Errorf("form %q: unknown ability %q", f.ID, f.Ability)
		}
		if !strings.HasPrefix(f.Color, "#") || len(f.Color) != 7 {
			return fmt.Errorf("form %q: color %q is not #rrggbb", f.ID, f.Color)
		}
		if f.UnlockAt < 0 {
			return fmt.Errorf("form %q: negative unlock threshold", f.ID)
		}
	}
	// The first form is the one every run starts in.
	if d.Forms[0].UnlockAt != 0 {
		return fmt.Errorf("first form %q must start unlocked", d.Forms[0].ID)
	}
	return nil
}

// DefaultRoster returns the embedded roster. The file is part of the
// binary, so a parse failure is a build defect and panics.
func DefaultRoster() *RosterDef {
	data, err := assets.Roster.ReadFile("roster/forms.json")
	if err != nil {
		panic(fmt.Sprintf("embedded roster: %v", err))
	}
	def, err := LoadRoster(data)
	if err != nil {
		panic(fmt.Sprintf("embedded roster: %v", err))
	}
	return def
}
