package game

import "github.com/omnirun/omnirun/internal/world"

// AlienForm is one playable form and its unlock state.
type AlienForm struct {
	ID       string
	Name     string
	Color    string // #rrggbb
	Ability  world.Ability
	UnlockAt int // coin total; 0 = unlocked from the start
	Unlocked bool
}

// Roster is the ordered set of forms for one run.
type Roster struct {
	forms []AlienForm
}

// NewRoster builds a fresh roster from its definition. Only forms with a
// zero threshold start unlocked.
func NewRoster(def *world.RosterDef) *Roster {
	forms := make([]AlienForm, len(def.Forms))
	for i, f := range def.Forms {
		forms[i] = AlienForm{
			ID:       f.ID,
			Name:     f.Name,
			Color:    f.Color,
			Ability:  f.Ability,
			UnlockAt: f.UnlockAt,
			Unlocked: f.UnlockAt == 0,
		}
	}
	return &Roster{forms: forms}
}

// Len returns the number of forms.
func (r *Roster) Len() int { return len(r.forms) }

// Form returns the form at index i.
func (r *Roster) Form(i int) AlienForm { return r.forms[i] }

// Index returns the index of the form with the given id, or -1.
func (r *Roster) Index(id string) int {
	for i, f := range r.forms {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// Forms returns a copy of all forms in roster order.
func (r *Roster) Forms() []AlienForm {
	out := make([]AlienForm, len(r.forms))
	copy(out, r.forms)
	return out
}

// UnlockedCount returns how many forms are unlocked.
func (r *Roster) UnlockedCount() int {
	n := 0
	for _, f := range r.forms {
		if f.Unlocked {
			n++
		}
	}
	return n
}

// Next returns the first unlocked form after current, wrapping around.
// ok is false when no other form is unlocked.
func (r *Roster) Next(current int) (next int, ok bool) {
	n := len(r.forms)
	for step := 1; step < n; step++ {
		i := (current + step) % n
		if r.forms[i].Unlocked {
			return i, true
		}
	}
	return current, false
}

// CheckUnlocks unlocks every locked form whose threshold has been reached
// and returns the forms that flipped. Already unlocked forms never flip
// again.
func (r *Roster) CheckUnlocks(coins int) []AlienForm {
	var flipped []AlienForm
	for i := range r.forms {
		f := &r.forms[i]
		if f.Unlocked || f.UnlockAt <= 0 || coins < f.UnlockAt {
			continue
		}
		f.Unlocked = true
		flipped = append(flipped, *f)
	}
	return flipped
}
