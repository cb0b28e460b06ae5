package cleaner

import (
	"maps"
	"strings"
)

// Corrections maps misspelled department tokens to their corrected form.
// Keys are matched exactly and case-sensitively.
type Corrections map[string]string

// DefaultCorrections returns the known misspellings of the fleet export
func DefaultCorrections() Corrections {
	return Corrections{
		"Enviromnental":  "Environmental",
		"Rehabilltation": "Rehabilitation",
		"Servcies":       "Services",
	}
}

// With returns a copy of c extended (or overridden) by extra
func (c Corrections) With(extra map[string]string) Corrections {
	out := make(Corrections, len(c)+len(extra))
	maps.Copy(out, c)
	maps.Copy(out, extra)
	return out
}

// Apply corrects every space-separated token of department that matches a
// key exactly. Unknown tokens and the original spacing are left untouched.
func (c Corrections) Apply(department string) string {
	if len(c) == 0 {
		return department
	}

	if fixed, ok := c[department]; ok {
		return fixed
	}

	tokens := strings.Split(department, " ")
	changed := false
	for i, tok := range tokens {
		if fixed, ok := c[tok]; ok {
			tokens[i] = fixed
			changed = true
		}
	}

	if !changed {
		return department
	}
	return strings.Join(tokens, " ")
}
