package binding

import (
	"fmt"

	"github.com/jonathan/cv-online/internal/types"
)

// Outcome is the result of a single binding step
type Outcome int

const (
	// Applied means the field was written to the document
	Applied Outcome = iota
	// SkippedMissingField means the record did not supply a value
	SkippedMissingField
	// SkippedMissingTarget means the document has no node for the value
	SkippedMissingTarget
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case SkippedMissingField:
		return "skipped_missing_field"
	case SkippedMissingTarget:
		return "skipped_missing_target"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText encodes the outcome by name so reports read well as JSON.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Step records the outcome for one record path, e.g. "experience.items[1].role".
type Step struct {
	Field   string  `json:"field"`
	Outcome Outcome `json:"outcome"`
}

// Report collects the outcomes of one binding pass in binding order
type Report struct {
	Language types.Language `json:"language"`
	Steps    []Step         `json:"steps"`
}

func (r *Report) add(field string, outcome Outcome) {
	r.Steps = append(r.Steps, Step{Field: field, Outcome: outcome})
}

// Count returns how many steps ended with outcome.
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, step := range r.Steps {
		if step.Outcome == outcome {
			n++
		}
	}
	return n
}

// Lookup returns the outcome of the first step recorded for field.
func (r *Report) Lookup(field string) (Outcome, bool) {
	for _, step := range r.Steps {
		if step.Field == field {
			return step.Outcome, true
		}
	}
	return 0, false
}

// Fields returns the fields that ended with outcome, in binding order.
func (r *Report) Fields(outcome Outcome) []string {
	var fields []string
	for _, step := range r.Steps {
		if step.Outcome == outcome {
			fields = append(fields, step.Field)
		}
	}
	return fields
}
