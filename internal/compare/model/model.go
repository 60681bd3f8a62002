package model

// Value is a spec figure after normalization. Known=false marks "unknown":
// the cell was absent or no number could be extracted from it.
type Value struct {
	Num   float64
	Known bool
}

// KnownValue wraps a parsed number. The zero Value is unknown.
func KnownValue(n float64) Value { return Value{Num: n, Known: true} }

// Ptr returns the number for JSON output, nil when unknown.
func (v Value) Ptr() *float64 {
	if !v.Known {
		return nil
	}
	n := v.Num
	return &n
}

// Record is one appliance row of a vendor table.
type Record struct {
	Model string            `json:"model"`
	Raw   map[string]string `json:"raw"`   // original cell text by column
	Specs map[string]Value  `json:"-"`     // normalized comparison fields
}

// Spec returns the normalized value for field. Fields never normalized
// (column absent, field outside the comparison set) come back unknown.
func (r Record) Spec(field string) Value {
	return r.Specs[field]
}

// Table is an ordered, immutable-after-load vendor spec table.
type Table struct {
	Vendor string
	Rows   []Record
}

// Reason says why a comparison produced no candidate.
type Reason string

const (
	ReasonEmptyCandidates  Reason = "empty-candidates"
	ReasonNoSurvivor       Reason = "no-survivor"
	ReasonNoRankedSurvivor Reason = "no-ranked-survivor"
	ReasonIDNotFound       Reason = "id-not-found"
)

// ReportRow is one line of the matching-score report. Source/Candidate are
// nil when the side is unknown; Ratio is "N/A" whenever it cannot be
// computed without dividing by zero or an unknown.
type ReportRow struct {
	Field     string   `json:"field"`
	Source    *float64 `json:"source"`
	Candidate *float64 `json:"candidate"`
	Ratio     string   `json:"ratio"`
}
