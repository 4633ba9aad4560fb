package analyze

// Category names one report bucket. The set is fixed; declaration order is
// evaluation order and the JSON key order of Report.
type Category string

const (
	CategoryErrors         Category = "errors"
	CategoryContrastErrors Category = "contrast_errors"
	CategoryAlerts         Category = "alerts"
	CategoryFeatures       Category = "features"
	CategoryStructural     Category = "structural"
	CategoryElements       Category = "elements"
	CategoryAria           Category = "aria"
)

// Issue is one finding for one element. Immutable once constructed; owned by
// the report it is appended into. HasLabel is set only by the label pass.
type Issue struct {
	Element     string   `json:"element"`
	Suggestions []string `json:"suggestions"`
	Snippet     string   `json:"snippet"`
	Context     string   `json:"context"`
	HasLabel    *bool    `json:"hasLabel,omitempty"`
}

// Report buckets issues by category. A fixed struct rather than a map so the
// serialized key order is stable and matches evaluation order.
type Report struct {
	Errors         []Issue `json:"errors"`
	ContrastErrors []Issue `json:"contrast_errors"`
	Alerts         []Issue `json:"alerts"`
	Features       []Issue `json:"features"`
	Structural     []Issue `json:"structural"`
	Elements       []Issue `json:"elements"`
	Aria           []Issue `json:"aria"`
}

// NewReport returns a Report whose buckets serialize as empty arrays rather
// than null.
func NewReport() *Report {
	return &Report{
		Errors:         []Issue{},
		ContrastErrors: []Issue{},
		Alerts:         []Issue{},
		Features:       []Issue{},
		Structural:     []Issue{},
		Elements:       []Issue{},
		Aria:           []Issue{},
	}
}

func (r *Report) add(cat Category, issue Issue) {
	switch cat {
	case CategoryErrors:
		r.Errors = append(r.Errors, issue)
	case CategoryContrastErrors:
		r.ContrastErrors = append(r.ContrastErrors, issue)
	case CategoryAlerts:
		r.Alerts = append(r.Alerts, issue)
	case CategoryFeatures:
		r.Features = append(r.Features, issue)
	case CategoryStructural:
		r.Structural = append(r.Structural, issue)
	case CategoryElements:
		r.Elements = append(r.Elements, issue)
	case CategoryAria:
		r.Aria = append(r.Aria, issue)
	}
}

// merge appends all of other's buckets, preserving order.
func (r *Report) merge(other *Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.ContrastErrors = append(r.ContrastErrors, other.ContrastErrors...)
	r.Alerts = append(r.Alerts, other.Alerts...)
	r.Features = append(r.Features, other.Features...)
	r.Structural = append(r.Structural, other.Structural...)
	r.Elements = append(r.Elements, other.Elements...)
	r.Aria = append(r.Aria, other.Aria...)
}

// Category returns the bucket for cat. Used by renderers iterating
// Categories() in order.
func (r *Report) Category(cat Category) []Issue {
	switch cat {
	case CategoryErrors:
		return r.Errors
	case CategoryContrastErrors:
		return r.ContrastErrors
	case CategoryAlerts:
		return r.Alerts
	case CategoryFeatures:
		return r.Features
	case CategoryStructural:
		return r.Structural
	case CategoryElements:
		return r.Elements
	case CategoryAria:
		return r.Aria
	}
	return nil
}

// Categories returns all category names in evaluation order.
func Categories() []Category {
	return []Category{
		CategoryErrors,
		CategoryContrastErrors,
		CategoryAlerts,
		CategoryFeatures,
		CategoryStructural,
		CategoryElements,
		CategoryAria,
	}
}

// Summary counts records per category. Always recomputed from the Report it
// summarizes, never stored.
type Summary struct {
	Errors         int `json:"errors"`
	ContrastErrors int `json:"contrast_errors"`
	Alerts         int `json:"alerts"`
	Features       int `json:"features"`
	Structural     int `json:"structural"`
	Elements       int `json:"elements"`
	Aria           int `json:"aria"`
}

// Summary recomputes the per-category counts.
func (r *Report) Summary() Summary {
	return Summary{
		Errors:         len(r.Errors),
		ContrastErrors: len(r.ContrastErrors),
		Alerts:         len(r.Alerts),
		Features:       len(r.Features),
		Structural:     len(r.Structural),
		Elements:       len(r.Elements),
		Aria:           len(r.Aria),
	}
}

// Total returns the number of issues across all categories.
func (s Summary) Total() int {
	return s.Errors + s.ContrastErrors + s.Alerts + s.Features + s.Structural + s.Elements + s.Aria
}
