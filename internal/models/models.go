package models

// PaperInput is one harvested publication record. Title and abstract may be
// empty; classification treats that as a degenerate but valid input.
type PaperInput struct {
	Title     string `json:"title"`
	Abstract  string `json:"abstract"`
	Year      int    `json:"year,omitempty"`
	Citations int    `json:"citations,omitempty"`
}

type FieldAssignment struct {
	Code       string  `json:"code"`
	Name       string  `json:"name,omitempty"`
	Percentage float64 `json:"percentage"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the classification outcome for one paper. Fields always has the
// configured length, even on error.
type Result struct {
	Title       string            `json:"title"`
	Abstract    string            `json:"abstract,omitempty"`
	Fields      []FieldAssignment `json:"fields"`
	Status      string            `json:"status"`
	ErrorDetail string            `json:"error_detail,omitempty"`
	Cached      bool              `json:"cached,omitempty"`
	Provider    string            `json:"provider,omitempty"`
	Model       string            `json:"model,omitempty"`
}

func (r Result) Success() bool {
	return r.Status == StatusSuccess
}

// CloneFields returns an independent copy so cache entries and caller-owned
// results cannot alias each other.
func CloneFields(fields []FieldAssignment) []FieldAssignment {
	if fields == nil {
		return nil
	}
	out := make([]FieldAssignment, len(fields))
	copy(out, fields)
	return out
}
