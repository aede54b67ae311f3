// Package bulk collects per-row outcomes for batch imports. A batch never
// aborts on a bad row: each candidate is either accepted or rejected with a
// reason, and len(Accepted)+len(Rejected) always equals the batch length.
package bulk

// Reason classifies why a row was skipped
type Reason string

const (
	// ReasonInvalidData marks rows missing required fields or carrying
	// malformed values
	ReasonInvalidData Reason = "INVALID_DATA"
	// ReasonDuplicate marks rows whose key already exists, including
	// intra-batch duplicates caught by the conflict-tolerant write
	ReasonDuplicate Reason = "DUPLICATE"
	// ReasonError marks rows lost to an unexpected store failure
	ReasonError Reason = "ERROR"
)

// Rejected is a skipped row with its reason
type Rejected struct {
	Key    string `json:"key"`
	Reason Reason `json:"reason"`
}

// Result accumulates the accepted and rejected rows of one batch, in
// input order.
type Result struct {
	Accepted []string
	Rejected []Rejected
}

// NewResult creates an empty result with non-nil slices so JSON encodes
// empty arrays, not null
func NewResult() *Result {
	return &Result{
		Accepted: []string{},
		Rejected: []Rejected{},
	}
}

// Accept records a row as inserted
func (r *Result) Accept(key string) {
	r.Accepted = append(r.Accepted, key)
}

// Reject records a row as skipped with a reason
func (r *Result) Reject(key string, reason Reason) {
	r.Rejected = append(r.Rejected, Rejected{Key: key, Reason: reason})
}

// Len returns the total number of classified rows
func (r *Result) Len() int {
	return len(r.Accepted) + len(r.Rejected)
}
