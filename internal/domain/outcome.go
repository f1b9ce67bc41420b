package domain

import "fmt"

// ErrorKind classifies a row-level failure.
type ErrorKind string

const (
	KindDateInvalid     ErrorKind = "date_invalid"
	KindTemplateMissing ErrorKind = "template_missing"
	KindAssetMissing    ErrorKind = "asset_missing"
	KindDocumentGen     ErrorKind = "document_gen"
	KindSend            ErrorKind = "send"
	KindUnexpected      ErrorKind = "unexpected"
)

// RowError is a per-row failure tagged with the pass number. Row errors are
// accumulated in the batch outcome; they never abort the batch.
type RowError struct {
	PassNumber string
	Kind       ErrorKind
	Detail     string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Pass %s: %s", e.PassNumber, e.Detail)
}

// Outcome accumulates counters and the ordered error list for one batch run.
type Outcome struct {
	DiamondPasses int
	EmailsSent    int
	Errors        []RowError
}

// Record appends a row error to the outcome.
func (o *Outcome) Record(passNumber string, kind ErrorKind, detail string) {
	o.Errors = append(o.Errors, RowError{PassNumber: passNumber, Kind: kind, Detail: detail})
}
