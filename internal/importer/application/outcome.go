package application

// OutcomeKind classifies what happened to one row. Rows never abort the
// batch; every path ends in exactly one outcome.
type OutcomeKind string

const (
	// OutcomeCreated: a new offer row was linked.
	OutcomeCreated OutcomeKind = "created"
	// OutcomeUpdated: an existing offer changed in at least one field.
	OutcomeUpdated OutcomeKind = "updated"
	// OutcomeUnchanged: the offer existed and no field differed.
	OutcomeUnchanged OutcomeKind = "unchanged"
	// OutcomeSkipped: the row carried nothing actionable.
	OutcomeSkipped OutcomeKind = "skipped"
	// OutcomeDegraded: a recoverable failure was absorbed.
	OutcomeDegraded OutcomeKind = "degraded"
)

// RowOutcome is the per-row result collected into the job summary.
type RowOutcome struct {
	Kind           OutcomeKind
	Identifier     string
	Reason         string
	CreatedProduct bool
}

// Summary is the ImportJob-shaped result returned to the caller.
type Summary struct {
	JobID           uint
	SupplierSlug    string
	Filename        string
	ProcessedRows   int
	CreatedLinks    int
	UpdatedLinks    int
	CreatedProducts int
	Notes           []string
	Outcomes        []RowOutcome
}
