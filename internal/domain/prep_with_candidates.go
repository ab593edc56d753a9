package domain

// PrepWithCandidates is the aggregate returned by the orchestrator: a prep
// plus its persisted candidates in order-index order.
type PrepWithCandidates struct {
	Prep       *Prep
	Candidates []*Candidate
}
