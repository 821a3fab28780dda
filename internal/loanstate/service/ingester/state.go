package ingester

// State is a step of the ingestion loop.
type State string

const (
	StateFetching           State = "fetching"
	StateOrderingAndFolding State = "ordering_and_folding"
	StatePersisting         State = "persisting"
	StateCheckpointing      State = "checkpointing"
	StateDone               State = "done"
	StateRetryExhausted     State = "retry_exhausted"
)

// Terminal reports whether the loop stops in s without an error.
func (s State) Terminal() bool {
	return s == StateDone || s == StateRetryExhausted
}

// Result is the outcome of Run: the state the loop stopped in and the first
// block not yet folded.
type Result struct {
	State      State
	Checkpoint uint64
}
