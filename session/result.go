package session

// State distinguishes a query that was never issued from one that is pending
// and one that answered. Keeping them separate lets the UI tell a loading
// skeleton from a genuinely empty result.
type State int

const (
	// Absent: there was nothing to ask (no session id) and nothing to load.
	Absent State = iota
	// Loading: the query was issued and has not delivered a first value.
	Loading
	// Present: a value arrived.
	Present
)

// Result is a three-variant query outcome. Read errors are returned
// separately by whatever produced the Result and never collapse into Loading.
type Result[T any] struct {
	state State
	value T
}

func AbsentResult[T any]() Result[T] {
	return Result[T]{state: Absent}
}

func LoadingResult[T any]() Result[T] {
	return Result[T]{state: Loading}
}

func PresentResult[T any](value T) Result[T] {
	return Result[T]{state: Present, value: value}
}

func (r Result[T]) State() State { return r.state }

// IsLoading is true exactly when the query was asked and has not answered.
func (r Result[T]) IsLoading() bool { return r.state == Loading }

// Value returns the delivered value and whether one is present.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.state == Present
}
