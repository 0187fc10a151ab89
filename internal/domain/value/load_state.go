package value

// LoadState is the loader's two-state machine as seen by views.
type LoadState string

const (
	LoadStatePending  LoadState = "pending"
	LoadStateResolved LoadState = "resolved"
)

func (s LoadState) String() string {
	return string(s)
}
