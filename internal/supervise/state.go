package supervise

// State is the supervision loop state. Exactly one is active at a time;
// transitions are driven only by wait outcomes and locator results.
type State int

const (
	// StateMonitoring - a known pid is being watched for termination.
	StateMonitoring State = iota
	// StateSearching - the watched process is gone; looking for a
	// successor under the target directory.
	StateSearching
	// StateStopped - terminal; no successor could be found.
	StateStopped
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateMonitoring:
		return "Monitoring"
	case StateSearching:
		return "Searching"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}
