package eventqueue

// State is the lifecycle phase of a Channel.
type State int32

const (
	// StateIdle means no consumer loop has been started.
	StateIdle State = iota
	// StateRunning means at least one consumer loop was started.
	StateRunning
	// StateDraining means Shutdown began and the buffer is being emptied.
	StateDraining
	// StateDrained means the buffer is empty and every loop has exited.
	StateDrained
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateDraining:
		return "draining"
	case StateDrained:
		return "drained"
	default:
		return "unknown"
	}
}
