package launcher

// State is a step of the launcher's run.
type State int

const (
	Validating State = iota
	Running
	Failed
	WaitingForAcknowledgment
	Done
)

func (s State) String() string {
	switch s {
	case Validating:
		return "validating"
	case Running:
		return "running"
	case Failed:
		return "failed"
	case WaitingForAcknowledgment:
		return "waiting_for_acknowledgment"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
