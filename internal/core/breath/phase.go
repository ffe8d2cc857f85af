package breath

// Phase identifies a segment of the box-breathing cycle.
type Phase string

const (
	PhaseInhale    Phase = "inhale"
	PhaseHoldFull  Phase = "hold_full"
	PhaseExhale    Phase = "exhale"
	PhaseHoldEmpty Phase = "hold_empty"
)

// Next returns the phase that follows in cyclic order.
func (phase Phase) Next() Phase {
	switch phase {
	case PhaseInhale:
		return PhaseHoldFull
	case PhaseHoldFull:
		return PhaseExhale
	case PhaseExhale:
		return PhaseHoldEmpty
	default:
		return PhaseInhale
	}
}

// Caption returns the on-screen instruction for the phase.
func (phase Phase) Caption() string {
	switch phase {
	case PhaseInhale:
		return "Breathe in"
	case PhaseHoldFull:
		return "Hold"
	case PhaseExhale:
		return "Breathe out"
	case PhaseHoldEmpty:
		return "Hold"
	default:
		return ""
	}
}
