package engine

import "github.com/lixenwraith/shoutwalk/physics"

// Phase is the round lifecycle state
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "game over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended
func (p Phase) Terminal() bool { return p == PhaseWon || p == PhaseLost }

// EndReason records why a round ended
type EndReason uint8

const (
	EndNone EndReason = iota
	EndTimeUp
	EndSplashed
	EndHitSpikes
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return ""
	case EndTimeUp:
		return "time up"
	case EndSplashed:
		return "splashed"
	case EndHitSpikes:
		return "hit spikes"
	default:
		return "unknown"
	}
}

func endReasonFor(o physics.Outcome) EndReason {
	switch o {
	case physics.OutcomeSplashed:
		return EndSplashed
	case physics.OutcomeHitSpikes:
		return EndHitSpikes
	default:
		return EndNone
	}
}
