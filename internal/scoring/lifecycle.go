package scoring

import "fmt"

// Readiness is the innings' position in its selection state machine.
// Ball events are only accepted while Ready.
type Readiness int

const (
	AwaitingStriker Readiness = iota
	AwaitingNonStriker
	AwaitingBowler
	Ready
	Completed
)

func (r Readiness) String() string {
	switch r {
	case AwaitingStriker:
		return "awaiting striker"
	case AwaitingNonStriker:
		return "awaiting non-striker"
	case AwaitingBowler:
		return "awaiting bowler"
	case Ready:
		return "ready"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Readiness derives the innings' selection state from slot occupancy.
func (inn *Innings) Readiness() Readiness {
	if inn.IsCompleted {
		return Completed
	}
	filled := 0
	for _, id := range inn.Batsmen {
		if id != "" {
			filled++
		}
	}
	switch filled {
	case 0:
		return AwaitingStriker
	case 1:
		if inn.OnStrike == "" {
			// A wicket vacated the striker's end; the pair is one short.
			return AwaitingStriker
		}
		return AwaitingNonStriker
	}
	if inn.CurrentBowler == "" {
		return AwaitingBowler
	}
	return Ready
}

// SelectBatsman fills the vacant batting slot with the incoming batsman.
// When the striker's end is the vacant one, the new batsman takes strike.
func (inn *Innings) SelectBatsman(playerID string) error {
	if inn.IsCompleted {
		return fmt.Errorf("%w: innings already completed", ErrInvalidState)
	}
	if playerID == "" {
		return fmt.Errorf("%w: empty batsman id", ErrValidation)
	}
	if bs, ok := inn.BatsmanStats[playerID]; ok && bs.IsOut {
		return fmt.Errorf("%w: batsman %s is already out", ErrValidation, playerID)
	}
	for _, slot := range inn.Batsmen {
		if slot == playerID {
			return fmt.Errorf("%w: batsman %s is already at the crease", ErrValidation, playerID)
		}
	}

	for i, slot := range inn.Batsmen {
		if slot == "" {
			inn.Batsmen[i] = playerID
			if inn.OnStrike == "" {
				inn.OnStrike = playerID
			}
			inn.batsmanStatsFor(playerID)
			return nil
		}
	}
	return fmt.Errorf("%w: both batting slots are occupied", ErrInvalidState)
}

// SelectBowler sets the bowler for the upcoming over. The previous over's
// bowler may not bowl two in a row.
func (inn *Innings) SelectBowler(playerID string) error {
	if inn.IsCompleted {
		return fmt.Errorf("%w: innings already completed", ErrInvalidState)
	}
	if playerID == "" {
		return fmt.Errorf("%w: empty bowler id", ErrValidation)
	}
	if inn.CurrentBowler != "" {
		return fmt.Errorf("%w: an over is already in progress", ErrInvalidState)
	}
	if n := len(inn.Overs); n > 0 && inn.Overs[n-1].Number == inn.CurrentOver-1 && inn.Overs[n-1].BowlerID == playerID {
		return fmt.Errorf("%w: bowler %s bowled the previous over", ErrValidation, playerID)
	}
	inn.CurrentBowler = playerID
	inn.bowlerStatsFor(playerID)
	return nil
}
