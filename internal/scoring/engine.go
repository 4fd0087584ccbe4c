package scoring

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Rules carries the per-match parameters the engine needs: innings length
// and which extras/dismissals the scorer enabled at setup.
type Rules struct {
	TotalOvers   int  `json:"total_overs"`
	LBWValid     bool `json:"is_lbw_valid"`
	ByesValid    bool `json:"byes_valid"`
	LegByesValid bool `json:"leg_byes_valid"`

	// FinalInnings marks the last scheduled innings of the match, so the
	// engine can signal match completion alongside innings completion.
	FinalInnings bool `json:"-"`
}

// BallInput is the scorer-supplied outcome of one delivery. Batsman and
// bowler identity is taken from the innings, never from the caller.
type BallInput struct {
	Runs              int           `json:"runs"`
	IsWide            bool          `json:"is_wide"`
	IsNoBall          bool          `json:"is_no_ball"`
	IsBye             bool          `json:"is_bye"`
	IsLegBye          bool          `json:"is_leg_bye"`
	IsWicket          bool          `json:"is_wicket"`
	DismissalType     DismissalType `json:"dismissal_type,omitempty"`
	DismissedPlayerID string        `json:"dismissed_player_id,omitempty"`
	FielderIDs        []string      `json:"fielder_ids,omitempty"`

	// RotateStrike, when set, overrides the parity-computed rotation.
	RotateStrike *bool `json:"rotate_strike,omitempty"`
}

// Transitions tells the caller what the ball just triggered beyond the
// innings' own counters.
type Transitions struct {
	OverCompleted      bool `json:"over_completed"`
	InningsCompleted   bool `json:"innings_completed"`
	MatchCompleted     bool `json:"match_completed"`
	RequiresNewBatsman bool `json:"requires_new_batsman"`
	RequiresNewBowler  bool `json:"requires_new_bowler"`
}

// Result is the outcome of applying one ball event.
type Result struct {
	Innings     *Innings    `json:"innings"`
	Ball        BallEvent   `json:"ball"`
	Transitions Transitions `json:"transitions"`
}

// Apply processes a single delivery against an innings and returns the
// updated copy plus the persisted ball record and transition signals.
// The caller's innings is never mutated.
func Apply(inn *Innings, rules Rules, in BallInput) (Result, error) {
	if inn.IsCompleted {
		return Result{}, fmt.Errorf("%w: innings already completed", ErrInvalidState)
	}
	if r := inn.Readiness(); r != Ready {
		return Result{}, fmt.Errorf("%w: %s", ErrNotReady, r)
	}
	if err := validateInput(rules, in); err != nil {
		return Result{}, err
	}

	out := inn.Clone()

	ball := BallEvent{
		ID:                uuid.NewString(),
		OverNumber:        out.CurrentOver,
		BallNumber:        out.CurrentBall,
		BatsmanID:         out.OnStrike,
		BowlerID:          out.CurrentBowler,
		Runs:              in.Runs,
		IsWide:            in.IsWide,
		IsNoBall:          in.IsNoBall,
		IsBye:             in.IsBye,
		IsLegBye:          in.IsLegBye,
		IsWicket:          in.IsWicket,
		DismissalType:     in.DismissalType,
		DismissedPlayerID: in.DismissedPlayerID,
		FielderIDs:        in.FielderIDs,
		Timestamp:         time.Now().UTC(),
	}
	if ball.IsWicket && ball.DismissedPlayerID == "" {
		ball.DismissedPlayerID = out.OnStrike
	}

	// Runs off the delivery; the mandatory one-run penalty rides on
	// wides and no-balls, itemized extras record the rest.
	runsFromBall := in.Runs
	switch {
	case in.IsWide:
		runsFromBall = in.Runs + 1
		out.Extras.Wides++
	case in.IsNoBall:
		runsFromBall = in.Runs + 1
		out.Extras.NoBalls++
	case in.IsBye:
		out.Extras.Byes += in.Runs
	case in.IsLegBye:
		out.Extras.LegByes += in.Runs
	}
	out.TotalRuns += runsFromBall

	// Batsman figures. A wide is never a ball faced.
	if !in.IsWide {
		bs := out.batsmanStatsFor(out.OnStrike)
		bs.Balls++
		if !in.IsBye && !in.IsLegBye {
			bs.Runs += in.Runs
			if in.Runs == 4 {
				bs.Fours++
			}
			if in.Runs == 6 {
				bs.Sixes++
			}
		}
	}

	// Bowler figures. Byes and leg-byes are not charged to the bowler.
	bw := out.bowlerStatsFor(out.CurrentBowler)
	if !in.IsBye && !in.IsLegBye {
		bw.Runs += runsFromBall
	}

	out.appendBall(ball)

	overCompleted := false
	if ball.IsLegal() {
		bw.Balls++
		if bw.Balls == BallsPerOver {
			bw.Overs++
			bw.Balls = 0
		}
		out.CurrentBall++
		if out.CurrentBall == BallsPerOver {
			out.CurrentBall = 0
			out.CurrentOver++
			overCompleted = true
			out.closeOver(bw)
		}
	}

	allOut := false
	if in.IsWicket {
		out.Wickets++
		allOut = out.Wickets >= MaxWickets

		victim := out.batsmanStatsFor(ball.DismissedPlayerID)
		victim.IsOut = true
		victim.DismissalType = in.DismissalType
		victim.AssistedBy = append([]string(nil), in.FielderIDs...)
		if in.DismissalType.BowlerCredited() {
			victim.DismissedBy = out.CurrentBowler
			bw.Wickets++
		}
	}

	// Strike rotation: odd runs or the automatic end-of-over swap, unless
	// the side just lost its last wicket. An explicit caller flag wins.
	rotate := in.Runs%2 == 1 || overCompleted
	if in.RotateStrike != nil {
		rotate = *in.RotateStrike
	}
	if allOut {
		rotate = false
	}
	if rotate {
		if ns := out.NonStriker(); ns != "" {
			out.OnStrike = ns
		}
	}

	if in.IsWicket {
		out.vacateBatsman(ball.DismissedPlayerID)
	}

	inningsCompleted := allOut || out.CurrentOver >= rules.TotalOvers
	if out.TargetScore != nil && out.TotalRuns >= *out.TargetScore {
		inningsCompleted = true
	}
	if inningsCompleted {
		out.IsCompleted = true
	}

	if overCompleted && !inningsCompleted {
		// Same bowler may not bowl consecutive overs; the next one is
		// selected upstream.
		out.CurrentBowler = ""
	}

	tr := Transitions{
		OverCompleted:      overCompleted,
		InningsCompleted:   inningsCompleted,
		MatchCompleted:     inningsCompleted && rules.FinalInnings,
		RequiresNewBatsman: in.IsWicket && !allOut && !inningsCompleted,
		RequiresNewBowler:  overCompleted && !inningsCompleted,
	}

	return Result{Innings: out, Ball: ball, Transitions: tr}, nil
}

func validateInput(rules Rules, in BallInput) error {
	if in.Runs < 0 {
		return fmt.Errorf("%w: negative runs", ErrValidation)
	}
	if in.Runs > 6 {
		return fmt.Errorf("%w: more than six runs off one ball", ErrValidation)
	}

	flags := 0
	for _, f := range []bool{in.IsWide, in.IsNoBall, in.IsBye, in.IsLegBye} {
		if f {
			flags++
		}
	}
	if flags > 1 {
		return fmt.Errorf("%w: conflicting extras flags", ErrValidation)
	}

	if in.IsBye && !rules.ByesValid {
		return fmt.Errorf("%w: byes are disabled for this match", ErrValidation)
	}
	if in.IsLegBye && !rules.LegByesValid {
		return fmt.Errorf("%w: leg byes are disabled for this match", ErrValidation)
	}

	if in.IsWicket {
		if !validDismissals[in.DismissalType] {
			return fmt.Errorf("%w: unknown dismissal type %q", ErrValidation, in.DismissalType)
		}
		if in.DismissalType == DismissalTypeLBW && !rules.LBWValid {
			return fmt.Errorf("%w: lbw is disabled for this match", ErrValidation)
		}
		if in.IsWide && in.DismissalType != DismissalTypeRunOut && in.DismissalType != DismissalTypeStumped {
			return fmt.Errorf("%w: only run out or stumped is possible off a wide", ErrValidation)
		}
	} else if in.DismissalType != "" {
		return fmt.Errorf("%w: dismissal type without a wicket", ErrValidation)
	}

	return nil
}

// appendBall records the delivery on the current over, opening the over
// on its first ball.
func (inn *Innings) appendBall(ball BallEvent) {
	if len(inn.Overs) == 0 || inn.Overs[len(inn.Overs)-1].Number != ball.OverNumber {
		inn.Overs = append(inn.Overs, Over{
			Number:   ball.OverNumber,
			BowlerID: ball.BowlerID,
		})
	}
	ov := &inn.Overs[len(inn.Overs)-1]
	ov.Balls = append(ov.Balls, ball)
}

// closeOver finalizes the just-completed over's maiden flag. An over is a
// maiden when none of its deliveries scored off the bat.
func (inn *Innings) closeOver(bw *BowlerStats) {
	if len(inn.Overs) == 0 {
		return
	}
	ov := &inn.Overs[len(inn.Overs)-1]
	maiden := true
	for _, b := range ov.Balls {
		if b.Runs > 0 && !b.IsBye && !b.IsLegBye && !b.IsWide && !b.IsNoBall {
			maiden = false
			break
		}
	}
	ov.IsMaiden = maiden
	if maiden {
		bw.Maidens++
	}
}

// vacateBatsman empties the dismissed batsman's slot; the on-strike
// marker is cleared with it when the striker was the one out.
func (inn *Innings) vacateBatsman(id string) {
	for i, slot := range inn.Batsmen {
		if slot == id {
			inn.Batsmen[i] = ""
		}
	}
	if inn.OnStrike == id {
		inn.OnStrike = ""
	}
}

func oversDisplay(overs, balls int) string {
	return fmt.Sprintf("%d.%d", overs, balls)
}
