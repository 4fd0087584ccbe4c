package scoring

import (
	"time"
)

// DismissalType describes how a batsman got out.
type DismissalType string

const (
	DismissalTypeBowled      DismissalType = "bowled"
	DismissalTypeCaught      DismissalType = "caught"
	DismissalTypeLBW         DismissalType = "lbw"
	DismissalTypeRunOut      DismissalType = "run_out"
	DismissalTypeStumped     DismissalType = "stumped"
	DismissalTypeHitWicket   DismissalType = "hit_wicket"
	DismissalTypeRetiredOut  DismissalType = "retired_out"
	DismissalTypeObstructing DismissalType = "obstructing_the_field"
)

// validDismissals is the set of dismissal types the engine accepts on a wicket ball.
var validDismissals = map[DismissalType]bool{
	DismissalTypeBowled:      true,
	DismissalTypeCaught:      true,
	DismissalTypeLBW:         true,
	DismissalTypeRunOut:      true,
	DismissalTypeStumped:     true,
	DismissalTypeHitWicket:   true,
	DismissalTypeRetiredOut:  true,
	DismissalTypeObstructing: true,
}

// BowlerCredited reports whether the bowler is credited with the wicket.
// Run-outs are fielding dismissals; everything else, stumpings included,
// goes on the bowler's figures.
func (d DismissalType) BowlerCredited() bool {
	return d != DismissalTypeRunOut && d != DismissalTypeObstructing && d != DismissalTypeRetiredOut
}

// ExtraType classifies runs not scored off the bat.
type ExtraType string

const (
	ExtraWide    ExtraType = "wide"
	ExtraNoBall  ExtraType = "no_ball"
	ExtraBye     ExtraType = "bye"
	ExtraLegBye  ExtraType = "leg_bye"
	ExtraPenalty ExtraType = "penalty"
)

// BallEvent is the immutable record of one delivery as it was applied.
type BallEvent struct {
	ID                string        `json:"id"`
	OverNumber        int           `json:"over_number"`
	BallNumber        int           `json:"ball_number"` // legal-ball slot within the over at the time of delivery
	BatsmanID         string        `json:"batsman_id"`
	BowlerID          string        `json:"bowler_id"`
	Runs              int           `json:"runs"`
	IsWide            bool          `json:"is_wide"`
	IsNoBall          bool          `json:"is_no_ball"`
	IsBye             bool          `json:"is_bye"`
	IsLegBye          bool          `json:"is_leg_bye"`
	IsWicket          bool          `json:"is_wicket"`
	DismissalType     DismissalType `json:"dismissal_type,omitempty"`
	DismissedPlayerID string        `json:"dismissed_player_id,omitempty"`
	FielderIDs        []string      `json:"fielder_ids,omitempty"`
	Timestamp         time.Time     `json:"timestamp"`
}

// IsLegal reports whether the delivery counts toward the over's six balls.
func (b BallEvent) IsLegal() bool {
	return !b.IsWide && !b.IsNoBall
}

// Over is one bowler's spell of up to six legal deliveries. Illegal
// deliveries are appended for display but do not count toward the six.
type Over struct {
	Number   int         `json:"number"`
	BowlerID string      `json:"bowler_id"`
	Balls    []BallEvent `json:"balls"`
	IsMaiden bool        `json:"is_maiden"` // authoritative only once the over is closed
}

// BatsmanStats holds one batsman's figures within a single innings.
type BatsmanStats struct {
	PlayerID      string        `json:"player_id"`
	Runs          int           `json:"runs"`
	Balls         int           `json:"balls"`
	Fours         int           `json:"fours"`
	Sixes         int           `json:"sixes"`
	IsOut         bool          `json:"is_out"`
	DismissalType DismissalType `json:"dismissal_type,omitempty"`
	DismissedBy   string        `json:"dismissed_by,omitempty"` // bowler, when the dismissal credits one
	AssistedBy    []string      `json:"assisted_by,omitempty"`  // fielders involved
}

// BowlerStats holds one bowler's figures within a single innings.
// Balls is the legal-delivery count of the current unfinished over (0-5).
type BowlerStats struct {
	PlayerID string `json:"player_id"`
	Overs    int    `json:"overs"`
	Balls    int    `json:"balls"`
	Maidens  int    `json:"maidens"`
	Runs     int    `json:"runs"`
	Wickets  int    `json:"wickets"`
}

// Extras is the itemized breakdown of runs not credited to any batsman.
type Extras struct {
	Wides     int `json:"wides"`
	NoBalls   int `json:"no_balls"`
	Byes      int `json:"byes"`
	LegByes   int `json:"leg_byes"`
	Penalties int `json:"penalties"`
}

// Total is the sum of all extras conceded so far.
func (e Extras) Total() int {
	return e.Wides + e.NoBalls + e.Byes + e.LegByes + e.Penalties
}

// MaxWickets is the number of wickets that ends an innings.
const MaxWickets = 10

// BallsPerOver is the number of legal deliveries in an over.
const BallsPerOver = 6

// Innings tracks one team's turn at batting. A vacant batsman or bowler
// slot is the empty string; readiness is always derived via Readiness(),
// never by comparing slots against "" at call sites.
type Innings struct {
	BattingTeamID string `json:"batting_team_id"`
	BowlingTeamID string `json:"bowling_team_id"`

	Overs       []Over `json:"overs"`
	CurrentOver int    `json:"current_over"`
	CurrentBall int    `json:"current_ball"` // legal deliveries so far in the current over, 0-5

	TotalRuns int    `json:"total_runs"`
	Wickets   int    `json:"wickets"`
	Extras    Extras `json:"extras"`

	BatsmanStats map[string]*BatsmanStats `json:"batsman_stats"`
	BowlerStats  map[string]*BowlerStats  `json:"bowler_stats"`

	Batsmen       [2]string `json:"batsmen"` // current pair; "" = vacant slot
	OnStrike      string    `json:"on_strike"`
	CurrentBowler string    `json:"current_bowler"`

	TargetScore *int `json:"target_score,omitempty"` // runs required to win, set for the chasing innings
	IsCompleted bool `json:"is_completed"`
}

// NewInnings returns an empty innings for the given sides.
func NewInnings(battingTeamID, bowlingTeamID string) *Innings {
	return &Innings{
		BattingTeamID: battingTeamID,
		BowlingTeamID: bowlingTeamID,
		BatsmanStats:  make(map[string]*BatsmanStats),
		BowlerStats:   make(map[string]*BowlerStats),
	}
}

// NextInnings builds the follow-up innings: sides swapped, every counter
// zeroed, target set to one more than the completed innings' total.
func NextInnings(prev *Innings) *Innings {
	inn := NewInnings(prev.BowlingTeamID, prev.BattingTeamID)
	target := prev.TotalRuns + 1
	inn.TargetScore = &target
	return inn
}

// Clone deep-copies the innings so Apply can work copy-on-write.
func (inn *Innings) Clone() *Innings {
	out := *inn

	out.Overs = make([]Over, len(inn.Overs))
	for i, ov := range inn.Overs {
		out.Overs[i] = ov
		out.Overs[i].Balls = append([]BallEvent(nil), ov.Balls...)
	}

	out.BatsmanStats = make(map[string]*BatsmanStats, len(inn.BatsmanStats))
	for id, bs := range inn.BatsmanStats {
		c := *bs
		c.AssistedBy = append([]string(nil), bs.AssistedBy...)
		out.BatsmanStats[id] = &c
	}
	out.BowlerStats = make(map[string]*BowlerStats, len(inn.BowlerStats))
	for id, bw := range inn.BowlerStats {
		c := *bw
		out.BowlerStats[id] = &c
	}

	if inn.TargetScore != nil {
		t := *inn.TargetScore
		out.TargetScore = &t
	}
	return &out
}

// batsmanStatsFor returns the innings-scoped stats for a batsman,
// creating the entry on first involvement.
func (inn *Innings) batsmanStatsFor(id string) *BatsmanStats {
	if bs, ok := inn.BatsmanStats[id]; ok {
		return bs
	}
	bs := &BatsmanStats{PlayerID: id}
	inn.BatsmanStats[id] = bs
	return bs
}

// bowlerStatsFor returns the innings-scoped stats for a bowler,
// creating the entry on first involvement.
func (inn *Innings) bowlerStatsFor(id string) *BowlerStats {
	if bw, ok := inn.BowlerStats[id]; ok {
		return bw
	}
	bw := &BowlerStats{PlayerID: id}
	inn.BowlerStats[id] = bw
	return bw
}

// NonStriker returns the batsman at the non-striker's end, or "" if
// that slot is vacant.
func (inn *Innings) NonStriker() string {
	for _, id := range inn.Batsmen {
		if id != "" && id != inn.OnStrike {
			return id
		}
	}
	return ""
}

// OversBowled renders the innings progress as the usual "overs.balls"
// display string, e.g. "12.4".
func (inn *Innings) OversBowled() string {
	return oversDisplay(inn.CurrentOver, inn.CurrentBall)
}
