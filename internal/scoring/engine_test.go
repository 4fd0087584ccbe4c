package scoring

import (
	"encoding/json"
	"errors"
	"testing"
)

const (
	p1 = "player-1"
	p2 = "player-2"
	p3 = "player-3"
	b1 = "bowler-1"
	b2 = "bowler-2"
)

func testRules() Rules {
	return Rules{
		TotalOvers:   20,
		LBWValid:     true,
		ByesValid:    true,
		LegByesValid: true,
	}
}

// readyInnings returns an innings with openers and a bowler selected.
func readyInnings(t *testing.T) *Innings {
	t.Helper()
	inn := NewInnings("team-a", "team-b")
	for _, id := range []string{p1, p2} {
		if err := inn.SelectBatsman(id); err != nil {
			t.Fatalf("SelectBatsman(%s): %v", id, err)
		}
	}
	if err := inn.SelectBowler(b1); err != nil {
		t.Fatalf("SelectBowler: %v", err)
	}
	return inn
}

func mustApply(t *testing.T, inn *Innings, rules Rules, in BallInput) Result {
	t.Helper()
	res, err := Apply(inn, rules, in)
	if err != nil {
		t.Fatalf("Apply(%+v): %v", in, err)
	}
	return res
}

func TestApplyPlainDelivery(t *testing.T) {
	tests := []struct {
		name      string
		runs      int
		wantTotal int
		wantFours int
		wantSixes int
		wantSwap  bool
	}{
		{name: "dot ball", runs: 0, wantTotal: 0},
		{name: "single rotates strike", runs: 1, wantTotal: 1, wantSwap: true},
		{name: "two runs", runs: 2, wantTotal: 2},
		{name: "three rotates strike", runs: 3, wantTotal: 3, wantSwap: true},
		{name: "boundary four", runs: 4, wantTotal: 4, wantFours: 1},
		{name: "six", runs: 6, wantTotal: 6, wantSixes: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inn := readyInnings(t)
			res := mustApply(t, inn, testRules(), BallInput{Runs: tt.runs})
			got := res.Innings

			if got.TotalRuns != tt.wantTotal {
				t.Errorf("TotalRuns = %d, want %d", got.TotalRuns, tt.wantTotal)
			}
			if got.Extras.Total() != 0 {
				t.Errorf("Extras.Total() = %d, want 0", got.Extras.Total())
			}
			bs := got.BatsmanStats[p1]
			if bs == nil {
				t.Fatal("striker stats not created")
			}
			if bs.Runs != tt.runs || bs.Balls != 1 {
				t.Errorf("striker stats = %d runs / %d balls, want %d / 1", bs.Runs, bs.Balls, tt.runs)
			}
			if bs.Fours != tt.wantFours || bs.Sixes != tt.wantSixes {
				t.Errorf("boundaries = %d fours / %d sixes, want %d / %d", bs.Fours, bs.Sixes, tt.wantFours, tt.wantSixes)
			}
			bw := got.BowlerStats[b1]
			if bw.Runs != tt.runs || bw.Balls != 1 {
				t.Errorf("bowler stats = %d runs / %d balls, want %d / 1", bw.Runs, bw.Balls, tt.runs)
			}
			if got.CurrentBall != 1 {
				t.Errorf("CurrentBall = %d, want 1", got.CurrentBall)
			}
			wantStrike := p1
			if tt.wantSwap {
				wantStrike = p2
			}
			if got.OnStrike != wantStrike {
				t.Errorf("OnStrike = %s, want %s", got.OnStrike, wantStrike)
			}
		})
	}
}

func TestApplyDoesNotMutateCaller(t *testing.T) {
	inn := readyInnings(t)
	mustApply(t, inn, testRules(), BallInput{Runs: 4})

	if inn.TotalRuns != 0 || inn.CurrentBall != 0 || len(inn.Overs) != 0 {
		t.Errorf("caller's innings mutated: %+v", inn)
	}
	if bs := inn.BatsmanStats[p1]; bs != nil && bs.Balls != 0 {
		t.Errorf("caller's batsman stats mutated: %+v", bs)
	}
}

func TestApplyWide(t *testing.T) {
	tests := []struct {
		name      string
		runs      int
		wantTotal int
	}{
		{name: "plain wide", runs: 0, wantTotal: 1},
		{name: "wide plus two", runs: 2, wantTotal: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inn := readyInnings(t)
			res := mustApply(t, inn, testRules(), BallInput{Runs: tt.runs, IsWide: true})
			got := res.Innings

			if got.TotalRuns != tt.wantTotal {
				t.Errorf("TotalRuns = %d, want %d", got.TotalRuns, tt.wantTotal)
			}
			if got.Extras.Wides != 1 {
				t.Errorf("Extras.Wides = %d, want 1 regardless of runs", got.Extras.Wides)
			}
			if bs, ok := got.BatsmanStats[p1]; ok && bs.Balls != 0 {
				t.Errorf("striker faced %d balls off a wide, want 0", bs.Balls)
			}
			if got.CurrentBall != 0 {
				t.Errorf("CurrentBall advanced on a wide: %d", got.CurrentBall)
			}
			if bw := got.BowlerStats[b1]; bw.Balls != 0 || bw.Runs != tt.wantTotal {
				t.Errorf("bowler stats = %d balls / %d runs, want 0 / %d", bw.Balls, bw.Runs, tt.wantTotal)
			}
			// The wide still shows up on the over's ball list.
			if len(got.Overs) != 1 || len(got.Overs[0].Balls) != 1 {
				t.Fatalf("wide not appended to over: %+v", got.Overs)
			}
		})
	}
}

func TestApplyNoBall(t *testing.T) {
	inn := readyInnings(t)
	res := mustApply(t, inn, testRules(), BallInput{Runs: 4, IsNoBall: true})
	got := res.Innings

	if got.TotalRuns != 5 {
		t.Errorf("TotalRuns = %d, want 5", got.TotalRuns)
	}
	if got.Extras.NoBalls != 1 {
		t.Errorf("Extras.NoBalls = %d, want 1", got.Extras.NoBalls)
	}
	bs := got.BatsmanStats[p1]
	if bs.Balls != 1 || bs.Runs != 4 || bs.Fours != 1 {
		t.Errorf("striker stats off no-ball = %+v, want 1 ball, 4 runs, 1 four", bs)
	}
	if got.CurrentBall != 0 {
		t.Errorf("CurrentBall advanced on a no-ball: %d", got.CurrentBall)
	}
	if bw := got.BowlerStats[b1]; bw.Runs != 5 {
		t.Errorf("bowler conceded %d, want 5", bw.Runs)
	}
}

func TestApplyByesAndLegByes(t *testing.T) {
	tests := []struct {
		name     string
		in       BallInput
		wantByes int
		wantLegs int
	}{
		{name: "two byes", in: BallInput{Runs: 2, IsBye: true}, wantByes: 2},
		{name: "one leg bye", in: BallInput{Runs: 1, IsLegBye: true}, wantLegs: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inn := readyInnings(t)
			res := mustApply(t, inn, testRules(), tt.in)
			got := res.Innings

			if got.TotalRuns != tt.in.Runs {
				t.Errorf("TotalRuns = %d, want %d", got.TotalRuns, tt.in.Runs)
			}
			if got.Extras.Byes != tt.wantByes || got.Extras.LegByes != tt.wantLegs {
				t.Errorf("extras = %+v, want %d byes / %d leg byes", got.Extras, tt.wantByes, tt.wantLegs)
			}
			bs := got.BatsmanStats[p1]
			if bs.Balls != 1 || bs.Runs != 0 {
				t.Errorf("striker stats = %d balls / %d runs, want 1 / 0", bs.Balls, bs.Runs)
			}
			// Byes and leg byes are never charged to the bowler.
			if bw := got.BowlerStats[b1]; bw.Runs != 0 {
				t.Errorf("bowler charged %d for byes, want 0", bw.Runs)
			}
			if got.CurrentBall != 1 {
				t.Errorf("CurrentBall = %d, want 1 (byes are legal deliveries)", got.CurrentBall)
			}
		})
	}
}

func TestApplyOverCompletion(t *testing.T) {
	inn := readyInnings(t)
	rules := testRules()

	// Scenario: five boundary fours then a single.
	cur := inn
	for i := 0; i < 5; i++ {
		cur = mustApply(t, cur, rules, BallInput{Runs: 4}).Innings
	}
	res := mustApply(t, cur, rules, BallInput{Runs: 1})
	got := res.Innings

	if got.TotalRuns != 21 {
		t.Errorf("TotalRuns = %d, want 21", got.TotalRuns)
	}
	if bs := got.BatsmanStats[p1]; bs.Runs != 21 || bs.Balls != 6 {
		t.Errorf("striker = %d runs / %d balls, want 21 / 6", bs.Runs, bs.Balls)
	}
	if got.CurrentOver != 1 || got.CurrentBall != 0 {
		t.Errorf("progress = %d.%d, want 1.0", got.CurrentOver, got.CurrentBall)
	}
	if !res.Transitions.OverCompleted || !res.Transitions.RequiresNewBowler {
		t.Errorf("transitions = %+v, want over completed and new bowler required", res.Transitions)
	}
	if got.Readiness() != AwaitingBowler {
		t.Errorf("Readiness = %s, want awaiting bowler", got.Readiness())
	}
	if bw := got.BowlerStats[b1]; bw.Overs != 1 || bw.Balls != 0 {
		t.Errorf("bowler overs = %d.%d, want 1.0", bw.Overs, bw.Balls)
	}
	if got.Overs[0].IsMaiden {
		t.Error("scoring over flagged as maiden")
	}
	if got.OversBowled() != "1.0" {
		t.Errorf("OversBowled() = %s, want 1.0", got.OversBowled())
	}
}

func TestApplyMaidenOver(t *testing.T) {
	tests := []struct {
		name       string
		balls      []BallInput
		wantMaiden bool
	}{
		{
			name:       "six dots",
			balls:      repeat(BallInput{}, 6),
			wantMaiden: true,
		},
		{
			name:       "dots around a leg bye",
			balls:      append(repeat(BallInput{}, 5), BallInput{Runs: 1, IsLegBye: true}),
			wantMaiden: true,
		},
		{
			name:       "single off the bat breaks it",
			balls:      append(repeat(BallInput{}, 5), BallInput{Runs: 1}),
			wantMaiden: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := readyInnings(t)
			var last Result
			for _, in := range tt.balls {
				last = mustApply(t, cur, testRules(), in)
				cur = last.Innings
			}
			if !last.Transitions.OverCompleted {
				t.Fatal("over did not complete")
			}
			if got := cur.Overs[0].IsMaiden; got != tt.wantMaiden {
				t.Errorf("IsMaiden = %v, want %v", got, tt.wantMaiden)
			}
			wantMaidens := 0
			if tt.wantMaiden {
				wantMaidens = 1
			}
			if bw := cur.BowlerStats[b1]; bw.Maidens != wantMaidens {
				t.Errorf("bowler maidens = %d, want %d", bw.Maidens, wantMaidens)
			}
		})
	}
}

func TestApplyIllegalDeliveriesDoNotAdvanceOver(t *testing.T) {
	cur := readyInnings(t)
	rules := testRules()

	// Five legal balls, then a wide and a no-ball: still the same over.
	for i := 0; i < 5; i++ {
		cur = mustApply(t, cur, rules, BallInput{}).Innings
	}
	cur = mustApply(t, cur, rules, BallInput{IsWide: true}).Innings
	cur = mustApply(t, cur, rules, BallInput{IsNoBall: true}).Innings

	if cur.CurrentOver != 0 || cur.CurrentBall != 5 {
		t.Fatalf("progress = %d.%d, want 0.5", cur.CurrentOver, cur.CurrentBall)
	}
	if n := len(cur.Overs[0].Balls); n != 7 {
		t.Errorf("over holds %d deliveries, want 7 (illegal ones are kept for display)", n)
	}

	res := mustApply(t, cur, rules, BallInput{})
	if !res.Transitions.OverCompleted {
		t.Error("sixth legal ball did not complete the over")
	}
}

func TestApplyWicket(t *testing.T) {
	tests := []struct {
		name             string
		in               BallInput
		wantBowlerWicket bool
	}{
		{name: "bowled", in: BallInput{IsWicket: true, DismissalType: DismissalTypeBowled}, wantBowlerWicket: true},
		{name: "caught", in: BallInput{IsWicket: true, DismissalType: DismissalTypeCaught, FielderIDs: []string{p3}}, wantBowlerWicket: true},
		{name: "stumped credits the bowler", in: BallInput{IsWicket: true, DismissalType: DismissalTypeStumped}, wantBowlerWicket: true},
		{name: "run out does not", in: BallInput{IsWicket: true, DismissalType: DismissalTypeRunOut}, wantBowlerWicket: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inn := readyInnings(t)
			res := mustApply(t, inn, testRules(), tt.in)
			got := res.Innings

			if got.Wickets != 1 {
				t.Errorf("Wickets = %d, want 1", got.Wickets)
			}
			bs := got.BatsmanStats[p1]
			if !bs.IsOut || bs.DismissalType != tt.in.DismissalType {
				t.Errorf("victim stats = %+v, want out via %s", bs, tt.in.DismissalType)
			}
			wantW := 0
			if tt.wantBowlerWicket {
				wantW = 1
			}
			if bw := got.BowlerStats[b1]; bw.Wickets != wantW {
				t.Errorf("bowler wickets = %d, want %d", bw.Wickets, wantW)
			}
			if !res.Transitions.RequiresNewBatsman {
				t.Error("RequiresNewBatsman not signalled")
			}
			if got.Readiness() == Ready {
				t.Error("innings still Ready with a vacant batting slot")
			}
		})
	}
}

func TestApplyAllOut(t *testing.T) {
	inn := readyInnings(t)
	inn.Wickets = 9

	res := mustApply(t, inn, testRules(), BallInput{
		IsWicket:          true,
		DismissalType:     DismissalTypeBowled,
		DismissedPlayerID: p1,
	})
	got := res.Innings

	if got.Wickets != MaxWickets {
		t.Errorf("Wickets = %d, want %d", got.Wickets, MaxWickets)
	}
	if !res.Transitions.InningsCompleted {
		t.Error("InningsCompleted not signalled at ten wickets")
	}
	if res.Transitions.RequiresNewBatsman {
		t.Error("RequiresNewBatsman signalled when all out")
	}
	// No strike rotation on the all-out ball.
	if got.OnStrike == p2 {
		t.Error("strike rotated on the all-out wicket")
	}
	if !got.IsCompleted {
		t.Error("innings not marked completed")
	}

	// A completed innings accepts no further deliveries.
	if _, err := Apply(got, testRules(), BallInput{}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Apply on completed innings: err = %v, want ErrInvalidState", err)
	}
}

func TestApplyInningsEndByOvers(t *testing.T) {
	rules := testRules()
	rules.TotalOvers = 1
	rules.FinalInnings = true
	cur := readyInnings(t)

	var last Result
	for i := 0; i < 6; i++ {
		last = mustApply(t, cur, rules, BallInput{})
		cur = last.Innings
	}

	if !last.Transitions.InningsCompleted {
		t.Error("InningsCompleted not signalled at the overs limit")
	}
	if !last.Transitions.MatchCompleted {
		t.Error("MatchCompleted not signalled on the final innings")
	}
	if last.Transitions.RequiresNewBowler {
		t.Error("RequiresNewBowler signalled after the innings ended")
	}
}

func TestApplyTargetReached(t *testing.T) {
	first := NewInnings("team-a", "team-b")
	first.TotalRuns = 10
	inn := NextInnings(first)

	if inn.BattingTeamID != "team-b" || inn.BowlingTeamID != "team-a" {
		t.Fatalf("NextInnings did not swap sides: %+v", inn)
	}
	if inn.TargetScore == nil || *inn.TargetScore != 11 {
		t.Fatalf("TargetScore = %v, want 11", inn.TargetScore)
	}

	for _, id := range []string{p1, p2} {
		if err := inn.SelectBatsman(id); err != nil {
			t.Fatal(err)
		}
	}
	if err := inn.SelectBowler(b1); err != nil {
		t.Fatal(err)
	}
	inn.TotalRuns = 10

	rules := testRules()
	rules.FinalInnings = true
	res := mustApply(t, inn, rules, BallInput{Runs: 1})

	if !res.Transitions.InningsCompleted || !res.Transitions.MatchCompleted {
		t.Errorf("transitions = %+v, want innings and match completed on reaching the target", res.Transitions)
	}
}

func TestApplyExplicitRotationOverride(t *testing.T) {
	noRotate := false
	rotate := true

	inn := readyInnings(t)
	got := mustApply(t, inn, testRules(), BallInput{Runs: 1, RotateStrike: &noRotate}).Innings
	if got.OnStrike != p1 {
		t.Errorf("OnStrike = %s, explicit override should have suppressed rotation", got.OnStrike)
	}

	inn = readyInnings(t)
	got = mustApply(t, inn, testRules(), BallInput{Runs: 2, RotateStrike: &rotate}).Innings
	if got.OnStrike != p2 {
		t.Errorf("OnStrike = %s, explicit override should have forced rotation", got.OnStrike)
	}
}

func TestApplyValidation(t *testing.T) {
	restrictive := Rules{TotalOvers: 20} // byes, leg byes and lbw all disabled

	tests := []struct {
		name  string
		rules Rules
		in    BallInput
	}{
		{name: "negative runs", rules: testRules(), in: BallInput{Runs: -1}},
		{name: "absurd runs", rules: testRules(), in: BallInput{Runs: 7}},
		{name: "conflicting extras", rules: testRules(), in: BallInput{IsWide: true, IsNoBall: true}},
		{name: "byes disabled", rules: restrictive, in: BallInput{Runs: 1, IsBye: true}},
		{name: "leg byes disabled", rules: restrictive, in: BallInput{Runs: 1, IsLegBye: true}},
		{name: "lbw disabled", rules: restrictive, in: BallInput{IsWicket: true, DismissalType: DismissalTypeLBW}},
		{name: "unknown dismissal", rules: testRules(), in: BallInput{IsWicket: true, DismissalType: "hat_trick"}},
		{name: "dismissal without wicket", rules: testRules(), in: BallInput{DismissalType: DismissalTypeBowled}},
		{name: "bowled off a wide", rules: testRules(), in: BallInput{IsWide: true, IsWicket: true, DismissalType: DismissalTypeBowled}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inn := readyInnings(t)
			if _, err := Apply(inn, tt.rules, tt.in); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestApplyNotReady(t *testing.T) {
	inn := NewInnings("team-a", "team-b")
	if _, err := Apply(inn, testRules(), BallInput{}); !errors.Is(err, ErrNotReady) {
		t.Errorf("err = %v, want ErrNotReady", err)
	}
}

// TestApplySurvivesRoundTrip serializes an innings mid-over, reloads it and
// checks the next ball lands identically: persisted state is complete.
func TestApplySurvivesRoundTrip(t *testing.T) {
	cur := readyInnings(t)
	rules := testRules()
	for _, in := range []BallInput{{Runs: 4}, {Runs: 1}, {IsWide: true}, {Runs: 2, IsBye: true}} {
		cur = mustApply(t, cur, rules, in).Innings
	}

	data, err := json.Marshal(cur)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	reloaded := &Innings{}
	if err := json.Unmarshal(data, reloaded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	next := BallInput{Runs: 3}
	a := mustApply(t, cur, rules, next).Innings
	b := mustApply(t, reloaded, rules, next).Innings

	if a.TotalRuns != b.TotalRuns || a.OnStrike != b.OnStrike || a.CurrentBall != b.CurrentBall {
		t.Errorf("round-trip divergence: direct %d/%s/%d vs reloaded %d/%s/%d",
			a.TotalRuns, a.OnStrike, a.CurrentBall, b.TotalRuns, b.OnStrike, b.CurrentBall)
	}
	if a.BatsmanStats[p2].Runs != b.BatsmanStats[p2].Runs {
		t.Errorf("batsman stats diverged after round-trip")
	}
}

func repeat(in BallInput, n int) []BallInput {
	out := make([]BallInput, n)
	for i := range out {
		out[i] = in
	}
	return out
}
