package scoring

import (
	"errors"
	"testing"
)

func TestReadinessProgression(t *testing.T) {
	inn := NewInnings("team-a", "team-b")

	if got := inn.Readiness(); got != AwaitingStriker {
		t.Fatalf("fresh innings Readiness = %s, want awaiting striker", got)
	}
	if err := inn.SelectBatsman(p1); err != nil {
		t.Fatal(err)
	}
	if got := inn.Readiness(); got != AwaitingNonStriker {
		t.Fatalf("Readiness = %s, want awaiting non-striker", got)
	}
	if inn.OnStrike != p1 {
		t.Errorf("first batsman in should take strike, OnStrike = %s", inn.OnStrike)
	}
	if err := inn.SelectBatsman(p2); err != nil {
		t.Fatal(err)
	}
	if got := inn.Readiness(); got != AwaitingBowler {
		t.Fatalf("Readiness = %s, want awaiting bowler", got)
	}
	if err := inn.SelectBowler(b1); err != nil {
		t.Fatal(err)
	}
	if got := inn.Readiness(); got != Ready {
		t.Fatalf("Readiness = %s, want ready", got)
	}

	inn.IsCompleted = true
	if got := inn.Readiness(); got != Completed {
		t.Fatalf("Readiness = %s, want completed", got)
	}
}

func TestSelectBatsmanRejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*Innings)
		id      string
		wantErr error
	}{
		{
			name:    "empty id",
			prepare: func(*Innings) {},
			id:      "",
			wantErr: ErrValidation,
		},
		{
			name: "already at the crease",
			prepare: func(inn *Innings) {
				_ = inn.SelectBatsman(p1)
			},
			id:      p1,
			wantErr: ErrValidation,
		},
		{
			name: "already dismissed",
			prepare: func(inn *Innings) {
				inn.BatsmanStats[p3] = &BatsmanStats{PlayerID: p3, IsOut: true}
			},
			id:      p3,
			wantErr: ErrValidation,
		},
		{
			name: "both slots occupied",
			prepare: func(inn *Innings) {
				_ = inn.SelectBatsman(p1)
				_ = inn.SelectBatsman(p2)
			},
			id:      p3,
			wantErr: ErrInvalidState,
		},
		{
			name: "completed innings",
			prepare: func(inn *Innings) {
				inn.IsCompleted = true
			},
			id:      p1,
			wantErr: ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inn := NewInnings("team-a", "team-b")
			tt.prepare(inn)
			if err := inn.SelectBatsman(tt.id); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSelectBatsmanAfterWicketTakesStrike(t *testing.T) {
	inn := readyInnings(t)
	res := mustApply(t, inn, testRules(), BallInput{
		IsWicket:      true,
		DismissalType: DismissalTypeBowled,
	})
	got := res.Innings

	if err := got.SelectBatsman(p3); err != nil {
		t.Fatalf("SelectBatsman: %v", err)
	}
	if got.OnStrike != p3 {
		t.Errorf("OnStrike = %s, want incoming batsman %s at the vacated striker's end", got.OnStrike, p3)
	}
	if got.Readiness() != Ready {
		t.Errorf("Readiness = %s, want ready", got.Readiness())
	}
}

func TestSelectBowlerRejectsConsecutiveOvers(t *testing.T) {
	cur := readyInnings(t)
	for i := 0; i < 6; i++ {
		cur = mustApply(t, cur, testRules(), BallInput{}).Innings
	}
	if cur.Readiness() != AwaitingBowler {
		t.Fatalf("Readiness = %s, want awaiting bowler", cur.Readiness())
	}

	if err := cur.SelectBowler(b1); !errors.Is(err, ErrValidation) {
		t.Errorf("same bowler for consecutive overs: err = %v, want ErrValidation", err)
	}
	if err := cur.SelectBowler(b2); err != nil {
		t.Errorf("fresh bowler rejected: %v", err)
	}
	if cur.Readiness() != Ready {
		t.Errorf("Readiness = %s, want ready", cur.Readiness())
	}
}

func TestSelectBowlerRejectsMidOver(t *testing.T) {
	inn := readyInnings(t)
	if err := inn.SelectBowler(b2); !errors.Is(err, ErrInvalidState) {
		t.Errorf("bowler change mid-over: err = %v, want ErrInvalidState", err)
	}
}
