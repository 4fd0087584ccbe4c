package match

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jagdish-cm/cricketora-sub000/internal/scoring"
	"github.com/jagdish-cm/cricketora-sub000/utils"
)

// Broadcaster pushes score updates to live viewers of a match. Delivery
// is best-effort; failures never affect persisted state.
type Broadcaster interface {
	Broadcast(matchID string, payload interface{})
}

// ScoreUpdate is the compact notification pushed after every ball.
type ScoreUpdate struct {
	MatchID    string            `json:"match_id"`
	Innings    int               `json:"innings"`
	TotalRuns  int               `json:"total_runs"`
	Wickets    int               `json:"wickets"`
	Overs      string            `json:"overs"`
	Striker    string            `json:"striker"`
	NonStriker string            `json:"non_striker"`
	Bowler     string            `json:"bowler"`
	LastBall   scoring.BallEvent `json:"last_ball"`
}

// RecordBallResult is what a successful ball submission returns.
type RecordBallResult struct {
	Ball        scoring.BallEvent   `json:"ball"`
	Transitions scoring.Transitions `json:"transitions"`
	ScoreUpdate ScoreUpdate         `json:"score_update"`
}

// MatchService orchestrates match lifecycle and ball-event processing.
// All scoring math lives in the scoring package; this layer adds match
// loading, per-match mutual exclusion and the broadcast side-channel.
type MatchService struct {
	repo        MatchRepository
	broadcaster Broadcaster
	codeLength  int
}

// NewMatchService creates a new match service.
func NewMatchService(repo MatchRepository, broadcaster Broadcaster, codeLength int) *MatchService {
	return &MatchService{repo: repo, broadcaster: broadcaster, codeLength: codeLength}
}

// placeholderTeam builds a team with a fixed-size roster of placeholder
// players, renameable at setup.
func placeholderTeam(name string) TeamDoc {
	t := TeamDoc{ID: uuid.NewString(), Name: name}
	for i := 0; i < RosterSize; i++ {
		t.Players = append(t.Players, Player{
			ID:   uuid.NewString(),
			Name: fmt.Sprintf("Player %d", i+1),
		})
	}
	return t
}

// CreateMatch creates a fresh match in not_started state and returns it
// with the plaintext access code (shown once; only the hash is stored).
func (s *MatchService) CreateMatch(scorerEmail string) (*Match, string, error) {
	code, err := utils.GenerateAccessCode(s.codeLength)
	if err != nil {
		return nil, "", fmt.Errorf("generate access code: %w", err)
	}
	hash, err := utils.HashAccessCode(code)
	if err != nil {
		return nil, "", fmt.Errorf("hash access code: %w", err)
	}

	m := &Match{
		ID:             uuid.NewString(),
		Team1:          placeholderTeam("Team 1"),
		Team2:          placeholderTeam("Team 2"),
		TotalOvers:     20,
		Status:         StatusNotStarted,
		ScorerEmail:    scorerEmail,
		AccessCodeHash: hash,
		Innings:        InningsList{},
		ScoringOptions: ScoringOptions{IsLBWValid: true, ByesValid: true, LegByesValid: true},
	}
	if err := s.repo.Create(m); err != nil {
		return nil, "", fmt.Errorf("create match: %w", err)
	}
	return m, code, nil
}

// GetMatch loads a match by id.
func (s *MatchService) GetMatch(id string) (*Match, error) {
	return s.repo.GetByID(id)
}

// VerifyAccess checks a scorer's email and access code against the match.
func (s *MatchService) VerifyAccess(id, email, code string) (*Match, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m.ScorerEmail != email || !utils.CheckAccessCode(m.AccessCodeHash, code) {
		return nil, fmt.Errorf("%w: access code mismatch", scoring.ErrValidation)
	}
	return m, nil
}

// SetupRequest carries the pre-match configuration.
type SetupRequest struct {
	Team1Name      string            `json:"team1_name"`
	Team2Name      string            `json:"team2_name"`
	PlayerNames    map[string]string `json:"player_names"` // player id -> new name
	TossWonBy      string            `json:"toss_won_by"`
	ChoseTo        TossDecision      `json:"chose_to"`
	TotalOvers     int               `json:"total_overs"`
	ScoringOptions *ScoringOptions   `json:"scoring_options"`
}

// SetupMatch applies team names, roster renames, toss and rules. Only
// allowed before the first ball.
func (s *MatchService) SetupMatch(id string, req SetupRequest) (*Match, error) {
	return s.repo.UpdateWithLock(id, func(m *Match) error {
		if m.Status != StatusNotStarted {
			return fmt.Errorf("%w: match already started", scoring.ErrInvalidState)
		}
		if req.Team1Name != "" {
			m.Team1.Name = req.Team1Name
		}
		if req.Team2Name != "" {
			m.Team2.Name = req.Team2Name
		}
		for id, name := range req.PlayerNames {
			renamePlayer(&m.Team1, id, name)
			renamePlayer(&m.Team2, id, name)
		}
		if req.TossWonBy != "" {
			if _, ok := m.TeamByID(req.TossWonBy); !ok {
				return fmt.Errorf("%w: toss winner %s is not in this match", scoring.ErrValidation, req.TossWonBy)
			}
			m.TossWonBy = req.TossWonBy
		}
		if req.ChoseTo != "" {
			if req.ChoseTo != ChoseToBat && req.ChoseTo != ChoseToBowl {
				return fmt.Errorf("%w: toss decision must be bat or bowl", scoring.ErrValidation)
			}
			m.ChoseTo = req.ChoseTo
		}
		if req.TotalOvers > 0 {
			m.TotalOvers = req.TotalOvers
		}
		if req.ScoringOptions != nil {
			m.ScoringOptions = *req.ScoringOptions
		}
		return nil
	})
}

func renamePlayer(t *TeamDoc, id, name string) {
	for i := range t.Players {
		if t.Players[i].ID == id && name != "" {
			t.Players[i].Name = name
		}
	}
}

// StartMatch opens the first innings according to the toss and moves the
// match to in_progress.
func (s *MatchService) StartMatch(id string) (*Match, error) {
	return s.repo.UpdateWithLock(id, func(m *Match) error {
		if m.Status != StatusNotStarted {
			return fmt.Errorf("%w: match already started", scoring.ErrInvalidState)
		}
		if m.TossWonBy == "" || m.ChoseTo == "" {
			return fmt.Errorf("%w: toss not recorded", scoring.ErrInvalidState)
		}

		batting, bowling := m.Team1.ID, m.Team2.ID
		wonByTeam2 := m.TossWonBy == m.Team2.ID
		if wonByTeam2 == (m.ChoseTo == ChoseToBat) {
			batting, bowling = m.Team2.ID, m.Team1.ID
		}

		m.Innings = InningsList{scoring.NewInnings(batting, bowling)}
		m.CurrentInnings = 0
		m.Status = StatusInProgress
		return nil
	})
}

// SelectOpeners seats the opening pair and the first bowler.
func (s *MatchService) SelectOpeners(id, striker, nonStriker, bowler string) (*Match, error) {
	return s.repo.UpdateWithLock(id, func(m *Match) error {
		inn, err := s.activeInnings(m)
		if err != nil {
			return err
		}
		batting, _ := m.TeamByID(inn.BattingTeamID)
		bowling, _ := m.TeamByID(inn.BowlingTeamID)
		for _, id := range []string{striker, nonStriker} {
			if !batting.HasPlayer(id) {
				return fmt.Errorf("%w: batsman %s is not in the batting side", scoring.ErrValidation, id)
			}
		}
		if !bowling.HasPlayer(bowler) {
			return fmt.Errorf("%w: bowler %s is not in the bowling side", scoring.ErrValidation, bowler)
		}

		if err := inn.SelectBatsman(striker); err != nil {
			return err
		}
		if err := inn.SelectBatsman(nonStriker); err != nil {
			return err
		}
		return inn.SelectBowler(bowler)
	})
}

// SelectBatsman seats the incoming batsman after a wicket.
func (s *MatchService) SelectBatsman(id, playerID string) (*Match, error) {
	return s.repo.UpdateWithLock(id, func(m *Match) error {
		inn, err := s.activeInnings(m)
		if err != nil {
			return err
		}
		if batting, _ := m.TeamByID(inn.BattingTeamID); !batting.HasPlayer(playerID) {
			return fmt.Errorf("%w: batsman %s is not in the batting side", scoring.ErrValidation, playerID)
		}
		return inn.SelectBatsman(playerID)
	})
}

// SelectBowler sets the bowler for the next over.
func (s *MatchService) SelectBowler(id, playerID string) (*Match, error) {
	return s.repo.UpdateWithLock(id, func(m *Match) error {
		inn, err := s.activeInnings(m)
		if err != nil {
			return err
		}
		if bowling, _ := m.TeamByID(inn.BowlingTeamID); !bowling.HasPlayer(playerID) {
			return fmt.Errorf("%w: bowler %s is not in the bowling side", scoring.ErrValidation, playerID)
		}
		return inn.SelectBowler(playerID)
	})
}

// RecordBall is the single entry point for scoring a delivery: it applies
// the event under the per-match lock, reacts to innings/match transitions,
// persists the whole document atomically and then notifies live viewers.
func (s *MatchService) RecordBall(id string, in scoring.BallInput) (*RecordBallResult, error) {
	var (
		out        RecordBallResult
		applied    *scoring.Innings
		appliedIdx int
	)

	m, err := s.repo.UpdateWithLock(id, func(m *Match) error {
		inn, err := s.activeInnings(m)
		if err != nil {
			return err
		}

		res, err := scoring.Apply(inn, m.Rules(), in)
		if err != nil {
			return err
		}
		applied, appliedIdx = res.Innings, m.CurrentInnings
		m.Innings[m.CurrentInnings] = res.Innings

		if res.Transitions.InningsCompleted {
			if res.Transitions.MatchCompleted {
				m.Status = StatusCompleted
			} else {
				m.Innings = append(m.Innings, scoring.NextInnings(res.Innings))
				m.CurrentInnings = len(m.Innings) - 1
			}
		}

		out = RecordBallResult{Ball: res.Ball, Transitions: res.Transitions}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out.ScoreUpdate = ScoreUpdate{
		MatchID:    m.ID,
		Innings:    appliedIdx,
		TotalRuns:  applied.TotalRuns,
		Wickets:    applied.Wickets,
		Overs:      applied.OversBowled(),
		Striker:    applied.OnStrike,
		NonStriker: applied.NonStriker(),
		Bowler:     applied.CurrentBowler,
		LastBall:   out.Ball,
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(m.ID, out.ScoreUpdate)
	}
	return &out, nil
}

// activeInnings validates match status and innings index before scoring.
func (s *MatchService) activeInnings(m *Match) (*scoring.Innings, error) {
	if m.Status != StatusInProgress {
		return nil, fmt.Errorf("%w: match is %s", scoring.ErrInvalidState, m.Status)
	}
	return m.ActiveInnings()
}
