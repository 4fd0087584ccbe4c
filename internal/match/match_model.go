package match

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jagdish-cm/cricketora-sub000/internal/scoring"
)

// MatchStatus is the match-level lifecycle state.
type MatchStatus string

const (
	StatusNotStarted MatchStatus = "not_started"
	StatusInProgress MatchStatus = "in_progress"
	StatusCompleted  MatchStatus = "completed"
)

// TossDecision is what the toss winner chose to do first.
type TossDecision string

const (
	ChoseToBat  TossDecision = "bat"
	ChoseToBowl TossDecision = "bowl"
)

// RosterSize is the fixed number of players per side.
const RosterSize = 11

// Player is one roster entry. Names start as placeholders and may be
// renamed in place before the match starts.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeamDoc is a team embedded in the match document. Teams have no
// identity outside the match that owns them.
type TeamDoc struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// HasPlayer reports whether the roster contains the given player id.
func (t TeamDoc) HasPlayer(id string) bool {
	for _, p := range t.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ScoringOptions are the per-match rule toggles chosen at setup.
type ScoringOptions struct {
	IsLBWValid   bool `json:"is_lbw_valid"`
	ByesValid    bool `json:"byes_valid"`
	LegByesValid bool `json:"leg_byes_valid"`
}

// InningsList is the ordered innings of a match, stored as one JSONB column.
type InningsList []*scoring.Innings

// Match is the aggregate root and the sole unit of durable persistence
// and concurrency control. Innings, overs and stats are embedded
// documents with no lifecycle of their own.
type Match struct {
	ID string `json:"id" gorm:"primaryKey;type:uuid"`

	Team1 TeamDoc `json:"team1" gorm:"type:jsonb"`
	Team2 TeamDoc `json:"team2" gorm:"type:jsonb"`

	TossWonBy  string       `json:"toss_won_by,omitempty"`
	ChoseTo    TossDecision `json:"chose_to,omitempty"`
	TotalOvers int          `json:"total_overs"`

	ScoringOptions ScoringOptions `json:"scoring_options" gorm:"type:jsonb"`

	Innings        InningsList `json:"innings" gorm:"type:jsonb"`
	CurrentInnings int         `json:"current_innings"`
	Status         MatchStatus `json:"match_status" gorm:"index;default:'not_started'"`

	ScorerEmail    string `json:"scorer_email" gorm:"index"`
	AccessCodeHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Rules assembles the engine parameters from the match configuration.
func (m *Match) Rules() scoring.Rules {
	return scoring.Rules{
		TotalOvers:   m.TotalOvers,
		LBWValid:     m.ScoringOptions.IsLBWValid,
		ByesValid:    m.ScoringOptions.ByesValid,
		LegByesValid: m.ScoringOptions.LegByesValid,
		FinalInnings: m.CurrentInnings >= 1,
	}
}

// ActiveInnings returns the innings currently being scored.
func (m *Match) ActiveInnings() (*scoring.Innings, error) {
	if m.CurrentInnings < 0 || m.CurrentInnings >= len(m.Innings) {
		return nil, fmt.Errorf("%w: innings index %d out of range", scoring.ErrInvalidState, m.CurrentInnings)
	}
	return m.Innings[m.CurrentInnings], nil
}

// TeamByID resolves a team document by id.
func (m *Match) TeamByID(id string) (TeamDoc, bool) {
	switch id {
	case m.Team1.ID:
		return m.Team1, true
	case m.Team2.ID:
		return m.Team2, true
	}
	return TeamDoc{}, false
}

// --- JSONB plumbing ---

func (t TeamDoc) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *TeamDoc) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("TeamDoc: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, t)
}

func (o ScoringOptions) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *ScoringOptions) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("ScoringOptions: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, o)
}

func (l InningsList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(InningsList{})
	}
	return json.Marshal(l)
}

func (l *InningsList) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("InningsList: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, l)
}
