package match

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no match exists for the given id.
var ErrNotFound = errors.New("match not found")

// MatchRepository defines the persistence boundary: fetch by id and an
// atomic read-modify-write keyed by match id.
type MatchRepository interface {
	Create(m *Match) error
	GetByID(id string) (*Match, error)

	// UpdateWithLock loads the match, hands it to fn under a per-match
	// exclusive lock and persists the mutated document in the same
	// transaction. If fn fails nothing is written.
	UpdateWithLock(id string, fn func(*Match) error) (*Match, error)
}

// GormMatchRepository implements MatchRepository using GORM.
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GormMatchRepository.
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// Create inserts a new match document.
func (r *GormMatchRepository) Create(m *Match) error {
	return r.db.Create(m).Error
}

// GetByID retrieves a match by id.
func (r *GormMatchRepository) GetByID(id string) (*Match, error) {
	var m Match
	result := r.db.First(&m, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &m, nil
}

// UpdateWithLock serializes concurrent writers on the same match id with
// a SELECT ... FOR UPDATE row lock, so two ball events submitted at once
// apply as if sequential.
func (r *GormMatchRepository) UpdateWithLock(id string, fn func(*Match) error) (*Match, error) {
	var m Match
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, "id = ?", id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return result.Error
		}
		if err := fn(&m); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}
