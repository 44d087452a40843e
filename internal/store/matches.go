package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

// Errors returned by chukker snapshot operations.
var (
	// ErrNoChukkerInPlay is returned when a chukker snapshot is requested
	// before the first chukker has started.
	ErrNoChukkerInPlay = errors.New("no chukker in play to snapshot")
	// ErrChukkerAlreadySnapshotted is returned when the current chukker
	// already has a snapshot row; snapshots are append-only, one per chukker.
	ErrChukkerAlreadySnapshotted = errors.New("chukker already snapshotted")
)

var matchColumns = map[string]bool{
	"date": true, "status": true, "tournament_id": true, "field_id": true,
	"team_a_id": true, "team_b_id": true, "created_at": true,
}

// CreateMatch inserts a new match.
func (s *Store) CreateMatch(m *models.Match) error {
	return s.db.Create(m).Error
}

// GetMatch fetches a match by ID with its tournament, field, and teams.
func (s *Store) GetMatch(id uuid.UUID) (*models.Match, error) {
	var m models.Match
	err := s.db.Preload("Tournament").Preload("Field").
		Preload("TeamA").Preload("TeamB").
		First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMatch saves the full match record.
func (s *Store) UpdateMatch(m *models.Match) error {
	return s.db.Save(m).Error
}

// ListMatches returns matches matching the options.
func (s *Store) ListMatches(opts ListOptions) ([]models.Match, error) {
	var matches []models.Match
	err := applyList(s.db.Model(&models.Match{}), opts, matchColumns).Find(&matches).Error
	return matches, err
}

// TeamMatches returns every match the team participated in, on either side,
// ordered by date then creation for a deterministic timeline.
func (s *Store) TeamMatches(teamID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := s.db.Where("team_a_id = ? OR team_b_id = ?", teamID, teamID).
		Order("date, created_at").Find(&matches).Error
	return matches, err
}

// MatchesByIDs fetches the given matches into a lookup map, the shape the
// stats engine takes for resolving statistic rows to tournaments.
func (s *Store) MatchesByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Match, error) {
	byID := make(map[uuid.UUID]models.Match, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var matches []models.Match
	if err := s.db.Where("id IN ?", ids).Find(&matches).Error; err != nil {
		return nil, err
	}
	for _, m := range matches {
		byID[m.ID] = m
	}
	return byID, nil
}

// TransitionMatch moves a match to a new status under the state-machine
// rules, persisting the change (and any start/end timestamp it stamps).
func (s *Store) TransitionMatch(id uuid.UUID, to models.MatchStatus) (*models.Match, error) {
	var m models.Match
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		if err := m.Transition(to, time.Now().UTC()); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordScore updates the running score of a live match.
func (s *Store) RecordScore(id uuid.UUID, teamA, teamB int) (*models.Match, error) {
	var m models.Match
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		if err := m.RecordScore(teamA, teamB); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// AdvanceChukker moves a live match into its next chukker.
func (s *Store) AdvanceChukker(id uuid.UUID) (*models.Match, error) {
	var m models.Match
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, "id = ?", id).Error; err != nil {
			return err
		}
		if err := m.AdvanceChukker(); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// AppendChukkerScore snapshots the current chukker's running score as an
// immutable ChukkerScore row. There is deliberately no update path for these
// rows — the sequence of snapshots is the match's replayable timeline.
func (s *Store) AppendChukkerScore(matchID uuid.UUID) (*models.ChukkerScore, error) {
	var snap models.ChukkerScore
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var m models.Match
		if err := tx.First(&m, "id = ?", matchID).Error; err != nil {
			return err
		}
		if m.Status != models.MatchStatusInProgress {
			return models.ErrMatchNotLive
		}
		if m.CurrentChukker < 1 {
			return ErrNoChukkerInPlay
		}
		var taken int64
		if err := tx.Model(&models.ChukkerScore{}).
			Where("match_id = ? AND chukker_number = ?", m.ID, m.CurrentChukker).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrChukkerAlreadySnapshotted
		}
		snap = models.ChukkerScore{
			MatchID:       m.ID,
			ChukkerNumber: m.CurrentChukker,
			TeamAScore:    m.TeamAScore,
			TeamBScore:    m.TeamBScore,
		}
		return tx.Create(&snap).Error
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// DeleteMatch removes a match, cascading its player statistics, horse
// statistics, and chukker scores, and clearing the match context on any
// duties, atomically. The tournament/field/team back-references live on the
// match row itself and disappear with it.
func (s *Store) DeleteMatch(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return deleteMatchesTx(tx, []uuid.UUID{id})
	})
}

// deleteMatchesTx applies the match cascade for a set of matches inside an
// existing transaction. Shared by DeleteMatch and by the team and field
// deletes, whose cascades reach matches transitively.
func deleteMatchesTx(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Delete(&models.PlayerStatistic{}, "match_id IN ?", ids).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.HorseStatistic{}, "match_id IN ?", ids).Error; err != nil {
		return err
	}
	if err := tx.Delete(&models.ChukkerScore{}, "match_id IN ?", ids).Error; err != nil {
		return err
	}
	if err := tx.Model(&models.Duty{}).Where("match_id IN ?", ids).
		Update("match_id", nil).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Match{}, "id IN ?", ids).Error
}

// matchIDsWhere collects the IDs of matches satisfying a condition, for
// feeding deleteMatchesTx.
func matchIDsWhere(tx *gorm.DB, query string, args ...any) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := tx.Model(&models.Match{}).Where(query, args...).Pluck("id", &ids).Error
	return ids, err
}
