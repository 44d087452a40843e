package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/poloclub/polo-league/internal/models"
)

var tournamentColumns = map[string]bool{
	"name": true, "grade": true, "start_date": true, "end_date": true, "created_at": true,
}

// CreateTournament inserts a new tournament.
func (s *Store) CreateTournament(t *models.Tournament) error {
	return s.db.Create(t).Error
}

// GetTournament fetches a tournament with its clubs, fields, matches, and awards.
func (s *Store) GetTournament(id uuid.UUID) (*models.Tournament, error) {
	var t models.Tournament
	err := s.db.Preload("Clubs").Preload("Fields").
		Preload("Matches").Preload("Awards").
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTournament saves the full tournament record.
func (s *Store) UpdateTournament(t *models.Tournament) error {
	return s.db.Save(t).Error
}

// ListTournaments returns tournaments matching the options.
func (s *Store) ListTournaments(opts ListOptions) ([]models.Tournament, error) {
	var ts []models.Tournament
	err := applyList(s.db.Model(&models.Tournament{}), opts, tournamentColumns).Find(&ts).Error
	return ts, err
}

// AttachClub associates a club with the tournament.
func (s *Store) AttachClub(tournamentID, clubID uuid.UUID) error {
	t := models.Tournament{ID: tournamentID}
	c := models.Club{ID: clubID}
	return s.db.Model(&t).Association("Clubs").Append(&c)
}

// DetachClub removes a club association.
func (s *Store) DetachClub(tournamentID, clubID uuid.UUID) error {
	t := models.Tournament{ID: tournamentID}
	c := models.Club{ID: clubID}
	return s.db.Model(&t).Association("Clubs").Delete(&c)
}

// AttachField associates a field (venue) with the tournament.
func (s *Store) AttachField(tournamentID, fieldID uuid.UUID) error {
	t := models.Tournament{ID: tournamentID}
	f := models.Field{ID: fieldID}
	return s.db.Model(&t).Association("Fields").Append(&f)
}

// DetachField removes a field association.
func (s *Store) DetachField(tournamentID, fieldID uuid.UUID) error {
	t := models.Tournament{ID: tournamentID}
	f := models.Field{ID: fieldID}
	return s.db.Model(&t).Association("Fields").Delete(&f)
}

// DeleteTournament removes a tournament. Every tournament relationship is
// nullify: matches, awards, and duties keep their rows with the tournament
// reference cleared, and the club/field associations are dropped. The played
// history stays intact.
func (s *Store) DeleteTournament(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Match{}).Where("tournament_id = ?", id).
			Update("tournament_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Award{}).Where("tournament_id = ?", id).
			Update("tournament_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Duty{}).Where("tournament_id = ?", id).
			Update("tournament_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tournament_clubs WHERE tournament_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM tournament_fields WHERE tournament_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Tournament{}, "id = ?", id).Error
	})
}
