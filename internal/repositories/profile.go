package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"equihire/screening-engine/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindByCandidateID(ctx context.Context, candidateID string) (*models.AnonymousProfile, error)
	UpdateScreening(ctx context.Context, candidateID string, data *ScreeningUpdateData) error
}

type ScreeningUpdateData struct {
	Skills          []string
	Status          models.ScreeningStatus
	ExperienceLevel string
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByCandidateID(ctx context.Context, candidateID string) (*models.AnonymousProfile, error) {
	var profile models.AnonymousProfile
	if err := r.db.WithContext(ctx).Where("candidate_id = ?", candidateID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &profile, nil
}

// UpdateScreening writes the extracted skills and screening status for the
// candidate's profile row.
func (r *profileRepository) UpdateScreening(ctx context.Context, candidateID string, data *ScreeningUpdateData) error {
	update := &models.AnonymousProfile{
		Skills:          data.Skills,
		Status:          data.Status,
		ExperienceLevel: data.ExperienceLevel,
		UpdatedAt:       time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.AnonymousProfile{}).
		Where("candidate_id = ?", candidateID).
		Select("skills", "status", "experience_level", "updated_at").
		Updates(update)

	if result.Error != nil {
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}

	return nil
}
