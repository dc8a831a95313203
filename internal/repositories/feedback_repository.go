package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"craftfolio/internal/models"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackRepository interface {
	Create(db *gorm.DB, fb *models.Feedback) error
	FindByID(db *gorm.DB, id uint) (*models.Feedback, error)
	FindAll(db *gorm.DB) ([]models.Feedback, error)
	Delete(db *gorm.DB, fb *models.Feedback) error
}

type FeedbackRepositoryImpl struct{}

func NewFeedbackRepository() FeedbackRepository {
	return &FeedbackRepositoryImpl{}
}

func (r *FeedbackRepositoryImpl) Create(db *gorm.DB, fb *models.Feedback) error {
	if fb.DateSubmitted.IsZero() {
		fb.DateSubmitted = time.Now().UTC()
	}
	return db.Create(fb).Error
}

func (r *FeedbackRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.Feedback, error) {
	var fb models.Feedback
	err := db.First(&fb, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return &fb, nil
}

// FindAll returns every submission, newest first.
func (r *FeedbackRepositoryImpl) FindAll(db *gorm.DB) ([]models.Feedback, error) {
	var fbs []models.Feedback
	err := db.Order("date_submitted DESC").Find(&fbs).Error
	return fbs, err
}

func (r *FeedbackRepositoryImpl) Delete(db *gorm.DB, fb *models.Feedback) error {
	return db.Delete(fb).Error
}
