package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"craftfolio/internal/models"
)

var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	FindByID(db *gorm.DB, id uint) (*models.PortfolioItem, error)
	FindAll(db *gorm.DB) ([]models.PortfolioItem, error)
	FindFeatured(db *gorm.DB, limit int) ([]models.PortfolioItem, error)
	Update(db *gorm.DB, item *models.PortfolioItem) error
	Delete(db *gorm.DB, item *models.PortfolioItem) error
}

type PortfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &PortfolioRepositoryImpl{}
}

func (r *PortfolioRepositoryImpl) Create(db *gorm.DB, item *models.PortfolioItem) error {
	if item.DateCreated.IsZero() {
		item.DateCreated = time.Now().UTC()
	}
	return db.Create(item).Error
}

func (r *PortfolioRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns every item, newest first.
func (r *PortfolioRepositoryImpl) FindAll(db *gorm.DB) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Order("date_created DESC").Find(&items).Error
	return items, err
}

// FindFeatured returns up to limit featured items, newest first. The
// homepage calls this with limit 3.
func (r *PortfolioRepositoryImpl) FindFeatured(db *gorm.DB, limit int) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("is_featured = ?", true).
		Order("date_created DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *PortfolioRepositoryImpl) Update(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Save(item).Error
}

func (r *PortfolioRepositoryImpl) Delete(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Delete(item).Error
}
