package database

import (
	"github.com/asadullah-dev/portfolio-site-backend/errs"
	"github.com/asadullah-dev/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns all experience entries in insertion order.
func (r *ExperienceRepo) FindAll() ([]models.Experience, error) {
	if r.db == nil {
		return nil, errs.NewStoreUnavailableError("list experience")
	}

	var entries []models.Experience
	if err := r.db.Order("id").Find(&entries).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "experience", err)
	}
	return entries, nil
}

// Add inserts a new experience entry and fills in its store-assigned ID.
func (r *ExperienceRepo) Add(entry *models.Experience) error {
	if r.db == nil {
		return errs.NewStoreUnavailableError("create experience")
	}

	if err := r.db.Create(entry).Error; err != nil {
		return errs.NewDatabaseError("create", "experience", err)
	}
	return nil
}
