package database

import (
	"github.com/asadullah-dev/portfolio-site-backend/errs"
	"github.com/asadullah-dev/portfolio-site-backend/models"
	"gorm.io/gorm"
)

// ContactMessageRepo is append-only: submissions are inserted and never
// listed back through this system. There is deliberately no FindAll.
type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Add inserts a new contact message and fills in its store-assigned ID.
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	if r.db == nil {
		return errs.NewStoreUnavailableError("create contact message")
	}

	if err := r.db.Create(message).Error; err != nil {
		return errs.NewDatabaseError("create", "contact message", err)
	}
	return nil
}
