package database

import (
	"github.com/asadullah-dev/portfolio-site-backend/errs"
	"github.com/asadullah-dev/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns all projects in insertion order.
func (r *ProjectRepo) FindAll() ([]models.Project, error) {
	if r.db == nil {
		return nil, errs.NewStoreUnavailableError("list projects")
	}

	var projects []models.Project
	if err := r.db.Order("id").Find(&projects).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "projects", err)
	}
	return projects, nil
}

// Add inserts a new project and fills in its store-assigned ID.
func (r *ProjectRepo) Add(project *models.Project) error {
	if r.db == nil {
		return errs.NewStoreUnavailableError("create project")
	}

	if err := r.db.Create(project).Error; err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}
