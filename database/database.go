package database

import (
	"github.com/asadullah-dev/portfolio-site-backend/errs"
	"github.com/asadullah-dev/portfolio-site-backend/models"
	"gorm.io/gorm"
)

// Database aggregates the per-entity repositories over a shared GORM
// instance. A zero-value or New(nil) Database is legal and represents
// static mode: every repository operation then fails fast with the
// store-unavailable error instead of hanging or silently no-op-ing.
type Database struct {
	db                 *gorm.DB
	projectRepo        *ProjectRepo
	skillRepo          *SkillRepo
	experienceRepo     *ExperienceRepo
	contactMessageRepo *ContactMessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                 db,
		projectRepo:        NewProjectRepo(db),
		skillRepo:          NewSkillRepo(db),
		experienceRepo:     NewExperienceRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
	}
}

// Configured reports whether a backing store is attached. The router only
// registers the /api routes when this is true.
func (d Database) Configured() bool {
	return d.db != nil
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

// Migrate creates or updates the four content tables.
func (d Database) Migrate() error {
	if d.db == nil {
		return errs.NewStoreUnavailableError("migrate schema")
	}
	return d.db.AutoMigrate(
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.ContactMessage{},
	)
}
