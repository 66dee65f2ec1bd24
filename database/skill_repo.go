package database

import (
	"github.com/asadullah-dev/portfolio-site-backend/errs"
	"github.com/asadullah-dev/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns all skill groups in insertion order.
func (r *SkillRepo) FindAll() ([]models.Skill, error) {
	if r.db == nil {
		return nil, errs.NewStoreUnavailableError("list skills")
	}

	var skills []models.Skill
	if err := r.db.Order("id").Find(&skills).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "skills", err)
	}
	return skills, nil
}

// Add inserts a new skill group and fills in its store-assigned ID.
func (r *SkillRepo) Add(skill *models.Skill) error {
	if r.db == nil {
		return errs.NewStoreUnavailableError("create skill")
	}

	if err := r.db.Create(skill).Error; err != nil {
		return errs.NewDatabaseError("create", "skill", err)
	}
	return nil
}
