package services

import (
	"github.com/asadullah-dev/portfolio-site-backend/content"
	"github.com/asadullah-dev/portfolio-site-backend/database"
	"github.com/rs/zerolog/log"
)

// SeedCatalog populates an empty store with the fixed résumé catalog:
// skills first, then projects, then experience, each in catalog order so
// the store-assigned IDs come out the same on every fresh database.
//
// Idempotence rests solely on the empty-projects check, so at most one
// seeding event happens per store lifetime. That check is not a lock: two
// processes racing a brand-new database can both observe it empty and both
// seed. Accepted limitation; add a uniqueness constraint in the store if it
// ever matters.
func SeedCatalog(db database.Database) error {
	projects, err := db.ProjectRepo().FindAll()
	if err != nil {
		return err
	}
	if len(projects) > 0 {
		log.Debug().Int("projects", len(projects)).Msg("Catalog already seeded, skipping")
		return nil
	}

	catalog := content.FixedCatalog()

	for i := range catalog.Skills {
		if err := db.SkillRepo().Add(&catalog.Skills[i]); err != nil {
			return err
		}
	}
	for i := range catalog.Projects {
		if err := db.ProjectRepo().Add(&catalog.Projects[i]); err != nil {
			return err
		}
	}
	for i := range catalog.Experience {
		if err := db.ExperienceRepo().Add(&catalog.Experience[i]); err != nil {
			return err
		}
	}

	log.Info().
		Int("skills", len(catalog.Skills)).
		Int("projects", len(catalog.Projects)).
		Int("experience", len(catalog.Experience)).
		Msg("Seeded content catalog")

	return nil
}
