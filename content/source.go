package content

import (
	"github.com/asadullah-dev/portfolio-site-backend/database"
	"github.com/asadullah-dev/portfolio-site-backend/models"
)

// Source is the read capability the presentation layer depends on. The
// variant is picked once at startup: StaticSource when no database is
// configured, BackedSource otherwise. Callers never branch on the mode
// again.
type Source interface {
	Projects() ([]models.Project, error)
	Skills() ([]models.Skill, error)
	Experience() ([]models.Experience, error)
}

// StaticSource serves the compiled-in catalog. It touches no store and
// never fails.
type StaticSource struct {
	catalog Catalog
}

// NewStaticSource builds a static source from the fixed catalog, assigning
// positional IDs so the payload shape matches what a seeded store returns.
func NewStaticSource() *StaticSource {
	catalog := FixedCatalog()
	for i := range catalog.Projects {
		catalog.Projects[i].ID = i + 1
	}
	for i := range catalog.Skills {
		catalog.Skills[i].ID = i + 1
	}
	for i := range catalog.Experience {
		catalog.Experience[i].ID = i + 1
	}
	return &StaticSource{catalog: catalog}
}

func (s *StaticSource) Projects() ([]models.Project, error) {
	return append([]models.Project(nil), s.catalog.Projects...), nil
}

func (s *StaticSource) Skills() ([]models.Skill, error) {
	return append([]models.Skill(nil), s.catalog.Skills...), nil
}

func (s *StaticSource) Experience() ([]models.Experience, error) {
	return append([]models.Experience(nil), s.catalog.Experience...), nil
}

// BackedSource serves catalog reads out of the content store.
type BackedSource struct {
	db database.Database
}

func NewBackedSource(db database.Database) *BackedSource {
	return &BackedSource{db: db}
}

func (s *BackedSource) Projects() ([]models.Project, error) {
	return s.db.ProjectRepo().FindAll()
}

func (s *BackedSource) Skills() ([]models.Skill, error) {
	return s.db.SkillRepo().FindAll()
}

func (s *BackedSource) Experience() ([]models.Experience, error) {
	return s.db.ExperienceRepo().FindAll()
}
