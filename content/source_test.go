package content

import (
	"testing"

	"github.com/asadullah-dev/portfolio-site-backend/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBackedSource(t *testing.T) (*BackedSource, database.Database) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := database.New(gormDB)
	require.NoError(t, db.Migrate())

	return NewBackedSource(db), db
}

func TestBackedSourceDelegatesToStore(t *testing.T) {
	source, db := newBackedSource(t)

	catalog := FixedCatalog()
	require.NoError(t, db.ProjectRepo().Add(&catalog.Projects[0]))
	require.NoError(t, db.SkillRepo().Add(&catalog.Skills[0]))
	require.NoError(t, db.ExperienceRepo().Add(&catalog.Experience[0]))

	projects, err := source.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, catalog.Projects[0].Title, projects[0].Title)

	skills, err := source.Skills()
	require.NoError(t, err)
	require.Len(t, skills, 1)

	entries, err := source.Experience()
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSourceVariants(t *testing.T) {
	// Both variants satisfy the capability the presentation layer uses; the
	// mode choice happens once at startup and nowhere else.
	var _ Source = NewStaticSource()
	var _ Source = NewBackedSource(database.New(nil))
}
