package database

import (
	"testing"

	"github.com/asadullah-dev/portfolio-site-backend/errs"
	"github.com/asadullah-dev/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDatabase(t *testing.T) Database {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty in-memory database.
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	db := New(gormDB)
	require.NoError(t, db.Migrate())
	return db
}

func TestProjectRoundTrip(t *testing.T) {
	db := newTestDatabase(t)

	link := "https://example.com/project"
	project := models.Project{
		Title:        "Islam360 & Hindi Hadith 360",
		Role:         "Lead Android Developer",
		Description:  "Prayer timings and hadith apps.",
		TechStack:    []string{"Kotlin", "MVVM"},
		Achievements: []string{"4.8+ rating on Google Play"},
		Link:         &link,
	}
	require.NoError(t, db.ProjectRepo().Add(&project))
	assert.NotZero(t, project.ID, "store assigns the ID on insert")

	projects, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 1)

	got := projects[0]
	assert.Equal(t, project.ID, got.ID)
	assert.Equal(t, project.Title, got.Title)
	assert.Equal(t, project.Role, got.Role)
	assert.Equal(t, project.Description, got.Description)
	assert.Equal(t, []string{"Kotlin", "MVVM"}, []string(got.TechStack))
	assert.Equal(t, []string{"4.8+ rating on Google Play"}, []string(got.Achievements))
	require.NotNil(t, got.Link)
	assert.Equal(t, link, *got.Link)
}

func TestSkillRoundTrip(t *testing.T) {
	db := newTestDatabase(t)

	skill := models.Skill{
		Category: "Languages",
		Items:    []string{"Kotlin", "Java", "TypeScript"},
	}
	require.NoError(t, db.SkillRepo().Add(&skill))

	skills, err := db.SkillRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, "Languages", skills[0].Category)
	assert.Equal(t, []string{"Kotlin", "Java", "TypeScript"}, []string(skills[0].Items), "item order survives the round trip")
}

func TestExperienceRoundTrip(t *testing.T) {
	db := newTestDatabase(t)

	entry := models.Experience{
		Role:        "Senior Software Engineer",
		Company:     "Arbisoft",
		Period:      "August 2021 – Present",
		Description: "Leading cross-functional teams.",
	}
	require.NoError(t, db.ExperienceRepo().Add(&entry))

	entries, err := db.ExperienceRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.Role, entries[0].Role)
	assert.Equal(t, entry.Company, entries[0].Company)
	assert.Equal(t, entry.Period, entries[0].Period)
}

func TestFindAllPreservesInsertionOrder(t *testing.T) {
	db := newTestDatabase(t)

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		project := models.Project{Title: title, Role: "r", Description: "d", TechStack: []string{}, Achievements: []string{}}
		require.NoError(t, db.ProjectRepo().Add(&project))
	}

	first, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, first, 3)
	for i, project := range first {
		assert.Equal(t, titles[i], project.Title)
	}

	// Consecutive reads with no intervening writes return the identical sequence.
	second, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestContactMessageAppendOnly(t *testing.T) {
	db := newTestDatabase(t)

	message := models.ContactMessage{Name: "Jane", Email: "jane@x.com", Message: "hi"}
	require.NoError(t, db.ContactMessageRepo().Add(&message))
	assert.NotZero(t, message.ID)

	another := models.ContactMessage{Name: "Joe", Email: "joe@x.com", Message: "hello"}
	require.NoError(t, db.ContactMessageRepo().Add(&another))
	assert.Greater(t, another.ID, message.ID)
}

func TestUnconfiguredStoreFailsFast(t *testing.T) {
	db := New(nil)

	assert.False(t, db.Configured())

	_, err := db.ProjectRepo().FindAll()
	assert.True(t, errs.IsStoreUnavailable(err))

	_, err = db.SkillRepo().FindAll()
	assert.True(t, errs.IsStoreUnavailable(err))

	_, err = db.ExperienceRepo().FindAll()
	assert.True(t, errs.IsStoreUnavailable(err))

	err = db.ProjectRepo().Add(&models.Project{Title: "t"})
	assert.True(t, errs.IsStoreUnavailable(err))

	err = db.SkillRepo().Add(&models.Skill{Category: "c"})
	assert.True(t, errs.IsStoreUnavailable(err))

	err = db.ExperienceRepo().Add(&models.Experience{Role: "r"})
	assert.True(t, errs.IsStoreUnavailable(err))

	err = db.ContactMessageRepo().Add(&models.ContactMessage{Name: "n"})
	assert.True(t, errs.IsStoreUnavailable(err))

	assert.True(t, errs.IsStoreUnavailable(db.Migrate()))
}
