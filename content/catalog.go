package content

import (
	"github.com/asadullah-dev/portfolio-site-backend/models"
)

// Catalog is the fixed résumé content: the projects, skill groups, and
// experience entries shown on the site. There is exactly one catalog; the
// seeder writes it into the store on first run and the static source serves
// it directly when no store is configured.
type Catalog struct {
	Skills     []models.Skill
	Projects   []models.Project
	Experience []models.Experience
}

// FixedCatalog returns a fresh copy of the canonical catalog. Entries carry
// no IDs; the store assigns them on insert and the static source numbers
// them positionally.
func FixedCatalog() Catalog {
	link := "#"

	return Catalog{
		Skills: []models.Skill{
			{
				Category: "Languages",
				Items:    []string{"Kotlin", "Java", "TypeScript", "JavaScript", "PHP"},
			},
			{
				Category: "Mobile Platforms and Frameworks",
				Items:    []string{"Android (Native)", "React Native", "Moodle Mobile", "Ionic", "Angular"},
			},
			{
				Category: "Skills",
				Items:    []string{"Jetpack Compose", "XMLs", "React Native", "Coroutines", "Flow", "Retrofit", "ExoPlayer", "Room", "SQL Delight"},
			},
			{
				Category: "Architecture",
				Items:    []string{"MVVM", "Clean Architecture", "Multi-Module", "SOLID Principles"},
			},
			{
				Category: "Tools",
				Items:    []string{"Firebase (Crashlytics, Firestore)", "Hilt", "Dagger", "Git", "Mockito", "Xcode", "MySQL"},
			},
		},
		Projects: []models.Project{
			{
				Title:       "Islam360 & Hindi Hadith 360",
				Role:        "Lead Android Developer",
				Description: "Contributed to applications with 4.8+ ratings on Google Play through enhanced stability and user satisfaction.",
				TechStack:   []string{"Kotlin", "MVVM", "Jetpack Compose", "Mockito"},
				Achievements: []string{
					"Led development using Kotlin and MVVM architecture",
					"Implemented location-based prayer timings and interactive UI redesign",
					"Achieved ~90% code coverage by introducing Unit Testing",
					"Managed multi-lingual support and in-app purchases",
				},
				Link: &link,
			},
			{
				Title:       "Schoolgram (Moodle-Based E-Learning)",
				Role:        "Lead Developer for Mobile",
				Description: "Upgraded core codebase from Moodle Mobile 3.5.5 to 5.0.0, ensuring functionality of all custom components.",
				TechStack:   []string{"Ionic", "Angular", "Moodle Mobile"},
				Achievements: []string{
					"Migrated and refactored custom plugins/libraries",
					"Implemented customized app themes and multi-lingual support",
					"Defined and executed release processes for Play Store & App Store",
				},
				Link: &link,
			},
			{
				Title:       "ALW (Advanced Learning World)",
				Role:        "Key Android Developer",
				Description: "Built critical modules from scratch, including Assignment, Calendar, and Quiz.",
				TechStack:   []string{"Kotlin", "Hilt", "Firebase", "OneSignal"},
				Achievements: []string{
					"Integrated HyperPay and Google In-App Purchases",
					"Maintained 99.98% crash-free experience",
					"Revamped signup and subscription flows",
				},
				Link: &link,
			},
			{
				Title:       "Reel / Stories Application",
				Role:        "Open Source Contributor",
				Description: "An Instagram-like stories implementation designed for seamless video playback.",
				TechStack:   []string{"Native Android", "Kotlin", "ExoPlayer"},
				Achievements: []string{
					"Designed for high reusability in external projects",
					"Seamless video playback implementation",
				},
				Link: &link,
			},
		},
		Experience: []models.Experience{
			{
				Role:        "Senior Software Engineer",
				Company:     "Arbisoft",
				Period:      "August 2021 – Present",
				Description: "Leading cross-functional teams in Agile environments. Actively involved in hiring processes for senior roles and mentoring interns in native development.",
			},
		},
	}
}
