package models

import "gorm.io/datatypes"

// Project represents one portfolio project entry. Rows are written once by
// the catalog seeder and served back verbatim; no exposed operation updates
// or deletes them.
type Project struct {
	ID           int                         `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Title        string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Role         string                      `json:"role" db:"role" gorm:"type:text;not null"`
	Description  string                      `json:"description" db:"description" gorm:"type:text;not null"`
	TechStack    datatypes.JSONSlice[string] `json:"techStack" db:"tech_stack" gorm:"not null"`
	Achievements datatypes.JSONSlice[string] `json:"achievements" db:"achievements" gorm:"not null"`
	Link         *string                     `json:"link,omitempty" db:"link" gorm:"type:text"`
}
