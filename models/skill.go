package models

import "gorm.io/datatypes"

// Skill is one skill-category group (e.g. "Languages", "Architecture").
// Items preserve insertion order; order matters for display only.
type Skill struct {
	ID       int                         `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Category string                      `json:"category" db:"category" gorm:"type:text;not null"`
	Items    datatypes.JSONSlice[string] `json:"items" db:"items" gorm:"not null"`
}
