package models

// Experience is one work-experience entry. Period is a free-text date range
// ("August 2021 – Present") and is never parsed.
type Experience struct {
	ID          int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Role        string `json:"role" db:"role" gorm:"type:text;not null"`
	Company     string `json:"company" db:"company" gorm:"type:text;not null"`
	Period      string `json:"period" db:"period" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
}
