package models

import (
	"regexp"

	"github.com/asadullah-dev/portfolio-site-backend/errs"
)

// ContactMessage is a contact-form submission. The store only ever appends
// these; they are never read back, mutated, or deleted through any exposed
// endpoint. Retrieval is an external concern (email notification, admin
// tooling).
type ContactMessage struct {
	ID      int    `json:"id" db:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" db:"name" gorm:"type:text;not null"`
	Email   string `json:"email" db:"email" gorm:"type:text;not null"`
	Message string `json:"message" db:"message" gorm:"type:text;not null"`
}

// ContactMessageInput is the inbound shape of a contact submission, before
// validation.
type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Intentionally loose: something@something.tld. Real deliverability is the
// mail provider's problem.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the submission shape: non-empty name and message, and a
// syntactically plausible email address. It returns a validation error
// naming every failed field, or nil.
func (in ContactMessageInput) Validate() error {
	var fields []string
	if in.Name == "" {
		fields = append(fields, "name")
	}
	if !emailPattern.MatchString(in.Email) {
		fields = append(fields, "email")
	}
	if in.Message == "" {
		fields = append(fields, "message")
	}
	if len(fields) > 0 {
		return errs.NewValidationError(fields...)
	}
	return nil
}

// ToContactMessage converts a validated input into the persistable entity.
func (in ContactMessageInput) ToContactMessage() ContactMessage {
	return ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
}
