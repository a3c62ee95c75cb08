package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Review qualification bounds
const (
	MinQualification = 1
	MaxQualification = 5
)

// Portfolio showcases the work a user offers. A user has at most one.
type Portfolio struct {
	gorm.Model
	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description" gorm:"not null"`
	Images      []string `json:"images" gorm:"serializer:json"`
	UserID      uint     `json:"user" gorm:"not null;uniqueIndex"`
	CategoryID  uint     `json:"category" gorm:"not null;index"`

	Reviews []Review `json:"reviews,omitempty" gorm:"foreignKey:PortfolioID"`
}

// Review is feedback left on a portfolio by another user
type Review struct {
	gorm.Model
	PortfolioID   uint   `json:"-" gorm:"not null;index"`
	AuthorID      uint   `json:"id_user" gorm:"not null;index"`
	Description   string `json:"description" gorm:"not null"`
	Qualification int    `json:"qualification" gorm:"not null"`
}

// Validate checks review invariants.
func (r *Review) Validate() error {
	if r.Description == "" {
		return fmt.Errorf("description cannot be empty")
	}
	if r.Qualification < MinQualification || r.Qualification > MaxQualification {
		return fmt.Errorf("qualification must be between %d and %d", MinQualification, MaxQualification)
	}
	return nil
}

// PortfolioPatch carries a partial portfolio update. Nil fields are left
// untouched; non-nil zero values are applied as-is.
type PortfolioPatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	CategoryID  *uint     `json:"category,omitempty"`
}
