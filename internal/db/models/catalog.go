package models

import "gorm.io/gorm"

// Category groups portfolios by the kind of work offered
type Category struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null;unique"`
	Image string `json:"image,omitempty"`
}

// Municipality is a location a user can register under
type Municipality struct {
	gorm.Model
	Name string `json:"name" gorm:"not null;unique"`
}
