package models

import (
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// UserRole represents the role of a user in the system
type UserRole int

// User role constants
const (
	// UserRoleUser represents a standard marketplace user
	UserRoleUser UserRole = iota
	// UserRoleSysadmin represents an administrator; it satisfies any
	// required role during authorization
	UserRoleSysadmin
)

// MaxActiveTokens is how many login tokens a user may hold at once. A new
// login evicts the oldest ones.
const MaxActiveTokens = 5

// User represents a marketplace account, either soliciting or performing work
type User struct {
	gorm.Model
	Name           string   `json:"name" gorm:"not null"`
	Phone          string   `json:"phone" gorm:"not null"`
	Email          string   `json:"email" gorm:"not null;unique"`
	HashedPassword string   `json:"-" gorm:"not null"`
	Role           UserRole `json:"role" gorm:"index"`
	MunicipalityID *uint    `json:"municipality_id,omitempty" gorm:"index"`

	// Tokens holds the currently valid login tokens, newest first.
	Tokens []string `json:"-" gorm:"serializer:json"`

	// Password reset handshake. Only the sha256 of the code is stored.
	PassResetToken   string `json:"-"`
	PassResetExpires int64  `json:"-"`
}

func (r UserRole) String() string {
	return []string{
		"user",
		"sysadmin",
	}[r]
}

// ParseUserRole converts a string representation of a user role to UserRole type
func ParseUserRole(str string) (UserRole, error) {
	for i, role := range []string{
		"user",
		"sysadmin",
	} {
		if role == str {
			return UserRole(i), nil
		}
	}
	return UserRoleUser, fmt.Errorf("invalid user role: %s", str)
}

// MarshalJSON implements the json.Marshaler interface for UserRole
func (r UserRole) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for UserRole
func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	role, err := ParseUserRole(str)
	if err != nil {
		return err
	}

	*r = role
	return nil
}

// HasRole reports whether the user satisfies the required role. Sysadmin
// satisfies everything.
func (u *User) HasRole(required UserRole) bool {
	return u.Role == required || u.Role == UserRoleSysadmin
}

// HoldsToken reports whether the token is in the user's active token list.
func (u *User) HoldsToken(token string) bool {
	for _, t := range u.Tokens {
		if t == token {
			return true
		}
	}
	return false
}

// PushToken prepends a freshly issued token, evicting the oldest entries
// beyond MaxActiveTokens.
func (u *User) PushToken(token string) {
	tokens := append([]string{token}, u.Tokens...)
	if len(tokens) > MaxActiveTokens {
		tokens = tokens[:MaxActiveTokens]
	}
	u.Tokens = tokens
}
