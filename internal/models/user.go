package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User represents an admin staff account operating the inbox tooling.
type User struct {
	BaseModel
	Username   string `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email      string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password   string `gorm:"size:255;not null" json:"-"` // Never send password in JSON
	FirstName  string `gorm:"size:100" json:"firstName,omitempty"`
	LastName   string `gorm:"size:100" json:"lastName,omitempty"`
	MiddleName string `gorm:"size:100" json:"middleName,omitempty"`
	Suffix     string `gorm:"size:10" json:"suffix,omitempty"`
	Image      string `gorm:"size:512" json:"image,omitempty"`

	// Relations (not always preloaded)
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// UserSanitized represents the user data that is safe to send in API responses.
type UserSanitized struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	MiddleName string `json:"middleName,omitempty"`
	Suffix     string `json:"suffix,omitempty"`
	Image      string `json:"image,omitempty"`
}

// SetPassword hashes a password and sets it on the user
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword compares a password with the user's hashed password
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// Sanitize creates a UserSanitized struct from a User model, excluding sensitive data.
func (u *User) Sanitize() UserSanitized {
	return UserSanitized{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		MiddleName: u.MiddleName,
		Suffix:     u.Suffix,
		Image:      u.Image,
	}
}
