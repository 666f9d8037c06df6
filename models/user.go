package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100" json:"name"`
	Email   string `gorm:"uniqueIndex;size:191" json:"email"`
	Phone   string `gorm:"size:30" json:"phone"`
	Address string `gorm:"size:255" json:"address,omitempty"`
	Role    string `gorm:"size:20;default:user" json:"role"`

	// Password holds the bcrypt hash, never the plaintext.
	Password string `gorm:"size:100" json:"-"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// SetPassword hashes and stores the plaintext password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// ComparePassword checks a plaintext password against the stored hash.
func (u *User) ComparePassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
