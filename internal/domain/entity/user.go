package entity

import (
	"strings"
	"time"
)

// Person holds the naming fields shared by staff members and patients.
type Person struct {
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
}

// FullName joins first and last name. Partially loaded people (only one name
// known) render without stray spaces.
func (p Person) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// User is the base identity row every staff member and patient hangs off.
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Person
	Email     string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
