package repository

import (
	"gorm.io/gorm"
)

type UserRepository interface {
	// Delete removes the user; the staff or patient profile, staff discipline
	// links and appointments go with it.
	Delete(db *gorm.DB, id int) (int64, error)
}
