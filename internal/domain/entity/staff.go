package entity

import "strings"

// Staff is a practice employee. Clinical staff carry one or more disciplines;
// the discipline set decides which treatments they may deliver.
type Staff struct {
	UserID    int    `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Biography string `gorm:"type:text" json:"biography,omitempty"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Disciplines []Discipline `gorm:"many2many:staff_disciplines;joinForeignKey:StaffID;joinReferences:DisciplineID" json:"disciplines,omitempty"`
}

func (Staff) TableName() string {
	return "staff"
}

// FullName returns the staff member's display name
func (s *Staff) FullName() string {
	return s.User.FullName()
}

// Bio returns the biography without surrounding whitespace
func (s *Staff) Bio() string {
	return strings.TrimSpace(s.Biography)
}

// DisciplineIDs lists the ids of the loaded disciplines in their loaded order
func (s *Staff) DisciplineIDs() []int {
	ids := make([]int, len(s.Disciplines))
	for i, d := range s.Disciplines {
		ids[i] = d.ID
	}
	return ids
}

// HasDiscipline checks whether the staff member practises the given discipline
func (s *Staff) HasDiscipline(disciplineID int) bool {
	for _, d := range s.Disciplines {
		if d.ID == disciplineID {
			return true
		}
	}
	return false
}

// StaffDiscipline is a row of the staff/discipline join table.
type StaffDiscipline struct {
	StaffID      int `gorm:"primaryKey;autoIncrement:false" json:"staff_id"`
	DisciplineID int `gorm:"primaryKey;autoIncrement:false" json:"discipline_id"`
}

func (StaffDiscipline) TableName() string {
	return "staff_disciplines"
}

// StaffProfile is a staff member together with the treatments their
// disciplines offer.
type StaffProfile struct {
	Staff      Staff
	Treatments []Treatment
}
