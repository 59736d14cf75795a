package entity

// Discipline is a clinical specialty (Physiotherapy, Massage, ...) with a
// short display title. Names are unique across the practice.
type Discipline struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Title string `gorm:"type:varchar(100);not null" json:"title"`
}

func (Discipline) TableName() string {
	return "disciplines"
}

func (d Discipline) String() string {
	return d.Name
}
