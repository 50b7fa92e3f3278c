package models

// Division divisi pelayanan (Production, PAW, Tim Musik, SM, ...)
type Division struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nama string `gorm:"uniqueIndex;size:50;not null" json:"nama"`
}

func (Division) TableName() string { return "divisi" }
