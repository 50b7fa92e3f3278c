package models

// Role jabatan akun: Admin / PIC / Pihak Gereja / Semi Volunteer
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Nama string `gorm:"uniqueIndex;size:50;not null" json:"nama"`
}

func (Role) TableName() string { return "role" }
