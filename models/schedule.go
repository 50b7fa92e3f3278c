package models

type Schedule struct {
	ID      uint   `gorm:"primaryKey"       json:"id"`
	Tanggal string `gorm:"size:10;not null" json:"tanggal"` // YYYY-MM-DD
	Hari    string `gorm:"size:20;not null" json:"hari"`    // Senin..Minggu
}

func (Schedule) TableName() string { return "jadwal" }
