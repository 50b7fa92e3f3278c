package models

// WorshipTime jam ibadah, mis. "09:00" / "Ibadah Raya 1"
type WorshipTime struct {
	ID         uint   `gorm:"primaryKey"       json:"id"`
	JamIbadah  string `gorm:"size:10;not null" json:"jam_ibadah"`
	NamaIbadah string `gorm:"size:50;not null" json:"nama_ibadah"`
}

func (WorshipTime) TableName() string { return "jam_ibadah" }
