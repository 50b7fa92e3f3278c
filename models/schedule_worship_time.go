package models

// ScheduleWorshipTime baris join jadwal <-> jam ibadah.
// Set baris untuk satu jadwal dimiliki penuh oleh jadwal itu:
// update jadwal mengganti seluruh set, bukan baris per baris.
type ScheduleWorshipTime struct {
	ID          uint `gorm:"primaryKey"     json:"id"`
	JadwalID    uint `gorm:"not null;index" json:"jadwal_id"`
	JamIbadahID uint `gorm:"not null"       json:"jam_ibadah_id"`
}

func (ScheduleWorshipTime) TableName() string { return "jadwal_jam_ibadah" }
