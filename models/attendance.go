package models

// Attendance kehadiran satu anggota pada satu jam ibadah dalam satu jadwal.
// Unik per (member, jam ibadah, jadwal) — seluruh jalur baca/tulis memakai
// trio ini sebagai kunci.
type Attendance struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	MemberID    uint `gorm:"not null;uniqueIndex:idx_absensi_member_jam_jadwal" json:"member_id"`
	JamIbadahID uint `gorm:"not null;uniqueIndex:idx_absensi_member_jam_jadwal" json:"jam_ibadah_id"`
	JadwalID    uint `gorm:"not null;uniqueIndex:idx_absensi_member_jam_jadwal;index" json:"jadwal_id"`
	Hadir       bool `gorm:"not null;default:false" json:"hadir"`
}

func (Attendance) TableName() string { return "absensi" }
