package models

const (
	MemberStatusActive   = "Active"
	MemberStatusInactive = "Inactive"
)

type Member struct {
	ID       uint   `gorm:"primaryKey"          json:"id"`
	Foto     string `gorm:"size:255;not null"   json:"foto"` // path relatif, mis. /uploads/profile-xxx.jpg
	Nama     string `gorm:"size:120;not null"   json:"nama"`
	DivisiID uint   `gorm:"not null;index"      json:"divisi_id"`
	Posisi   string `gorm:"size:80;not null"    json:"posisi"`
	Kontak   string `gorm:"size:20;not null"    json:"kontak"`
	Status   string `gorm:"size:10;not null;default:'Active'" json:"status"` // Active | Inactive
	UserID   *uint  `json:"user_id"`                                         // terisi kalau didaftarkan sebagai semi volunteer
}

func (Member) TableName() string { return "members" }
