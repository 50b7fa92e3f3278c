package models

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;size:120;not null" json:"email"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	RoleID   uint   `gorm:"not null" json:"role_id"`
	DivisiID *uint  `json:"divisi_id"` // admin tidak terikat divisi
}

func (User) TableName() string { return "users" }
