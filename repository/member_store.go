package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/NxM90/GSJS-Backends/models"
)

// MemberWithUser baris gabungan anggota + akun user-nya (kalau ada),
// dipakai halaman manajemen anggota.
type MemberWithUser struct {
	ID       uint    `json:"id"`
	Nama     string  `json:"nama"`
	Foto     string  `json:"foto"`
	Divisi   *string `json:"divisi"`
	DivisiID uint    `json:"divisi_id"`
	Posisi   string  `json:"posisi"`
	Kontak   string  `json:"kontak"`
	Status   string  `json:"status"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

// MemberStore query anggota yang butuh join lintas tabel atau transaksi.
type MemberStore struct {
	db *gorm.DB
}

func NewMemberStore(db *gorm.DB) *MemberStore { return &MemberStore{db: db} }

const memberWithUserSelect = `
SELECT m.id, m.foto, m.nama, m.divisi_id, d.nama AS divisi,
       m.posisi, m.kontak, m.status,
       u.email, r.nama AS role
FROM members m
LEFT JOIN divisi d ON m.divisi_id = d.id
LEFT JOIN users u ON m.user_id = u.id
LEFT JOIN role r ON u.role_id = r.id`

// ListWithUsers listing anggota ter-join, opsional cari nama dan filter divisi.
func (s *MemberStore) ListWithUsers(search string, divisiID uint) ([]MemberWithUser, error) {
	sql := memberWithUserSelect + " WHERE 1=1"
	args := []any{}
	if search != "" {
		sql += " AND LOWER(m.nama) LIKE ?"
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	if divisiID != 0 {
		sql += " AND m.divisi_id = ?"
		args = append(args, divisiID)
	}
	sql += " ORDER BY m.nama ASC"

	rows := []MemberWithUser{}
	if err := s.db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *MemberStore) GetWithUser(id uint) (*MemberWithUser, error) {
	var rows []MemberWithUser
	if err := s.db.Raw(memberWithUserSelect+" WHERE m.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

// DeleteWithUser menghapus anggota dan, kalau ada, akun user tertautnya
// dalam satu transaksi.
func (s *MemberStore) DeleteWithUser(member *models.Member) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Member{}, member.ID).Error; err != nil {
			return err
		}
		if member.UserID != nil {
			if err := tx.Delete(&models.User{}, *member.UserID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
