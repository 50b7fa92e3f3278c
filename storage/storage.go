package storage

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultPhotoPath dipakai kalau anggota tidak mengunggah foto.
const DefaultPhotoPath = "/images/default-profile.jpg"

// MaxPhotoSize batas ukuran foto profil (5MB).
const MaxPhotoSize = 5 * 1024 * 1024

var (
	ErrNotImage = errors.New("hanya file gambar yang diperbolehkan")
	ErrTooLarge = errors.New("ukuran file maksimal 5MB")
)

// Storage menyimpan foto profil ke disk lokal di bawah dir dan
// mengembalikan path relatif (/uploads/...) yang disimpan di members.foto.
type Storage struct {
	dir string
}

func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Storage{dir: dir}, nil
}

// SavePhoto memvalidasi dan menyimpan satu file foto dari form multipart.
func (s *Storage) SavePhoto(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxPhotoSize {
		return "", ErrTooLarge
	}
	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return "", ErrNotImage
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := "profile-" + uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// Dir direktori penyimpanan, dipakai route static file.
func (s *Storage) Dir() string { return s.dir }
