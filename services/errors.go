package services

import "errors"

// Error sentinel untuk operasi inti. Handler memetakan ke status HTTP:
// NotFound → 404, Validation → 400, Conflict → 409, selain itu 500.
var (
	ErrScheduleNotFound   = errors.New("jadwal tidak ditemukan")
	ErrAttendanceNotFound = errors.New("absensi tidak ditemukan")
	ErrAttendanceExists   = errors.New("absensi untuk anggota dan jam ibadah ini sudah ada")
	ErrInvalidInput       = errors.New("data tidak valid")
)

// Kind kelas error sesuai taksonomi boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConflict
)

func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrScheduleNotFound),
		errors.Is(err, ErrAttendanceNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	case errors.Is(err, ErrAttendanceExists):
		return KindConflict
	default:
		return KindInternal
	}
}
