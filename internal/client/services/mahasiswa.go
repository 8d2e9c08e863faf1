package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/buperadmin/kwitansi-cli/internal/client/api"
	"github.com/buperadmin/kwitansi-cli/internal/client/models"
	"github.com/buperadmin/kwitansi-cli/internal/logging"
)

var namaPattern = regexp.MustCompile(`^[A-Za-z\s]+$`)
var angkatanPattern = regexp.MustCompile(`^\d{4}$`)

// MahasiswaService manages the student registry.
//
// FindByNIM returns (nil, nil) when no student matches; absence is a normal
// outcome, not an error.
type MahasiswaService interface {
	FindByNIM(ctx context.Context, nim string) (*models.Mahasiswa, error)
	Add(ctx context.Context, m models.Mahasiswa) error
	UploadExcel(ctx context.Context, path string) error
}

type mahasiswaService struct {
	api api.Client
	log logging.Logger
}

func NewMahasiswaService(client api.Client, log logging.Logger) MahasiswaService {
	return &mahasiswaService{api: client, log: log.With("component", "mahasiswa")}
}

func (s *mahasiswaService) FindByNIM(ctx context.Context, nim string) (*models.Mahasiswa, error) {
	if nim == "" || !isDigits(nim) {
		return nil, &ValidationError{Field: "nim", Reason: "must be a number"}
	}
	return s.api.FindMahasiswa(ctx, nim)
}

func (s *mahasiswaService) Add(ctx context.Context, m models.Mahasiswa) error {
	switch {
	case !isDigits(m.NIM):
		return &ValidationError{Field: "nim", Reason: "must be a number"}
	case !namaPattern.MatchString(m.Nama):
		return &ValidationError{Field: "nama", Reason: "letters and spaces only"}
	case !angkatanPattern.MatchString(m.Angkatan):
		return &ValidationError{Field: "angkatan", Reason: "must be a 4-digit year"}
	}

	if err := s.api.AddMahasiswa(ctx, m); err != nil {
		return err
	}
	s.log.Info(ctx, "mahasiswa added", "nim", m.NIM)
	return nil
}

func (s *mahasiswaService) UploadExcel(ctx context.Context, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".xls" {
		return &ValidationError{Field: "file", Reason: "must be an .xlsx or .xls sheet"}
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if err := s.api.UploadMahasiswaExcel(ctx, filepath.Base(path), f); err != nil {
		return err
	}
	s.log.Info(ctx, "mahasiswa sheet imported", "file", filepath.Base(path))
	return nil
}
