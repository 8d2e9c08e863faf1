// Package services contains the application services behind the CLI
// commands: receipt listing/creation/export, the student registry, and
// admin account management. Services validate input, call the API client,
// and apply the app-wide failure policies; they never touch the credential
// store directly.
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/buperadmin/kwitansi-cli/internal/client/api"
	"github.com/buperadmin/kwitansi-cli/internal/client/models"
	"github.com/buperadmin/kwitansi-cli/internal/client/receipt"
	"github.com/buperadmin/kwitansi-cli/internal/filex"
	"github.com/buperadmin/kwitansi-cli/internal/logging"
	"github.com/buperadmin/kwitansi-cli/internal/terbilang"
)

// Payment option lists, mirroring the institution's receipt form.
var (
	JenisBayarOptions = []string{
		"BIAYA PENDAFTARAN", "BIAYA PENGEMBANGAN", "BIAYA SEMESTER",
		"BIAYA SEMESTER 1", "BIAYA SEMESTER 2", "BIAYA SEMESTER 3",
		"BIAYA SEMESTER 4", "BIAYA SEMESTER 5", "BIAYA SEMESTER 6",
		"BIAYA SEMESTER 7", "BIAYA SEMESTER 8", "BIAYA AKHIR",
		"BIAYA REMEDIAL", "BIAYA KKN", "BIAYA KONVERSI",
	}
	CaraBayarOptions       = []string{"TRANSFER", "CASH", "QRIS"}
	KeteranganBayarOptions = []string{"CICILAN", "LUNAS"}
)

// ExportDir is the subdirectory downloaded reports are written to.
const ExportDir = "exports"

// KwitansiInput is the raw receipt form. Nominal is a whole-rupiah amount;
// the wire strings (formatted nominal, terbilang) are derived here.
type KwitansiInput struct {
	NIM             string
	Nama            string
	Angkatan        string
	JenisBayar      string
	CaraBayar       string
	TanggalBayar    string // YYYY-MM-DD
	Nominal         int64
	KeteranganBayar string
}

// ReceiptRenderer produces the printable document for a created receipt.
type ReceiptRenderer interface {
	Render(data receipt.Data) (string, error)
}

// KwitansiService is the receipt workflow.
//
// Contract:
//   - List: one page of receipts. Non-auth failures degrade to an empty
//     page so the table view never breaks; session expiry surfaces.
//   - Export: download the excel/pdf report and save it under ExportDir,
//     returning the file path. All failures surface.
//   - Create: validate, submit, then render the printable receipt. The
//     rendered path is returned; rendering runs strictly after the submit
//     succeeded.
type KwitansiService interface {
	List(ctx context.Context, q models.ListQuery) (*models.KwitansiPage, error)
	Export(ctx context.Context, q models.ListQuery, exportType string) (string, error)
	Create(ctx context.Context, in KwitansiInput, operator *models.SessionUser) (string, error)
}

type kwitansiService struct {
	api      api.Client
	renderer ReceiptRenderer
	log      logging.Logger
}

func NewKwitansiService(client api.Client, renderer ReceiptRenderer, log logging.Logger) KwitansiService {
	return &kwitansiService{api: client, renderer: renderer, log: log.With("component", "kwitansi")}
}

func (s *kwitansiService) List(ctx context.Context, q models.ListQuery) (*models.KwitansiPage, error) {
	page, err := s.api.ListKwitansi(ctx, q)
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			return nil, err
		}
		// Show an empty table rather than a broken one.
		s.log.Warn(ctx, "kwitansi list failed, showing empty page", "error", err)
		return &models.KwitansiPage{Data: []models.Kwitansi{}, TotalPages: 1}, nil
	}
	return page, nil
}

func (s *kwitansiService) Export(ctx context.Context, q models.ListQuery, exportType string) (string, error) {
	if exportType != "excel" && exportType != "pdf" {
		return "", &ValidationError{Field: "type", Reason: "must be excel or pdf"}
	}

	name, data, err := s.api.ExportKwitansi(ctx, q, exportType)
	if err != nil {
		return "", err
	}

	dir, err := filex.EnsureSubDir(ExportDir)
	if err != nil {
		return "", err
	}
	path, err := filex.WriteFileUnique(dir, name, data)
	if err != nil {
		return "", err
	}

	s.log.Info(ctx, "export saved", "path", path, "type", exportType)
	return path, nil
}

func (s *kwitansiService) Create(ctx context.Context, in KwitansiInput, operator *models.SessionUser) (string, error) {
	if err := validateKwitansi(in); err != nil {
		return "", err
	}

	words := terbilang.ToWords(in.Nominal) + " Rupiah"
	draft := models.KwitansiDraft{
		NIM:             in.NIM,
		Nama:            in.Nama,
		Angkatan:        in.Angkatan,
		JenisBayar:      in.JenisBayar,
		CaraBayar:       in.CaraBayar,
		TanggalBayar:    in.TanggalBayar,
		Nominal:         models.FormatRupiah(in.Nominal),
		KeteranganBayar: in.KeteranganBayar,
		Terbilang:       words,
	}

	if err := s.api.SubmitKwitansi(ctx, draft); err != nil {
		return "", err
	}
	s.log.Info(ctx, "kwitansi created", "nim", in.NIM, "jenis", in.JenisBayar)

	data := receipt.Data{
		NIM:             draft.NIM,
		Nama:            draft.Nama,
		Angkatan:        draft.Angkatan,
		JenisBayar:      draft.JenisBayar,
		CaraBayar:       draft.CaraBayar,
		KeteranganBayar: draft.KeteranganBayar,
		Nominal:         draft.Nominal,
		Terbilang:       draft.Terbilang,
		Tanggal:         parseISODate(in.TanggalBayar),
	}
	if operator != nil {
		data.Petugas = operator.Fullname
		data.Jabatan = operator.Jabatan
	}

	path, err := s.renderer.Render(data)
	if err != nil {
		// The record exists server-side; only the local printout failed.
		return "", fmt.Errorf("kwitansi stored but rendering failed: %w", err)
	}
	return path, nil
}

func validateKwitansi(in KwitansiInput) error {
	switch {
	case in.NIM == "" || !isDigits(in.NIM):
		return &ValidationError{Field: "nim", Reason: "must be a number"}
	case in.Nama == "":
		return &ValidationError{Field: "nama", Reason: "is required"}
	case in.Angkatan == "":
		return &ValidationError{Field: "angkatan", Reason: "is required"}
	case !slices.Contains(JenisBayarOptions, in.JenisBayar):
		return &ValidationError{Field: "jenisBayar", Reason: "unknown payment type"}
	case !slices.Contains(CaraBayarOptions, in.CaraBayar):
		return &ValidationError{Field: "caraBayar", Reason: "unknown payment method"}
	case parseISODate(in.TanggalBayar).IsZero():
		return &ValidationError{Field: "tanggalBayar", Reason: "must be YYYY-MM-DD"}
	case in.Nominal <= 0:
		return &ValidationError{Field: "nominal", Reason: "must be positive"}
	case !slices.Contains(KeteranganBayarOptions, in.KeteranganBayar):
		return &ValidationError{Field: "keteranganBayar", Reason: "must be CICILAN or LUNAS"}
	}
	return nil
}

func parseISODate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
