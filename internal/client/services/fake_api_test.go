package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
	"github.com/buperadmin/kwitansi-cli/internal/logging"
)

// fakeAPI implements api.Client with canned responses per call.
type fakeAPI struct {
	listPage *models.KwitansiPage
	listErr  error

	exportName string
	exportData []byte
	exportErr  error

	submitted *models.KwitansiDraft
	submitErr error

	findResult *models.Mahasiswa
	findErr    error
	findNIM    string

	added  *models.Mahasiswa
	addErr error

	uploadName string
	uploadData []byte
	uploadErr  error

	registered *models.NewAdmin
	regErr     error
}

func (f *fakeAPI) Login(context.Context, string, string) (string, *models.SessionUser, error) {
	return "", nil, nil
}
func (f *fakeAPI) KeepLogin(context.Context) (*models.SessionUser, error) { return nil, nil }

func (f *fakeAPI) RegisterAdmin(_ context.Context, admin models.NewAdmin) error {
	f.registered = &admin
	return f.regErr
}

func (f *fakeAPI) ListKwitansi(context.Context, models.ListQuery) (*models.KwitansiPage, error) {
	return f.listPage, f.listErr
}

func (f *fakeAPI) ExportKwitansi(context.Context, models.ListQuery, string) (string, []byte, error) {
	return f.exportName, f.exportData, f.exportErr
}

func (f *fakeAPI) SubmitKwitansi(_ context.Context, draft models.KwitansiDraft) error {
	f.submitted = &draft
	return f.submitErr
}

func (f *fakeAPI) FindMahasiswa(_ context.Context, nim string) (*models.Mahasiswa, error) {
	f.findNIM = nim
	return f.findResult, f.findErr
}

func (f *fakeAPI) AddMahasiswa(_ context.Context, m models.Mahasiswa) error {
	f.added = &m
	return f.addErr
}

func (f *fakeAPI) UploadMahasiswaExcel(_ context.Context, filename string, file io.Reader) error {
	f.uploadName = filename
	f.uploadData, _ = io.ReadAll(file)
	return f.uploadErr
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
