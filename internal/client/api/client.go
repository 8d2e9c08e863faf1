// Package api wraps the remote kwitansi REST service in a typed client.
//
// The client owns the two cross-cutting behaviors every feature relies on:
// attaching the bearer credential to outbound calls, and intercepting
// "session no longer usable" responses. On a 401 from any authenticated
// endpoint the stored credential is cleared (idempotently) before
// ErrSessionExpired is returned, so callers can never keep operating on a
// dead session. Navigation back to the login view is the top-level caller's
// job; the client only reports the condition.
package api

import (
	"context"
	"io"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
)

// TokenStore is the client's view of the durable credential store: read the
// current token before a request, clear it when the server says the session
// is gone. Clear must be safe to call when no token is stored.
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// Client is the full surface of the remote API.
type Client interface {
	// Login exchanges credentials for a bearer token and the signed-in
	// profile. It is the only unauthenticated call.
	Login(ctx context.Context, identifier, password string) (string, *models.SessionUser, error)

	// KeepLogin validates the stored credential and returns a fresh profile.
	KeepLogin(ctx context.Context) (*models.SessionUser, error)

	// RegisterAdmin creates another admin account.
	RegisterAdmin(ctx context.Context, admin models.NewAdmin) error

	// ListKwitansi returns one page of receipts.
	ListKwitansi(ctx context.Context, q models.ListQuery) (*models.KwitansiPage, error)

	// ExportKwitansi downloads the receipt report as a binary blob.
	// exportType is "excel" or "pdf". The returned name is taken from the
	// Content-Disposition header, or DefaultExportName when absent.
	ExportKwitansi(ctx context.Context, q models.ListQuery, exportType string) (string, []byte, error)

	// SubmitKwitansi creates a new receipt record.
	SubmitKwitansi(ctx context.Context, draft models.KwitansiDraft) error

	// FindMahasiswa looks up a student by NIM. A missing student is
	// (nil, nil), not an error.
	FindMahasiswa(ctx context.Context, nim string) (*models.Mahasiswa, error)

	// AddMahasiswa registers a single student.
	AddMahasiswa(ctx context.Context, m models.Mahasiswa) error

	// UploadMahasiswaExcel imports students from an Excel sheet via a
	// multipart upload.
	UploadMahasiswaExcel(ctx context.Context, filename string, file io.Reader) error
}
