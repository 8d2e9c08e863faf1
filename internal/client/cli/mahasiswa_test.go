package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
	"github.com/buperadmin/kwitansi-cli/internal/client/services"
)

func TestStudentCommand(t *testing.T) {
	lines := captureOutput(t)
	stubInput(t, []string{"12345"}, nil)

	mhs := &fakeMahasiswa{found: &models.Mahasiswa{NIM: "12345", Nama: "BUDI SANTOSO", Angkatan: "2022"}}
	app := newTestApp(&fakeSession{}, &fakeKwitansi{}, mhs, &fakeUsers{})

	require.NoError(t, app.Student(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "12345 — BUDI SANTOSO, angkatan 2022")
}

func TestStudentCommandNotFound(t *testing.T) {
	lines := captureOutput(t)
	stubInput(t, []string{"99999"}, nil)

	app := newTestApp(&fakeSession{}, &fakeKwitansi{}, &fakeMahasiswa{}, &fakeUsers{})

	require.NoError(t, app.Student(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "No student with NIM 99999")
}

func TestAddStudentCommand(t *testing.T) {
	captureOutput(t)
	stubInput(t, []string{"12345", "BUDI SANTOSO", "2022"}, nil)

	mhs := &fakeMahasiswa{}
	app := newTestApp(&fakeSession{}, &fakeKwitansi{}, mhs, &fakeUsers{})

	require.NoError(t, app.AddStudent(context.Background()))
	require.NotNil(t, mhs.added)
	assert.Equal(t, models.Mahasiswa{NIM: "12345", Nama: "BUDI SANTOSO", Angkatan: "2022"}, *mhs.added)
}

func TestAddStudentCommandValidationSurfaces(t *testing.T) {
	lines := captureOutput(t)
	stubInput(t, []string{"abc", "BUDI", "2022"}, nil)

	mhs := &fakeMahasiswa{addErr: &services.ValidationError{Field: "nim", Reason: "must be a number"}}
	app := newTestApp(&fakeSession{}, &fakeKwitansi{}, mhs, &fakeUsers{})

	assert.Error(t, app.AddStudent(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "Invalid input")
}

func TestUploadExcelCommand(t *testing.T) {
	captureOutput(t)
	stubInput(t, []string{"/tmp/mahasiswa.xlsx"}, nil)

	mhs := &fakeMahasiswa{}
	app := newTestApp(&fakeSession{}, &fakeKwitansi{}, mhs, &fakeUsers{})

	require.NoError(t, app.UploadExcel(context.Background()))
	assert.Equal(t, "/tmp/mahasiswa.xlsx", mhs.uploaded)
}
