package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buperadmin/kwitansi-cli/internal/client/models"
)

func TestListCommand(t *testing.T) {
	lines := captureOutput(t)
	// search, page, start date, end date
	stubInput(t, []string{"budi", "2", "2024-01-01", "2024-12-31"}, nil)

	kw := &fakeKwitansi{page: &models.KwitansiPage{
		Data: []models.Kwitansi{{
			NIM: "12345", Nama: "BUDI SANTOSO", JenisBayar: "BIAYA SEMESTER",
			Nominal: "Rp 1.500.000", TanggalBayar: "2024-03-10", KeteranganBayar: "LUNAS",
		}},
		TotalPages: 3,
		TotalData:  25,
	}}
	app := newTestApp(&fakeSession{}, kw, &fakeMahasiswa{}, &fakeUsers{})

	require.NoError(t, app.List(context.Background()))

	want := models.DefaultListQuery()
	want.Search = "budi"
	want.Page = 2
	want.StartDate = "2024-01-01"
	want.EndDate = "2024-12-31"
	assert.Equal(t, want, kw.lastQuery)

	joined := strings.Join(*lines, "\n")
	assert.Contains(t, joined, "BUDI SANTOSO")
	assert.Contains(t, joined, "Rp 1.500.000")
	assert.Contains(t, joined, "25 record(s)")
}

func TestListCommandEmptyAnswersKeepDefaults(t *testing.T) {
	captureOutput(t)
	stubInput(t, []string{"", "", "", ""}, nil)

	kw := &fakeKwitansi{page: &models.KwitansiPage{Data: []models.Kwitansi{}, TotalPages: 1}}
	app := newTestApp(&fakeSession{}, kw, &fakeMahasiswa{}, &fakeUsers{})

	require.NoError(t, app.List(context.Background()))
	assert.Equal(t, models.DefaultListQuery(), kw.lastQuery)
}

func TestExportCommand(t *testing.T) {
	lines := captureOutput(t)
	// search, page, start, end, then format choice
	stubInput(t, []string{"", "", "", "", "excel"}, nil)

	kw := &fakeKwitansi{path: "exports/Data_Kwitansi.xlsx"}
	app := newTestApp(&fakeSession{}, kw, &fakeMahasiswa{}, &fakeUsers{})

	require.NoError(t, app.Export(context.Background()))
	assert.Contains(t, strings.Join(*lines, "\n"), "exports/Data_Kwitansi.xlsx")
}

func TestCetakCommandPrefillsKnownStudent(t *testing.T) {
	lines := captureOutput(t)
	// nim, jenis, cara, tanggal, nominal, keterangan — nama/angkatan come from the registry
	stubInput(t, []string{"12345", "BIAYA SEMESTER", "TRANSFER", "2024-03-10", "1500000", "LUNAS"}, nil)

	mhs := &fakeMahasiswa{found: &models.Mahasiswa{NIM: "12345", Nama: "BUDI SANTOSO", Angkatan: "2022"}}
	kw := &fakeKwitansi{path: "receipts/KW-12345-10032024.html"}
	sess := &fakeSession{user: &models.SessionUser{Fullname: "SITI AMINAH", Jabatan: "Bendahara"}}
	app := newTestApp(sess, kw, mhs, &fakeUsers{})

	require.NoError(t, app.Cetak(context.Background()))

	require.NotNil(t, kw.created)
	assert.Equal(t, "BUDI SANTOSO", kw.created.Nama)
	assert.Equal(t, "2022", kw.created.Angkatan)
	assert.Equal(t, int64(1500000), kw.created.Nominal)
	assert.Contains(t, strings.Join(*lines, "\n"), "receipts/KW-12345-10032024.html")
}

func TestCetakCommandUnknownStudentAsksDetails(t *testing.T) {
	captureOutput(t)
	// nim, nama, angkatan, jenis, cara, tanggal, nominal, keterangan
	stubInput(t, []string{"99999", "ANI WIJAYA", "2023", "BIAYA KKN", "CASH", "2024-06-01", "750000", "CICILAN"}, nil)

	kw := &fakeKwitansi{path: "receipts/out.html"}
	app := newTestApp(&fakeSession{}, kw, &fakeMahasiswa{}, &fakeUsers{})

	require.NoError(t, app.Cetak(context.Background()))

	require.NotNil(t, kw.created)
	assert.Equal(t, "ANI WIJAYA", kw.created.Nama)
	assert.Equal(t, "2023", kw.created.Angkatan)
	assert.Equal(t, "BIAYA KKN", kw.created.JenisBayar)
}
