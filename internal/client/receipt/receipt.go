// Package receipt renders the printable kwitansi document. The layout is a
// static HTML file with {{placeholder}} tokens; rendering is plain string
// substitution so the template stays editable by non-programmers.
package receipt

import (
	_ "embed"
	"strings"
	"time"

	"github.com/buperadmin/kwitansi-cli/internal/filex"
)

//go:embed kwitansi.html
var defaultTemplate string

// OutputDir is the subdirectory rendered receipts are written to.
const OutputDir = "receipts"

// Data is the complete field set the template consumes. Nominal and
// Terbilang arrive pre-rendered; Tanggal may be zero, in which case the
// receipt is dated "now".
type Data struct {
	NIM             string
	Nama            string
	Angkatan        string
	JenisBayar      string
	CaraBayar       string
	KeteranganBayar string
	Nominal         string
	Terbilang       string
	Petugas         string
	Jabatan         string
	Tanggal         time.Time
}

// FormatDateDDMMYYYY renders t as the id-ID short date (dd/mm/yyyy), or "-"
// for the zero time.
func FormatDateDDMMYYYY(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}

// Number synthesizes the receipt number: KW-{nim}-{ddmmyyyy}.
func Number(nim string, t time.Time) string {
	return "KW-" + nim + "-" + strings.ReplaceAll(t.Format("02/01/2006"), "/", "")
}

// Renderer substitutes receipt fields into the HTML template and writes the
// result to OutputDir.
type Renderer struct {
	template string
	now      func() time.Time
}

func NewRenderer() *Renderer {
	return &Renderer{template: defaultTemplate, now: time.Now}
}

// Render produces the printable document for data and returns the written
// file path. Empty operator fields fall back to "-" so a receipt is never
// printed with blank signature lines.
func (r *Renderer) Render(data Data) (string, error) {
	date := data.Tanggal
	if date.IsZero() {
		date = r.now()
	}

	petugas := data.Petugas
	if petugas == "" {
		petugas = "-"
	}
	jabatan := data.Jabatan
	if jabatan == "" {
		jabatan = "-"
	}

	number := Number(data.NIM, date)

	html := strings.NewReplacer(
		"{{nim}}", data.NIM,
		"{{nama}}", data.Nama,
		"{{angkatan}}", data.Angkatan,
		"{{jenisBayar}}", data.JenisBayar,
		"{{caraBayar}}", data.CaraBayar,
		"{{keteranganBayar}}", data.KeteranganBayar,
		"{{nominal}}", data.Nominal,
		"{{terbilang}}", data.Terbilang,
		"{{petugas}}", petugas,
		"{{jabatan}}", jabatan,
		"{{tanggal}}", FormatDateDDMMYYYY(date),
		"{{noKwitansi}}", number,
	).Replace(r.template)

	dir, err := filex.EnsureSubDir(OutputDir)
	if err != nil {
		return "", err
	}

	return filex.WriteFileUnique(dir, number+".html", []byte(html))
}
