package models

import (
	"strconv"
	"time"
)

// Kwitansi is a stored receipt as returned by the backend list endpoint.
type Kwitansi struct {
	ID              int64     `json:"id"`
	NIM             string    `json:"nim"`
	Nama            string    `json:"nama"`
	Angkatan        string    `json:"angkatan"`
	JenisBayar      string    `json:"jenis_bayar"`
	CaraBayar       string    `json:"cara_bayar"`
	KeteranganBayar string    `json:"keterangan_bayar"`
	Nominal         string    `json:"nominal"`
	Terbilang       string    `json:"terbilang"`
	TanggalBayar    string    `json:"tanggal_bayar"`
	CreatedAt       time.Time `json:"createdAt"`
}

// KwitansiDraft is the payload submitted to create a receipt. Field names
// follow the backend's camelCase form contract; Nominal and Terbilang are
// pre-rendered strings, exactly as the backend stores and echoes them.
type KwitansiDraft struct {
	NIM             string `json:"nim"`
	Nama            string `json:"nama"`
	Angkatan        string `json:"angkatan"`
	JenisBayar      string `json:"jenisBayar"`
	CaraBayar       string `json:"caraBayar"`
	TanggalBayar    string `json:"tanggalBayar"`
	Nominal         string `json:"nominal"`
	KeteranganBayar string `json:"keteranganBayar"`
	Terbilang       string `json:"terbilang"`
}

// ListQuery carries the kwitansi list/export parameters. StartDate and
// EndDate are optional ISO dates (YYYY-MM-DD) and are omitted from the
// query string when empty.
type ListQuery struct {
	Search    string
	Sort      string
	Order     string
	Page      int
	Limit     int
	StartDate string
	EndDate   string
}

// DefaultListQuery mirrors the list view defaults: newest payment date
// first, ten rows per page.
func DefaultListQuery() ListQuery {
	return ListQuery{Sort: "tanggal_bayar", Order: "desc", Page: 1, Limit: 10}
}

// KwitansiPage is one page of the receipt list.
type KwitansiPage struct {
	Data       []Kwitansi `json:"data"`
	TotalPages int        `json:"totalPages"`
	TotalData  int        `json:"totalData"`
}

// FormatRupiah renders n as an id-ID currency string ("Rp 1.500.000"),
// matching how the original form serialized nominal values.
func FormatRupiah(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}

	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}
