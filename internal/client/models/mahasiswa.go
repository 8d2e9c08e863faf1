package models

// Mahasiswa is a student registry record.
type Mahasiswa struct {
	NIM      string `json:"nim"`
	Nama     string `json:"nama"`
	Angkatan string `json:"angkatan"`
}
