package models

import "time"

// Budaya categories.
const (
	KategoriTarian    = "TARIAN"
	KategoriMusik     = "MUSIK"
	KategoriKuliner   = "KULINER"
	KategoriPakaian   = "PAKAIAN"
	KategoriUpacara   = "UPACARA"
	KategoriKerajinan = "KERAJINAN"
	KategoriLainnya   = "LAINNYA"
)

// ValidKategori reports whether kategori is one of the known budaya categories.
func ValidKategori(kategori string) bool {
	switch kategori {
	case KategoriTarian, KategoriMusik, KategoriKuliner, KategoriPakaian,
		KategoriUpacara, KategoriKerajinan, KategoriLainnya:
		return true
	}
	return false
}

// Budaya is a cultural item belonging to exactly one daerah.
type Budaya struct {
	ID        int       `db:"id" json:"id"`
	Nama      string    `db:"nama" json:"nama"`
	Deskripsi string    `db:"deskripsi" json:"deskripsi"`
	Kategori  string    `db:"kategori" json:"kategori"`
	Gambar    *string   `db:"gambar" json:"gambar,omitempty"`
	DaerahID  int       `db:"daerah_id" json:"daerahId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
