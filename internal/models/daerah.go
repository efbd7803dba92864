package models

import "time"

// Daerah is a region belonging to exactly one provinsi.
type Daerah struct {
	ID         int       `db:"id" json:"id"`
	Nama       string    `db:"nama" json:"nama"`
	Gambar     *string   `db:"gambar" json:"gambar,omitempty"`
	ProvinsiID int       `db:"provinsi_id" json:"provinsiId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
