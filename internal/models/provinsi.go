package models

import "time"

// Provinsi is a province, the top-level catalog grouping.
type Provinsi struct {
	ID        int       `db:"id" json:"id"`
	Nama      string    `db:"nama" json:"nama"`
	Gambar    *string   `db:"gambar" json:"gambar,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
