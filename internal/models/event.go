package models

import "time"

// Event is a cultural event held in a daerah.
type Event struct {
	ID        int       `db:"id" json:"id"`
	Nama      string    `db:"nama" json:"nama"`
	Deskripsi string    `db:"deskripsi" json:"deskripsi"`
	Tanggal   time.Time `db:"tanggal" json:"tanggal"`
	Lokasi    string    `db:"lokasi" json:"lokasi"`
	Gambar    *string   `db:"gambar" json:"gambar,omitempty"`
	DaerahID  int       `db:"daerah_id" json:"daerahId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// EventWithDaerah embeds the daerah name for list/detail responses.
type EventWithDaerah struct {
	Event
	NamaDaerah string `db:"nama_daerah" json:"namaDaerah"`
}
