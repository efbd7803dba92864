package models

import "time"

// Request statuses. PENDING is the only initial state; ACCEPT and REJECT
// are terminal.
const (
	StatusPending = "PENDING"
	StatusAccept  = "ACCEPT"
	StatusReject  = "REJECT"
)

// ValidStatus reports whether status is one of the known request statuses.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusAccept, StatusReject:
		return true
	}
	return false
}

// RequestAdminDaerah is a user's request to be promoted to daerah admin.
// It references either an existing daerah or a proposed name for a new one.
type RequestAdminDaerah struct {
	ID         int       `db:"id" json:"id"`
	UserID     int       `db:"user_id" json:"userId"`
	DaerahID   *int      `db:"daerah_id" json:"daerahId,omitempty"`
	NamaDaerah *string   `db:"nama_daerah" json:"namaDaerah,omitempty"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// RequestDetail embeds the requesting user's profile fields and the daerah
// name for moderation views.
type RequestDetail struct {
	RequestAdminDaerah
	Username   string  `db:"username" json:"username"`
	Email      string  `db:"email" json:"email"`
	Alamat     *string `db:"alamat" json:"alamat,omitempty"`
	KTP        *string `db:"ktp" json:"ktp,omitempty"`
	Portofolio *string `db:"portofolio" json:"portofolio,omitempty"`
	DaerahNama *string `db:"daerah_nama" json:"daerahNama,omitempty"`
}

// RequestStatusCounts groups requests by status.
type RequestStatusCounts struct {
	Pending int `json:"PENDING"`
	Accept  int `json:"ACCEPT"`
	Reject  int `json:"REJECT"`
}
