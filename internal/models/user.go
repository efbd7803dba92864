package models

import "time"

// User roles. ADMIN_DAERAH manages the resources of the daerah it is linked
// to; privilege is granted through the request_admin_daerah workflow.
const (
	RoleUser        = "USER"
	RoleAdminDaerah = "ADMIN_DAERAH"
	RoleSuperAdmin  = "SUPER_ADMIN"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleAdminDaerah, RoleSuperAdmin:
		return true
	}
	return false
}

// User represents an account. KTP and Portofolio hold document URLs uploaded
// during admin-daerah registration; DaerahID is set when a promotion request
// is accepted.
type User struct {
	ID         int       `db:"id" json:"id"`
	Username   string    `db:"username" json:"username"`
	Email      string    `db:"email" json:"email"`
	Password   string    `db:"password" json:"-"`
	Role       string    `db:"role" json:"role"`
	Alamat     *string   `db:"alamat" json:"alamat,omitempty"`
	KTP        *string   `db:"ktp" json:"ktp,omitempty"`
	Portofolio *string   `db:"portofolio" json:"portofolio,omitempty"`
	DaerahID   *int      `db:"daerah_id" json:"daerahId,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}
