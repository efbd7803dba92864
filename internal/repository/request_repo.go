package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// RequestRepository handles database operations for admin-daerah promotion
// requests.
type RequestRepository struct {
	db *sqlx.DB
}

// NewRequestRepository creates a new RequestRepository.
func NewRequestRepository(db *sqlx.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestDetailQuery = `
	SELECT r.id, r.user_id, r.daerah_id, r.nama_daerah, r.status, r.created_at, r.updated_at,
	       u.username, u.email, u.alamat, u.ktp, u.portofolio, d.nama AS daerah_nama
	FROM request_admin_daerah r
	JOIN users u ON u.id = r.user_id
	LEFT JOIN daerah d ON d.id = r.daerah_id
`

// List returns all requests with requester and daerah context, plus the
// total count.
func (r *RequestRepository) List(ctx context.Context) ([]models.RequestDetail, int, error) {
	requests := []models.RequestDetail{}
	if err := r.db.SelectContext(ctx, &requests, requestDetailQuery+` ORDER BY r.id`); err != nil {
		return nil, 0, translateError(err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM request_admin_daerah`); err != nil {
		return nil, 0, translateError(err)
	}
	return requests, total, nil
}

// GetByID returns a request by id with requester and daerah context.
func (r *RequestRepository) GetByID(ctx context.Context, id int) (*models.RequestDetail, error) {
	var req models.RequestDetail
	err := r.db.GetContext(ctx, &req, requestDetailQuery+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

// Create inserts a request in PENDING status.
func (r *RequestRepository) Create(ctx context.Context, req *models.RequestAdminDaerah) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO request_admin_daerah (user_id, daerah_id, nama_daerah, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at, updated_at
	`, req.UserID, req.DaerahID, req.NamaDaerah, models.StatusPending).
		Scan(&req.ID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	return translateError(err)
}

// Moderate sets a request's status. When the new status is ACCEPT, the
// referenced user is promoted to ADMIN_DAERAH and linked to the request's
// daerah in the same transaction, so a failure on either write rolls back
// both.
func (r *RequestRepository) Moderate(ctx context.Context, id int, status string) (*models.RequestAdminDaerah, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, translateError(err)
	}
	defer tx.Rollback()

	var req models.RequestAdminDaerah
	err = tx.GetContext(ctx, &req, `
		UPDATE request_admin_daerah SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, user_id, daerah_id, nama_daerah, status, created_at, updated_at
	`, status, id)
	if err != nil {
		return nil, translateError(err)
	}

	if req.Status == models.StatusAccept {
		res, err := tx.ExecContext(ctx, `
			UPDATE users SET role = $1, daerah_id = COALESCE($2, daerah_id), updated_at = NOW()
			WHERE id = $3
		`, models.RoleAdminDaerah, req.DaerahID, req.UserID)
		if err != nil {
			return nil, translateError(err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, fmt.Errorf("%w: request user %d", utils.ErrNotFound, req.UserID)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, translateError(err)
	}
	return &req, nil
}

// Delete removes a request row. An already-applied promotion is not
// reverted.
func (r *RequestRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM request_admin_daerah WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// CountsByStatus groups requests by status.
func (r *RequestRepository) CountsByStatus(ctx context.Context) (*models.RequestStatusCounts, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT status, COUNT(*) FROM request_admin_daerah GROUP BY status
	`)
	if err != nil {
		return nil, translateError(err)
	}
	defer rows.Close()

	counts := &models.RequestStatusCounts{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, translateError(err)
		}
		switch status {
		case models.StatusPending:
			counts.Pending = n
		case models.StatusAccept:
			counts.Accept = n
		case models.StatusReject:
			counts.Reject = n
		}
	}
	return counts, translateError(rows.Err())
}
