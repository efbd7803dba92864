package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// DaerahRepository handles database operations for regions.
type DaerahRepository struct {
	db *sqlx.DB
}

// NewDaerahRepository creates a new DaerahRepository.
func NewDaerahRepository(db *sqlx.DB) *DaerahRepository {
	return &DaerahRepository{db: db}
}

// List returns all regions, optionally filtered by province.
func (r *DaerahRepository) List(ctx context.Context, provinsiID int) ([]models.Daerah, error) {
	daerah := []models.Daerah{}
	query := `
		SELECT id, nama, gambar, provinsi_id, created_at, updated_at
		FROM daerah
	`
	var err error
	if provinsiID > 0 {
		err = r.db.SelectContext(ctx, &daerah, query+` WHERE provinsi_id = $1 ORDER BY nama`, provinsiID)
	} else {
		err = r.db.SelectContext(ctx, &daerah, query+` ORDER BY nama`)
	}
	return daerah, translateError(err)
}

// GetByID returns a region by id.
func (r *DaerahRepository) GetByID(ctx context.Context, id int) (*models.Daerah, error) {
	var d models.Daerah
	err := r.db.GetContext(ctx, &d, `
		SELECT id, nama, gambar, provinsi_id, created_at, updated_at
		FROM daerah WHERE id = $1
	`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &d, nil
}

// Create inserts a region and fills in generated columns.
func (r *DaerahRepository) Create(ctx context.Context, d *models.Daerah) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO daerah (nama, gambar, provinsi_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, d.Nama, d.Gambar, d.ProvinsiID).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	return translateError(err)
}

// Update rewrites a region row.
func (r *DaerahRepository) Update(ctx context.Context, d *models.Daerah) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE daerah SET nama = $1, gambar = $2, provinsi_id = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`, d.Nama, d.Gambar, d.ProvinsiID, d.ID).Scan(&d.UpdatedAt)
	return translateError(err)
}

// Delete removes a region row.
func (r *DaerahRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM daerah WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrNotFound
	}
	return nil
}
