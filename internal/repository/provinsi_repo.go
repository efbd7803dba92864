package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// ProvinsiRepository handles database operations for provinces.
type ProvinsiRepository struct {
	db *sqlx.DB
}

// NewProvinsiRepository creates a new ProvinsiRepository.
func NewProvinsiRepository(db *sqlx.DB) *ProvinsiRepository {
	return &ProvinsiRepository{db: db}
}

// List returns all provinces ordered by name.
func (r *ProvinsiRepository) List(ctx context.Context) ([]models.Provinsi, error) {
	provinsi := []models.Provinsi{}
	err := r.db.SelectContext(ctx, &provinsi, `
		SELECT id, nama, gambar, created_at, updated_at
		FROM provinsi ORDER BY nama
	`)
	return provinsi, translateError(err)
}

// GetByID returns a province by id.
func (r *ProvinsiRepository) GetByID(ctx context.Context, id int) (*models.Provinsi, error) {
	var p models.Provinsi
	err := r.db.GetContext(ctx, &p, `
		SELECT id, nama, gambar, created_at, updated_at
		FROM provinsi WHERE id = $1
	`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &p, nil
}

// Create inserts a province and fills in generated columns.
func (r *ProvinsiRepository) Create(ctx context.Context, p *models.Provinsi) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO provinsi (nama, gambar)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, p.Nama, p.Gambar).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translateError(err)
}

// Update rewrites a province row.
func (r *ProvinsiRepository) Update(ctx context.Context, p *models.Provinsi) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE provinsi SET nama = $1, gambar = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`, p.Nama, p.Gambar, p.ID).Scan(&p.UpdatedAt)
	return translateError(err)
}

// Delete removes a province row.
func (r *ProvinsiRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM provinsi WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrNotFound
	}
	return nil
}
