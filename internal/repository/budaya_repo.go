package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// BudayaRepository handles database operations for cultural items.
type BudayaRepository struct {
	db *sqlx.DB
}

// NewBudayaRepository creates a new BudayaRepository.
func NewBudayaRepository(db *sqlx.DB) *BudayaRepository {
	return &BudayaRepository{db: db}
}

// List returns cultural items, optionally filtered by category and/or region.
func (r *BudayaRepository) List(ctx context.Context, kategori string, daerahID int) ([]models.Budaya, error) {
	budaya := []models.Budaya{}
	query := `
		SELECT id, nama, deskripsi, kategori, gambar, daerah_id, created_at, updated_at
		FROM budaya WHERE 1=1
	`
	args := []interface{}{}
	if kategori != "" {
		args = append(args, kategori)
		query += ` AND kategori = $1`
	}
	if daerahID > 0 {
		args = append(args, daerahID)
		if len(args) == 2 {
			query += ` AND daerah_id = $2`
		} else {
			query += ` AND daerah_id = $1`
		}
	}
	query += ` ORDER BY nama`

	err := r.db.SelectContext(ctx, &budaya, query, args...)
	return budaya, translateError(err)
}

// GetByID returns a cultural item by id.
func (r *BudayaRepository) GetByID(ctx context.Context, id int) (*models.Budaya, error) {
	var b models.Budaya
	err := r.db.GetContext(ctx, &b, `
		SELECT id, nama, deskripsi, kategori, gambar, daerah_id, created_at, updated_at
		FROM budaya WHERE id = $1
	`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &b, nil
}

// Create inserts a cultural item and fills in generated columns.
func (r *BudayaRepository) Create(ctx context.Context, b *models.Budaya) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO budaya (nama, deskripsi, kategori, gambar, daerah_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, b.Nama, b.Deskripsi, b.Kategori, b.Gambar, b.DaerahID).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return translateError(err)
}

// Update rewrites a cultural item row.
func (r *BudayaRepository) Update(ctx context.Context, b *models.Budaya) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE budaya SET nama = $1, deskripsi = $2, kategori = $3, gambar = $4, daerah_id = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`, b.Nama, b.Deskripsi, b.Kategori, b.Gambar, b.DaerahID, b.ID).Scan(&b.UpdatedAt)
	return translateError(err)
}

// Delete removes a cultural item row.
func (r *BudayaRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM budaya WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrNotFound
	}
	return nil
}
