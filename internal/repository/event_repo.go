package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// EventRepository handles database operations for events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// List returns all events with the daerah name embedded.
func (r *EventRepository) List(ctx context.Context) ([]models.EventWithDaerah, error) {
	events := []models.EventWithDaerah{}
	err := r.db.SelectContext(ctx, &events, `
		SELECT e.id, e.nama, e.deskripsi, e.tanggal, e.lokasi, e.gambar,
		       e.daerah_id, e.created_at, e.updated_at, d.nama AS nama_daerah
		FROM events e
		JOIN daerah d ON d.id = e.daerah_id
		ORDER BY e.tanggal
	`)
	return events, translateError(err)
}

// GetByID returns an event by id with the daerah name embedded.
func (r *EventRepository) GetByID(ctx context.Context, id int) (*models.EventWithDaerah, error) {
	var e models.EventWithDaerah
	err := r.db.GetContext(ctx, &e, `
		SELECT e.id, e.nama, e.deskripsi, e.tanggal, e.lokasi, e.gambar,
		       e.daerah_id, e.created_at, e.updated_at, d.nama AS nama_daerah
		FROM events e
		JOIN daerah d ON d.id = e.daerah_id
		WHERE e.id = $1
	`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &e, nil
}

// Create inserts an event and fills in generated columns.
func (r *EventRepository) Create(ctx context.Context, e *models.Event) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO events (nama, deskripsi, tanggal, lokasi, gambar, daerah_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, e.Nama, e.Deskripsi, e.Tanggal, e.Lokasi, e.Gambar, e.DaerahID).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	return translateError(err)
}

// Update rewrites an event row.
func (r *EventRepository) Update(ctx context.Context, e *models.Event) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE events SET nama = $1, deskripsi = $2, tanggal = $3, lokasi = $4,
		       gambar = $5, daerah_id = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING updated_at
	`, e.Nama, e.Deskripsi, e.Tanggal, e.Lokasi, e.Gambar, e.DaerahID, e.ID).Scan(&e.UpdatedAt)
	return translateError(err)
}

// Delete removes an event row.
func (r *EventRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrNotFound
	}
	return nil
}
