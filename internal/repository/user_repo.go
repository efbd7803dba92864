package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// UserRepository handles database operations for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, password, role, alamat, ktp, portofolio, daerah_id, created_at, updated_at`

// GetByID returns a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

// GetByEmail returns a user by its unique email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.GetContext(ctx, &u, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

// List returns all users.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users ORDER BY id`)
	return users, translateError(err)
}

// ListByRole returns users with the given role.
func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`, role)
	return users, translateError(err)
}

// Create inserts a user and fills in generated columns.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password, role, alamat, ktp, portofolio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.Password, u.Role, u.Alamat, u.KTP, u.Portofolio).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return translateError(err)
}

// Update rewrites a user row.
func (r *UserRepository) Update(ctx context.Context, u *models.User) error {
	err := r.db.QueryRowContext(ctx, `
		UPDATE users SET username = $1, email = $2, password = $3, role = $4,
		       alamat = $5, ktp = $6, portofolio = $7, daerah_id = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`, u.Username, u.Email, u.Password, u.Role, u.Alamat, u.KTP, u.Portofolio, u.DaerahID, u.ID).
		Scan(&u.UpdatedAt)
	return translateError(err)
}

// Delete removes a user and its dependent request and rating rows in one
// transaction. The schema has no ON DELETE CASCADE, so ordering matters.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return translateError(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM request_admin_daerah WHERE user_id = $1`, id); err != nil {
		return translateError(err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM user_event_ratings WHERE user_id = $1`, id); err != nil {
		return translateError(err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return utils.ErrNotFound
	}

	return translateError(tx.Commit())
}
