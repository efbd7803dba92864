package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jelajahbudaya/budaya_api/internal/config"
	"github.com/jelajahbudaya/budaya_api/internal/database"
	"github.com/jelajahbudaya/budaya_api/internal/models"
)

// Seeds the super admin account and a small starter catalog. Safe to run
// repeatedly: every insert is keyed on a natural unique column.
func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seed(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Msg("seed completed")
}

func seed(ctx context.Context, db *sqlx.DB) error {
	if err := seedSuperAdmin(ctx, db); err != nil {
		return fmt.Errorf("seed super admin: %w", err)
	}

	provinsiID, err := seedProvinsi(ctx, db, "Jawa Barat")
	if err != nil {
		return fmt.Errorf("seed provinsi: %w", err)
	}

	daerahID, err := seedDaerah(ctx, db, "Bandung", provinsiID)
	if err != nil {
		return fmt.Errorf("seed daerah: %w", err)
	}

	if err := seedBudaya(ctx, db, daerahID); err != nil {
		return fmt.Errorf("seed budaya: %w", err)
	}
	if err := seedEvents(ctx, db, daerahID); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	return nil
}

func seedSuperAdmin(ctx context.Context, db *sqlx.DB) error {
	email := envOr("SEED_ADMIN_EMAIL", "superadmin@jelajahbudaya.id")
	password := envOr("SEED_ADMIN_PASSWORD", "superadmin123")

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `
		INSERT INTO users (username, email, password, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING`,
		"superadmin", email, string(hashed), models.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		log.Info().Str("email", email).Msg("super admin created")
	}
	return nil
}

func seedProvinsi(ctx context.Context, db *sqlx.DB, nama string) (int, error) {
	var id int
	err := db.GetContext(ctx, &id, `SELECT id FROM provinsi WHERE nama = $1`, nama)
	if err == nil {
		return id, nil
	}

	err = db.QueryRowContext(ctx, `
		INSERT INTO provinsi (nama) VALUES ($1) RETURNING id`, nama).Scan(&id)
	return id, err
}

func seedDaerah(ctx context.Context, db *sqlx.DB, nama string, provinsiID int) (int, error) {
	var id int
	err := db.GetContext(ctx, &id, `SELECT id FROM daerah WHERE nama = $1 AND provinsi_id = $2`, nama, provinsiID)
	if err == nil {
		return id, nil
	}

	err = db.QueryRowContext(ctx, `
		INSERT INTO daerah (nama, provinsi_id) VALUES ($1, $2) RETURNING id`, nama, provinsiID).Scan(&id)
	return id, err
}

func seedBudaya(ctx context.Context, db *sqlx.DB, daerahID int) error {
	items := []struct {
		nama      string
		deskripsi string
		kategori  string
	}{
		{"Tari Jaipong", "Tarian tradisional Sunda dengan gerakan dinamis.", models.KategoriTarian},
		{"Angklung", "Alat musik bambu yang dimainkan dengan cara digoyangkan.", models.KategoriMusik},
		{"Batagor", "Baso tahu goreng khas Bandung.", models.KategoriKuliner},
	}

	for _, it := range items {
		var exists bool
		if err := db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM budaya WHERE nama = $1 AND daerah_id = $2)`,
			it.nama, daerahID); err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO budaya (nama, deskripsi, kategori, daerah_id)
			VALUES ($1, $2, $3, $4)`,
			it.nama, it.deskripsi, it.kategori, daerahID); err != nil {
			return err
		}
	}
	return nil
}

func seedEvents(ctx context.Context, db *sqlx.DB, daerahID int) error {
	events := []struct {
		nama      string
		deskripsi string
		tanggal   time.Time
		lokasi    string
	}{
		{
			"Festival Angklung", "Pertunjukan angklung massal.",
			time.Now().AddDate(0, 1, 0), "Saung Angklung Udjo",
		},
		{
			"Pekan Budaya Sunda", "Pameran seni dan kuliner Sunda.",
			time.Now().AddDate(0, 2, 0), "Gedung Sate",
		},
	}

	for _, ev := range events {
		var exists bool
		if err := db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM events WHERE nama = $1 AND daerah_id = $2)`,
			ev.nama, daerahID); err != nil {
			return err
		}
		if exists {
			continue
		}
		if _, err := db.ExecContext(ctx, `
			INSERT INTO events (nama, deskripsi, tanggal, lokasi, daerah_id)
			VALUES ($1, $2, $3, $4, $5)`,
			ev.nama, ev.deskripsi, ev.tanggal, ev.lokasi, daerahID); err != nil {
			return err
		}
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
