package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/app/models"
)

var db *sql.DB

// MustInitDB initializes the global db, applies migrations and panics/logs
// fatally on error.
func MustInitDB() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.URL,
		cfg.DB.Port,
		cfg.DB.Name,
	)

	d, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}

	if err := d.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}

	if err := runMigrations(d, cfg.DB.Name); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	log.Info().Msg("connected to Postgres")
	db = d
}

// runMigrations applies SQL migrations from the migrations directory.
func runMigrations(d *sql.DB, dbName string) error {
	driver, err := migratepg.WithInstance(d, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", dbName, driver)
	if err != nil {
		return fmt.Errorf("failed to init migrate: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func insertGeneration(ctx context.Context, userID, idea string, names []models.ScoredName) (string, error) {
	if db == nil {
		// Allow test runs without a backing DB.
		return "", nil
	}

	payload, err := json.Marshal(names)
	if err != nil {
		return "", err
	}

	const q = `
		INSERT INTO generations (user_id, idea_text, names)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	var id string
	if err := db.QueryRowContext(ctx, q, userID, idea, payload).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// ListGenerations returns a user's generation history, newest first.
func ListGenerations(ctx context.Context, userID string) ([]models.Generation, error) {
	if db == nil {
		return []models.Generation{}, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, user_id, idea_text, names, created_at
		FROM generations
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Generation{}
	for rows.Next() {
		var g models.Generation
		var names []byte
		if err := rows.Scan(&g.ID, &g.UserID, &g.IdeaText, &names, &g.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(names, &g.Names); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func insertValidation(ctx context.Context, v models.Validation) (string, error) {
	if db == nil {
		return "", nil
	}

	domains, err := json.Marshal(v.Domains)
	if err != nil {
		return "", err
	}
	socials, err := nullableJSON(v.Socials == nil, v.Socials)
	if err != nil {
		return "", err
	}
	trademark, err := nullableJSON(v.Trademark == nil, v.Trademark)
	if err != nil {
		return "", err
	}
	competitors, err := nullableJSON(v.Competitors == nil, v.Competitors)
	if err != nil {
		return "", err
	}

	const q = `
		INSERT INTO validations (generation_id, name, domains, socials, trademark, competitors)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id;
	`
	var id string
	err = db.QueryRowContext(ctx, q, v.GenerationID, v.Name, domains, socials, trademark, competitors).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func nullableJSON(isNil bool, v any) (any, error) {
	if isNil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// upsertDomainCheck records the latest live result for a domain. One row per
// domain string.
func upsertDomainCheck(ctx context.Context, domain string, available bool) (models.DomainCheck, error) {
	now := time.Now().UTC()
	if db == nil {
		return models.DomainCheck{Domain: domain, Available: available, CheckedAt: now}, nil
	}

	const q = `
		INSERT INTO domain_checks (domain, available, checked_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (domain) DO UPDATE
		SET available = EXCLUDED.available, checked_at = EXCLUDED.checked_at
		RETURNING domain, available, checked_at;
	`
	var check models.DomainCheck
	err := db.QueryRowContext(ctx, q, domain, available, now).
		Scan(&check.Domain, &check.Available, &check.CheckedAt)
	if err != nil {
		return models.DomainCheck{}, err
	}
	return check, nil
}

// readDomainChecks returns cached rows for the given domains, if any.
func readDomainChecks(ctx context.Context, domains []string) ([]models.DomainCheck, error) {
	if db == nil || len(domains) == 0 {
		return []models.DomainCheck{}, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT domain, available, checked_at
		FROM domain_checks
		WHERE domain = ANY($1)
		ORDER BY domain;
	`, pq.Array(domains))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.DomainCheck{}
	for rows.Next() {
		var check models.DomainCheck
		if err := rows.Scan(&check.Domain, &check.Available, &check.CheckedAt); err != nil {
			return nil, err
		}
		out = append(out, check)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// insertFeatureInterest records one row per (user, feature). Duplicates are
// dropped at write time.
func insertFeatureInterest(ctx context.Context, userID, feature string) error {
	if db == nil {
		return nil
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO feature_interest (user_id, feature)
		VALUES ($1, $2)
		ON CONFLICT (user_id, feature) DO NOTHING;
	`, userID, feature)
	return err
}
