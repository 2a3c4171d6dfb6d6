package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"tournamentExport/internal/config"
	"tournamentExport/internal/models"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// GetBands returns every band in canonical report order.
func (s *Storage) GetBands(ctx context.Context) ([]models.Band, error) {
	query := `
		SELECT id, name, day, color, sex, max_points, max_entries, price, position
		FROM bands
		ORDER BY day, position, name`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get bands: %w", err)
	}
	defer rows.Close()

	var bands []models.Band
	for rows.Next() {
		var band models.Band
		err := rows.Scan(
			&band.ID,
			&band.Name,
			&band.Day,
			&band.Color,
			&band.Sex,
			&band.MaxPoints,
			&band.MaxEntries,
			&band.Price,
			&band.Position,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan band: %w", err)
		}
		bands = append(bands, band)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bands: %w", err)
	}

	return bands, nil
}

// GetConfirmedEntries returns confirmed, non-deleted entries of non-deleted
// members in arrival order. ArrivalOrder is the 1-based row position.
func (s *Storage) GetConfirmedEntries(ctx context.Context) ([]models.Entry, error) {
	query := `
		SELECT e.id, m.permit_id, u.email, m.last_name, m.first_name,
		       COALESCE(m.club_name, ''), m.points, COALESCE(m.category, ''),
		       b.name, e.created_at
		FROM entries e
		JOIN members m ON m.id = e.member_id
		JOIN users u ON u.id = m.user_id
		JOIN bands b ON b.id = e.band_id
		WHERE e.confirmed = true
		  AND e.deleted_at IS NULL
		  AND m.deleted_at IS NULL
		ORDER BY e.created_at, e.id`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get entries: %w", err)
	}
	defer rows.Close()

	var entries []models.Entry
	for rows.Next() {
		var entry models.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.PermitID,
			&entry.Email,
			&entry.LastName,
			&entry.FirstName,
			&entry.ClubName,
			&entry.Points,
			&entry.Category,
			&entry.BandName,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entry.ArrivalOrder = int64(len(entries) + 1)
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// InsertBands inserts bands in one transaction. Bands whose name already
// exists are left untouched and returned as skipped.
func (s *Storage) InsertBands(ctx context.Context, bands []models.Band) ([]string, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO bands (name, day, color, sex, max_points, max_entries, price, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`

	var skipped []string
	for _, band := range bands {
		var id uuid.UUID
		err := tx.QueryRowContext(ctx, query,
			band.Name,
			band.Day,
			band.Color,
			band.Sex,
			band.MaxPoints,
			band.MaxEntries,
			band.Price,
			band.Position,
		).Scan(&id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				skipped = append(skipped, band.Name)
				continue
			}
			return nil, fmt.Errorf("failed to insert band %s: %w", band.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit bands: %w", err)
	}

	return skipped, nil
}
