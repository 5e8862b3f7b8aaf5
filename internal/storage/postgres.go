// Package storage persists catalog snapshots, holdings, and the claim audit
// trail. It is optional: without a configured database the service runs
// entirely in memory.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/decentraestate/marketd/internal/models"
	"github.com/decentraestate/marketd/internal/portfolio"
)

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(connStr string) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStorage{db: db}

	if err := s.initTables(); err != nil {
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return s, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}

// SaveProperties snapshots the loaded catalog.
func (s *PostgresStorage) SaveProperties(ctx context.Context, properties []models.Property) error {
	query := `
        INSERT INTO properties (
            id, name, address, price, yield, tokens_available, total_tokens,
            image_url, beds, baths, sqft, category, fractional_holders
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
        )
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            address = EXCLUDED.address,
            price = EXCLUDED.price,
            yield = EXCLUDED.yield,
            tokens_available = EXCLUDED.tokens_available,
            total_tokens = EXCLUDED.total_tokens,
            image_url = EXCLUDED.image_url,
            beds = EXCLUDED.beds,
            baths = EXCLUDED.baths,
            sqft = EXCLUDED.sqft,
            category = EXCLUDED.category,
            fractional_holders = EXCLUDED.fractional_holders
    `

	for _, p := range properties {
		_, err := s.db.ExecContext(ctx, query,
			p.ID,
			p.Name,
			p.Address,
			p.Price,
			p.Yield,
			p.TokensAvailable,
			p.TotalTokens,
			p.ImageURL,
			p.Beds,
			p.Baths,
			p.Sqft,
			p.Category,
			p.FractionalHolders,
		)
		if err != nil {
			return fmt.Errorf("failed to save property %d: %w", p.ID, err)
		}
	}

	return nil
}

// GetProperties returns the persisted catalog snapshot in id order.
func (s *PostgresStorage) GetProperties(ctx context.Context) ([]models.Property, error) {
	query := `
        SELECT id, name, address, price, yield, tokens_available, total_tokens,
               image_url, beds, baths, sqft, category, fractional_holders
        FROM properties
        ORDER BY id ASC
    `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var result []models.Property
	for rows.Next() {
		var p models.Property
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Address,
			&p.Price,
			&p.Yield,
			&p.TokensAvailable,
			&p.TotalTokens,
			&p.ImageURL,
			&p.Beds,
			&p.Baths,
			&p.Sqft,
			&p.Category,
			&p.FractionalHolders,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		result = append(result, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	return result, nil
}

// Name implements the catalog.Source interface.
func (s *PostgresStorage) Name() string {
	return "postgres"
}

// Fetch implements the catalog.Source interface: the persisted snapshot can
// serve the catalog when the remote listings endpoint is unavailable. An
// empty table is an error so loading falls through to the next source.
func (s *PostgresStorage) Fetch(ctx context.Context) ([]models.Property, error) {
	properties, err := s.GetProperties(ctx)
	if err != nil {
		return nil, err
	}
	if len(properties) == 0 {
		return nil, fmt.Errorf("no stored properties")
	}
	return properties, nil
}

// SaveHoldings snapshots the user's positions after a claim settles.
func (s *PostgresStorage) SaveHoldings(ctx context.Context, holdings []models.UserHolding) error {
	query := `
        INSERT INTO holdings (
            property_id, tokens_owned, accrued_rent
        ) VALUES (
            $1, $2, $3
        )
        ON CONFLICT (property_id) DO UPDATE SET
            tokens_owned = EXCLUDED.tokens_owned,
            accrued_rent = EXCLUDED.accrued_rent
    `

	for _, h := range holdings {
		_, err := s.db.ExecContext(ctx, query, h.PropertyID, h.TokensOwned, h.AccruedRent)
		if err != nil {
			return fmt.Errorf("failed to save holding %d: %w", h.PropertyID, err)
		}
	}

	return nil
}

// GetHoldings returns the persisted positions.
func (s *PostgresStorage) GetHoldings(ctx context.Context) ([]models.UserHolding, error) {
	query := `
        SELECT property_id, tokens_owned, accrued_rent
        FROM holdings
        ORDER BY property_id ASC
    `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var result []models.UserHolding
	for rows.Next() {
		var h models.UserHolding
		if err := rows.Scan(&h.PropertyID, &h.TokensOwned, &h.AccruedRent); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		result = append(result, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding rows: %w", err)
	}

	return result, nil
}

// SaveClaimReceipt implements the portfolio.Sink interface, together with
// SaveHoldings.
func (s *PostgresStorage) SaveClaimReceipt(ctx context.Context, receipt *portfolio.ClaimReceipt) error {
	query := `
        INSERT INTO claim_receipts (
            id, property_id, claim_all, amount, settled_at
        ) VALUES (
            $1, $2, $3, $4, $5
        )
    `

	_, err := s.db.ExecContext(ctx, query,
		receipt.ID,
		receipt.PropertyID,
		receipt.All,
		receipt.Amount,
		receipt.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save claim receipt: %w", err)
	}

	return nil
}

// GetClaimReceipts returns the audit trail, oldest first.
func (s *PostgresStorage) GetClaimReceipts(ctx context.Context) ([]portfolio.ClaimReceipt, error) {
	query := `
        SELECT id, property_id, claim_all, amount, settled_at
        FROM claim_receipts
        ORDER BY settled_at ASC
    `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query claim receipts: %w", err)
	}
	defer rows.Close()

	var result []portfolio.ClaimReceipt
	for rows.Next() {
		var r portfolio.ClaimReceipt
		if err := rows.Scan(&r.ID, &r.PropertyID, &r.All, &r.Amount, &r.SettledAt); err != nil {
			return nil, fmt.Errorf("failed to scan claim receipt: %w", err)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating claim receipt rows: %w", err)
	}

	return result, nil
}

func (s *PostgresStorage) initTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS properties (
			id INT PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			address VARCHAR(300) NOT NULL,
			price NUMERIC(18, 2) NOT NULL,
			yield NUMERIC(6, 2),
			tokens_available INT NOT NULL,
			total_tokens INT NOT NULL,
			image_url TEXT,
			beds INT,
			baths INT,
			sqft INT,
			category VARCHAR(100),
			fractional_holders INT
		)`,

		`CREATE TABLE IF NOT EXISTS holdings (
			property_id INT PRIMARY KEY,
			tokens_owned INT NOT NULL,
			accrued_rent NUMERIC(18, 2) NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS claim_receipts (
			id UUID PRIMARY KEY,
			property_id INT,
			claim_all BOOLEAN NOT NULL DEFAULT FALSE,
			amount NUMERIC(18, 2) NOT NULL,
			settled_at TIMESTAMP NOT NULL
		)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}
