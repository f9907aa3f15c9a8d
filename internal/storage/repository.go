package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/quietseason/internal/catalog"
)

// Querier abstracts the subset of pgxpool.Pool used by Repository.
// This allows injection of a mock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository stores destination crowd profiles.
type Repository struct {
	q Querier
}

// NewRepository constructs a Repository backed by the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{q: pool}
}

// NewRepositoryWithQuerier constructs a Repository with a custom Querier (for tests).
func NewRepositoryWithQuerier(q Querier) *Repository {
	return &Repository{q: q}
}

// profileData is the JSONB payload of a crowd_profiles row.
type profileData struct {
	YearlyData []catalog.MonthlyCrowd `json:"yearlyData"`
	PeakMonths []int                  `json:"peakMonths"`
	BestMonths []int                  `json:"bestMonths"`
	Listing    catalog.Listing        `json:"listing"`
}

// SeedProfiles inserts profiles that are not stored yet, keeping their slice
// position as catalog order. Existing rows are left untouched.
func (r *Repository) SeedProfiles(ctx context.Context, profiles []catalog.Profile) error {
	const q = `
		INSERT INTO crowd_profiles (position, destination, country, region, data, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (destination) DO NOTHING
	`

	for i, p := range profiles {
		dataJSON, err := json.Marshal(profileData{
			YearlyData: p.YearlyData,
			PeakMonths: p.PeakMonths,
			BestMonths: p.BestMonths,
			Listing:    p.Listing,
		})
		if err != nil {
			return fmt.Errorf("marshaling profile data for %s: %w", p.Destination, err)
		}

		if _, err := r.q.Exec(ctx, q, i, p.Destination, p.Country, p.Region, dataJSON, p.LastUpdated); err != nil {
			return fmt.Errorf("seeding profile %s: %w", p.Destination, err)
		}
	}

	return nil
}

// ListProfiles returns every stored profile in catalog order.
// AverageCrowdLevel is left for catalog.New to derive.
func (r *Repository) ListProfiles(ctx context.Context) ([]catalog.Profile, error) {
	const q = `
		SELECT destination, country, region, data, last_updated
		FROM crowd_profiles
		ORDER BY position, id
	`

	rows, err := r.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying crowd profiles: %w", err)
	}
	defer rows.Close()

	var profiles []catalog.Profile
	for rows.Next() {
		var p catalog.Profile
		var dataJSON []byte
		var lastUpdated time.Time

		if err := rows.Scan(&p.Destination, &p.Country, &p.Region, &dataJSON, &lastUpdated); err != nil {
			return nil, fmt.Errorf("scanning crowd profile row: %w", err)
		}

		var data profileData
		if err := json.Unmarshal(dataJSON, &data); err != nil {
			return nil, fmt.Errorf("unmarshaling profile data for %s: %w", p.Destination, err)
		}

		p.YearlyData = data.YearlyData
		p.PeakMonths = data.PeakMonths
		p.BestMonths = data.BestMonths
		p.Listing = data.Listing
		p.LastUpdated = lastUpdated.UTC()
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating crowd profile rows: %w", err)
	}

	return profiles, nil
}

// LoadCatalog seeds the table with defaults and builds a catalog from what is stored.
func (r *Repository) LoadCatalog(ctx context.Context, defaults []catalog.Profile) (*catalog.Catalog, error) {
	if err := r.SeedProfiles(ctx, defaults); err != nil {
		return nil, err
	}

	profiles, err := r.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	c, err := catalog.New(profiles)
	if err != nil {
		return nil, fmt.Errorf("building catalog from stored profiles: %w", err)
	}
	return c, nil
}
