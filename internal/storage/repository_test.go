package storage_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/quietseason/internal/catalog"
	"github.com/neexbeast/quietseason/internal/storage"
	"github.com/neexbeast/quietseason/migrations"
)

// ---- mock Querier ----

type mockQuerier struct {
	queryFn func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	execFn  func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (m *mockQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return m.queryFn(ctx, sql, args...)
}
func (m *mockQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return m.execFn(ctx, sql, args...)
}

// ---- mock pgx.Rows ----

type fakeRows struct {
	rows    [][]any
	idx     int
	rowErr  error
	scanErr error
}

func (f *fakeRows) Next() bool                                   { f.idx++; return f.idx <= len(f.rows) }
func (f *fakeRows) Err() error                                   { return f.rowErr }
func (f *fakeRows) Close()                                       {}
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	row := f.rows[f.idx-1]
	for i, d := range dest {
		if i >= len(row) {
			break
		}
		switch v := d.(type) {
		case *string:
			*v = row[i].(string)
		case *[]byte:
			*v = row[i].([]byte)
		case *time.Time:
			*v = row[i].(time.Time)
		}
	}
	return nil
}

// ---- mock MigrationPool ----

type mockMigrationPool struct {
	beginFn func(ctx context.Context) (pgx.Tx, error)
}

func (m *mockMigrationPool) Begin(ctx context.Context) (pgx.Tx, error) {
	return m.beginFn(ctx)
}

// mockTx is a minimal pgx.Tx implementation for testing migrations.
type mockTx struct {
	execFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	commitFn   func(ctx context.Context) error
	rollbackFn func(ctx context.Context) error
}

func (t *mockTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return t.execFn(ctx, sql, args...)
}
func (t *mockTx) Commit(ctx context.Context) error   { return t.commitFn(ctx) }
func (t *mockTx) Rollback(ctx context.Context) error { return t.rollbackFn(ctx) }

// pgx.Tx has many more methods; stub them out.
func (t *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (t *mockTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *mockTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *mockTx) LargeObjects() pgx.LargeObjects                             { return pgx.LargeObjects{} }
func (t *mockTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *mockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (t *mockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *mockTx) Conn() *pgx.Conn { return nil }

// ---- helpers ----

func okTx(execFn func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)) *mockTx {
	return &mockTx{
		execFn:     execFn,
		commitFn:   func(_ context.Context) error { return nil },
		rollbackFn: func(_ context.Context) error { return nil },
	}
}

func poolWith(tx pgx.Tx) *mockMigrationPool {
	return &mockMigrationPool{beginFn: func(_ context.Context) (pgx.Tx, error) { return tx, nil }}
}

// storedRows renders profiles the way crowd_profiles returns them.
func storedRows(t *testing.T, profiles []catalog.Profile) [][]any {
	t.Helper()
	var rows [][]any
	for _, p := range profiles {
		b, err := json.Marshal(map[string]any{
			"yearlyData": p.YearlyData,
			"peakMonths": p.PeakMonths,
			"bestMonths": p.BestMonths,
			"listing":    p.Listing,
		})
		require.NoError(t, err)
		rows = append(rows, []any{p.Destination, p.Country, p.Region, b, p.LastUpdated})
	}
	return rows
}

// ---- SeedProfiles tests ----

func TestSeedProfiles_InsertsInOrder(t *testing.T) {
	var calls [][]any
	q := &mockQuerier{
		execFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			assert.Contains(t, sql, "ON CONFLICT (destination) DO NOTHING")
			calls = append(calls, args)
			return pgconn.CommandTag{}, nil
		},
	}

	profiles := catalog.DefaultProfiles()
	repo := storage.NewRepositoryWithQuerier(q)
	require.NoError(t, repo.SeedProfiles(context.Background(), profiles))

	require.Len(t, calls, len(profiles))
	for i, args := range calls {
		require.Len(t, args, 6)
		assert.Equal(t, i, args[0])
		assert.Equal(t, profiles[i].Destination, args[1])
	}

	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(calls[0][4].([]byte), &data))
	assert.Contains(t, data, "yearlyData")
	assert.Contains(t, data, "listing")
}

func TestSeedProfiles_DBError(t *testing.T) {
	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, fmt.Errorf("db error")
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	err := repo.SeedProfiles(context.Background(), catalog.DefaultProfiles())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seeding profile Azores")
}

// ---- ListProfiles tests ----

func TestListProfiles_Found(t *testing.T) {
	defaults := catalog.DefaultProfiles()
	q := &mockQuerier{
		queryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
			assert.Contains(t, sql, "ORDER BY position")
			return &fakeRows{rows: storedRows(t, defaults[:2])}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	profiles, err := repo.ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	assert.Equal(t, "Azores", profiles[0].Destination)
	assert.Equal(t, "Europe", profiles[0].Region)
	assert.Len(t, profiles[0].YearlyData, 12)
	assert.Equal(t, []int{7, 8}, profiles[0].PeakMonths)
	assert.Equal(t, 1200, profiles[0].Listing.AverageCost)
	assert.True(t, defaults[0].LastUpdated.Equal(profiles[0].LastUpdated))
	assert.Equal(t, "Faroe Islands", profiles[1].Destination)
}

func TestListProfiles_Empty(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return &fakeRows{}, nil },
	}

	repo := storage.NewRepositoryWithQuerier(q)
	profiles, err := repo.ListProfiles(context.Background())
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestListProfiles_QueryError(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return nil, fmt.Errorf("query failed")
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListProfiles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying crowd profiles")
}

func TestListProfiles_ScanError(t *testing.T) {
	rows := &fakeRows{
		rows:    [][]any{{"Azores", "Portugal", "Europe", []byte("{}"), time.Now()}},
		scanErr: fmt.Errorf("scan failed"),
	}
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return rows, nil },
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListProfiles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning")
}

func TestListProfiles_RowsErr(t *testing.T) {
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rowErr: fmt.Errorf("rows iteration error")}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListProfiles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterating")
}

func TestListProfiles_BadJSON(t *testing.T) {
	rows := &fakeRows{rows: [][]any{{"Azores", "Portugal", "Europe", []byte("not-json"), time.Now()}}}
	q := &mockQuerier{
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return rows, nil },
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.ListProfiles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshaling")
}

// ---- LoadCatalog tests ----

func TestLoadCatalog_SeedsThenBuilds(t *testing.T) {
	defaults := catalog.DefaultProfiles()
	seeded := 0
	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			seeded++
			return pgconn.CommandTag{}, nil
		},
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rows: storedRows(t, defaults)}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	c, err := repo.LoadCatalog(context.Background(), defaults)
	require.NoError(t, err)

	assert.Equal(t, len(defaults), seeded)
	assert.Len(t, c.Names(), 6)

	p, err := c.Destination("Azores")
	require.NoError(t, err)
	assert.Equal(t, 27, p.AverageCrowdLevel)
}

func TestLoadCatalog_InvalidStoredProfile(t *testing.T) {
	broken := catalog.DefaultProfiles()[:1]
	broken[0].YearlyData = broken[0].YearlyData[:6]

	q := &mockQuerier{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, nil
		},
		queryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
			return &fakeRows{rows: storedRows(t, broken)}, nil
		},
	}

	repo := storage.NewRepositoryWithQuerier(q)
	_, err := repo.LoadCatalog(context.Background(), catalog.DefaultProfiles())
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidProfile)
}

// ---- NewRepository ----

func TestNewRepository_NotNil(t *testing.T) {
	repo := storage.NewRepository(nil)
	assert.NotNil(t, repo)
}

// ---- RunMigrations tests ----

func TestRunMigrations_EmptyFS(t *testing.T) {
	err := storage.RunMigrations(context.Background(), nil, fstest.MapFS{})
	require.NoError(t, err)
}

func TestRunMigrations_IgnoresNonSQL(t *testing.T) {
	fsys := fstest.MapFS{
		"README.md":     {Data: []byte("# migrations")},
		"001_a.sql":     {Data: []byte("SELECT 1;")},
		"sub/002_b.sql": {Data: []byte("SELECT 2;")},
	}

	var executed []string
	tx := okTx(func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		executed = append(executed, sql)
		return pgconn.CommandTag{}, nil
	})

	require.NoError(t, storage.RunMigrations(context.Background(), poolWith(tx), fsys))
	assert.Equal(t, []string{"SELECT 1;"}, executed)
}

func TestRunMigrations_BeginError(t *testing.T) {
	fsys := fstest.MapFS{"001_test.sql": {Data: []byte("SELECT 1;")}}
	pool := &mockMigrationPool{
		beginFn: func(_ context.Context) (pgx.Tx, error) { return nil, fmt.Errorf("cannot begin") },
	}

	err := storage.RunMigrations(context.Background(), pool, fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing migration")
}

func TestRunMigrations_ExecErrorRollsBack(t *testing.T) {
	fsys := fstest.MapFS{"001_test.sql": {Data: []byte("INVALID SQL;")}}

	rolledBack := false
	tx := &mockTx{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, fmt.Errorf("syntax error")
		},
		commitFn: func(_ context.Context) error { return nil },
		rollbackFn: func(_ context.Context) error {
			rolledBack = true
			return nil
		},
	}

	err := storage.RunMigrations(context.Background(), poolWith(tx), fsys)
	require.Error(t, err)
	assert.True(t, rolledBack)
}

func TestRunMigrations_CommitError(t *testing.T) {
	fsys := fstest.MapFS{"001_test.sql": {Data: []byte("SELECT 1;")}}
	tx := &mockTx{
		execFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, nil
		},
		commitFn:   func(_ context.Context) error { return fmt.Errorf("commit failed") },
		rollbackFn: func(_ context.Context) error { return nil },
	}

	err := storage.RunMigrations(context.Background(), poolWith(tx), fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "committing")
}

func TestRunMigrations_SortsFilesLexicographically(t *testing.T) {
	fsys := fstest.MapFS{
		"003_c.sql": {Data: []byte("SELECT 3;")},
		"001_a.sql": {Data: []byte("SELECT 1;")},
		"002_b.sql": {Data: []byte("SELECT 2;")},
	}

	var order []string
	tx := okTx(func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		order = append(order, sql)
		return pgconn.CommandTag{}, nil
	})

	require.NoError(t, storage.RunMigrations(context.Background(), poolWith(tx), fsys))
	assert.Equal(t, []string{"SELECT 1;", "SELECT 2;", "SELECT 3;"}, order)
}

func TestRunMigrations_EmbeddedSchema(t *testing.T) {
	var executed []string
	tx := okTx(func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		executed = append(executed, sql)
		return pgconn.CommandTag{}, nil
	})

	require.NoError(t, storage.RunMigrations(context.Background(), poolWith(tx), migrations.FS))
	require.NotEmpty(t, executed)
	assert.True(t, strings.Contains(executed[0], "CREATE TABLE IF NOT EXISTS crowd_profiles"))
}

// ---- Connect tests ----

func TestConnect_BadURL(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := storage.Connect(ctx, "postgres://invalid-host-xyz:5432/db?sslmode=disable")
	require.Error(t, err)
}

func TestConnect_UnparsableURL(t *testing.T) {
	_, err := storage.Connect(context.Background(), "postgres://%zz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing database URL")
}
