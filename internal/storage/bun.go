package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-deck/pkg/storage"

	_ "github.com/mattn/go-sqlite3"
)

// kvEntry is the single-table layout backing the SQLite port.
type kvEntry struct {
	bun.BaseModel `bun:"table:deck_kv,alias:kv"`

	Key   string `bun:"key,pk"`
	Value []byte `bun:"value,notnull"`
}

type BunPort struct {
	db *bun.DB
}

// NewBunPort constructs a port backed by a bun database handle. Call Init
// before first use to ensure the backing table exists.
func NewBunPort(db *bun.DB) *BunPort {
	return &BunPort{db: db}
}

// OpenSQLite opens (or creates) a SQLite database at dsn and returns a ready
// port. The schema is created on the fly.
func OpenSQLite(ctx context.Context, dsn string) (storage.Port, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("storage: sqlite dsn is required")
	}

	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: open sqlite %s: %w", dsn, err)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	port := NewBunPort(db)
	if err := port.Init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return port, nil
}

// Init creates the key/value table when it does not exist yet.
func (b *BunPort) Init(ctx context.Context) error {
	if _, err := b.db.NewCreateTable().Model((*kvEntry)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("storage: create kv table: %w", err)
	}
	return nil
}

func (b *BunPort) Get(ctx context.Context, key string) ([]byte, error) {
	entry := new(kvEntry)
	err := b.db.NewSelect().Model(entry).Where("key = ?", key).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, fmt.Errorf("storage: get key %s: %w", key, err)
	}
	return entry.Value, nil
}

func (b *BunPort) Set(ctx context.Context, key string, value []byte) error {
	entry := &kvEntry{Key: key, Value: value}
	_, err := b.db.NewInsert().
		Model(entry).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("storage: set key %s: %w", key, err)
	}
	return nil
}

func (b *BunPort) Delete(ctx context.Context, key string) error {
	_, err := b.db.NewDelete().Model((*kvEntry)(nil)).Where("key = ?", key).Exec(ctx)
	if err != nil {
		return fmt.Errorf("storage: delete key %s: %w", key, err)
	}
	return nil
}

func (b *BunPort) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := b.db.NewSelect().
		Model((*kvEntry)(nil)).
		Column("key").
		Where("key LIKE ? ESCAPE '\\'", escapeLike(prefix)+"%").
		Order("key ASC").
		Scan(ctx, &keys)
	if err != nil {
		return nil, fmt.Errorf("storage: list keys: %w", err)
	}
	return keys, nil
}

// Apply runs the full batch inside a single transaction.
func (b *BunPort) Apply(ctx context.Context, ops []storage.Op) error {
	err := b.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, op := range ops {
			if op.Delete {
				if _, err := tx.NewDelete().Model((*kvEntry)(nil)).Where("key = ?", op.Key).Exec(ctx); err != nil {
					return err
				}
				continue
			}
			entry := &kvEntry{Key: op.Key, Value: op.Value}
			if _, err := tx.NewInsert().
				Model(entry).
				On("CONFLICT (key) DO UPDATE").
				Set("value = EXCLUDED.value").
				Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("storage: apply batch: %w", err)
	}
	return nil
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
