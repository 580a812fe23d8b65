package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/felino/storefront/internal/core/port"
)

var _ port.CartStorage = (*CartSessionsRepository)(nil)

// A CartSessionsRepository is the durable device storage for the cart:
// a plain key-value table holding the serialized line list per storage key.
type CartSessionsRepository struct {
	sqldb sqldb
}

func NewCartSessionsRepository(sqldb sqldb) CartSessionsRepository {
	return CartSessionsRepository{sqldb}
}

func (r CartSessionsRepository) Read(
	ctx context.Context, key string,
) (string, bool, error) {
	const op = "CartSessionsRepository.Read"

	if err := ctx.Err(); err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT value FROM cart_sessions WHERE key = $1;`

	var value string
	err := r.sqldb.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return value, true, nil
}

func (r CartSessionsRepository) Write(
	ctx context.Context, key, value string,
) error {
	const op = "CartSessionsRepository.Write"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO cart_sessions (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at;
	`

	if _, err := r.sqldb.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
