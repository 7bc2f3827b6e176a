package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transitbase/currency-service/internal/apperrors"
	"github.com/transitbase/currency-service/internal/core/domain"
	portsrepo "github.com/transitbase/currency-service/internal/core/ports/repositories"
	"github.com/transitbase/currency-service/internal/models"
	"github.com/transitbase/currency-service/internal/utils/mapping"
)

const currencyColumns = `currency_code, name, symbol, decimal_places, symbol_position,
		is_enabled, is_default, is_featured, display_order,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts or updates a currency. The default flag is managed
// separately by SetDefaultCurrency so an upsert can never create a second
// default.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (currency_code, name, symbol, decimal_places, symbol_position,
			is_enabled, is_featured, display_order,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (currency_code) DO UPDATE SET
			name = EXCLUDED.name,
			symbol = EXCLUDED.symbol,
			decimal_places = EXCLUDED.decimal_places,
			symbol_position = EXCLUDED.symbol_position,
			is_enabled = EXCLUDED.is_enabled,
			is_featured = EXCLUDED.is_featured,
			display_order = EXCLUDED.display_order,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Name,
		modelCurr.Symbol,
		modelCurr.DecimalPlaces,
		modelCurr.SymbolPosition,
		modelCurr.IsEnabled,
		modelCurr.IsFeatured,
		modelCurr.DisplayOrder,
		modelCurr.CreatedAt,
		modelCurr.CreatedBy,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

// SetDefaultCurrency clears the previous default and marks currencyCode as
// the single default, all in one transaction. The target must be enabled.
func (r *PgxCurrencyRepository) SetDefaultCurrency(ctx context.Context, currencyCode, updaterUserID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE currencies SET is_default = FALSE, last_updated_by = $1, last_updated_at = NOW()
		 WHERE is_default = TRUE`, updaterUserID,
	); err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to clear default currency", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE currencies SET is_default = TRUE, last_updated_by = $1, last_updated_at = NOW()
		 WHERE currency_code = $2 AND is_enabled = TRUE`, updaterUserID, currencyCode,
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to set default currency", err)
	}
	if tag.RowsAffected() == 0 {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewNotFoundError("no enabled currency with code " + currencyCode)
	}

	return r.Commit(ctx, tx)
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`

	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&modelCurr.CurrencyCode,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.DecimalPlaces,
		&modelCurr.SymbolPosition,
		&modelCurr.IsEnabled,
		&modelCurr.IsDefault,
		&modelCurr.IsFeatured,
		&modelCurr.DisplayOrder,
		&modelCurr.CreatedAt,
		&modelCurr.CreatedBy,
		&modelCurr.LastUpdatedAt,
		&modelCurr.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies sorted by display order.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.listCurrencies(ctx, "")
}

// ListEnabledCurrencies retrieves enabled currencies sorted by display order.
func (r *PgxCurrencyRepository) ListEnabledCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.listCurrencies(ctx, "WHERE is_enabled = TRUE")
}

// ListFeaturedCurrencies retrieves enabled, featured currencies sorted by display order.
func (r *PgxCurrencyRepository) ListFeaturedCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.listCurrencies(ctx, "WHERE is_enabled = TRUE AND is_featured = TRUE")
}

func (r *PgxCurrencyRepository) listCurrencies(ctx context.Context, where string) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ` + where + `
		ORDER BY display_order ASC, currency_code ASC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.Name,
			&currency.Symbol,
			&currency.DecimalPlaces,
			&currency.SymbolPosition,
			&currency.IsEnabled,
			&currency.IsDefault,
			&currency.IsFeatured,
			&currency.DisplayOrder,
			&currency.CreatedAt,
			&currency.CreatedBy,
			&currency.LastUpdatedAt,
			&currency.LastUpdatedBy,
		)
		return currency, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Currency{}, nil
		}
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
