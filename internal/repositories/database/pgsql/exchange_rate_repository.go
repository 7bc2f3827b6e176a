package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/transitbase/currency-service/internal/apperrors"
	"github.com/transitbase/currency-service/internal/core/domain"
	portsrepo "github.com/transitbase/currency-service/internal/core/ports/repositories"
	"github.com/transitbase/currency-service/internal/models"
	"github.com/transitbase/currency-service/internal/utils/mapping"
)

// PgxExchangeRateRepository implements the exchange-rate repository ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

// ListRatesForBase retrieves all rate rows for the given base currency.
func (r *PgxExchangeRateRepository) ListRatesForBase(ctx context.Context, baseCurrencyCode string) ([]domain.ExchangeRate, error) {
	query := `
		SELECT base_currency_code, target_currency_code, rate, fetched_at
		FROM exchange_rates
		WHERE base_currency_code = $1
		ORDER BY target_currency_code;
	`

	rows, err := r.Pool.Query(ctx, query, baseCurrencyCode)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query exchange rates", err)
	}
	defer rows.Close()

	var domainRates []domain.ExchangeRate
	for rows.Next() {
		var modelRate models.ExchangeRate
		err := rows.Scan(
			&modelRate.BaseCurrencyCode,
			&modelRate.TargetCurrencyCode,
			&modelRate.Rate,
			&modelRate.FetchedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan exchange rate", err)
		}
		domainRates = append(domainRates, mapping.ToDomainExchangeRate(modelRate))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating exchange rates", err)
	}

	return domainRates, nil
}

// LatestFetchedAt returns the newest fetched_at across all rows for the base.
func (r *PgxExchangeRateRepository) LatestFetchedAt(ctx context.Context, baseCurrencyCode string) (time.Time, error) {
	query := `
		SELECT fetched_at
		FROM exchange_rates
		WHERE base_currency_code = $1
		ORDER BY fetched_at DESC
		LIMIT 1;
	`

	var fetchedAt time.Time
	err := r.Pool.QueryRow(ctx, query, baseCurrencyCode).Scan(&fetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, apperrors.NewNotFoundError("no exchange rates for base " + baseCurrencyCode)
		}
		return time.Time{}, apperrors.NewAppError(500, "failed to find latest exchange rate", err)
	}
	return fetchedAt, nil
}

// SaveRates upserts all rows in one transaction, keyed by (base, target).
func (r *PgxExchangeRateRepository) SaveRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO exchange_rates (base_currency_code, target_currency_code, rate, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (base_currency_code, target_currency_code) DO UPDATE SET
			rate = EXCLUDED.rate,
			fetched_at = EXCLUDED.fetched_at;
	`

	for _, rate := range rates {
		modelRate := mapping.ToModelExchangeRate(rate)
		_, err := tx.Exec(ctx, query,
			modelRate.BaseCurrencyCode,
			modelRate.TargetCurrencyCode,
			modelRate.Rate,
			modelRate.FetchedAt,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to upsert exchange rate", err)
		}
	}

	return r.Commit(ctx, tx)
}
