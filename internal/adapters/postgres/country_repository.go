package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"countryfx/internal/adapters"
	"countryfx/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const countryColumns = `id, name, capital, region, population, currency_code,
	exchange_rate, estimated_gdp, flag_url, last_refreshed_at, created_at, updated_at`

type CountryRepository struct {
	pool *pgxpool.Pool
}

// WithTx runs fn inside one transaction; any error from fn or from commit
// rolls the whole unit of work back.
func (r *CountryRepository) WithTx(ctx context.Context, fn func(tx adapters.CountryTx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err = fn(&countryTx{tx: tx}); err != nil {
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *CountryRepository) GetByName(ctx context.Context, name string) (*domain.Country, error) {
	q := fmt.Sprintf(`select %s from countries where name_key = lower($1);`, countryColumns)

	var c domain.Country
	if err := scanCountry(r.pool.QueryRow(ctx, q, name), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, fmt.Errorf("failed to select country %q: %w", name, err)
	}
	return &c, nil
}

func (r *CountryRepository) List(ctx context.Context, filter domain.ListFilter) ([]domain.Country, error) {
	q := fmt.Sprintf(`select %s from countries`, countryColumns)

	var (
		args  []any
		where string
	)
	if filter.Region != "" {
		args = append(args, filter.Region)
		where = fmt.Sprintf(" where lower(region) = lower($%d)", len(args))
	}
	if filter.CurrencyCode != "" {
		args = append(args, filter.CurrencyCode)
		clause := fmt.Sprintf("upper(currency_code) = upper($%d)", len(args))
		if where == "" {
			where = " where " + clause
		} else {
			where += " and " + clause
		}
	}
	q += where
	if filter.SortByGDP {
		q += ` order by estimated_gdp desc nulls last, name_key`
	} else {
		q += ` order by name_key`
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	return collectCountries(rows)
}

func (r *CountryRepository) Top(ctx context.Context, n int) ([]domain.Country, error) {
	q := fmt.Sprintf(`
		select %s from countries
		where estimated_gdp is not null
		order by estimated_gdp desc, name_key
		limit $1;
	`, countryColumns)

	rows, err := r.pool.Query(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top countries: %w", err)
	}
	defer rows.Close()

	return collectCountries(rows)
}

func (r *CountryRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `select count(*) from countries;`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count countries: %w", err)
	}
	return total, nil
}

func (r *CountryRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.pool.Exec(ctx, `delete from countries where name_key = lower($1);`, name)
	if err != nil {
		return fmt.Errorf("failed to delete country %q: %w", name, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCountryNotFound
	}
	return nil
}

func (r *CountryRepository) LastRefreshed(ctx context.Context) (*time.Time, error) {
	var t time.Time
	err := r.pool.QueryRow(ctx, `select refreshed_at from refresh_marker where id = 1;`).Scan(&t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil // never refreshed yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select refresh marker: %w", err)
	}
	return &t, nil
}

func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{pool: pool}
}

// countryTx implements adapters.CountryTx on top of a live pgx transaction.
type countryTx struct {
	tx pgx.Tx
}

func (t *countryTx) Upsert(ctx context.Context, c domain.Country) (bool, error) {
	// The name_key generated column (lower(name)) carries the unique index, so
	// two spellings differing only by case land on the same row. The stored
	// name keeps its original casing; everything else is overwritten wholesale.
	const q = `
		insert into countries
			(name, capital, region, population, currency_code, exchange_rate, estimated_gdp, flag_url, last_refreshed_at)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		on conflict (name_key) do update set
			capital           = excluded.capital,
			region            = excluded.region,
			population        = excluded.population,
			currency_code     = excluded.currency_code,
			exchange_rate     = excluded.exchange_rate,
			estimated_gdp     = excluded.estimated_gdp,
			flag_url          = excluded.flag_url,
			last_refreshed_at = excluded.last_refreshed_at,
			updated_at        = now()
		returning (xmax = 0) as created;
	`

	var created bool
	err := t.tx.QueryRow(ctx, q,
		c.Name, c.Capital, c.Region, c.Population, c.CurrencyCode,
		c.ExchangeRate, c.EstimatedGDP, c.FlagURL, c.LastRefreshedAt,
	).Scan(&created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert country %q: %w", c.Name, err)
	}
	return created, nil
}

func (t *countryTx) SetLastRefreshed(ctx context.Context, at time.Time) error {
	const q = `
		insert into refresh_marker (id, refreshed_at) values (1, $1)
		on conflict (id) do update set refreshed_at = excluded.refreshed_at;
	`
	if _, err := t.tx.Exec(ctx, q, at); err != nil {
		return fmt.Errorf("failed to set refresh marker: %w", err)
	}
	return nil
}

func scanCountry(row pgx.Row, c *domain.Country) error {
	return row.Scan(
		&c.ID, &c.Name, &c.Capital, &c.Region, &c.Population, &c.CurrencyCode,
		&c.ExchangeRate, &c.EstimatedGDP, &c.FlagURL, &c.LastRefreshedAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
}

func collectCountries(rows pgx.Rows) ([]domain.Country, error) {
	countries := make([]domain.Country, 0, 64)
	for rows.Next() {
		var c domain.Country
		if err := scanCountry(rows, &c); err != nil {
			return nil, fmt.Errorf("failed to scan country: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating countries: %w", err)
	}
	return countries, nil
}
