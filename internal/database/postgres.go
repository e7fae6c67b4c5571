package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/config"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	pool   *pgxpool.Pool
	tables config.Tables
}

func New(pool *pgxpool.Pool, t config.Tables) *Repo { return &Repo{pool: pool, tables: t} }

func Connect(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		panic(err)
	}
	if err := pool.Ping(ctx); err != nil {
		panic(err)
	}
	return pool
}

func (r *Repo) qt(tbl string) string { return fmt.Sprintf(`"%s"."%s"`, r.tables.Schema, tbl) }

func (r *Repo) Insert(ctx context.Context, o *domain.Order) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (order_id, platform, package, amount, distance_km, time_min,
		  priority, is_accepted, delivery_status, raw_title, raw_text, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (order_id) DO NOTHING
	`, r.qt(r.tables.Order)),
		o.ID, o.Platform, o.Package, o.Amount, o.DistanceKm, o.TimeMin,
		string(o.Priority), o.IsAccepted, o.DeliveryStatus, o.RawTitle, o.RawText, o.CreatedAt,
	)
	return err
}

func (r *Repo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	var priority string
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT order_id, platform, package, amount, distance_km, time_min,
		       priority, is_accepted, delivery_status, raw_title, raw_text, created_at
		FROM %s WHERE order_id=$1
	`, r.qt(r.tables.Order)), id).Scan(
		&o.ID, &o.Platform, &o.Package, &o.Amount, &o.DistanceKm, &o.TimeMin,
		&priority, &o.IsAccepted, &o.DeliveryStatus, &o.RawTitle, &o.RawText, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Priority = domain.Priority(priority)
	return &o, nil
}

func (r *Repo) RecentOrderIDs(ctx context.Context, limit int) ([]string, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT order_id FROM %s
		ORDER BY created_at DESC NULLS LAST
		LIMIT $1
	`, r.qt(r.tables.Order)), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *Repo) UpdateDeliveryStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET delivery_status=$2 WHERE order_id=$1
	`, r.qt(r.tables.Order)), id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByPackage(ctx context.Context, pkg string) (*domain.Platform, error) {
	var p domain.Platform
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT name, package, is_enabled, min_amount, max_amount, auto_accept, accept_medium
		FROM %s WHERE package=$1
	`, r.qt(r.tables.Platform)), pkg).Scan(
		&p.Name, &p.Package, &p.IsEnabled, &p.MinAmount, &p.MaxAmount, &p.AutoAccept, &p.AcceptMedium,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Platform, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT name, package, is_enabled, min_amount, max_amount, auto_accept, accept_medium
		FROM %s ORDER BY name
	`, r.qt(r.tables.Platform)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Platform
	for rows.Next() {
		var p domain.Platform
		if err := rows.Scan(&p.Name, &p.Package, &p.IsEnabled, &p.MinAmount, &p.MaxAmount,
			&p.AutoAccept, &p.AcceptMedium); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Upsert(ctx context.Context, p *domain.Platform) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (name, package, is_enabled, min_amount, max_amount, auto_accept, accept_medium)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (name) DO UPDATE SET
		  package=EXCLUDED.package,
		  is_enabled=EXCLUDED.is_enabled,
		  min_amount=EXCLUDED.min_amount,
		  max_amount=EXCLUDED.max_amount,
		  auto_accept=EXCLUDED.auto_accept,
		  accept_medium=EXCLUDED.accept_medium
	`, r.qt(r.tables.Platform)),
		p.Name, p.Package, p.IsEnabled, p.MinAmount, p.MaxAmount, p.AutoAccept, p.AcceptMedium,
	)
	return err
}

// Settings table holds a single row (id=1) with the global on/off switch.

func (r *Repo) IsServiceActive(ctx context.Context) (bool, error) {
	var active bool
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT service_active FROM %s WHERE id=1
	`, r.qt(r.tables.Settings))).Scan(&active)
	if errors.Is(err, pgx.ErrNoRows) {
		// No settings row yet: the service defaults to on.
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return active, nil
}

func (r *Repo) SetServiceActive(ctx context.Context, active bool) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, service_active) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET service_active=EXCLUDED.service_active
	`, r.qt(r.tables.Settings)), active)
	return err
}
