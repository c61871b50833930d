package readstore

import (
	"context"
	"errors"

	"court-booking/internal/infra"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogReadStore serves both the availability/pricing snapshots and the
// API read models for courts, coaches and equipment.
type CatalogReadStore struct {
	pool *pgxpool.Pool
}

func NewCatalogReadStore(pool *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{pool: pool}
}

// Snapshot lookups return (nil, nil) for absent rows: unresolvable catalog
// references are a domain outcome, not an infrastructure failure.

func (r *CatalogReadStore) FindCourt(ctx context.Context, id uuid.UUID) (*shared.CourtSnapshot, error) {
	var s shared.CourtSnapshot
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, court_type, sport, base_price, is_active
		FROM courts
		WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Type, &s.Sport, &s.BasePrice, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find court", err)
	}
	return &s, nil
}

func (r *CatalogReadStore) FindCoach(ctx context.Context, id uuid.UUID) (*shared.CoachSnapshot, error) {
	var s shared.CoachSnapshot
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, price_per_hour, is_active
		FROM coaches
		WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.PricePerHour, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find coach", err)
	}
	return &s, nil
}

func (r *CatalogReadStore) FindEquipment(ctx context.Context, id uuid.UUID) (*shared.EquipmentSnapshot, error) {
	var s shared.EquipmentSnapshot
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, total_stock, price_per_hour, is_active
		FROM equipment
		WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.TotalStock, &s.PricePerHour, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find equipment", err)
	}
	return &s, nil
}

func (r *CatalogReadStore) FindCourtView(ctx context.Context, id uuid.UUID) (*queries.CourtView, error) {
	var v queries.CourtView
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, court_type, sport, base_price, capacity, description,
		       is_active, created_at, updated_at
		FROM courts
		WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Type, &v.Sport, &v.BasePrice, &v.Capacity,
		&v.Description, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by ID", err)
	}
	return &v, nil
}

func (r *CatalogReadStore) ListCourtViews(ctx context.Context, filter queries.CourtListFilter) ([]*queries.CourtView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, court_type, sport, base_price, capacity, description,
		       is_active, created_at, updated_at
		FROM courts
		WHERE ($1::text IS NULL OR court_type = $1)
		  AND ($2::text IS NULL OR sport = $2)
		ORDER BY name`,
		filter.Type, filter.Sport)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var views []*queries.CourtView
	for rows.Next() {
		var v queries.CourtView
		if err := rows.Scan(&v.ID, &v.Name, &v.Type, &v.Sport, &v.BasePrice, &v.Capacity,
			&v.Description, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	return views, nil
}

func (r *CatalogReadStore) FindCoachView(ctx context.Context, id uuid.UUID) (*queries.CoachView, error) {
	var v queries.CoachView
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, specialization, experience, price_per_hour,
		       availability, is_active, created_at, updated_at
		FROM coaches
		WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Email, &v.Specialization, &v.Experience,
		&v.PricePerHour, &v.Availability, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coach not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coach by ID", err)
	}
	return &v, nil
}

func (r *CatalogReadStore) ListCoachViews(ctx context.Context) ([]*queries.CoachView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, specialization, experience, price_per_hour,
		       availability, is_active, created_at, updated_at
		FROM coaches
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coaches", err)
	}
	defer rows.Close()

	var views []*queries.CoachView
	for rows.Next() {
		var v queries.CoachView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Specialization, &v.Experience,
			&v.PricePerHour, &v.Availability, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan coach row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list coaches", err)
	}
	return views, nil
}

func (r *CatalogReadStore) FindEquipmentView(ctx context.Context, id uuid.UUID) (*queries.EquipmentView, error) {
	var v queries.EquipmentView
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, category, total_stock, price_per_hour,
		       is_active, created_at, updated_at
		FROM equipment
		WHERE id = $1`, id,
	).Scan(&v.ID, &v.Name, &v.Category, &v.TotalStock,
		&v.PricePerHour, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find equipment by ID", err)
	}
	return &v, nil
}

func (r *CatalogReadStore) ListEquipmentViews(ctx context.Context) ([]*queries.EquipmentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, category, total_stock, price_per_hour,
		       is_active, created_at, updated_at
		FROM equipment
		ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	defer rows.Close()

	var views []*queries.EquipmentView
	for rows.Next() {
		var v queries.EquipmentView
		if err := rows.Scan(&v.ID, &v.Name, &v.Category, &v.TotalStock,
			&v.PricePerHour, &v.IsActive, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan equipment row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	return views, nil
}
