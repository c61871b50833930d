package repository

import (
	"context"
	"encoding/json"
	"errors"

	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

type CatalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateCourt(ctx context.Context, in commands.CourtInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO courts (name, court_type, sport, base_price, capacity, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		in.Name, in.Type, in.Sport, in.BasePrice, in.Capacity, in.Description, in.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("court name already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create court", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateCourt(ctx context.Context, id uuid.UUID, in commands.CourtInput) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE courts
		SET name = $2, court_type = $3, sport = $4, base_price = $5,
		    capacity = $6, description = $7, is_active = $8, updated_at = now()
		WHERE id = $1`,
		id, in.Name, in.Type, in.Sport, in.BasePrice, in.Capacity, in.Description, in.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("court name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", errs.ErrCourtNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) DeleteCourt(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", errs.ErrCourtNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) CreateCoach(ctx context.Context, in commands.CoachInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO coaches (name, email, specialization, experience, price_per_hour, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		in.Name, in.Email, in.Specialization, in.Experience, in.PricePerHour, in.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("coach email already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create coach", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateCoach(ctx context.Context, id uuid.UUID, in commands.CoachInput) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE coaches
		SET name = $2, email = $3, specialization = $4, experience = $5,
		    price_per_hour = $6, is_active = $7, updated_at = now()
		WHERE id = $1`,
		id, in.Name, in.Email, in.Specialization, in.Experience, in.PricePerHour, in.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("coach email already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update coach", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coach not found", errs.ErrCoachNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) UpdateCoachAvailability(ctx context.Context, id uuid.UUID, days []commands.CoachAvailabilityDay) error {
	if days == nil {
		days = []commands.CoachAvailabilityDay{}
	}
	doc, err := json.Marshal(days)
	if err != nil {
		return infra.WrapRepoErr("failed to encode coach availability", err)
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE coaches
		SET availability = $2, updated_at = now()
		WHERE id = $1`,
		id, doc)
	if err != nil {
		return infra.WrapRepoErr("failed to update coach availability", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coach not found", errs.ErrCoachNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) DeleteCoach(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM coaches WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coach", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coach not found", errs.ErrCoachNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) CreateEquipment(ctx context.Context, in commands.EquipmentInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, `
		INSERT INTO equipment (name, category, total_stock, price_per_hour, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		in.Name, in.Category, in.TotalStock, in.PricePerHour, in.IsActive,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("equipment name already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create equipment", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateEquipment(ctx context.Context, id uuid.UUID, in commands.EquipmentInput) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE equipment
		SET name = $2, category = $3, total_stock = $4, price_per_hour = $5,
		    is_active = $6, updated_at = now()
		WHERE id = $1`,
		id, in.Name, in.Category, in.TotalStock, in.PricePerHour, in.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("equipment name already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", errs.ErrEquipmentNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", errs.ErrEquipmentNotFound, infra.KindNotFound)
	}
	return nil
}
