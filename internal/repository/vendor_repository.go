package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/event-planner/internal/domain"
)

// VendorRepository encapsulates vendor persistence.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	Update(ctx context.Context, vendor *domain.Vendor) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
	List(ctx context.Context, limit, offset int) ([]domain.Vendor, error)
	Count(ctx context.Context) (int64, error)
}

type vendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository instantiates repository.
func NewVendorRepository(pool *pgxpool.Pool) VendorRepository {
	return &vendorRepository{pool: pool}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        INSERT INTO vendors (name, service, contact_email)
        VALUES ($1, $2, $3)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		vendor.Name,
		vendor.Service,
		vendor.ContactEmail,
	).Scan(&vendor.ID)
}

func (r *vendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        UPDATE vendors SET name=$1, service=$2, contact_email=$3
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		vendor.Name,
		vendor.Service,
		vendor.ContactEmail,
		vendor.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vendorRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM vendors WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	const query = `
        SELECT id, name, service, contact_email
        FROM vendors WHERE id=$1`

	var vendor domain.Vendor
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.Service,
		&vendor.ContactEmail,
	); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) List(ctx context.Context, limit, offset int) ([]domain.Vendor, error) {
	const query = `
        SELECT id, name, service, contact_email
        FROM vendors ORDER BY id DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Vendor
	for rows.Next() {
		var vendor domain.Vendor
		if err := rows.Scan(&vendor.ID, &vendor.Name, &vendor.Service, &vendor.ContactEmail); err != nil {
			return nil, err
		}
		result = append(result, vendor)
	}
	return result, rows.Err()
}

func (r *vendorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM vendors`).Scan(&total)
	return total, err
}
