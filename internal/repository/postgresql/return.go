package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/veloria/warranty-portal/internal/db"
	"github.com/veloria/warranty-portal/internal/repository"
	"github.com/veloria/warranty-portal/internal/storage"
)

const returnColumns = `
        id, order_number, email, name, street, postal_code, city, phone_number,
        details, status, submission_date, created_at, updated_at`

type ReturnRepo struct {
	db db.DB
}

func NewReturnRepo(db db.DB) storage.ReturnRepository {
	return &ReturnRepo{db: db}
}

func (r *ReturnRepo) Create(ctx context.Context, ret *repository.Return) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO returns (`+returnColumns+`
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, ret.ID, ret.OrderNumber, ret.Email, ret.Name, ret.Street, ret.PostalCode, ret.City,
		ret.PhoneNumber, ret.Details, ret.Status, ret.SubmissionDate, ret.CreatedAt, ret.UpdatedAt)
	return err
}

func (r *ReturnRepo) CreateTx(ctx context.Context, tx db.Tx, ret *repository.Return) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO returns (`+returnColumns+`
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, ret.ID, ret.OrderNumber, ret.Email, ret.Name, ret.Street, ret.PostalCode, ret.City,
		ret.PhoneNumber, ret.Details, ret.Status, ret.SubmissionDate, ret.CreatedAt, ret.UpdatedAt)
	return err
}

func (r *ReturnRepo) GetByID(ctx context.Context, id string) (*repository.Return, error) {
	var ret repository.Return
	err := r.db.Get(ctx, &ret, "SELECT * FROM returns WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *ReturnRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Return, error) {
	var ret repository.Return
	err := tx.Get(ctx, &ret, "SELECT * FROM returns WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}

func (r *ReturnRepo) GetAll(ctx context.Context, orderNumber, email string) ([]*repository.Return, error) {
	query := "SELECT * FROM returns"
	args := []interface{}{}

	if orderNumber != "" && email != "" {
		query += " WHERE order_number = $1 AND email = $2"
		args = append(args, orderNumber, email)
	}

	query += " ORDER BY submission_date ASC"

	var returns []*repository.Return
	err := r.db.Select(ctx, &returns, query, args...)
	return returns, err
}

func (r *ReturnRepo) UpdateTx(ctx context.Context, tx db.Tx, ret *repository.Return) error {
	_, err := tx.Exec(ctx, `
        UPDATE returns
        SET
            order_number = $1,
            email = $2,
            name = $3,
            street = $4,
            postal_code = $5,
            city = $6,
            phone_number = $7,
            details = $8,
            status = $9,
            updated_at = $10
        WHERE id = $11
    `, ret.OrderNumber, ret.Email, ret.Name, ret.Street, ret.PostalCode, ret.City,
		ret.PhoneNumber, ret.Details, ret.Status, ret.UpdatedAt, ret.ID)
	return err
}

func (r *ReturnRepo) FindFirst(ctx context.Context, orderNumber, email string) (*repository.Return, error) {
	var ret repository.Return
	err := r.db.Get(ctx, &ret, `
        SELECT * FROM returns
        WHERE order_number = $1 AND email = $2
        ORDER BY submission_date ASC
        LIMIT 1
    `, orderNumber, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &ret, nil
}
