package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/veloria/warranty-portal/internal/db"
	"github.com/veloria/warranty-portal/internal/repository"
	"github.com/veloria/warranty-portal/internal/storage"
)

const claimColumns = `
        id, order_number, email, name, street, postal_code, city, phone_number,
        brand, problem_description, notification_acknowledged, status,
        submission_date, created_at, updated_at`

type ClaimRepo struct {
	db db.DB
}

func NewClaimRepo(db db.DB) storage.ClaimRepository {
	return &ClaimRepo{db: db}
}

func (r *ClaimRepo) Create(ctx context.Context, claim *repository.Claim) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO claims (`+claimColumns+`
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `, claim.ID, claim.OrderNumber, claim.Email, claim.Name, claim.Street, claim.PostalCode,
		claim.City, claim.PhoneNumber, claim.Brand, claim.ProblemDescription,
		claim.NotificationAcknowledged, claim.Status, claim.SubmissionDate, claim.CreatedAt, claim.UpdatedAt)
	return err
}

func (r *ClaimRepo) CreateTx(ctx context.Context, tx db.Tx, claim *repository.Claim) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO claims (`+claimColumns+`
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `, claim.ID, claim.OrderNumber, claim.Email, claim.Name, claim.Street, claim.PostalCode,
		claim.City, claim.PhoneNumber, claim.Brand, claim.ProblemDescription,
		claim.NotificationAcknowledged, claim.Status, claim.SubmissionDate, claim.CreatedAt, claim.UpdatedAt)
	return err
}

func (r *ClaimRepo) GetByID(ctx context.Context, id string) (*repository.Claim, error) {
	var claim repository.Claim
	err := r.db.Get(ctx, &claim, "SELECT * FROM claims WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &claim, nil
}

func (r *ClaimRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Claim, error) {
	var claim repository.Claim
	err := tx.Get(ctx, &claim, "SELECT * FROM claims WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &claim, nil
}

func (r *ClaimRepo) GetAll(ctx context.Context, orderNumber, email string) ([]*repository.Claim, error) {
	query := "SELECT * FROM claims"
	args := []interface{}{}

	if orderNumber != "" && email != "" {
		query += " WHERE order_number = $1 AND email = $2"
		args = append(args, orderNumber, email)
	}

	query += " ORDER BY submission_date ASC"

	var claims []*repository.Claim
	err := r.db.Select(ctx, &claims, query, args...)
	return claims, err
}

func (r *ClaimRepo) UpdateTx(ctx context.Context, tx db.Tx, claim *repository.Claim) error {
	_, err := tx.Exec(ctx, `
        UPDATE claims
        SET
            order_number = $1,
            email = $2,
            name = $3,
            street = $4,
            postal_code = $5,
            city = $6,
            phone_number = $7,
            brand = $8,
            problem_description = $9,
            notification_acknowledged = $10,
            status = $11,
            updated_at = $12
        WHERE id = $13
    `, claim.OrderNumber, claim.Email, claim.Name, claim.Street, claim.PostalCode, claim.City,
		claim.PhoneNumber, claim.Brand, claim.ProblemDescription, claim.NotificationAcknowledged,
		claim.Status, claim.UpdatedAt, claim.ID)
	return err
}

func (r *ClaimRepo) FindFirst(ctx context.Context, orderNumber, email string) (*repository.Claim, error) {
	var claim repository.Claim
	err := r.db.Get(ctx, &claim, `
        SELECT * FROM claims
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
	return &claim, nil
}
