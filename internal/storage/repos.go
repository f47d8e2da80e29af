//go:generate mockgen -source ./repos.go -destination=./mocks/repos.go -package=mock_storage
package storage

import (
	"context"

	"github.com/veloria/warranty-portal/internal/db"
	"github.com/veloria/warranty-portal/internal/repository"
)

type ClaimRepository interface {
	Create(ctx context.Context, claim *repository.Claim) error
	CreateTx(ctx context.Context, tx db.Tx, claim *repository.Claim) error
	GetByID(ctx context.Context, id string) (*repository.Claim, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Claim, error)
	GetAll(ctx context.Context, orderNumber, email string) ([]*repository.Claim, error)
	UpdateTx(ctx context.Context, tx db.Tx, claim *repository.Claim) error
	FindFirst(ctx context.Context, orderNumber, email string) (*repository.Claim, error)
}

type ReturnRepository interface {
	Create(ctx context.Context, ret *repository.Return) error
	CreateTx(ctx context.Context, tx db.Tx, ret *repository.Return) error
	GetByID(ctx context.Context, id string) (*repository.Return, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Return, error)
	GetAll(ctx context.Context, orderNumber, email string) ([]*repository.Return, error)
	UpdateTx(ctx context.Context, tx db.Tx, ret *repository.Return) error
	FindFirst(ctx context.Context, orderNumber, email string) (*repository.Return, error)
}

func claimFromRepo(c *repository.Claim) *Claim {
	if c == nil {
		return nil
	}
	return &Claim{
		ID:                       c.ID,
		OrderNumber:              c.OrderNumber,
		Email:                    c.Email,
		Name:                     c.Name,
		Street:                   c.Street,
		PostalCode:               c.PostalCode,
		City:                     c.City,
		PhoneNumber:              c.PhoneNumber,
		Brand:                    c.Brand,
		ProblemDescription:       c.ProblemDescription,
		NotificationAcknowledged: c.NotificationAcknowledged,
		Status:                   c.Status,
		SubmissionDate:           c.SubmissionDate,
		CreatedAt:                c.CreatedAt,
		UpdatedAt:                c.UpdatedAt,
	}
}

func claimToRepo(c Claim) *repository.Claim {
	return &repository.Claim{
		ID:                       c.ID,
		OrderNumber:              c.OrderNumber,
		Email:                    c.Email,
		Name:                     c.Name,
		Street:                   c.Street,
		PostalCode:               c.PostalCode,
		City:                     c.City,
		PhoneNumber:              c.PhoneNumber,
		Brand:                    c.Brand,
		ProblemDescription:       c.ProblemDescription,
		NotificationAcknowledged: c.NotificationAcknowledged,
		Status:                   c.Status,
		SubmissionDate:           c.SubmissionDate,
		CreatedAt:                c.CreatedAt,
		UpdatedAt:                c.UpdatedAt,
	}
}

func returnFromRepo(r *repository.Return) *Return {
	if r == nil {
		return nil
	}
	return &Return{
		ID:             r.ID,
		OrderNumber:    r.OrderNumber,
		Email:          r.Email,
		Name:           r.Name,
		Street:         r.Street,
		PostalCode:     r.PostalCode,
		City:           r.City,
		PhoneNumber:    r.PhoneNumber,
		Details:        r.Details,
		Status:         r.Status,
		SubmissionDate: r.SubmissionDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func returnToRepo(r Return) *repository.Return {
	return &repository.Return{
		ID:             r.ID,
		OrderNumber:    r.OrderNumber,
		Email:          r.Email,
		Name:           r.Name,
		Street:         r.Street,
		PostalCode:     r.PostalCode,
		City:           r.City,
		PhoneNumber:    r.PhoneNumber,
		Details:        r.Details,
		Status:         r.Status,
		SubmissionDate: r.SubmissionDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}
