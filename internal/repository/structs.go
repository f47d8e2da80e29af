package repository

import (
	"encoding/json"
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Claim struct {
	ID                       string    `db:"id"`
	OrderNumber              string    `db:"order_number"`
	Email                    string    `db:"email"`
	Name                     string    `db:"name"`
	Street                   string    `db:"street"`
	PostalCode               string    `db:"postal_code"`
	City                     string    `db:"city"`
	PhoneNumber              string    `db:"phone_number"`
	Brand                    string    `db:"brand"`
	ProblemDescription       string    `db:"problem_description"`
	NotificationAcknowledged bool      `db:"notification_acknowledged"`
	Status                   string    `db:"status"`
	SubmissionDate           time.Time `db:"submission_date"`
	CreatedAt                time.Time `db:"created_at"`
	UpdatedAt                time.Time `db:"updated_at"`
}

type Return struct {
	ID             string          `db:"id"`
	OrderNumber    string          `db:"order_number"`
	Email          string          `db:"email"`
	Name           string          `db:"name"`
	Street         string          `db:"street"`
	PostalCode     string          `db:"postal_code"`
	City           string          `db:"city"`
	PhoneNumber    string          `db:"phone_number"`
	Details        json.RawMessage `db:"details"`
	Status         string          `db:"status"`
	SubmissionDate time.Time       `db:"submission_date"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}
