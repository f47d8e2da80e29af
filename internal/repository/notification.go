package repository

import "time"

const (
	NotificationClaimSubmitted     = "claim_submitted"
	NotificationClaimStatusUpdated = "claim_status_updated"
)

// NotificationPayload is the outbox task body consumed by the mail worker.
// It carries everything the templates need so the worker never reads the DB.
type NotificationPayload struct {
	Kind        string    `json:"kind"`
	Recipient   string    `json:"recipient"`
	ClaimID     string    `json:"claim_id"`
	OrderNumber string    `json:"order_number"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}
