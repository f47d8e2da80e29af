package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by lookups when no record matches. HTTP handlers map
// it to 404; every other error collapses into a generic 500.
var ErrNotFound = errors.New("case not found")

const (
	StatusPending  = "Pending"
	StatusInReview = "InReview"
	StatusResolved = "Resolved"
	StatusRejected = "Rejected"
)

type Claim struct {
	ID                       string    `json:"id"`
	OrderNumber              string    `json:"orderNumber"`
	Email                    string    `json:"email"`
	Name                     string    `json:"name"`
	Street                   string    `json:"street"`
	PostalCode               string    `json:"postalCode"`
	City                     string    `json:"city"`
	PhoneNumber              string    `json:"phoneNumber"`
	Brand                    string    `json:"brand"`
	ProblemDescription       string    `json:"problemDescription"`
	NotificationAcknowledged bool      `json:"notificationAcknowledged"`
	Status                   string    `json:"status"`
	SubmissionDate           time.Time `json:"submissionDate"`
	CreatedAt                time.Time `json:"createdAt"`
	UpdatedAt                time.Time `json:"updatedAt"`
}

type Return struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	Email          string          `json:"email"`
	Name           string          `json:"name"`
	Street         string          `json:"street"`
	PostalCode     string          `json:"postalCode"`
	City           string          `json:"city"`
	PhoneNumber    string          `json:"phoneNumber"`
	Details        json.RawMessage `json:"details,omitempty"`
	Status         string          `json:"status"`
	SubmissionDate time.Time       `json:"submissionDate"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ClaimPatch carries a partial update. Nil fields are left untouched.
type ClaimPatch struct {
	OrderNumber              *string `json:"orderNumber"`
	Email                    *string `json:"email"`
	Name                     *string `json:"name"`
	Street                   *string `json:"street"`
	PostalCode               *string `json:"postalCode"`
	City                     *string `json:"city"`
	PhoneNumber              *string `json:"phoneNumber"`
	Brand                    *string `json:"brand"`
	ProblemDescription       *string `json:"problemDescription"`
	NotificationAcknowledged *bool   `json:"notificationAcknowledged"`
	Status                   *string `json:"status"`
}

type ReturnPatch struct {
	OrderNumber *string         `json:"orderNumber"`
	Email       *string         `json:"email"`
	Name        *string         `json:"name"`
	Street      *string         `json:"street"`
	PostalCode  *string         `json:"postalCode"`
	City        *string         `json:"city"`
	PhoneNumber *string         `json:"phoneNumber"`
	Details     json.RawMessage `json:"details"`
	Status      *string         `json:"status"`
}

// CaseFilter narrows list queries to a soft composite key. Zero value means no
// filtering (full scan, the historical list contract).
type CaseFilter struct {
	OrderNumber string
	Email       string
}

func (f CaseFilter) IsZero() bool {
	return f.OrderNumber == "" && f.Email == ""
}

const (
	CaseTypeClaim  = "claim"
	CaseTypeReturn = "return"
)

// Case is the unified view over a Claim or a Return. Exactly one of the two
// record fields is set; Type discriminates.
type Case struct {
	Type   string
	Claim  *Claim
	Return *Return
}

// MarshalJSON flattens the underlying record and injects the type tag, so the
// wire shape is the record's own fields plus "type".
func (c Case) MarshalJSON() ([]byte, error) {
	var (
		raw []byte
		err error
	)
	switch c.Type {
	case CaseTypeClaim:
		raw, err = json.Marshal(c.Claim)
	case CaseTypeReturn:
		raw, err = json.Marshal(c.Return)
	default:
		return nil, fmt.Errorf("unknown case type %q", c.Type)
	}
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["type"], err = json.Marshal(c.Type)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fields)
}

func applyClaimPatch(c *Claim, p ClaimPatch) (statusChanged bool) {
	if p.OrderNumber != nil {
		c.OrderNumber = *p.OrderNumber
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Street != nil {
		c.Street = *p.Street
	}
	if p.PostalCode != nil {
		c.PostalCode = *p.PostalCode
	}
	if p.City != nil {
		c.City = *p.City
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	if p.Brand != nil {
		c.Brand = *p.Brand
	}
	if p.ProblemDescription != nil {
		c.ProblemDescription = *p.ProblemDescription
	}
	if p.NotificationAcknowledged != nil {
		c.NotificationAcknowledged = *p.NotificationAcknowledged
	}
	if p.Status != nil {
		statusChanged = c.Status != *p.Status
		c.Status = *p.Status
	}
	return statusChanged
}

func applyReturnPatch(r *Return, p ReturnPatch) {
	if p.OrderNumber != nil {
		r.OrderNumber = *p.OrderNumber
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Street != nil {
		r.Street = *p.Street
	}
	if p.PostalCode != nil {
		r.PostalCode = *p.PostalCode
	}
	if p.City != nil {
		r.City = *p.City
	}
	if p.PhoneNumber != nil {
		r.PhoneNumber = *p.PhoneNumber
	}
	if p.Details != nil {
		r.Details = p.Details
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}
