package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileStorage keeps all cases in a single JSON file. It backs local development
// and the end-to-end tests; notifications are not enqueued here.
type FileStorage struct {
	mu   sync.Mutex
	path string
	data fileData
}

type fileData struct {
	Claims  []Claim  `json:"claims"`
	Returns []Return `json:"returns"`
}

func NewFileStorage(path string) (*FileStorage, error) {
	s := &FileStorage{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("failed to parse storage file: %w", err)
		}
	}
	return s, nil
}

func (s *FileStorage) persist() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage data: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write storage file: %w", err)
	}
	return nil
}

func (s *FileStorage) CreateClaim(_ context.Context, claim Claim) (*Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	claim.ID = uuid.NewString()
	claim.Status = StatusPending
	claim.SubmissionDate = now
	claim.CreatedAt = now
	claim.UpdatedAt = now

	s.data.Claims = append(s.data.Claims, claim)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &claim, nil
}

func (s *FileStorage) ListClaims(_ context.Context, filter CaseFilter) ([]Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claims := make([]Claim, 0, len(s.data.Claims))
	for _, c := range s.data.Claims {
		if filter.IsZero() || (c.OrderNumber == filter.OrderNumber && c.Email == filter.Email) {
			claims = append(claims, c)
		}
	}
	return claims, nil
}

func (s *FileStorage) GetClaim(_ context.Context, id string) (*Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findClaimByID(id)
}

func (s *FileStorage) UpdateClaim(_ context.Context, id string, patch ClaimPatch) (*Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Claims {
		if s.data.Claims[i].ID != id {
			continue
		}
		claim := s.data.Claims[i]
		applyClaimPatch(&claim, patch)
		claim.UpdatedAt = time.Now().UTC()
		s.data.Claims[i] = claim
		if err := s.persist(); err != nil {
			return nil, err
		}
		return &claim, nil
	}
	return nil, ErrNotFound
}

func (s *FileStorage) CreateReturn(_ context.Context, ret Return) (*Return, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	ret.ID = uuid.NewString()
	ret.Status = StatusPending
	ret.SubmissionDate = now
	ret.CreatedAt = now
	ret.UpdatedAt = now
	if ret.Details == nil {
		ret.Details = json.RawMessage(`{}`)
	}

	s.data.Returns = append(s.data.Returns, ret)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (s *FileStorage) ListReturns(_ context.Context, filter CaseFilter) ([]Return, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	returns := make([]Return, 0, len(s.data.Returns))
	for _, r := range s.data.Returns {
		if filter.IsZero() || (r.OrderNumber == filter.OrderNumber && r.Email == filter.Email) {
			returns = append(returns, r)
		}
	}
	return returns, nil
}

func (s *FileStorage) GetReturn(_ context.Context, id string) (*Return, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findReturnByID(id)
}

func (s *FileStorage) UpdateReturn(_ context.Context, id string, patch ReturnPatch) (*Return, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.data.Returns {
		if s.data.Returns[i].ID != id {
			continue
		}
		ret := s.data.Returns[i]
		applyReturnPatch(&ret, patch)
		ret.UpdatedAt = time.Now().UTC()
		s.data.Returns[i] = ret
		if err := s.persist(); err != nil {
			return nil, err
		}
		return &ret, nil
	}
	return nil, ErrNotFound
}

func (s *FileStorage) FindCase(_ context.Context, orderNumber, email string) (*Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return resolveCase(
		func() (*Claim, error) {
			for _, c := range s.data.Claims {
				if c.OrderNumber == orderNumber && c.Email == email {
					claim := c
					return &claim, nil
				}
			}
			return nil, ErrNotFound
		},
		func() (*Return, error) {
			for _, r := range s.data.Returns {
				if r.OrderNumber == orderNumber && r.Email == email {
					ret := r
					return &ret, nil
				}
			}
			return nil, ErrNotFound
		},
	)
}

func (s *FileStorage) FindCaseByID(_ context.Context, id string) (*Case, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return resolveCase(
		func() (*Claim, error) { return s.findClaimByID(id) },
		func() (*Return, error) { return s.findReturnByID(id) },
	)
}

func (s *FileStorage) findClaimByID(id string) (*Claim, error) {
	for _, c := range s.data.Claims {
		if c.ID == id {
			claim := c
			return &claim, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStorage) findReturnByID(id string) (*Return, error) {
	for _, r := range s.data.Returns {
		if r.ID == id {
			ret := r
			return &ret, nil
		}
	}
	return nil, ErrNotFound
}
