package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/veloria/warranty-portal/internal/cache"
	"github.com/veloria/warranty-portal/internal/db"
	"github.com/veloria/warranty-portal/internal/metrics"
	"github.com/veloria/warranty-portal/internal/repository"
)

// PostgresStorage is the production case store. Writes that must trigger a
// notification put the record and the outbox task into one transaction, so a
// broker outage can never fail or orphan a committed write.
type PostgresStorage struct {
	db         db.DB
	claimRepo  ClaimRepository
	returnRepo ReturnRepository
	outboxRepo OutboxTaskRepository
	cache      *cache.CaseCache
	topic      string
	logger     *zap.Logger
}

func NewPostgresStorage(
	database db.DB,
	claimRepo ClaimRepository,
	returnRepo ReturnRepository,
	outboxRepo OutboxTaskRepository,
	topic string,
	logger *zap.Logger,
) *PostgresStorage {
	return &PostgresStorage{
		db:         database,
		claimRepo:  claimRepo,
		returnRepo: returnRepo,
		outboxRepo: outboxRepo,
		cache:      cache.NewCaseCache(),
		topic:      topic,
		logger:     logger,
	}
}

func (s *PostgresStorage) CreateClaim(ctx context.Context, claim Claim) (*Claim, error) {
	now := time.Now().UTC()
	claim.ID = uuid.NewString()
	// Whatever status the client sent is discarded.
	claim.Status = StatusPending
	claim.SubmissionDate = now
	claim.CreatedAt = now
	claim.UpdatedAt = now

	repoClaim := claimToRepo(claim)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.claimRepo.CreateTx(ctx, tx, repoClaim); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_claim").Inc()
		return nil, fmt.Errorf("failed to create claim: %w", err)
	}

	task, err := notificationTask(repository.NotificationClaimSubmitted, repoClaim, s.topic)
	if err != nil {
		return nil, err
	}
	if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_claim").Inc()
		return nil, fmt.Errorf("failed to enqueue submission notification: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_claim").Inc()
		return nil, fmt.Errorf("failed to commit claim creation: %w", err)
	}

	metrics.ClaimsCreatedTotal.Inc()
	metrics.NotificationsEnqueuedTotal.Inc()
	s.cache.SetClaim(repoClaim)

	return &claim, nil
}

func (s *PostgresStorage) ListClaims(ctx context.Context, filter CaseFilter) ([]Claim, error) {
	repoClaims, err := s.claimRepo.GetAll(ctx, filter.OrderNumber, filter.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}

	claims := make([]Claim, 0, len(repoClaims))
	for _, c := range repoClaims {
		claims = append(claims, *claimFromRepo(c))
	}
	return claims, nil
}

func (s *PostgresStorage) GetClaim(ctx context.Context, id string) (*Claim, error) {
	if cached, found := s.cache.GetClaim(id); found {
		return claimFromRepo(cached), nil
	}

	repoClaim, err := s.claimRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	s.cache.SetClaim(repoClaim)
	return claimFromRepo(repoClaim), nil
}

func (s *PostgresStorage) UpdateClaim(ctx context.Context, id string, patch ClaimPatch) (*Claim, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	repoClaim, err := s.claimRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load claim for update: %w", err)
	}

	claim := claimFromRepo(repoClaim)
	oldStatus := claim.Status
	statusChanged := applyClaimPatch(claim, patch)
	claim.UpdatedAt = time.Now().UTC()

	if statusChanged && statusRank(claim.Status) < statusRank(oldStatus) {
		// No transition constraints are enforced, but backwards moves are rare
		// enough to be worth a trace.
		s.logger.Warn("Claim status moved backwards",
			zap.String("claim_id", id),
			zap.String("old_status", oldStatus),
			zap.String("new_status", claim.Status))
	}

	updated := claimToRepo(*claim)
	if err := s.claimRepo.UpdateTx(ctx, tx, updated); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_claim").Inc()
		return nil, fmt.Errorf("failed to update claim: %w", err)
	}

	if statusChanged {
		task, err := notificationTask(repository.NotificationClaimStatusUpdated, updated, s.topic)
		if err != nil {
			return nil, err
		}
		if err := s.outboxRepo.CreateTx(ctx, tx, task); err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("update_claim").Inc()
			return nil, fmt.Errorf("failed to enqueue status notification: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_claim").Inc()
		return nil, fmt.Errorf("failed to commit claim update: %w", err)
	}

	if statusChanged {
		metrics.NotificationsEnqueuedTotal.Inc()
	}
	s.cache.SetClaim(updated)

	return claim, nil
}

func (s *PostgresStorage) CreateReturn(ctx context.Context, ret Return) (*Return, error) {
	now := time.Now().UTC()
	ret.ID = uuid.NewString()
	ret.Status = StatusPending
	ret.SubmissionDate = now
	ret.CreatedAt = now
	ret.UpdatedAt = now
	if ret.Details == nil {
		ret.Details = json.RawMessage(`{}`)
	}

	repoRet := returnToRepo(ret)
	if err := s.returnRepo.Create(ctx, repoRet); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_return").Inc()
		return nil, fmt.Errorf("failed to create return: %w", err)
	}

	metrics.ReturnsCreatedTotal.Inc()
	s.cache.SetReturn(repoRet)

	return &ret, nil
}

func (s *PostgresStorage) ListReturns(ctx context.Context, filter CaseFilter) ([]Return, error) {
	repoReturns, err := s.returnRepo.GetAll(ctx, filter.OrderNumber, filter.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list returns: %w", err)
	}

	returns := make([]Return, 0, len(repoReturns))
	for _, r := range repoReturns {
		returns = append(returns, *returnFromRepo(r))
	}
	return returns, nil
}

func (s *PostgresStorage) GetReturn(ctx context.Context, id string) (*Return, error) {
	if cached, found := s.cache.GetReturn(id); found {
		return returnFromRepo(cached), nil
	}

	repoRet, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get return: %w", err)
	}

	s.cache.SetReturn(repoRet)
	return returnFromRepo(repoRet), nil
}

func (s *PostgresStorage) UpdateReturn(ctx context.Context, id string, patch ReturnPatch) (*Return, error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	repoRet, err := s.returnRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load return for update: %w", err)
	}

	ret := returnFromRepo(repoRet)
	applyReturnPatch(ret, patch)
	ret.UpdatedAt = time.Now().UTC()

	updated := returnToRepo(*ret)
	if err := s.returnRepo.UpdateTx(ctx, tx, updated); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_return").Inc()
		return nil, fmt.Errorf("failed to update return: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_return").Inc()
		return nil, fmt.Errorf("failed to commit return update: %w", err)
	}

	s.cache.SetReturn(updated)
	return ret, nil
}

func (s *PostgresStorage) FindCase(ctx context.Context, orderNumber, email string) (*Case, error) {
	found, err := resolveCase(
		func() (*Claim, error) {
			c, err := s.claimRepo.FindFirst(ctx, orderNumber, email)
			if err != nil {
				if errors.Is(err, repository.ErrObjectNotFound) {
					return nil, ErrNotFound
				}
				return nil, fmt.Errorf("failed to search claims: %w", err)
			}
			return claimFromRepo(c), nil
		},
		func() (*Return, error) {
			r, err := s.returnRepo.FindFirst(ctx, orderNumber, email)
			if err != nil {
				if errors.Is(err, repository.ErrObjectNotFound) {
					return nil, ErrNotFound
				}
				return nil, fmt.Errorf("failed to search returns: %w", err)
			}
			return returnFromRepo(r), nil
		},
	)
	if err != nil {
		return nil, err
	}

	metrics.CasesResolvedTotal.WithLabelValues(found.Type).Inc()
	return found, nil
}

func (s *PostgresStorage) FindCaseByID(ctx context.Context, id string) (*Case, error) {
	found, err := resolveCase(
		func() (*Claim, error) { return s.GetClaim(ctx, id) },
		func() (*Return, error) { return s.GetReturn(ctx, id) },
	)
	if err != nil {
		return nil, err
	}

	metrics.CasesResolvedTotal.WithLabelValues(found.Type).Inc()
	return found, nil
}

func notificationTask(kind string, claim *repository.Claim, topic string) (*repository.OutboxTask, error) {
	payload, err := json.Marshal(repository.NotificationPayload{
		Kind:        kind,
		Recipient:   claim.Email,
		ClaimID:     claim.ID,
		OrderNumber: claim.OrderNumber,
		Name:        claim.Name,
		Brand:       claim.Brand,
		Status:      claim.Status,
		SubmittedAt: claim.SubmissionDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
	}
	return &repository.OutboxTask{
		ID:      uuid.New(),
		Payload: payload,
		Topic:   topic,
	}, nil
}

func statusRank(status string) int {
	switch status {
	case StatusPending:
		return 0
	case StatusInReview:
		return 1
	case StatusResolved, StatusRejected:
		return 2
	default:
		return -1
	}
}
