package sweeper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/coursehub/internal/config"
	"github.com/GlebRadaev/coursehub/internal/domain"
)

const (
	batchLimit  = 500
	workerCount = 10
)

type PaymentRepo interface {
	FindStalePending(ctx context.Context, before time.Time, limit uint32) ([]domain.Payment, error)
}

type PaymentService interface {
	ExpirePending(ctx context.Context, actor *domain.Principal, id uuid.UUID) (bool, error)
}

// Service fails pending payments that were never confirmed. The status is
// re-checked under the row lock by the payment service, so a payment
// approved after the sweep query is left alone.
type Service struct {
	paymentRepo    PaymentRepo
	paymentService PaymentService
	workerPool     WorkerPoolI
	limit          uint32
	ttl            time.Duration
	updateInterval time.Duration
	now            func() time.Time

	processing sync.Map
}

func New(cfg *config.Config, paymentRepo PaymentRepo, paymentService PaymentService) *Service {
	return &Service{
		paymentRepo:    paymentRepo,
		paymentService: paymentService,
		workerPool:     NewWorkerPool(workerCount),
		limit:          batchLimit,
		ttl:            cfg.PendingPaymentTTL,
		updateInterval: cfg.SweepInterval,
		now:            time.Now,
	}
}

// Start blocks until ctx is canceled and the worker pool has drained.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Payment sweeper started",
		zap.Duration("interval", s.updateInterval),
		zap.Duration("ttl", s.ttl),
	)
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping payment sweeper")
			return
		case <-ticker.C:
			if err := s.Sweep(ctx); err != nil {
				zap.L().Error("Payment sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep queues every stale pending payment for failure. Payments already
// queued by a previous tick are skipped.
func (s *Service) Sweep(ctx context.Context) error {
	before := s.now().Add(-s.ttl)
	payments, err := s.paymentRepo.FindStalePending(ctx, before, s.limit)
	if err != nil {
		return fmt.Errorf("failed to fetch stale payments: %w", err)
	}

	var g errgroup.Group
	for _, payment := range payments {
		id := payment.ID

		if _, loaded := s.processing.LoadOrStore(id, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.processing.Delete(id)
				return s.failPayment(ctx, id)
			})
			if err != nil {
				s.processing.Delete(id)
				return err
			}
			return nil
		})
	}

	return g.Wait()
}

func (s *Service) failPayment(ctx context.Context, id uuid.UUID) error {
	actor := domain.SystemPrincipal()
	expired, err := s.paymentService.ExpirePending(ctx, &actor, id)
	if err != nil {
		return fmt.Errorf("failed to expire payment %s: %w", id, err)
	}
	if expired {
		zap.L().Info("Stale payment marked as failed", zap.String("paymentID", id.String()))
	}
	return nil
}
