package service

import (
	"context"
	"fmt"

	"biodiversity-credits/internal/core/domain"
	"biodiversity-credits/internal/core/ports"
	"biodiversity-credits/pkg/apperror"

	"github.com/rs/zerolog"
)

// LifecycleService moves credits through pending → verified | rejected.
type LifecycleService struct {
	registry  ports.CreditRegistry
	transform ports.TransformEngine
	audit     ports.AuditService
	log       zerolog.Logger
}

// NewLifecycleService creates a lifecycle service. audit may be nil.
func NewLifecycleService(
	registry ports.CreditRegistry,
	transform ports.TransformEngine,
	audit ports.AuditService,
	log zerolog.Logger,
) *LifecycleService {
	return &LifecycleService{
		registry:  registry,
		transform: transform,
		audit:     audit,
		log:       log,
	}
}

// Verify marks a pending credit as verified and bumps its score by 10%.
// Status and score are written in a single record update.
func (s *LifecycleService) Verify(ctx context.Context, caller string, id string) (*domain.Credit, error) {
	credit, err := s.authorize(ctx, caller, id, domain.CreditStatusVerified)
	if err != nil {
		return nil, err
	}

	bumped, err := s.transform.Apply(domain.OpIncrease10Pct, credit.EncryptedScore)
	if err != nil {
		return nil, err
	}

	updated, err := s.registry.UpdateStatus(ctx, id, domain.CreditStatusVerified, &bumped)
	if err != nil {
		return nil, err
	}

	s.record(ctx, caller, domain.AuditActionVerifyCredit, id)
	s.log.Info().Str("credit_id", id).Str("caller", caller).Msg("credit verified")
	return updated, nil
}

// Reject marks a pending credit as rejected. The score is left unchanged.
func (s *LifecycleService) Reject(ctx context.Context, caller string, id string) (*domain.Credit, error) {
	if _, err := s.authorize(ctx, caller, id, domain.CreditStatusRejected); err != nil {
		return nil, err
	}

	updated, err := s.registry.UpdateStatus(ctx, id, domain.CreditStatusRejected, nil)
	if err != nil {
		return nil, err
	}

	s.record(ctx, caller, domain.AuditActionRejectCredit, id)
	s.log.Info().Str("credit_id", id).Str("caller", caller).Msg("credit rejected")
	return updated, nil
}

// authorize loads the credit and checks ownership and the transition.
func (s *LifecycleService) authorize(ctx context.Context, caller, id string, to domain.CreditStatus) (*domain.Credit, error) {
	credit, err := s.registry.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !credit.IsOwnedBy(caller) {
		s.log.Warn().Str("credit_id", id).Str("caller", caller).Msg("transition attempted by non-owner")
		return nil, apperror.ErrForbidden("only the credit owner may change its status")
	}
	if !domain.CanTransition(credit.Status, to) {
		return nil, apperror.ErrForbidden(fmt.Sprintf("credit is %s and cannot become %s", credit.Status, to))
	}
	return credit, nil
}

func (s *LifecycleService) record(ctx context.Context, actor string, action domain.AuditAction, id string) {
	if s.audit == nil {
		return
	}
	s.audit.Log(ctx, domain.NewCreditAudit(actor, action, id))
}
