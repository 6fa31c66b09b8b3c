// Package advisor composes generated advice with deterministic fallbacks.
// Every method returns a well-formed result: generation and parse failures
// are absorbed here and replaced by rule-engine output.
package advisor

import (
	"context"

	"go.uber.org/zap"

	"github.com/sahiti3636/finwise-ai/logger"
	"github.com/sahiti3636/finwise-ai/models"
	"github.com/sahiti3636/finwise-ai/rules"
)

// TextService is the generation boundary the advisor depends on, implemented
// by *llm.Client.
type TextService interface {
	Chat(ctx context.Context, message string, p *models.Profile) (*models.ChatReply, error)
	TaxAdvice(ctx context.Context, p *models.Profile) (*models.TaxPlan, error)
	BenefitsAdvice(ctx context.Context, p *models.Profile) ([]models.BenefitEntry, error)
}

type Advisor struct {
	svc TextService
}

func New(svc TextService) *Advisor {
	return &Advisor{svc: svc}
}

// Chat returns a generated reply, or a keyword-matched canned reply built
// from the profile when generation fails.
func (a *Advisor) Chat(ctx context.Context, message string, p *models.Profile) *models.ChatReply {
	reply, err := a.svc.Chat(ctx, message, p)
	if err != nil {
		logger.Get().Warn("chat generation failed, using fallback",
			zap.String("user_id", p.UserID),
			zap.Error(err))
		return fallbackChat(message, p)
	}
	return reply
}

// TaxAdvice returns generated tax recommendations, or the rule engine's plan
// when generation fails.
func (a *Advisor) TaxAdvice(ctx context.Context, p *models.Profile) *models.TaxPlan {
	plan, err := a.svc.TaxAdvice(ctx, p)
	if err != nil {
		logger.Get().Warn("tax generation failed, using rule engine",
			zap.String("user_id", p.UserID),
			zap.Error(err))
		return rules.TaxPlan(p)
	}
	return plan
}

// Benefits returns generated benefit recommendations, or the rule engine's
// eligibility list when generation fails.
func (a *Advisor) Benefits(ctx context.Context, p *models.Profile) []models.BenefitEntry {
	benefits, err := a.svc.BenefitsAdvice(ctx, p)
	if err != nil {
		logger.Get().Warn("benefits generation failed, using rule engine",
			zap.String("user_id", p.UserID),
			zap.Error(err))
		return rules.EligibleBenefits(p)
	}
	return benefits
}
