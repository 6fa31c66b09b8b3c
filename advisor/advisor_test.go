package advisor

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/sahiti3636/finwise-ai/logger"
	"github.com/sahiti3636/finwise-ai/models"
)

func TestMain(m *testing.M) {
	if err := logger.Init(true, logger.ErrorLevel); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var errDown = errors.New("service unavailable")

// failingService always errors, forcing every advisor call onto its fallback.
type failingService struct{}

func (failingService) Chat(ctx context.Context, message string, p *models.Profile) (*models.ChatReply, error) {
	return nil, errDown
}

func (failingService) TaxAdvice(ctx context.Context, p *models.Profile) (*models.TaxPlan, error) {
	return nil, errDown
}

func (failingService) BenefitsAdvice(ctx context.Context, p *models.Profile) ([]models.BenefitEntry, error) {
	return nil, errDown
}

// cannedService returns fixed successful replies.
type cannedService struct {
	reply *models.ChatReply
}

func (s cannedService) Chat(ctx context.Context, message string, p *models.Profile) (*models.ChatReply, error) {
	return s.reply, nil
}

func (s cannedService) TaxAdvice(ctx context.Context, p *models.Profile) (*models.TaxPlan, error) {
	return &models.TaxPlan{}, nil
}

func (s cannedService) BenefitsAdvice(ctx context.Context, p *models.Profile) ([]models.BenefitEntry, error) {
	return []models.BenefitEntry{{Name: "PPF"}}, nil
}

func testProfile() *models.Profile {
	return &models.Profile{
		UserID:     "user-1",
		Name:       "Ravi",
		Email:      "ravi@example.com",
		Income:     900000,
		Age:        32,
		Dependents: 1,
	}
}

func TestChatFallsBackOnError(t *testing.T) {
	a := New(failingService{})
	reply := a.Chat(context.Background(), "How should I plan my investment?", testProfile())

	if reply == nil {
		t.Fatal("expected a reply, got nil")
	}
	if reply.Confidence != 0.7 {
		t.Errorf("expected fallback confidence 0.7, got %v", reply.Confidence)
	}
	if !strings.Contains(reply.Response, "diversified portfolio") {
		t.Errorf("expected investment fallback text, got %q", reply.Response)
	}
	if len(reply.Suggestions) != 4 {
		t.Errorf("expected 4 suggestions, got %d", len(reply.Suggestions))
	}
}

func TestChatFallbackTopics(t *testing.T) {
	a := New(failingService{})
	tests := []struct {
		message string
		want    string
	}{
		{"investment advice please", "diversified portfolio"},
		{"help me with saving", "50/30/20"},
		{"my monthly budget", "50/30/20"},
		{"tax tips", "tax optimization"},
		{"I have a loan", "debt avalanche"},
		{"retirement planning", "employer match"},
		{"something else entirely", "I understand you're asking about"},
	}
	for _, tt := range tests {
		reply := a.Chat(context.Background(), tt.message, testProfile())
		if !strings.Contains(strings.ToLower(reply.Response), strings.ToLower(tt.want)) {
			t.Errorf("Chat(%q): expected response containing %q, got %q", tt.message, tt.want, reply.Response)
		}
	}
}

func TestChatPassesThroughOnSuccess(t *testing.T) {
	want := &models.ChatReply{Response: "Generated.", Confidence: 0.9}
	a := New(cannedService{reply: want})

	got := a.Chat(context.Background(), "anything", testProfile())
	if got != want {
		t.Errorf("expected generated reply to pass through unchanged")
	}
}

func TestTaxAdviceFallsBackToRuleEngine(t *testing.T) {
	a := New(failingService{})
	plan := a.TaxAdvice(context.Background(), testProfile())

	if plan == nil {
		t.Fatal("expected a plan, got nil")
	}
	if len(plan.Recommendations) == 0 {
		t.Error("expected rule-engine recommendations")
	}
	if plan.Summary.OptimizationScore < 30 || plan.Summary.OptimizationScore > 95 {
		t.Errorf("optimization score %d out of bounds", plan.Summary.OptimizationScore)
	}
}

func TestBenefitsFallsBackToRuleEngine(t *testing.T) {
	a := New(failingService{})
	benefits := a.Benefits(context.Background(), testProfile())

	if len(benefits) == 0 {
		t.Fatal("expected rule-engine benefits")
	}
	// Universal schemes always appear.
	found := false
	for _, b := range benefits {
		if b.Name == "Pradhan Mantri Suraksha Bima Yojana (PMSBY)" {
			found = true
		}
	}
	if !found {
		t.Error("expected universal scheme in fallback benefits")
	}
}

func TestBenefitsPassesThroughOnSuccess(t *testing.T) {
	a := New(cannedService{})
	benefits := a.Benefits(context.Background(), testProfile())
	if len(benefits) != 1 || benefits[0].Name != "PPF" {
		t.Errorf("expected generated benefits to pass through, got %v", benefits)
	}
}
