package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// Fixed replies used when the model cannot produce advice
const (
	AdviceEmpty       = "No recommendation available."
	AdviceUnavailable = "Could not generate career advice. Try again later."
)

// AdviceService turns quiz outcomes into a short career recommendation.
type AdviceService struct {
	gen Generator
}

// NewAdviceService creates a new AdviceService instance.
func NewAdviceService(gen Generator) *AdviceService {
	return &AdviceService{gen: gen}
}

// SummarizeResults renders one block per answered question.
func SummarizeResults(results []models.QuestionResult) string {
	blocks := make([]string, len(results))
	for i, r := range results {
		outcome := "Incorrect"
		if r.IsCorrect {
			outcome = "Correct"
		}
		blocks[i] = fmt.Sprintf("Q%d: %s\nYour Answer: %s\nCorrect Answer: %s\nResult: %s",
			i+1, r.Question, r.Selected, r.Correct, outcome)
	}
	return strings.Join(blocks, "\n\n")
}

// AdvicePrompt asks for a 2-3 sentence career path suggestion.
func AdvicePrompt(domain string, results []models.QuestionResult) string {
	return fmt.Sprintf(`The following are quiz results for a user in the domain %q. Suggest a suitable tech career path based on their performance:

%s

Give concise and practical advice in 2-3 sentences.`, domain, SummarizeResults(results))
}

// Advise never fails: upstream errors and empty replies become fixed messages.
func (svc *AdviceService) Advise(ctx context.Context, domain string, results []models.QuestionResult) string {
	text, err := svc.gen.Generate(ctx, AdvicePrompt(domain, results), models.GenerationOptions{})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate career advice", "domain", domain, "err", err)
		return AdviceUnavailable
	}

	if advice := strings.TrimSpace(text); advice != "" {
		return advice
	}
	return AdviceEmpty
}
