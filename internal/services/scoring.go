package services

import (
	"math"

	"github.com/margdarshak/career-api/internal/models"
)

// Score grades answers against questions by exact, case-sensitive equality of
// the submitted text and the correct answer. An empty key scores 0.
func Score(questions []models.QuizQuestion, answers map[string]string) (score, correct, total int) {
	total = len(questions)
	if total == 0 {
		return 0, 0, 0
	}

	for _, q := range questions {
		if answer, ok := answers[q.ID]; ok && answer == q.CorrectAnswer {
			correct++
		}
	}

	score = int(math.Round(float64(correct) / float64(total) * 100))
	return score, correct, total
}
