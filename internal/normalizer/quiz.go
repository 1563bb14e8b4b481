// Package normalizer turns text produced by the generation API into
// structured values. Quiz output feeds an answer-checking UI and must parse
// completely; resume reviews are read by people and parse best-effort.
package normalizer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/margdarshak/career-api/internal/models"
)

var jsonFenceRe = regexp.MustCompile("(?i)```json\\n?")

// CleanJSON removes Markdown code fences around a JSON payload.
func CleanJSON(raw string) string {
	cleaned := jsonFenceRe.ReplaceAllString(raw, "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// ExtractQuiz parses raw model output as a JSON array of quiz questions.
// Anything short of a complete, well-formed array is a *models.ParseError.
func ExtractQuiz(raw string) ([]models.QuizQuestion, error) {
	cleaned := CleanJSON(raw)
	if cleaned == "" {
		return nil, &models.ParseError{Reason: "empty quiz payload"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return nil, &models.ParseError{Reason: "quiz payload is not a JSON array", Err: err}
	}
	if items == nil {
		return nil, &models.ParseError{Reason: "quiz payload is not a JSON array"}
	}

	questions := make([]models.QuizQuestion, 0, len(items))
	for i, item := range items {
		var q models.QuizQuestion
		if err := json.Unmarshal(item, &q); err != nil {
			return nil, &models.ParseError{Reason: fmt.Sprintf("question %d is malformed", i), Err: err}
		}
		if err := validateQuestion(q); err != nil {
			return nil, &models.ParseError{Reason: fmt.Sprintf("question %d: %s", i, err)}
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func validateQuestion(q models.QuizQuestion) error {
	switch {
	case q.ID == "":
		return fmt.Errorf("missing id")
	case q.Question == "":
		return fmt.Errorf("missing question")
	case len(q.Options) != models.OptionsPerQuestion:
		return fmt.Errorf("expected %d options, got %d", models.OptionsPerQuestion, len(q.Options))
	case q.CorrectAnswer == "":
		return fmt.Errorf("missing correctAnswer")
	case !slices.Contains(q.Options, q.CorrectAnswer):
		return fmt.Errorf("correctAnswer is not one of the options")
	}
	return nil
}
