package services

//go:generate mockgen -source=quiz.go -destination=quiz_mock.go -package=services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
	"github.com/margdarshak/career-api/internal/normalizer"
)

// Result history page size
const (
	DefaultResultsLimit = 20
	MaxResultsLimit     = 100
)

// QuizAttemptStore keeps issued question sets until they are graded.
type QuizAttemptStore interface {
	Save(ctx context.Context, attempt *models.QuizAttempt) error
	Get(ctx context.Context, id uuid.UUID) (*models.QuizAttempt, error)
}

// QuizResultWriter records graded quizzes.
type QuizResultWriter interface {
	Save(ctx context.Context, result *models.QuizResultDB) error
}

// QuizResultReader lists recorded quizzes.
type QuizResultReader interface {
	ListByName(ctx context.Context, name string, limit int) ([]models.QuizResultDB, error)
}

// QuizEventPublisher announces graded quizzes.
type QuizEventPublisher interface {
	PublishQuizEvaluated(ctx context.Context, event models.QuizEvaluatedEvent) error
}

// QuizService generates and grades skill quizzes.
type QuizService struct {
	gen      Generator
	attempts QuizAttemptStore
	writer   QuizResultWriter
	reader   QuizResultReader
	events   QuizEventPublisher
	now      func() time.Time
}

// NewQuizService creates a new QuizService instance.
func NewQuizService(
	gen Generator,
	attempts QuizAttemptStore,
	writer QuizResultWriter,
	reader QuizResultReader,
	events QuizEventPublisher,
) *QuizService {
	return &QuizService{
		gen:      gen,
		attempts: attempts,
		writer:   writer,
		reader:   reader,
		events:   events,
		now:      time.Now,
	}
}

// QuizPrompt asks for count multiple choice questions about skill as a bare JSON array.
func QuizPrompt(skill string, count int) string {
	return fmt.Sprintf(`You're a quiz generator. Generate %d multiple choice questions about %s.
Each question should have %d options and one correct answer.
Format the response as a JSON array of objects with the following structure:
[
  {
    "id": "unique_id_1",
    "question": "question text",
    "options": ["option1", "option2", "option3", "option4"],
    "correctAnswer": "correct option"
  }
]
Return only the JSON array.`, count, skill, models.OptionsPerQuestion)
}

// Generate issues QuestionsPerSkill questions for every named skill of domain.
// Skills are generated concurrently; sections keep the input skill order and
// any failure fails the whole quiz.
func (svc *QuizService) Generate(ctx context.Context, domain models.QuizDomain, userID *uuid.UUID) (*models.QuizAttempt, error) {
	if len(domain.Skills) == 0 {
		return nil, &models.ValidationError{Message: "Invalid skills array in domain object"}
	}
	skills := domain.SkillNames()
	if len(skills) == 0 {
		return nil, &models.ValidationError{Message: "No valid skills provided"}
	}

	sections := make([]models.QuizSection, len(skills))
	g, gctx := errgroup.WithContext(ctx)
	for i, skill := range skills {
		g.Go(func() error {
			questions, err := svc.questionsFor(gctx, skill, models.QuestionsPerSkill)
			if err != nil {
				return fmt.Errorf("generate questions for %q: %w", skill, err)
			}
			sections[i] = models.QuizSection{Skill: skill, Questions: questions}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.FromContext(ctx).Errorw("failed to generate quiz", "domain", domain.Name, "err", err)
		return nil, err
	}
	uniqueQuestionIDs(sections)

	attempt := &models.QuizAttempt{
		AttemptID:  uuid.New(),
		UserID:     userID,
		Domain:     domain.Name,
		Profession: domain.Profession,
		Sections:   sections,
		CreatedAt:  svc.now().UTC(),
	}
	if err := svc.attempts.Save(ctx, attempt); err != nil {
		logger.FromContext(ctx).Errorw("failed to store quiz attempt", "attempt_id", attempt.AttemptID, "err", err)
		return nil, err
	}

	return attempt, nil
}

// Evaluate grades submitted answers. With an attempt id the stored question set
// is used, narrowed to the evaluated skill when one is given; without it a
// fresh AnswerKeySize key is generated for the skill.
func (svc *QuizService) Evaluate(ctx context.Context, eval models.QuizEvaluation) (*models.QuizResultDB, error) {
	if eval.Answers == nil {
		return nil, &models.ValidationError{Message: "answers are required"}
	}

	var questions []models.QuizQuestion
	if eval.AttemptID != nil {
		attempt, err := svc.attempts.Get(ctx, *eval.AttemptID)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to load quiz attempt", "attempt_id", *eval.AttemptID, "err", err)
			return nil, err
		}
		if attempt == nil {
			return nil, models.NewValidationError("quiz attempt %s not found or expired", *eval.AttemptID)
		}
		var ok bool
		questions, ok = attempt.QuestionsForSkill(eval.Skill)
		if !ok {
			return nil, models.NewValidationError("skill %q is not part of quiz attempt %s", eval.Skill, *eval.AttemptID)
		}
	} else {
		if eval.Skill == "" {
			return nil, &models.ValidationError{Message: "skill is required when attemptId is not provided"}
		}
		var err error
		questions, err = svc.questionsFor(ctx, eval.Skill, models.AnswerKeySize)
		if err != nil {
			logger.FromContext(ctx).Errorw("failed to regenerate answer key", "skill", eval.Skill, "err", err)
			return nil, err
		}
	}

	score, correct, total := Score(questions, eval.Answers)
	result := &models.QuizResultDB{
		AttemptID:      eval.AttemptID,
		Name:           eval.Name,
		Skill:          eval.Skill,
		Score:          score,
		CorrectCount:   correct,
		TotalQuestions: total,
		CreatedAt:      svc.now().UTC(),
	}
	svc.record(ctx, result)

	return result, nil
}

// Results returns the quiz history recorded under name, newest first.
func (svc *QuizService) Results(ctx context.Context, name string, limit int) ([]models.QuizResultDB, error) {
	if name == "" {
		return nil, &models.ValidationError{Message: "name is required"}
	}
	if limit <= 0 || limit > MaxResultsLimit {
		limit = DefaultResultsLimit
	}

	results, err := svc.reader.ListByName(ctx, name, limit)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list quiz results", "name", name, "err", err)
		return nil, err
	}
	return results, nil
}

func (svc *QuizService) questionsFor(ctx context.Context, skill string, count int) ([]models.QuizQuestion, error) {
	raw, err := svc.gen.Generate(ctx, QuizPrompt(skill, count), models.GenerationOptions{})
	if err != nil {
		return nil, err
	}
	return normalizer.ExtractQuiz(raw)
}

// record stores and announces a graded quiz. Failures are logged only.
func (svc *QuizService) record(ctx context.Context, result *models.QuizResultDB) {
	log := logger.FromContext(ctx)

	if err := svc.writer.Save(ctx, result); err != nil {
		log.Warnw("failed to store quiz result", "name", result.Name, "skill", result.Skill, "err", err)
	}

	event := models.QuizEvaluatedEvent{
		EventID:   uuid.NewString(),
		Type:      models.EventQuizEvaluated,
		Name:      result.Name,
		Skill:     result.Skill,
		Score:     result.Score,
		Correct:   result.CorrectCount,
		Total:     result.TotalQuestions,
		Timestamp: result.CreatedAt.Unix(),
	}
	if result.AttemptID != nil {
		event.AttemptID = result.AttemptID.String()
	}
	if err := svc.events.PublishQuizEvaluated(ctx, event); err != nil {
		log.Warnw("failed to publish quiz event", "event_id", event.EventID, "err", err)
	}
}

// uniqueQuestionIDs suffixes repeated ids so every answer in an attempt maps
// to exactly one question.
func uniqueQuestionIDs(sections []models.QuizSection) {
	seen := make(map[string]bool)
	for s := range sections {
		for q := range sections[s].Questions {
			id := sections[s].Questions[q].ID
			if seen[id] {
				base := id
				for n := 2; seen[id]; n++ {
					id = fmt.Sprintf("%s-%d", base, n)
				}
				sections[s].Questions[q].ID = id
			}
			seen[id] = true
		}
	}
}
