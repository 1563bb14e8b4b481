package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// QuestionsPerSkill is the size of the question set issued for each skill.
const QuestionsPerSkill = 5

// AnswerKeySize is the size of the key regenerated when an evaluation
// does not reference a stored attempt.
const AnswerKeySize = 10

// OptionsPerQuestion is the number of choices every question must offer.
const OptionsPerQuestion = 4

// QuizQuestion is a single multiple choice question produced by the model.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// UnmarshalJSON accepts the id as a JSON string or number and keeps its
// string form, so `"id": 1` and `"id": "1"` address the same answer.
func (q *QuizQuestion) UnmarshalJSON(data []byte) error {
	type plain QuizQuestion
	aux := struct {
		*plain
		ID json.RawMessage `json:"id"`
	}{plain: (*plain)(q)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	q.ID = ""
	if len(aux.ID) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(aux.ID, &s); err == nil {
		q.ID = s
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(aux.ID, &n); err == nil {
		q.ID = n.String()
		return nil
	}
	return fmt.Errorf("question id must be a string or number, got %s", aux.ID)
}

// Skill is a named skill inside a quiz domain.
type Skill struct {
	Name string `json:"name"`
}

// QuizDomain describes what a quiz should cover.
type QuizDomain struct {
	Name       string  `json:"name"`
	Profession string  `json:"profession"`
	Skills     []Skill `json:"skills"`
}

// SkillNames returns the non-empty skill names in input order.
func (d QuizDomain) SkillNames() []string {
	names := make([]string, 0, len(d.Skills))
	for _, s := range d.Skills {
		if s.Name != "" {
			names = append(names, s.Name)
		}
	}
	return names
}

// QuizSection groups the questions issued for one skill.
type QuizSection struct {
	Skill     string         `json:"skill"`
	Questions []QuizQuestion `json:"questions"`
}

// QuizAttempt is the question set actually shown to a user.
type QuizAttempt struct {
	AttemptID  uuid.UUID     `json:"attempt_id"`
	UserID     *uuid.UUID    `json:"user_id,omitempty"`
	Domain     string        `json:"domain"`
	Profession string        `json:"profession"`
	Sections   []QuizSection `json:"sections"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Skills returns the section skills in issue order.
func (a *QuizAttempt) Skills() []string {
	skills := make([]string, 0, len(a.Sections))
	for _, s := range a.Sections {
		skills = append(skills, s.Skill)
	}
	return skills
}

// Questions flattens all sections, keeping skill order.
func (a *QuizAttempt) Questions() []QuizQuestion {
	var all []QuizQuestion
	for _, s := range a.Sections {
		all = append(all, s.Questions...)
	}
	return all
}

// QuestionsForSkill returns the questions issued for skill. An empty skill
// selects every question; an unknown skill reports ok=false.
func (a *QuizAttempt) QuestionsForSkill(skill string) (questions []QuizQuestion, ok bool) {
	if skill == "" {
		return a.Questions(), true
	}
	for _, s := range a.Sections {
		if s.Skill == skill {
			return s.Questions, true
		}
	}
	return nil, false
}

// QuizEvaluation is the input to grading.
type QuizEvaluation struct {
	AttemptID *uuid.UUID
	Name      string
	Skill     string
	Answers   map[string]string
}

// QuizResultDB represents a graded attempt stored in the database
type QuizResultDB struct {
	ResultID       uuid.UUID  `json:"id" db:"result_id"`
	AttemptID      *uuid.UUID `json:"attempt_id,omitempty" db:"attempt_id"`
	Name           string     `json:"name" db:"name"`
	Skill          string     `json:"skill" db:"skill"`
	Score          int        `json:"score" db:"score"`
	CorrectCount   int        `json:"correct_count" db:"correct_count"`
	TotalQuestions int        `json:"total_questions" db:"total_questions"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// QuestionResult is one answered question submitted for career advice.
type QuestionResult struct {
	Question  string `json:"question"`
	Selected  string `json:"selected"`
	Correct   string `json:"correct"`
	IsCorrect bool   `json:"isCorrect"`
}
