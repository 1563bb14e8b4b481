package models

// Event names published to the message broker
const (
	EventQuizEvaluated = "quiz.evaluated"
)

// QuizEvaluatedEvent is published after a quiz has been graded.
type QuizEvaluatedEvent struct {
	EventID   string `json:"event_id"`
	Type      string `json:"type"`
	AttemptID string `json:"attempt_id,omitempty"`
	Name      string `json:"name"`
	Skill     string `json:"skill"`
	Score     int    `json:"score"`
	Correct   int    `json:"correct"`
	Total     int    `json:"total"`
	Timestamp int64  `json:"timestamp"`
}
