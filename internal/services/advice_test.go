package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/margdarshak/career-api/internal/models"
	"github.com/margdarshak/career-api/internal/services"
)

var adviceResults = []models.QuestionResult{
	{Question: "What is a goroutine?", Selected: "A thread", Correct: "A lightweight thread", IsCorrect: false},
	{Question: "What does defer do?", Selected: "Delays a call", Correct: "Delays a call", IsCorrect: true},
}

func TestSummarizeResults(t *testing.T) {
	want := "Q1: What is a goroutine?\nYour Answer: A thread\nCorrect Answer: A lightweight thread\nResult: Incorrect" +
		"\n\n" +
		"Q2: What does defer do?\nYour Answer: Delays a call\nCorrect Answer: Delays a call\nResult: Correct"
	assert.Equal(t, want, services.SummarizeResults(adviceResults))
	assert.Equal(t, "", services.SummarizeResults(nil))
}

func TestAdvicePrompt(t *testing.T) {
	prompt := services.AdvicePrompt("Software", adviceResults)
	assert.Contains(t, prompt, `quiz results for a user in the domain "Software"`)
	assert.Contains(t, prompt, "Q2: What does defer do?")
	assert.Contains(t, prompt, "Give concise and practical advice in 2-3 sentences.")
}

func TestAdviceService_Advise(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		genErr  error
		wantOut string
	}{
		{name: "trimmed advice", text: "  Become a backend engineer.\n", wantOut: "Become a backend engineer."},
		{name: "empty reply", text: "  \n", wantOut: services.AdviceEmpty},
		{name: "upstream failure", genErr: &models.UpstreamError{Service: "gemini", StatusCode: 503}, wantOut: services.AdviceUnavailable},
		{name: "config failure", genErr: &models.ConfigError{Key: "GEMINI_API_KEY"}, wantOut: services.AdviceUnavailable},
		{name: "any failure", genErr: errors.New("boom"), wantOut: services.AdviceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := services.NewMockGenerator(ctrl)
			gen.EXPECT().
				Generate(gomock.Any(), services.AdvicePrompt("Software", adviceResults), models.GenerationOptions{}).
				Return(tt.text, tt.genErr)

			svc := services.NewAdviceService(gen)
			assert.Equal(t, tt.wantOut, svc.Advise(context.Background(), "Software", adviceResults))
		})
	}
}
