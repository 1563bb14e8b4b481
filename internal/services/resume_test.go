package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/margdarshak/career-api/internal/models"
	"github.com/margdarshak/career-api/internal/services"
)

const atsReply = `ATS SCORE: 87

STRENGTHS:
- Clear formatting
- Good keywords

AREAS FOR IMPROVEMENT:
- Too long

SUGGESTIONS:
- Trim to one page`

var textResume = models.ResumeUpload{
	Filename:    "cv.txt",
	ContentType: "text/plain",
	Data:        []byte("Jane Doe\nGo developer"),
}

func TestResumePrompt(t *testing.T) {
	prompt := services.ResumePrompt("Jane Doe")
	assert.True(t, strings.HasPrefix(prompt, services.ResumeSystemPrompt))
	assert.True(t, strings.HasSuffix(prompt, "\n\nResume Content:\nJane Doe"))
}

func TestResumeService_Analyze(t *testing.T) {
	t.Run("parsed analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := services.NewMockGenerator(ctrl)
		gen.EXPECT().
			Generate(gomock.Any(), services.ResumePrompt("Jane Doe\nGo developer"), models.GenerationOptions{}).
			Return(atsReply, nil)

		analysis, err := services.NewResumeService(gen, nil).Analyze(context.Background(), textResume)
		require.NoError(t, err)
		assert.Equal(t, &models.ResumeAnalysis{
			ATSScore:     87,
			Strengths:    []string{"Clear formatting", "Good keywords"},
			Improvements: []string{"Too long"},
			Suggestions:  []string{"Trim to one page"},
		}, analysis)
	})

	t.Run("unstructured reply degrades", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := services.NewMockGenerator(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return("Looks fine to me.", nil)

		analysis, err := services.NewResumeService(gen, nil).Analyze(context.Background(), textResume)
		require.NoError(t, err)
		assert.Equal(t, 0, analysis.ATSScore)
		assert.Empty(t, analysis.Strengths)
		assert.NotNil(t, analysis.Suggestions)
	})

	t.Run("archived after analysis", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := services.NewMockGenerator(ctrl)
		archive := services.NewMockResumeArchiver(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(atsReply, nil)
		archive.EXPECT().Archive(gomock.Any(), textResume).Return("resumes/abc.txt", nil)

		_, err := services.NewResumeService(gen, archive).Analyze(context.Background(), textResume)
		assert.NoError(t, err)
	})

	t.Run("archive failure is not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := services.NewMockGenerator(ctrl)
		archive := services.NewMockResumeArchiver(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(atsReply, nil)
		archive.EXPECT().Archive(gomock.Any(), gomock.Any()).Return("", errors.New("bucket missing"))

		analysis, err := services.NewResumeService(gen, archive).Analyze(context.Background(), textResume)
		require.NoError(t, err)
		assert.Equal(t, 87, analysis.ATSScore)
	})

	t.Run("upstream error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gen := services.NewMockGenerator(ctrl)
		archive := services.NewMockResumeArchiver(ctrl)
		gen.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", &models.UpstreamError{Service: "gemini", StatusCode: 500})

		_, err := services.NewResumeService(gen, archive).Analyze(context.Background(), textResume)
		var upErr *models.UpstreamError
		assert.True(t, errors.As(err, &upErr))
	})
}

func TestResumeService_Analyze_Validation(t *testing.T) {
	tests := []struct {
		name   string
		upload models.ResumeUpload
	}{
		{"no file", models.ResumeUpload{}},
		{"too large", models.ResumeUpload{Filename: "cv.txt", ContentType: "text/plain", Data: make([]byte, models.MaxResumeSize+1)}},
		{"unsupported type", models.ResumeUpload{Filename: "cv.png", ContentType: "image/png", Data: []byte{1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := services.NewResumeService(services.NewMockGenerator(ctrl), nil)

			_, err := svc.Analyze(context.Background(), tt.upload)
			var vErr *models.ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}
