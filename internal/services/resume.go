package services

//go:generate mockgen -source=resume.go -destination=resume_mock.go -package=services

import (
	"context"

	"github.com/margdarshak/career-api/internal/documents"
	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
	"github.com/margdarshak/career-api/internal/normalizer"
)

// ResumeSystemPrompt requests an ATS review in the sections ParseResumeAnalysis reads.
const ResumeSystemPrompt = `You are an expert resume analyzer and ATS (Applicant Tracking System) specialist.
Analyze the provided resume and provide a detailed analysis in the following format:

ATS SCORE: [number between 0-100]

STRENGTHS:
- [List key strengths, one per line with hyphen prefix]

AREAS FOR IMPROVEMENT:
- [List areas needing improvement, one per line with hyphen prefix]

SUGGESTIONS:
- [List specific suggestions for optimization, one per line with hyphen prefix]

Focus on:
- Keyword optimization
- Formatting and structure
- Content relevance
- Professional experience presentation
- Education and skills presentation
- ATS compatibility factors

Provide specific, actionable feedback.`

// ResumeArchiver keeps a copy of analyzed uploads.
type ResumeArchiver interface {
	Archive(ctx context.Context, upload models.ResumeUpload) (string, error)
}

// ResumeService scores resumes for ATS compatibility.
type ResumeService struct {
	gen     Generator
	archive ResumeArchiver // nil disables archiving
}

// NewResumeService creates a new ResumeService instance. archive may be nil.
func NewResumeService(gen Generator, archive ResumeArchiver) *ResumeService {
	return &ResumeService{gen: gen, archive: archive}
}

// ResumePrompt appends the resume text to the ATS instructions.
func ResumePrompt(resumeText string) string {
	return ResumeSystemPrompt + "\n\nResume Content:\n" + resumeText
}

// Analyze extracts the resume text, asks for an ATS review and parses it.
// Parsing is best effort; only extraction and upstream failures are errors.
func (svc *ResumeService) Analyze(ctx context.Context, upload models.ResumeUpload) (*models.ResumeAnalysis, error) {
	if len(upload.Data) == 0 {
		return nil, &models.ValidationError{Message: "No file uploaded"}
	}
	if len(upload.Data) > models.MaxResumeSize {
		return nil, models.NewValidationError("resume exceeds %d bytes", models.MaxResumeSize)
	}

	text, err := documents.ExtractText(upload)
	if err != nil {
		return nil, err
	}

	raw, err := svc.gen.Generate(ctx, ResumePrompt(text), models.GenerationOptions{})
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to analyze resume", "filename", upload.Filename, "err", err)
		return nil, err
	}

	analysis := normalizer.ParseResumeAnalysis(raw)

	if svc.archive != nil {
		if key, err := svc.archive.Archive(ctx, upload); err != nil {
			logger.FromContext(ctx).Warnw("failed to archive resume", "filename", upload.Filename, "err", err)
		} else {
			logger.FromContext(ctx).Infow("resume archived", "key", key, "ats_score", analysis.ATSScore)
		}
	}

	return &analysis, nil
}
