package handlers

//go:generate mockgen -source=resume_analyze.go -destination=resume_analyze_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/margdarshak/career-api/internal/logger"
	"github.com/margdarshak/career-api/internal/models"
)

// ResumeFormField is the multipart field carrying the resume file.
const ResumeFormField = "resume"

// ResumeAnalyzer defines the interface that the resume service must implement.
type ResumeAnalyzer interface {
	Analyze(ctx context.Context, upload models.ResumeUpload) (*models.ResumeAnalysis, error)
}

// ResumeAnalysisBody groups the review lists
// swagger:model ResumeAnalysisBody
type ResumeAnalysisBody struct {
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  []string `json:"suggestions"`
}

// ResumeAnalyzeResponse carries the ATS review of a resume
// swagger:model ResumeAnalyzeResponse
type ResumeAnalyzeResponse struct {
	Success  bool               `json:"success"`
	Analysis ResumeAnalysisBody `json:"analysis"`

	// ATS compatibility, 0-100
	// default: 72
	ATSScore int `json:"atsScore"`
}

// NewResumeAnalyzeHandler returns an HTTP handler reviewing an uploaded resume.
// @Summary Analyze a resume
// @Description Extracts text from a PDF, DOCX or plain text resume (max 5MB) and returns an ATS review.
// @Tags resume
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param resume formData file true "Resume file"
// @Success 200 {object} handlers.ResumeAnalyzeResponse "Review"
// @Failure 400 {object} handlers.StatusResponse "Missing, oversized or unreadable file"
// @Failure 500 {object} handlers.StatusResponse "Analysis failed"
// @Router /resume/analyze [post]
func NewResumeAnalyzeHandler(svc ResumeAnalyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, models.MaxResumeSize+(1<<20))

		if err := r.ParseMultipartForm(models.MaxResumeSize); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeJSON(w, http.StatusBadRequest, StatusResponse{Message: "File exceeds the 5MB limit"})
				return
			}
			writeJSON(w, http.StatusBadRequest, StatusResponse{Message: "No file uploaded"})
			return
		}

		file, header, err := r.FormFile(ResumeFormField)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, StatusResponse{Message: "No file uploaded"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, StatusResponse{Message: "Failed to read uploaded file"})
			return
		}

		analysis, err := svc.Analyze(r.Context(), models.ResumeUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
		if err != nil {
			if isClientError(err) {
				writeJSON(w, http.StatusBadRequest, StatusResponse{Message: err.Error()})
				return
			}
			logger.FromContext(r.Context()).Errorw("resume analysis failed", "filename", header.Filename, "err", err)
			writeJSON(w, http.StatusInternalServerError, StatusResponse{
				Message: "Failed to analyze resume",
				Error:   err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, ResumeAnalyzeResponse{
			Success: true,
			Analysis: ResumeAnalysisBody{
				Strengths:    analysis.Strengths,
				Improvements: analysis.Improvements,
				Suggestions:  analysis.Suggestions,
			},
			ATSScore: analysis.ATSScore,
		})
	}
}
