package models

// ResumeAnalysis is the structured view of a model's ATS review.
type ResumeAnalysis struct {
	ATSScore     int      `json:"atsScore"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	Suggestions  []string `json:"suggestions"`
}

// ResumeUpload is an uploaded resume buffered in memory.
type ResumeUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MaxResumeSize is the upload limit for resumes (5MB).
const MaxResumeSize = 5 << 20
