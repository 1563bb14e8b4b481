package normalizer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/margdarshak/career-api/internal/models"
)

var (
	atsScoreRe     = regexp.MustCompile(`(?i)ATS SCORE:\s*(\d+)`)
	strengthsRe    = regexp.MustCompile(`(?is)STRENGTHS:(.*?)(?:AREAS FOR IMPROVEMENT|\z)`)
	improvementsRe = regexp.MustCompile(`(?is)AREAS FOR IMPROVEMENT:(.*?)(?:SUGGESTIONS|\z)`)
	suggestionsRe  = regexp.MustCompile(`(?is)SUGGESTIONS:(.*)\z`)
)

// ParseResumeAnalysis extracts the ATS score and the three bullet sections
// from a free-text review. Missing or garbled parts come back as zero values.
func ParseResumeAnalysis(raw string) models.ResumeAnalysis {
	return models.ResumeAnalysis{
		ATSScore:     parseATSScore(raw),
		Strengths:    bulletSection(strengthsRe, raw),
		Improvements: bulletSection(improvementsRe, raw),
		Suggestions:  bulletSection(suggestionsRe, raw),
	}
}

func parseATSScore(raw string) int {
	m := atsScoreRe.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return min(max(score, 0), 100)
}

func bulletSection(re *regexp.Regexp, raw string) []string {
	items := []string{}
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return items
	}
	for _, line := range strings.Split(m[1], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		items = append(items, strings.TrimSpace(strings.TrimPrefix(line, "-")))
	}
	return items
}
