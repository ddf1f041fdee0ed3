package parser

import (
	"strings"

	"smartmeet/models"
)

// Confidence weights. The base covers any non-empty text; participants
// dominate because a request without people cannot be scheduled at all.
const (
	confidenceBase         = 0.1
	confidenceParticipants = 0.3
	confidenceDate         = 0.2
	confidenceTime         = 0.2
	confidenceDuration     = 0.1
	confidenceTitle        = 0.1
	confidencePerKeyword   = 0.05
	confidenceKeywordCap   = 0.15
)

// scoreConfidence computes the parse confidence, clamped to [0, 1].
func scoreConfidence(parsed models.ParsedRequest) float64 {
	if parsed.OriginalText == "" {
		return 0
	}

	score := confidenceBase
	if parsed.HasParticipants() {
		score += confidenceParticipants
	}
	if parsed.DateMentioned != "" {
		score += confidenceDate
	}
	if parsed.TimeMentioned != "" {
		score += confidenceTime
	}
	if parsed.DurationMentioned != "" {
		score += confidenceDuration
	}
	if parsed.Title != "" {
		score += confidenceTitle
	}
	score += keywordBonus(parsed.OriginalText)

	return clamp01(score)
}

// keywordBonus grants a small bump per recognized meeting-type keyword,
// capped so keyword stuffing cannot dominate the score.
func keywordBonus(text string) float64 {
	lower := strings.ToLower(text)
	bonus := 0.0
	for _, kw := range meetingKeywords {
		if strings.Contains(lower, kw) {
			bonus += confidencePerKeyword
		}
	}
	if bonus > confidenceKeywordCap {
		bonus = confidenceKeywordCap
	}
	return bonus
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
