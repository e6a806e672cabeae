package category

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/avvvet/supportchain/internal/models"
)

const (
	keywordWeight   = 0.4
	intentBonus     = 0.3
	maxCandidates   = 3
	fallbackScore   = 0.6
	fallbackReason  = "no specific keywords found"
	intentBonusNote = "intent label suggests access issue"
)

// Map scores every category against the intent text and returns at most
// three candidates sorted by descending score. Ties keep enumeration order.
// When nothing matches a single General Information candidate is returned,
// so the result is never empty.
func Map(result models.IntentResult) []models.CategoryCandidate {
	text := strings.ToLower(result.Summary + " " + string(result.Label))

	var candidates []models.CategoryCandidate
	for _, cat := range models.AllCategories() {
		score := 0.0
		var reasons []string

		for _, kw := range Keywords[cat] {
			if strings.Contains(text, kw) {
				score += keywordWeight
				reasons = append(reasons, fmt.Sprintf("matched '%s'", kw))
			}
		}

		if cat == models.CategoryAccountAccess && result.Label == models.IntentAccountAccess {
			score += intentBonus
			reasons = append(reasons, intentBonusNote)
		}

		score = round2(math.Min(score, 1.0))
		if score > 0 {
			candidates = append(candidates, models.CategoryCandidate{
				Category: cat,
				Score:    score,
				Reason:   strings.Join(reasons, "; "),
			})
		}
	}

	if len(candidates) == 0 {
		return []models.CategoryCandidate{{
			Category: models.CategoryGeneralInformation,
			Score:    fallbackScore,
			Reason:   fallbackReason,
		}}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
