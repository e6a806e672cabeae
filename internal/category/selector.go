package category

import (
	"fmt"

	"github.com/avvvet/supportchain/internal/models"
)

// tieMargin is the score gap under which the top two candidates count as tied.
const tieMargin = 0.15

// Choose picks one category from ranked candidates. On a near tie between
// the top two, Account Access wins if it appears anywhere in the list.
func Choose(candidates []models.CategoryCandidate) models.SelectionResult {
	if len(candidates) == 0 {
		return models.SelectionResult{
			ChosenCategory: models.CategoryGeneralInformation,
			Explanation:    "no candidates; defaulting to General Information",
		}
	}

	top := candidates[0]
	if len(candidates) > 1 && top.Score-candidates[1].Score < tieMargin {
		for _, c := range candidates {
			if c.Category == models.CategoryAccountAccess {
				return models.SelectionResult{
					ChosenCategory: c.Category,
					Explanation:    "tie-break preferring Account Access for fast resolution",
				}
			}
		}
	}

	return models.SelectionResult{
		ChosenCategory: top.Category,
		Explanation:    fmt.Sprintf("selected top scoring category (%s)", top.Category),
	}
}
