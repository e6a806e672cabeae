package pipeline

import (
	"github.com/avvvet/supportchain/internal/category"
	"github.com/avvvet/supportchain/internal/details"
	"github.com/avvvet/supportchain/internal/intent"
	"github.com/avvvet/supportchain/internal/models"
	"github.com/avvvet/supportchain/internal/prompts"
)

// StageNames labels the outputs of Run in order.
var StageNames = [5]string{
	"Intent Interpretation",
	"Category Mapping",
	"Category Selection",
	"Details Extraction",
	"Response Generation",
}

// Run executes the five stages for one customer query. It has no side
// effects and is safe to call from multiple goroutines.
func Run(query string) models.ChainOutputs {
	in := intent.Interpret(query)
	candidates := category.Map(in)
	selection := category.Choose(candidates)
	extracted := details.Extract(query, selection.ChosenCategory)
	response := prompts.Generate(selection.ChosenCategory, extracted)

	return models.ChainOutputs{
		Intent:     in,
		Candidates: candidates,
		Selection:  selection,
		Details:    extracted,
		Response:   response,
	}
}
