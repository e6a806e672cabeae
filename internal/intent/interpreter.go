package intent

import (
	"strings"

	"github.com/avvvet/supportchain/internal/models"
)

const maxSummaryWords = 20

type labelRule struct {
	label    models.IntentLabel
	keywords []string
}

// Checked in order; the first rule with a matching keyword wins.
var labelRules = []labelRule{
	{models.IntentReportFraud, []string{"fraud", "unauthor", "unauthorized", "stolen"}},
	{models.IntentAccountAccess, []string{"login", "password", "locked", "access"}},
	{models.IntentOpenAccount, []string{"open account", "apply"}},
	{models.IntentCardIssue, []string{"lost card", "stolen card", "card"}},
}

// Interpret extracts a short summary and a coarse intent label from a
// customer query. It never fails; empty input yields an empty summary and
// the general-query label.
func Interpret(query string) models.IntentResult {
	words := strings.Fields(query)
	if len(words) > maxSummaryWords {
		words = words[:maxSummaryWords]
	}

	return models.IntentResult{
		Summary: strings.Join(words, " "),
		Label:   classify(strings.ToLower(query)),
	}
}

func classify(lowered string) models.IntentLabel {
	for _, rule := range labelRules {
		if containsAny(lowered, rule.keywords) {
			return rule.label
		}
	}
	return models.IntentGeneralQuery
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
