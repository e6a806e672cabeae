package details

import "github.com/avvvet/supportchain/internal/models"

var checklists = map[models.Category]models.Checklist{
	models.CategoryAccountAccess: {
		Required: []string{"Account number", "Registered phone number"},
		Helpful:  []string{"Last successful login date", "Error messages received"},
		Security: []string{"Identity verification", "Security questions"},
		FollowUp: []string{"Password reset preferences", "Two-factor authentication setup"},
	},
	models.CategoryTransactionInquiry: {
		Required: []string{"Transaction date", "Approximate amount"},
		Helpful:  []string{"Merchant name", "Transaction type"},
		Security: []string{"Account verification", "Last 4 digits of card"},
		FollowUp: []string{"Dispute process", "Transaction limits"},
	},
	models.CategoryBillingIssue: {
		Required: []string{"Billing date", "Disputed amount"},
		Helpful:  []string{"Account number", "Description of issue"},
		Security: []string{"Account holder verification"},
		FollowUp: []string{"Refund timeline", "Prevention measures"},
	},
	models.CategoryCardServices: {
		Required: []string{"Card type", "Last 4 digits"},
		Helpful:  []string{"Issue description", "When the problem started"},
		Security: []string{"Cardholder verification", "Security code"},
		FollowUp: []string{"Replacement timeline", "Temporary solutions"},
	},
}

var defaultChecklist = models.Checklist{
	Required: []string{"Account number", "Nature of inquiry"},
	Helpful:  []string{"Specific questions", "Preferred contact method"},
	Security: []string{"Identity verification"},
	FollowUp: []string{"Additional services needed"},
}

// ChecklistFor returns the information an agent should collect for a
// category. Categories without a dedicated list share the default one.
func ChecklistFor(c models.Category) models.Checklist {
	if cl, ok := checklists[c]; ok {
		return cl
	}
	return defaultChecklist
}
