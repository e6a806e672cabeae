package prompts

import (
	"testing"

	"github.com/avvvet/supportchain/internal/models"
	"github.com/stretchr/testify/assert"
)

const question = "What happened?"

func str(s string) *string { return &s }

func TestGenerate_UrgentOverridesCategory(t *testing.T) {
	for _, c := range models.AllCategories() {
		got := Generate(c, models.ExtractedDetails{Urgent: true, NextQuestion: question})
		assert.Equal(t, EmergencyMessage, got)
		assert.Contains(t, got, "emergency")
		assert.Contains(t, got, "1-800")
	}
}

func TestGenerate_Templates(t *testing.T) {
	tests := []struct {
		name     string
		category models.Category
		details  models.ExtractedDetails
		want     string
	}{
		{
			name:     "access without card",
			category: models.CategoryAccountAccess,
			details:  models.ExtractedDetails{NextQuestion: question},
			want:     "I understand you're having trouble accessing your account. What happened?",
		},
		{
			name:     "access with card",
			category: models.CategoryAccountAccess,
			details:  models.ExtractedDetails{Last4: str("1234"), NextQuestion: question},
			want:     "I understand you're having trouble accessing your account. I've noted card ending 1234. What happened?",
		},
		{
			name:     "transaction with amount",
			category: models.CategoryTransactionInquiry,
			details:  models.ExtractedDetails{Amount: str("10.00"), NextQuestion: question},
			want:     "Thanks, I've found a matching transaction candidate. What happened?",
		},
		{
			name:     "transaction with date only",
			category: models.CategoryTransactionInquiry,
			details:  models.ExtractedDetails{Date: str("2024-01-01"), NextQuestion: question},
			want:     "Thanks, I've found a matching transaction candidate. What happened?",
		},
		{
			name:     "transaction without fields",
			category: models.CategoryTransactionInquiry,
			details:  models.ExtractedDetails{NextQuestion: question},
			want:     "I can help investigate this transaction. What happened?",
		},
		{
			name:     "card",
			category: models.CategoryCardServices,
			details:  models.ExtractedDetails{NextQuestion: question},
			want:     "I can help with your card. What happened?",
		},
		{
			name:     "opening",
			category: models.CategoryAccountOpening,
			want:     openingMessage,
		},
		{
			name:     "billing",
			category: models.CategoryBillingIssue,
			details:  models.ExtractedDetails{NextQuestion: question},
			want:     "I'm sorry for the billing trouble. What happened?",
		},
		{
			name:     "statement",
			category: models.CategoryAccountStatement,
			want:     statementMessage,
		},
		{
			name:     "loan",
			category: models.CategoryLoanInquiry,
			want:     loanMessage,
		},
		{
			name:     "general",
			category: models.CategoryGeneralInformation,
			want:     FallbackMessage,
		},
		{
			name:     "unknown category",
			category: models.Category("Crypto Desk"),
			want:     FallbackMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(tt.category, tt.details))
		})
	}
}
