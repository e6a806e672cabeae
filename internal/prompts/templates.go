package prompts

import (
	"github.com/avvvet/supportchain/internal/models"
	lcprompts "github.com/tmc/langchaingo/prompts"
)

// EmergencyMessage overrides every category template when the query reads
// as fraud, theft or loss.
const EmergencyMessage = "I'm sorry, this sounds urgent. Please call our emergency fraud line immediately at 1-800-XXX-XXXX and block your card."

const FallbackMessage = "Thanks, I can help with that. Could you provide more details?"

const (
	varNextQuestion = "next_question"
	varLast4        = "last4"
)

var (
	accessTemplate = lcprompts.NewPromptTemplate(
		"I understand you're having trouble accessing your account. {{.next_question}}",
		[]string{varNextQuestion},
	)
	accessWithCardTemplate = lcprompts.NewPromptTemplate(
		"I understand you're having trouble accessing your account. I've noted card ending {{.last4}}. {{.next_question}}",
		[]string{varLast4, varNextQuestion},
	)
	transactionFoundTemplate = lcprompts.NewPromptTemplate(
		"Thanks, I've found a matching transaction candidate. {{.next_question}}",
		[]string{varNextQuestion},
	)
	transactionTemplate = lcprompts.NewPromptTemplate(
		"I can help investigate this transaction. {{.next_question}}",
		[]string{varNextQuestion},
	)
	cardTemplate = lcprompts.NewPromptTemplate(
		"I can help with your card. {{.next_question}}",
		[]string{varNextQuestion},
	)
	billingTemplate = lcprompts.NewPromptTemplate(
		"I'm sorry for the billing trouble. {{.next_question}}",
		[]string{varNextQuestion},
	)
)

const (
	openingMessage   = "I can help you open a new account. Would you like checking or savings?"
	statementMessage = "You can download statements from the online portal. Would you like me to send instructions?"
	loanMessage      = "I can connect you to our loan team. Do you want rates or application status?"
)

// Generate renders the customer reply for the chosen category. Urgency takes
// precedence over the category.
func Generate(chosen models.Category, d models.ExtractedDetails) string {
	if d.Urgent {
		return EmergencyMessage
	}

	values := map[string]any{
		varNextQuestion: d.NextQuestion,
		varLast4:        deref(d.Last4),
	}

	switch chosen {
	case models.CategoryAccountAccess:
		if d.Last4 != nil {
			return render(accessWithCardTemplate, values)
		}
		return render(accessTemplate, values)
	case models.CategoryTransactionInquiry:
		if d.Amount != nil || d.Date != nil {
			return render(transactionFoundTemplate, values)
		}
		return render(transactionTemplate, values)
	case models.CategoryCardServices:
		return render(cardTemplate, values)
	case models.CategoryAccountOpening:
		return openingMessage
	case models.CategoryBillingIssue:
		return render(billingTemplate, values)
	case models.CategoryAccountStatement:
		return statementMessage
	case models.CategoryLoanInquiry:
		return loanMessage
	case models.CategoryGeneralInformation:
		return FallbackMessage
	default:
		return FallbackMessage
	}
}

func render(tmpl lcprompts.PromptTemplate, values map[string]any) string {
	out, err := tmpl.Format(values)
	if err != nil {
		return FallbackMessage
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
