package category

import "github.com/avvvet/supportchain/internal/models"

// Keywords maps each category to the phrases that count toward its score.
// Matching is by substring on lower-cased text.
var Keywords = map[models.Category][]string{
	models.CategoryAccountOpening:     {"open account", "create account", "new account", "apply for account"},
	models.CategoryBillingIssue:       {"charge", "billing", "bill", "overcharged", "invoice"},
	models.CategoryAccountAccess:      {"login", "log in", "password", "can't access", "locked out", "unable to sign"},
	models.CategoryTransactionInquiry: {"transaction", "withdrawal", "deposit", "payment", "pending"},
	models.CategoryCardServices:       {"card", "credit card", "debit", "lost card", "stolen card", "chip"},
	models.CategoryAccountStatement:   {"statement", "monthly statement", "e-statement"},
	models.CategoryLoanInquiry:        {"loan", "mortgage", "refinance", "interest rate"},
	models.CategoryGeneralInformation: {"hours", "branch", "where is", "information", "how do i"},
}
