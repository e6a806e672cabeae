package models

// Category is one of the fixed banking service classifications.
type Category string

const (
	CategoryAccountOpening     Category = "Account Opening"
	CategoryBillingIssue       Category = "Billing Issue"
	CategoryAccountAccess      Category = "Account Access"
	CategoryTransactionInquiry Category = "Transaction Inquiry"
	CategoryCardServices       Category = "Card Services"
	CategoryAccountStatement   Category = "Account Statement"
	CategoryLoanInquiry        Category = "Loan Inquiry"
	CategoryGeneralInformation Category = "General Information"
)

// AllCategories returns the categories in enumeration order. The order
// breaks score ties during mapping.
func AllCategories() []Category {
	return []Category{
		CategoryAccountOpening,
		CategoryBillingIssue,
		CategoryAccountAccess,
		CategoryTransactionInquiry,
		CategoryCardServices,
		CategoryAccountStatement,
		CategoryLoanInquiry,
		CategoryGeneralInformation,
	}
}

func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// IntentLabel is the coarse customer goal computed before category mapping.
type IntentLabel string

const (
	IntentReportFraud   IntentLabel = "report-fraud"
	IntentAccountAccess IntentLabel = "account-access"
	IntentOpenAccount   IntentLabel = "open-account"
	IntentCardIssue     IntentLabel = "card-issue"
	IntentGeneralQuery  IntentLabel = "general-query"
)

type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
	AccountCredit   AccountType = "credit"
)

// IntentResult is the output of the intent interpretation stage
type IntentResult struct {
	Summary string      `json:"intent_summary"`
	Label   IntentLabel `json:"intent_label"`
}

type CategoryCandidate struct {
	Category Category `json:"category"`
	Score    float64  `json:"score"`
	Reason   string   `json:"reason"`
}

type SelectionResult struct {
	ChosenCategory Category `json:"chosen_category"`
	Explanation    string   `json:"explanation"`
}

// ExtractedDetails holds the best-effort fields pulled from the raw query.
// Nil pointers mean the field was not found.
type ExtractedDetails struct {
	Amount         *string      `json:"amount"`
	Date           *string      `json:"date"`
	Last4          *string      `json:"last4"`
	AccountType    *AccountType `json:"account_type"`
	TransactionRef *string      `json:"transaction_ref"`
	Urgent         bool         `json:"urgent"`
	NextQuestion   string       `json:"next_question"`
}

// ChainOutputs carries the five stage outputs of one run
type ChainOutputs struct {
	Intent     IntentResult        `json:"intent"`
	Candidates []CategoryCandidate `json:"candidates"`
	Selection  SelectionResult     `json:"selection"`
	Details    ExtractedDetails    `json:"details"`
	Response   string              `json:"response"`
}

// Slice returns the outputs in stage order. It always has five elements.
func (o ChainOutputs) Slice() []any {
	return []any{o.Intent, o.Candidates, o.Selection, o.Details, o.Response}
}

// Checklist lists the information an agent needs to resolve a category.
type Checklist struct {
	Required []string `json:"required"`
	Helpful  []string `json:"helpful"`
	Security []string `json:"security"`
	FollowUp []string `json:"follow_up"`
}
