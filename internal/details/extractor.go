package details

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/avvvet/supportchain/internal/models"
)

var (
	amountRe = regexp.MustCompile(`\$?\s?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{1,2})?)`)
	dateRe   = regexp.MustCompile(`(\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4}|\b\w+ \d{1,2}, \d{4}\b)`)
	last4Re  = regexp.MustCompile(`\b(\d{4})\b`)
	refRe    = regexp.MustCompile(`(?i)ref(?:erence)?[:#\s]*([A-Za-z0-9-]+)`)
)

// Four-digit groups at or above this value are treated as years. Card
// digits below it are known to collide with small amounts and codes.
const yearFloor = 1900

var urgentTerms = []string{"stolen", "lost card", "fraud", "unauthorized", "unauthorised", "scam"}

type accountRule struct {
	accountType models.AccountType
	keywords    []string
}

var accountRules = []accountRule{
	{models.AccountChecking, []string{"checking", "chequing", "current"}},
	{models.AccountSavings, []string{"savings"}},
	{models.AccountCredit, []string{"credit card", "credit"}},
}

const (
	askDateAndLast4 = "Please confirm the transaction date and last 4 digits of the card/account."
	askLoginError   = "Are you seeing an error message when logging in?"
	askGeneric      = "Can you provide any relevant transaction IDs, dates, or card last 4 digits?"
)

// Extract pulls optional structured fields out of the raw query. Every
// extraction is best effort; a missing field is left nil.
func Extract(query string, chosen models.Category) models.ExtractedDetails {
	lowered := strings.ToLower(query)

	d := models.ExtractedDetails{
		Amount:         firstGroup(amountRe, query),
		Date:           firstGroup(dateRe, query),
		Last4:          findLast4(query),
		AccountType:    findAccountType(lowered),
		TransactionRef: firstGroup(refRe, query),
		Urgent:         containsAny(lowered, urgentTerms),
	}
	d.NextQuestion = nextQuestion(chosen, d)

	return d
}

func firstGroup(re *regexp.Regexp, text string) *string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &m[1]
}

func findLast4(text string) *string {
	for _, m := range last4Re.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n < yearFloor {
			return &m[1]
		}
	}
	return nil
}

func findAccountType(lowered string) *models.AccountType {
	for _, rule := range accountRules {
		if containsAny(lowered, rule.keywords) {
			t := rule.accountType
			return &t
		}
	}
	return nil
}

func nextQuestion(chosen models.Category, d models.ExtractedDetails) string {
	switch {
	case (chosen == models.CategoryTransactionInquiry || chosen == models.CategoryCardServices) &&
		(d.Date == nil || d.Last4 == nil):
		return askDateAndLast4
	case chosen == models.CategoryAccountAccess:
		return askLoginError
	default:
		return askGeneric
	}
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
