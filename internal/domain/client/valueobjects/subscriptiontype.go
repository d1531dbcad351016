package valueobjects

import (
	"fmt"
	"strings"
)

// SubscriptionType tags how a client subscription is billed.
type SubscriptionType string

const (
	TypeMonthly SubscriptionType = "monthly"
	TypeAnnual  SubscriptionType = "annual"
	TypeTrial   SubscriptionType = "trial"
)

func (t SubscriptionType) String() string {
	return string(t)
}

var ValidSubscriptionTypes = map[SubscriptionType]bool{
	TypeMonthly: true,
	TypeAnnual:  true,
	TypeTrial:   true,
}

// ParseSubscriptionType normalizes user input, accepting the Italian synonyms
// that appear in imported spreadsheets. Empty input defaults to monthly.
func ParseSubscriptionType(value string) (SubscriptionType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "monthly", "mensile":
		return TypeMonthly, nil
	case "annual", "annuale":
		return TypeAnnual, nil
	case "trial", "prova":
		return TypeTrial, nil
	default:
		return "", fmt.Errorf("invalid subscription type: %s", value)
	}
}
