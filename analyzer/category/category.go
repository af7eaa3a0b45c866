// Package category classifies transaction descriptions against an ordered
// keyword-rule table. Classification is a pure function of the description:
// deterministic, total, and independent of other transactions.
package category

import (
	"fmt"
	"strings"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
	"github.com/spf13/viper"
)

// Others is the unconditional fallback category.
const Others = "others"

// Rule maps a category to the keywords that select it. Rules are evaluated
// in declaration order and the first keyword hit wins, so order is
// significant when keyword sets could overlap.
type Rule struct {
	Category string   `mapstructure:"name" json:"category"`
	Keywords []string `mapstructure:"keywords" json:"keywords"`
}

// Categorizer holds an immutable ordered rule table. It is safe for
// concurrent use; build one per configuration, not per invocation.
type Categorizer struct {
	rules []Rule
}

// New builds a categorizer from an ordered rule table. Keywords are
// lower-cased once here so matching stays case-insensitive.
func New(rules []Rule) *Categorizer {
	owned := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, len(rule.Keywords))
		for i, keyword := range rule.Keywords {
			keywords[i] = strings.ToLower(strings.TrimSpace(keyword))
		}
		owned = append(owned, Rule{Category: rule.Category, Keywords: keywords})
	}
	return &Categorizer{rules: owned}
}

// Default returns a categorizer over the built-in rule table.
func Default() *Categorizer {
	return New(DefaultRules())
}

// DefaultRules returns the built-in rule table.
func DefaultRules() []Rule {
	return []Rule{
		{Category: "subscriptions", Keywords: []string{"spotify", "youtube", "prime", "zee", "hotstar"}},
		{Category: "food", Keywords: []string{"swiggy", "zomato", "dominos", "instamart", "blinkit"}},
		{Category: "shopping", Keywords: []string{"amazon", "flipkart", "myntra"}},
		{Category: "utilities", Keywords: []string{"airtel", "jio", "electricity", "gas"}},
		{Category: "education", Keywords: []string{"school", "fees", "footprints"}},
	}
}

// FromViper builds a categorizer from the ordered `categories` list of the
// loaded configuration, or the default table when the key is absent.
func FromViper() (*Categorizer, error) {
	if !viper.IsSet("categories") {
		return Default(), nil
	}
	var rules []Rule
	if err := viper.UnmarshalKey("categories", &rules); err != nil {
		return nil, fmt.Errorf("invalid categories config: %w", err)
	}
	return New(rules), nil
}

// Categorize maps a description to exactly one category.
func (c *Categorizer) Categorize(description string) string {
	lowered := strings.ToLower(description)
	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if keyword != "" && strings.Contains(lowered, keyword) {
				return rule.Category
			}
		}
	}
	return Others
}

// Apply assigns a category to every transaction and returns the slice.
// After this step the transaction set is frozen.
func (c *Categorizer) Apply(transactions []common.Transaction) []common.Transaction {
	for i := range transactions {
		transactions[i].Category = c.Categorize(transactions[i].Description)
	}
	return transactions
}
