package company

import (
	"fmt"
	"strings"
)

var (
	DefaultTechnologyKeywords = []string{"google", "microsoft", "apple", "amazon", "netflix", "meta", "tesla", "nvidia"}
	DefaultFinanceKeywords    = []string{"goldman", "morgan", "jpmorgan", "wells fargo", "bank of america"}
)

// Rule maps a set of name keywords to an industry.
// Description is a format string receiving the company name.
type Rule struct {
	Industry    string
	Description string
	Keywords    []string
}

// KeywordClassifier checks rules in order and returns the first whose keyword
// is a case-insensitive substring of the company name.
type KeywordClassifier struct {
	rules []Rule
}

var _ Classifier = (*KeywordClassifier)(nil)

func NewKeywordClassifier(rules ...Rule) *KeywordClassifier {
	prepared := make([]Rule, 0, len(rules))
	for _, rule := range rules {
		keywords := make([]string, 0, len(rule.Keywords))
		for _, kw := range rule.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
		}
		if len(keywords) == 0 {
			continue
		}
		rule.Keywords = keywords
		prepared = append(prepared, rule)
	}

	return &KeywordClassifier{rules: prepared}
}

// DefaultClassifier knows a handful of technology and finance companies.
func DefaultClassifier() *KeywordClassifier {
	return NewClassifierFromLists(nil, nil)
}

// NewClassifierFromLists builds the technology and finance rules.
// An empty list is replaced with the built-in one.
func NewClassifierFromLists(technology, finance []string) *KeywordClassifier {
	if len(technology) == 0 {
		technology = DefaultTechnologyKeywords
	}
	if len(finance) == 0 {
		finance = DefaultFinanceKeywords
	}

	return NewKeywordClassifier(
		Rule{
			Industry:    IndustryTechnology,
			Description: "%s is a leading technology company driving innovation in digital products and services.",
			Keywords:    technology,
		},
		Rule{
			Industry:    IndustryFinance,
			Description: "%s is a prominent financial institution providing comprehensive banking and investment services.",
			Keywords:    finance,
		},
	)
}

func (c *KeywordClassifier) Classify(name string) (Profile, bool) {
	lower := strings.ToLower(name)
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if !strings.Contains(lower, kw) {
				continue
			}
			description := ""
			if rule.Description != "" {
				description = fmt.Sprintf(rule.Description, name)
			}
			return Profile{Industry: rule.Industry, Description: description}, true
		}
	}

	return Profile{}, false
}
