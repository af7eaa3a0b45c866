package hdfc_cc

import (
	"regexp"
	"strings"

	"github.com/Puneet01302/my-expense-dashboard/analyzer/common"
	"github.com/spf13/viper"
)

// Config holds the line patterns for HDFC credit card statements.
type Config struct {
	Transaction  *regexp.Regexp
	CreditSuffix string
	DateFormat   string
}

// DefaultConfig returns the compiled built-in patterns: a day-first
// dd/mm/yyyy anchor and the "CR" credit marker.
func DefaultConfig() Config {
	return Config{
		Transaction:  regexp.MustCompile(`^\d{2}/\d{2}/\d{4}\b`),
		CreditSuffix: "CR",
		DateFormat:   common.DateLayout,
	}
}

// ConfigFromViper loads patterns from the statement.HDFC_CC config block,
// keeping the defaults for unset keys.
func ConfigFromViper() Config {
	cfg := DefaultConfig()
	if pattern := viper.GetString("statement.HDFC_CC.patterns.transaction"); pattern != "" {
		cfg.Transaction = regexp.MustCompile(pattern)
	}
	if suffix := viper.GetString("statement.HDFC_CC.patterns.credit_suffix"); suffix != "" {
		cfg.CreditSuffix = suffix
	}
	if format := viper.GetString("statement.HDFC_CC.patterns.date_format"); format != "" {
		cfg.DateFormat = format
	}
	return cfg
}

// Extract scans statement rows and emits a candidate for every
// transaction-shaped line. Lines without the date anchor are headers, page
// footers or wrapped continuation text and are skipped. Tokenization is
// whitespace-based: first token is the date, last token the amount, the rest
// the description. A line whose amount field does not parse is discarded
// outright, never kept with a zero amount.
func Extract(rows []string, cfg Config) []common.Candidate {
	candidates := []common.Candidate{}

	for _, row := range rows {
		line := strings.TrimSpace(row)
		if !cfg.Transaction.MatchString(line) {
			continue
		}

		credit := strings.Contains(line, cfg.CreditSuffix)

		fields := strings.Fields(line)
		// The credit marker sometimes lands in its own trailing token.
		if len(fields) > 1 && fields[len(fields)-1] == cfg.CreditSuffix {
			fields = fields[:len(fields)-1]
		}
		if len(fields) < 2 {
			continue
		}

		dateText := fields[0]
		amountField := fields[len(fields)-1]
		description := strings.Join(fields[1:len(fields)-1], " ")

		cleaned := strings.TrimSuffix(strings.ReplaceAll(amountField, ",", ""), cfg.CreditSuffix)
		amount, err := common.ParseAmount(cleaned)
		if err != nil {
			continue
		}
		if credit {
			amount = amount.Neg()
		}

		candidates = append(candidates, common.Candidate{
			Date:        dateText,
			Description: description,
			Amount:      amount.String(),
		})
	}

	return candidates
}

// DateLayouts returns the layouts the normalizer should apply to candidates
// produced by this extractor.
func (c Config) DateLayouts() []string {
	return []string{c.DateFormat}
}
