// Package config loads and validates the monitor's environment
// configuration.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"balmon/internal/core"
	"balmon/internal/schedule"
)

type Config struct {
	// Budgeting service
	APIToken  string
	BudgetID  string
	AccountID string

	// Credit card payment categories to consider (ids or names, empty = all)
	CCCategories []string

	// Projection window: days forward, 0 = through end of current month
	MonitorDays int

	// Alert threshold in major units, e.g. "250" or "250.50"
	MinBalanceRaw string
	// MinBalance is the parsed threshold in milliunits, set by Validate.
	MinBalance core.Money

	// Apprise gateway notification channel
	AppriseAPIURL     string
	AppriseURLs       string
	UpdateAppriseURLs string

	// AMQP notification channel (optional)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Schedules: "HH:MM" daily or a duration like "6h"; empty = run once
	CheckSchedule  string
	UpdateSchedule string
}

func Load() *Config {
	return &Config{
		APIToken:  getEnv("YNAB_API_TOKEN", ""),
		BudgetID:  getEnv("YNAB_BUDGET_ID", "last-used"),
		AccountID: getEnv("YNAB_ACCOUNT_ID", ""),

		CCCategories: splitList(getEnv("YNAB_CC_CATEGORIES", "")),

		MonitorDays:   getEnvInt("MONITOR_DAYS", 0),
		MinBalanceRaw: getEnv("MIN_BALANCE", "0"),

		AppriseAPIURL:     getEnv("APPRISE_API_URL", ""),
		AppriseURLs:       getEnv("APPRISE_URLS", ""),
		UpdateAppriseURLs: getEnv("UPDATE_APPRISE_URLS", ""),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "balmon"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "balance_notifications"),

		CheckSchedule:  getEnv("CHECK_SCHEDULE", ""),
		UpdateSchedule: getEnv("UPDATE_SCHEDULE", ""),
	}
}

// Validate checks the configuration, collecting every problem into a single
// error. It also parses the threshold into c.MinBalance.
func (c *Config) Validate() error {
	var errors []string

	if c.APIToken == "" {
		errors = append(errors, "YNAB_API_TOKEN is required")
	}
	if c.AccountID == "" {
		errors = append(errors, "YNAB_ACCOUNT_ID is required")
	}
	if c.MonitorDays < 0 {
		errors = append(errors, fmt.Sprintf("invalid MONITOR_DAYS %d: must not be negative", c.MonitorDays))
	}

	minBalance, err := core.ParseUnits(c.MinBalanceRaw)
	if err != nil {
		errors = append(errors, fmt.Sprintf("invalid MIN_BALANCE '%s': must be a decimal amount", c.MinBalanceRaw))
	} else {
		c.MinBalance = minBalance
	}

	hasApprise := c.AppriseAPIURL != ""
	hasAMQP := c.AMQPURL != ""
	if !hasApprise && !hasAMQP {
		errors = append(errors, "at least one notification channel is required (APPRISE_API_URL or AMQP_URL)")
	}
	if hasApprise && c.AppriseURLs == "" {
		errors = append(errors, "APPRISE_URLS is required when APPRISE_API_URL is set")
	}

	if hasAMQP {
		if parsed, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsed.Scheme != "amqp" && parsed.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if _, err := schedule.Parse(c.CheckSchedule); err != nil {
		errors = append(errors, fmt.Sprintf("invalid CHECK_SCHEDULE '%s': use 'HH:MM' or a duration like '6h'", c.CheckSchedule))
	}
	if _, err := schedule.Parse(c.UpdateSchedule); err != nil {
		errors = append(errors, fmt.Sprintf("invalid UPDATE_SCHEDULE '%s': use 'HH:MM' or a duration like '6h'", c.UpdateSchedule))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// UpdateURLs returns the Apprise URLs for routine updates, falling back to
// the alert URLs when none are configured.
func (c *Config) UpdateURLs() string {
	if c.UpdateAppriseURLs != "" {
		return c.UpdateAppriseURLs
	}
	return c.AppriseURLs
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
