// Package model defines the core data structures for reportledger.
package model

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Status is the workflow state of a report.
type Status string

// Report status values, as stored in the data file and shown to users.
const (
	StatusPending  Status = "Pendente"
	StatusInReview Status = "Em Revisão"
	StatusApproved Status = "Aprovado"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusPending, StatusInReview, StatusApproved}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// statusAliases maps lower-cased user input to a status.
var statusAliases = map[string]Status{
	"pendente":   StatusPending,
	"pending":    StatusPending,
	"em revisão": StatusInReview,
	"em revisao": StatusInReview,
	"in review":  StatusInReview,
	"in-review":  StatusInReview,
	"inreview":   StatusInReview,
	"aprovado":   StatusApproved,
	"approved":   StatusApproved,
}

// ParseStatus resolves user input to a status. Canonical values and English
// aliases are accepted regardless of case. An empty input yields an empty
// status, meaning "no status filter".
func ParseStatus(input string) (Status, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", nil
	}
	if s, ok := statusAliases[strings.ToLower(trimmed)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("unknown status %q (want one of %s)", input, joinStatuses())
}

func joinStatuses() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Category values accepted by the report form.
const (
	CategorySales           = "Vendas"
	CategoryMarketing       = "Marketing"
	CategoryFinance         = "Financeiro"
	CategoryOperations      = "Operacional"
	CategoryHR              = "RH"
	CategoryCustomerService = "Customer Service"
	CategoryManagement      = "Gestão"
)

// Categories lists every valid category in form order.
var Categories = []string{
	CategorySales,
	CategoryMarketing,
	CategoryFinance,
	CategoryOperations,
	CategoryHR,
	CategoryCustomerService,
	CategoryManagement,
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// CategoryLabel returns the display label for a category.
func CategoryLabel(c string) string {
	if c == CategoryHR {
		return "Recursos Humanos"
	}
	return c
}

// DateLayout is the calendar date format used in the data file.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
type Date struct {
	time.Time
}

// NewDate returns the date for the given year, month and day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date format, use YYYY-MM-DD: %w", err)
	}
	return Date{t}, nil
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// UnmarshalYAML decodes a YYYY-MM-DD scalar.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: date must be a scalar", node.Line)
	}
	parsed, err := ParseDate(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = parsed
	return nil
}

// MarshalYAML encodes the date as YYYY-MM-DD.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Report is a business document managed by reportledger.
type Report struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Content     string `yaml:"content"`
	Status      Status `yaml:"status"`
	Author      string `yaml:"author"`
	Date        Date   `yaml:"date"`
	Category    string `yaml:"category"`
}

// Ledger is the top-level structure of the data file.
type Ledger struct {
	Reports []Report `yaml:"reports"`
}
