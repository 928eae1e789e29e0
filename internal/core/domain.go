package core

import (
	"strings"
	"time"
)

// Expense is one data row of the expenses tab, coerced into typed fields.
// Rows are value objects: edits produce a new value, never mutate in place.
type Expense struct {
	Label          string     `json:"libelle"`
	AmountTTC      float64    `json:"montantTTC"`
	PaymentDate    *time.Time `json:"datePaiement"`
	Invoice        string     `json:"facture"`
	Category       string     `json:"categorie"`
	Type           string     `json:"type"`
	Duration       *float64   `json:"duree"`
	Deadline       *time.Time `json:"echeance"`
	DaysLeft       *string    `json:"joursRestants"`
	AnnualEstimate float64    `json:"estimationAnnuel"`
	URL            string     `json:"url"`
	MonthlyCost    float64    `json:"mensualite"`
	Cumulative     float64    `json:"cumule"`
	ID             string     `json:"id"`
}

// IsEmpty reports whether the row carries no data worth displaying.
// Trailing sheet rows often come back as rows of empty cells.
func (e Expense) IsEmpty() bool {
	return strings.TrimSpace(e.Label) == "" &&
		e.AmountTTC == 0 &&
		e.PaymentDate == nil &&
		strings.TrimSpace(e.ID) == ""
}

// Classified reports whether the row's category resolves against the
// category option set. Unclassified rows feed the "à classer" view.
func (e Expense) Classified() bool {
	return MatchCategory(e.Category) != nil
}
