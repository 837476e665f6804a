package orderstore

import (
	"strings"
	"time"

	"github.com/MayBaraniKoKo/emperor-gold-catalogue/models"
)

// Criteria is one admin search. Blank fields are skipped; everything
// provided is ANDed together.
type Criteria struct {
	OrderNumber string     // substring of order_number, or of id when unset
	Name        string     // case-insensitive substring of customer name
	Phone       string     // substring of phone
	StartDate   *time.Time // inclusive lower bound on created_at
	EndDate     *time.Time // inclusive, extended to the end of that day
	Status      string     // exact status match
}

func (c Criteria) empty() bool {
	return c.OrderNumber == "" && c.Name == "" && c.Phone == "" &&
		c.StartDate == nil && c.EndDate == nil && c.Status == ""
}

// Filter returns the orders matching the criteria, preserving input order.
// The input slice is never mutated; with no criteria the full set comes back.
func Filter(orders []models.Order, c Criteria) []models.Order {
	if c.empty() {
		out := make([]models.Order, len(orders))
		copy(out, orders)
		return out
	}

	var end time.Time
	if c.EndDate != nil {
		y, m, d := c.EndDate.Date()
		end = time.Date(y, m, d, 23, 59, 59, 999_000_000, c.EndDate.Location())
	}

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if c.OrderNumber != "" {
			ref := o.OrderNumber
			if ref == "" {
				ref = o.ID
			}
			if !strings.Contains(strings.ToLower(ref), strings.ToLower(c.OrderNumber)) {
				continue
			}
		}
		if c.Name != "" && !strings.Contains(strings.ToLower(o.Name), strings.ToLower(c.Name)) {
			continue
		}
		if c.Phone != "" && !strings.Contains(o.Phone, c.Phone) {
			continue
		}
		if c.StartDate != nil && o.CreatedAt.Before(*c.StartDate) {
			continue
		}
		if c.EndDate != nil && o.CreatedAt.After(end) {
			continue
		}
		if c.Status != "" && string(o.Status) != c.Status {
			continue
		}
		out = append(out, o)
	}
	return out
}
