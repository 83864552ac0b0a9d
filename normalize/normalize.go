// ABOUTME: Maps Airtable-style field bags onto the canonical CRM records
// ABOUTME: Never fails: absent or mistyped fields fall back to placeholders and enum defaults
package normalize

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/harperreed/crmdash/models"
)

// idOr returns the record id, or the position in the source list when the
// record has none. Positional ids are only stable within one fetch.
func idOr(id string, index int) string {
	if id != "" {
		return id
	}
	return strconv.Itoa(index)
}

// enumOr returns the field as T when it is a string exactly matching one of
// allowed; anything else yields fallback.
func enumOr[T ~string](r Record, key string, allowed []T, fallback T) T {
	s, ok := r.String(key)
	if !ok {
		return fallback
	}
	if slices.Contains(allowed, T(s)) {
		return T(s)
	}
	return fallback
}

func clampRound(n, lo, hi float64) int {
	n = math.Round(n)
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return int(n)
}

// Contact normalizes one contacts-table record.
func Contact(r Record, index int) models.Contact {
	return models.Contact{
		ID:          idOr(r.ID, index),
		Name:        r.TextOr("Name", models.PlaceholderName),
		Email:       r.TextOr("Email", models.Placeholder),
		Phone:       r.TextOr("Phone", models.Placeholder),
		Company:     r.TextOr("Company", models.Placeholder),
		Position:    r.TextOr("Position", models.Placeholder),
		Status:      enumOr(r, "Status", models.ContactStatuses, models.ContactActive),
		LastContact: FormatDate(r.Value("LastContact")),
	}
}

// Deal normalizes one deals-table record.
func Deal(r Record, index int) models.Deal {
	value := dealValue(r)

	owner := models.PlaceholderInitial
	if name, ok := r.Text("Owner"); ok {
		if initials := Initials(name); initials != "" {
			owner = initials
		}
	}

	probability := 0
	if p, ok := r.Number("Probability"); ok {
		probability = clampRound(p, 0, 100)
	}

	return models.Deal{
		ID:          idOr(r.ID, index),
		Title:       r.TextOr("Title", models.PlaceholderTitle),
		Company:     r.TextOr("Company", models.Placeholder),
		Value:       value,
		ValueFmt:    FormatRupiah(value),
		Stage:       enumOr(r, "Stage", models.DealStages, models.StageLead),
		Owner:       owner,
		Probability: probability,
		CloseDate:   FormatDate(r.Value("CloseDate")),
	}
}

// dealValue accepts a number as-is and otherwise parses the leading float
// of the text form, so "15000000 IDR" still reads as 15000000.
func dealValue(r Record) float64 {
	if n, ok := r.Number("Value"); ok {
		return n
	}
	if s, ok := r.Text("Value"); ok {
		return leadingFloat(s)
	}
	return 0
}

// Activity normalizes one activities-table record. Type matching ignores case.
func Activity(r Record, index int) models.Activity {
	activityType := models.ActivityTask
	if s, ok := r.String("Type"); ok {
		if t := models.ActivityType(strings.ToLower(s)); slices.Contains(models.ActivityTypes, t) {
			activityType = t
		}
	}

	return models.Activity{
		ID:          idOr(r.ID, index),
		Type:        activityType,
		Title:       r.TextOr("Title", models.PlaceholderTitle),
		Description: r.TextOr("Description", ""),
		Contact:     r.TextOr("Contact", models.Placeholder),
		Company:     r.TextOr("Company", models.Placeholder),
		Date:        FormatDate(r.Value("Date")),
		Time:        r.TextOr("Time", ""),
		Completed:   r.Truthy("Completed"),
	}
}

// Company normalizes one companies-table record.
func Company(r Record, index int) models.Company {
	count := func(key string) int {
		if n, ok := r.Number(key); ok {
			return clampRound(n, 0, math.MaxInt32)
		}
		return 0
	}

	revenue, _ := r.Number("Revenue")

	return models.Company{
		ID:           idOr(r.ID, index),
		Name:         r.TextOr("Name", models.PlaceholderName),
		Industry:     r.TextOr("Industry", models.Placeholder),
		Website:      r.TextOr("Website", models.Placeholder),
		Phone:        r.TextOr("Phone", models.Placeholder),
		Address:      r.TextOr("Address", models.Placeholder),
		ContactCount: count("ContactCount"),
		DealCount:    count("DealCount"),
		Revenue:      revenue,
		RevenueFmt:   FormatRupiah(revenue),
		Status:       enumOr(r, "Status", models.CompanyStatuses, models.CompanyActive),
		CreatedAt:    FormatDate(r.Value("CreatedAt")),
	}
}

// Each maps records through fn preserving order.
func Each[T any](records []Record, fn func(Record, int) T) []T {
	out := make([]T, len(records))
	for i, r := range records {
		out[i] = fn(r, i)
	}
	return out
}

func Contacts(records []Record) []models.Contact { return Each(records, Contact) }
func Deals(records []Record) []models.Deal { return Each(records, Deal) }
func Activities(records []Record) []models.Activity { return Each(records, Activity) }
func Companies(records []Record) []models.Company { return Each(records, Company) }
