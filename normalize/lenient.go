// ABOUTME: Lenient mapping for generic REST payloads with lowercase field names
// ABOUTME: Fills every field the payload lacks with one fixed default
package normalize

import (
	"github.com/harperreed/crmdash/models"
)

// Items turns a decoded JSON array into records. Elements that are not
// objects become empty records.
func Items(items []any) []Record {
	out := make([]Record, len(items))
	for i, item := range items {
		fields, _ := item.(map[string]any)
		if fields == nil {
			fields = map[string]any{}
		}
		id, _ := textOf(fields["id"])
		out[i] = Record{ID: id, Fields: fields}
	}
	return out
}

func LenientContact(r Record, index int) models.Contact {
	return models.Contact{
		ID:          idOr(r.ID, index),
		Name:        r.TextOr("name", models.Placeholder),
		Email:       r.TextOr("email", models.Placeholder),
		Phone:       r.TextOr("phone", models.Placeholder),
		Company:     r.TextOr("company", models.Placeholder),
		Position:    r.TextOr("position", models.Placeholder),
		Status:      models.ContactActive,
		LastContact: models.Placeholder,
	}
}

func LenientDeal(r Record, index int) models.Deal {
	value, _ := r.Number("value")
	return models.Deal{
		ID:          idOr(r.ID, index),
		Title:       r.TextOr("title", models.Placeholder),
		Company:     r.TextOr("company", models.Placeholder),
		Value:       value,
		ValueFmt:    FormatRupiah(value),
		Stage:       models.StageLead,
		Owner:       models.Placeholder,
		Probability: 0,
		CloseDate:   models.Placeholder,
	}
}

func LenientActivity(r Record, index int) models.Activity {
	return models.Activity{
		ID:          idOr(r.ID, index),
		Type:        models.ActivityTask,
		Title:       r.TextOr("title", models.Placeholder),
		Description: r.TextOr("description", ""),
		Contact:     r.TextOr("contact", models.Placeholder),
		Company:     r.TextOr("company", models.Placeholder),
		Date:        models.Placeholder,
		Time:        "",
		Completed:   false,
	}
}

// LenientCompany ignores any counts or revenue in the payload.
func LenientCompany(r Record, index int) models.Company {
	return models.Company{
		ID:         idOr(r.ID, index),
		Name:       r.TextOr("name", models.Placeholder),
		Industry:   r.TextOr("industry", models.Placeholder),
		Website:    r.TextOr("website", models.Placeholder),
		Phone:      r.TextOr("phone", models.Placeholder),
		Address:    r.TextOr("address", models.Placeholder),
		RevenueFmt: FormatRupiah(0),
		Status:     models.CompanyActive,
		CreatedAt:  models.Placeholder,
	}
}
