// Package contact holds the lead-generation form: its field state, the
// validation rules and the controller that drives a submission from editing
// through to the confirmation view.
package contact

import "strings"

// Field names a form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldCompany Field = "company"
	// FieldBusiness is the standalone page's name for the company input.
	FieldBusiness Field = "business"
	FieldBudget   Field = "budget"
	FieldMessage  Field = "message"
)

// Budget is one of the fixed project budget ranges offered by the form.
type Budget string

const (
	BudgetUnder5k  Budget = "Under $5,000"
	Budget5kTo10k  Budget = "$5,000 - $10,000"
	Budget10kTo25k Budget = "$10,000 - $25,000"
	Budget25kTo50k Budget = "$25,000 - $50,000"
	Budget50kPlus  Budget = "$50,000+"
	BudgetNotSure  Budget = "Not sure yet"
	BudgetUnset    Budget = ""
)

var budgetRanges = []Budget{
	BudgetUnder5k,
	Budget5kTo10k,
	Budget10kTo25k,
	Budget25kTo50k,
	Budget50kPlus,
	BudgetNotSure,
}

// BudgetRanges returns the selectable budget ranges in display order.
func BudgetRanges() []Budget {
	out := make([]Budget, len(budgetRanges))
	copy(out, budgetRanges)
	return out
}

// Valid reports whether b is unset or one of the listed ranges.
func (b Budget) Valid() bool {
	if b == BudgetUnset {
		return true
	}
	for _, r := range budgetRanges {
		if b == r {
			return true
		}
	}
	return false
}

// FormState is the current value of every form input.
type FormState struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Company string `json:"company,omitempty" form:"company"`
	Budget  Budget `json:"budget,omitempty" form:"budget"`
	Message string `json:"message" form:"message"`
}

// Set assigns value to the named field. Unknown fields are ignored and
// reported as false.
func (f *FormState) Set(field Field, value string) bool {
	switch Field(strings.ToLower(string(field))) {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldCompany, FieldBusiness:
		f.Company = value
	case FieldBudget:
		f.Budget = Budget(value)
	case FieldMessage:
		f.Message = value
	default:
		return false
	}
	return true
}

// IsEmpty reports whether every field is blank.
func (f FormState) IsEmpty() bool {
	return f == FormState{}
}

// Values returns the form as a field map, the shape posted to the contact
// endpoint.
func (f FormState) Values() map[string]string {
	return map[string]string{
		string(FieldName):    f.Name,
		string(FieldEmail):   f.Email,
		string(FieldCompany): f.Company,
		string(FieldBudget):  string(f.Budget),
		string(FieldMessage): f.Message,
	}
}
