package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// LoanCategory – immutable value object
// ---------------------------------------------------------------------------

// LoanCategory identifies the product family an application belongs to.
// Eligibility bounds, auto-approval limits, and risk weights are keyed by it.
type LoanCategory struct {
	value string
}

const (
	categoryPersonal  = "PERSONAL"
	categoryBusiness  = "BUSINESS"
	categoryMortgage  = "MORTGAGE"
	categoryCar       = "CAR"
	categoryConsumer  = "CONSUMER"
	categoryEducation = "EDUCATION"
	categoryMedical   = "MEDICAL"
)

var (
	CategoryPersonal  = LoanCategory{value: categoryPersonal}
	CategoryBusiness  = LoanCategory{value: categoryBusiness}
	CategoryMortgage  = LoanCategory{value: categoryMortgage}
	CategoryCar       = LoanCategory{value: categoryCar}
	CategoryConsumer  = LoanCategory{value: categoryConsumer}
	CategoryEducation = LoanCategory{value: categoryEducation}
	CategoryMedical   = LoanCategory{value: categoryMedical}
)

var validLoanCategories = map[string]LoanCategory{
	categoryPersonal:  CategoryPersonal,
	categoryBusiness:  CategoryBusiness,
	categoryMortgage:  CategoryMortgage,
	categoryCar:       CategoryCar,
	categoryConsumer:  CategoryConsumer,
	categoryEducation: CategoryEducation,
	categoryMedical:   CategoryMedical,
}

// NewLoanCategory creates a LoanCategory from a raw string.
func NewLoanCategory(s string) (LoanCategory, error) {
	v, ok := validLoanCategories[s]
	if !ok {
		return LoanCategory{}, fmt.Errorf("invalid loan category: %q", s)
	}
	return v, nil
}

// AllLoanCategories returns every defined category. The slice is a fresh copy.
func AllLoanCategories() []LoanCategory {
	return []LoanCategory{
		CategoryPersonal, CategoryBusiness, CategoryMortgage, CategoryCar,
		CategoryConsumer, CategoryEducation, CategoryMedical,
	}
}

// String returns the string representation of the category.
func (c LoanCategory) String() string { return c.value }

// IsZero returns true if the category has not been initialised.
func (c LoanCategory) IsZero() bool { return c.value == "" }

// Equal returns true when both categories carry the same value.
func (c LoanCategory) Equal(other LoanCategory) bool { return c.value == other.value }
