package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// Person names: letters, spaces, dots, commas, hyphens and apostrophes
	nameRegex = regexp.MustCompile(`^[a-zA-Z\s\.\,\-\']+$`)

	// Study programs additionally allow parentheses
	prodiRegex = regexp.MustCompile(`^[a-zA-Z\s\.\,\-\(\)]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("person_name", PersonName)
	_ = v.RegisterValidation("study_program", StudyProgram)
	_ = v.RegisterValidation("not_future_date", NotFutureDate)
}

// PersonName rejects digits and most special symbols in full names
func PersonName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // optional, combine with required when needed
	}
	return nameRegex.MatchString(val)
}

// StudyProgram validates the free-text study program field
func StudyProgram(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return prodiRegex.MatchString(val)
}

// NotFutureDate validates a YYYY-MM-DD string against today
func NotFutureDate(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	d, err := time.Parse("2006-01-02", val)
	if err != nil {
		return false
	}
	return !d.After(time.Now())
}
