package validation_test

import (
	"testing"
	"time"

	"go-talent-directory/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name      string `validate:"omitempty,person_name"`
	Prodi     string `validate:"omitempty,study_program"`
	StartDate string `validate:"omitempty,datetime=2006-01-02,not_future_date"`
}

func newValidate(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestPersonName(t *testing.T) {
	v := newValidate(t)

	valid := []string{"Ana Pertiwi", "Budi Santoso Jr.", "O'Connor", "Siti Nur-Aini", ""}
	for _, name := range valid {
		assert.NoError(t, v.Struct(sample{Name: name}), "name %q should pass", name)
	}

	invalid := []string{"Ana123", "Budi @ Santoso", "x_y"}
	for _, name := range invalid {
		assert.Error(t, v.Struct(sample{Name: name}), "name %q should fail", name)
	}
}

func TestStudyProgram(t *testing.T) {
	v := newValidate(t)

	assert.NoError(t, v.Struct(sample{Prodi: "Teknik Informatika (S1)"}))
	assert.Error(t, v.Struct(sample{Prodi: "Teknik Informatika 2024"}))
}

func TestNotFutureDate(t *testing.T) {
	v := newValidate(t)

	past := time.Now().AddDate(0, -1, 0).Format("2006-01-02")
	require.NoError(t, v.Struct(sample{StartDate: past}))

	future := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	assert.Error(t, v.Struct(sample{StartDate: future}))
}
