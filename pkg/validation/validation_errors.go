package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly Indonesian labels
var FieldLabels = map[string]string{
	// Profile fields
	"FullName": "Nama Lengkap",
	"NIM":      "NIM",
	"Prodi":    "Program Studi",
	"Angkatan": "Angkatan",
	"Headline": "Headline",
	"Bio":      "Bio",

	// Skill fields
	"SkillName": "Skill",
	"Level":     "Level Keahlian",

	// Experience fields
	"Title":       "Judul",
	"Company":     "Perusahaan",
	"StartDate":   "Tanggal Mulai",
	"EndDate":     "Tanggal Selesai",
	"Description": "Deskripsi",

	// Project / social link fields
	"LinkDemo":    "Link Demo",
	"LinkRepo":    "Link Repository",
	"Platform":    "Platform",
	"Label":       "Label",
	"URLOrHandle": "URL / Username",

	// Account fields
	"Email":    "Email",
	"Password": "Password",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Wajib diisi", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Minimal %s karakter", label, param)
		}
		return fmt.Sprintf("%s: Minimal %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Maksimal %s karakter", label, param)
		}
		return fmt.Sprintf("%s: Maksimal %s", label, param)
	case "len":
		return fmt.Sprintf("%s: Harus tepat %s karakter", label, param)
	case "numeric":
		return fmt.Sprintf("%s: Hanya boleh berisi angka", label)
	case "oneof":
		return fmt.Sprintf("%s: Harus salah satu dari: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "email":
		return fmt.Sprintf("%s: Format email tidak valid", label)
	case "url":
		return fmt.Sprintf("%s: Format URL tidak valid", label)
	case "person_name":
		return fmt.Sprintf("%s: Hanya boleh berisi huruf, spasi, titik, koma, tanda hubung, dan apostrof", label)
	case "study_program":
		return fmt.Sprintf("%s: Hanya boleh berisi huruf, spasi, dan tanda baca", label)
	case "not_future_date":
		return fmt.Sprintf("%s: Tidak boleh lebih dari tanggal hari ini", label)
	case "datetime":
		return fmt.Sprintf("%s: Format tanggal harus YYYY-MM-DD", label)
	default:
		return fmt.Sprintf("%s: Validasi gagal (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// fall back to spacing out the CamelCase field name
	var b strings.Builder
	for i, r := range fieldName {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
