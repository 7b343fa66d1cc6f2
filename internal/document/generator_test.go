package document_test

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-talent-directory/internal/document"
	"go-talent-directory/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func anaProfile() *domain.TalentProfile {
	return &domain.TalentProfile{
		ID:           1,
		UserFullName: "Ana Pertiwi",
		Email:        "ana@example.com",
		NIM:          "11220001",
		Prodi:        "Sistem Informasi",
		Angkatan:     "2022",
		Headline:     "Backend engineering enthusiast",
		Bio:          "Mahasiswa tingkat akhir yang fokus pada pengembangan backend.",
		UpdatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Skills: []domain.TalentSkill{
			{Skill: domain.Skill{Name: "Golang"}, Level: domain.LevelIntermediate},
		},
		Experiences: []domain.Experience{
			{
				Title:       "Backend Intern",
				Company:     "PT Maju Jaya",
				StartDate:   "2025-06-01",
				EndDate:     strPtr("2025-12-31"),
				Description: "Membangun layanan REST untuk sistem inventaris.",
			},
			{
				Title:     "Asisten Lab",
				Company:   "Universitas",
				StartDate: "2026-01-01",
			},
		},
	}
}

// pageCount inspects the PDF object tree. Page objects carry "/Type /Page",
// the tree root "/Type /Pages".
func pageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestGenerateSinglePage(t *testing.T) {
	gen := document.NewGenerator()

	data, err := gen.Generate(context.Background(), anaProfile())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, 1, pageCount(data))
}

func TestGeneratePaginatesLongProfiles(t *testing.T) {
	gen := document.NewGenerator()

	profile := anaProfile()
	profile.Experiences = nil
	for i := 0; i < 40; i++ {
		profile.Experiences = append(profile.Experiences, domain.Experience{
			Title:       fmt.Sprintf("Magang ke-%d", i+1),
			Company:     "PT Contoh",
			StartDate:   "2024-01-01",
			Description: "Mengerjakan berbagai tugas pengembangan perangkat lunak selama satu periode penuh.",
		})
	}

	data, err := gen.Generate(context.Background(), profile)
	require.NoError(t, err)
	assert.Greater(t, pageCount(data), 1)
}

func TestGenerateIsDeterministic(t *testing.T) {
	gen := document.NewGenerator()
	profile := anaProfile()

	first, err := gen.Generate(context.Background(), profile)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSkipsEmptySections(t *testing.T) {
	gen := document.NewGenerator()

	profile := anaProfile()
	profile.Headline = ""
	profile.Bio = "  "
	profile.Skills = nil
	profile.Experiences = nil

	data, err := gen.Generate(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(data))
}

func TestGenerateSurvivesPhotoFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	gen := document.NewGenerator()
	profile := anaProfile()
	profile.Photo = strPtr(srv.URL + "/photo.jpg")

	data, err := gen.Generate(context.Background(), profile)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGenerateEmbedsPhoto(t *testing.T) {
	var photo bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 128, A: 255})
		}
	}
	require.NoError(t, png.Encode(&photo, img))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(photo.Bytes())
	}))
	defer srv.Close()

	gen := document.NewGenerator()

	bare, err := gen.Generate(context.Background(), anaProfile())
	require.NoError(t, err)

	profile := anaProfile()
	profile.Photo = strPtr(srv.URL + "/photo.png")
	withPhoto, err := gen.Generate(context.Background(), profile)
	require.NoError(t, err)

	assert.Greater(t, len(withPhoto), len(bare))
}

func TestGenerateNilProfile(t *testing.T) {
	gen := document.NewGenerator()
	_, err := gen.Generate(context.Background(), nil)
	assert.Error(t, err)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Data_Diri_Ana Pertiwi.pdf", document.Filename(anaProfile()))
}
