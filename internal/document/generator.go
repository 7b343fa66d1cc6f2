// Package document renders a talent profile into the printable "Data Diri"
// PDF. Layout is cursor-driven: a single y position advances down the page and
// every block checks for a page break before writing.
package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-talent-directory/internal/domain"
	"go-talent-directory/pkg/imaging"
	"go-talent-directory/pkg/logger"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters (A4 portrait).
const (
	pageHeight   = 297.0
	marginTop    = 20.0
	marginBottom = 20.0
	marginLeft   = 20.0
	centerX      = 105.0
	indent       = 25.0
	wrapWidth    = 160.0

	photoSize = 30.0
	photoGap  = 5.0

	lineHeight = 5.0
)

var indonesianMonths = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// Generator produces profile PDFs. The zero value is not usable; call
// NewGenerator.
type Generator struct {
	client *http.Client
}

func NewGenerator() *Generator {
	return &Generator{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Filename derives the download name from the profile's display name.
func Filename(profile *domain.TalentProfile) string {
	return fmt.Sprintf("Data_Diri_%s.pdf", profile.UserFullName)
}

// Generate renders the profile into PDF bytes. The photo is fetched over HTTP
// when present; fetch or decode failures are logged and the layout continues
// without the image. Output is deterministic for a given profile: the embedded
// timestamps come from the profile's UpdatedAt, not the wall clock.
func (g *Generator) Generate(ctx context.Context, profile *domain.TalentProfile) ([]byte, error) {
	if profile == nil {
		return nil, fmt.Errorf("document: profile is nil")
	}

	d := &drawer{pdf: fpdf.New("P", "mm", "A4", ""), y: marginTop}
	// Core fonts are cp1252; the bullet and dash glyphs need translation.
	d.tr = d.pdf.UnicodeTranslatorFromDescriptor("")
	d.pdf.SetCreationDate(profile.UpdatedAt.UTC())
	d.pdf.SetModificationDate(profile.UpdatedAt.UTC())
	d.pdf.SetTitle(Filename(profile), true)
	d.pdf.SetAutoPageBreak(false, 0)
	d.pdf.AddPage()

	g.header(ctx, d, profile)
	d.identityBlock(profile)

	if strings.TrimSpace(profile.Headline) != "" {
		d.sectionLabel("Headline", 7)
		d.wrappedText(profile.Headline, marginLeft, wrapWidth+10)
		d.y += 8
	}
	if strings.TrimSpace(profile.Bio) != "" {
		d.sectionLabel("Bio", 7)
		d.wrappedText(profile.Bio, marginLeft, wrapWidth+10)
		d.y += 8
	}
	if len(profile.Skills) > 0 {
		d.sectionLabel("Keahlian", 7)
		d.pdf.SetFont("Helvetica", "", 11)
		for _, s := range profile.Skills {
			d.ensure(lineHeight)
			d.text(indent, fmt.Sprintf("• %s (%s)", s.Skill.Name, s.Level))
			d.y += lineHeight
		}
		d.y += 8
	}
	if len(profile.Experiences) > 0 {
		d.sectionLabel("Pengalaman", 7)
		for _, exp := range profile.Experiences {
			d.experienceBlock(exp)
		}
	}

	if err := d.pdf.Error(); err != nil {
		return nil, fmt.Errorf("document: render failed: %w", err)
	}

	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("document: output failed: %w", err)
	}
	return buf.Bytes(), nil
}

// header draws the centered photo (optional), name, email and identity line.
func (g *Generator) header(ctx context.Context, d *drawer, profile *domain.TalentProfile) {
	if profile.Photo != nil && *profile.Photo != "" {
		if img, err := g.fetchPhoto(ctx, *profile.Photo); err != nil {
			logger.Log.Warn("document: photo skipped", "url", *profile.Photo, "error", err)
		} else {
			d.ensure(photoSize + photoGap)
			opts := fpdf.ImageOptions{ImageType: "JPG", ReadDpi: false}
			name := "profile-photo"
			d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
			d.pdf.ImageOptions(name, centerX-photoSize/2, d.y, photoSize, photoSize, false, opts, 0, "")
			d.y += photoSize + photoGap
		}
	}

	d.ensure(10)
	d.pdf.SetFont("Helvetica", "B", 18)
	d.centeredText(profile.UserFullName)
	d.y += 10

	d.pdf.SetFont("Helvetica", "", 11)
	d.ensure(6)
	d.centeredText(profile.Email)
	d.y += 6

	d.ensure(15)
	d.centeredText(fmt.Sprintf("%s • %s • Angkatan %s", profile.NIM, profile.Prodi, profile.Angkatan))
	d.y += 15
}

// fetchPhoto downloads the photo and normalizes it to JPEG for embedding.
func (g *Generator) fetchPhoto(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, err
	}

	jpg, _, _, err := imaging.DecodeAndScale(data, 512)
	if err != nil {
		return nil, err
	}
	return jpg, nil
}

// drawer carries the per-invocation cursor so Generate stays re-entrant.
type drawer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

// text writes translated text at the given position.
func (d *drawer) text(x float64, s string) {
	d.pdf.Text(x, d.y, d.tr(s))
}

// ensure starts a new page when a block of height h would cross the bottom
// margin.
func (d *drawer) ensure(h float64) {
	if d.y+h > pageHeight-marginBottom {
		d.pdf.AddPage()
		d.y = marginTop
	}
}

func (d *drawer) centeredText(s string) {
	s = d.tr(s)
	w := d.pdf.GetStringWidth(s)
	d.pdf.Text(centerX-w/2, d.y, s)
}

// sectionLabel writes a bold 14pt label at the left margin and advances by gap.
func (d *drawer) sectionLabel(label string, gap float64) {
	d.ensure(gap + lineHeight)
	d.pdf.SetFont("Helvetica", "B", 14)
	d.text(marginLeft, label)
	d.y += gap
}

// wrappedText word-wraps free text to the given width and writes it line by
// line, page-breaking for the whole block first when it fits on one page.
func (d *drawer) wrappedText(text string, x, width float64) {
	d.pdf.SetFont("Helvetica", "", 11)
	// Lines come back already translated; write them raw.
	lines := d.pdf.SplitText(d.tr(text), width)
	d.ensure(float64(len(lines)) * lineHeight)
	for _, line := range lines {
		d.ensure(lineHeight)
		d.pdf.Text(x, d.y, line)
		d.y += lineHeight
	}
}

func (d *drawer) identityBlock(profile *domain.TalentProfile) {
	d.sectionLabel("Data Diri Mahasiswa", 8)

	d.pdf.SetFont("Helvetica", "", 11)
	fields := []string{
		fmt.Sprintf("Nama       : %s", profile.UserFullName),
		fmt.Sprintf("Email      : %s", profile.Email),
		fmt.Sprintf("NIM        : %s", profile.NIM),
		fmt.Sprintf("Prodi      : %s", profile.Prodi),
		fmt.Sprintf("Angkatan   : %s", profile.Angkatan),
	}
	for _, f := range fields {
		d.ensure(6)
		d.text(marginLeft, f)
		d.y += 6
	}
	d.y += 4
}

func (d *drawer) experienceBlock(exp domain.Experience) {
	// Reserve the fixed part of the block so a lone title never dangles at
	// the bottom of a page.
	d.ensure(17)

	d.pdf.SetFont("Helvetica", "B", 11)
	d.text(indent, exp.Title)
	d.y += lineHeight

	d.pdf.SetFont("Helvetica", "", 11)
	d.text(indent, exp.Company)
	d.y += lineHeight

	d.text(indent, fmt.Sprintf("%s – %s", monthYear(exp.StartDate), endLabel(exp.EndDate)))
	d.y += 7

	if exp.Description != "" {
		d.wrappedText(exp.Description, indent, wrapWidth)
	}
	d.y += 4
}

// monthYear formats a YYYY-MM-DD date as an Indonesian long month plus year.
// Unparseable input falls back to the raw string.
func monthYear(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d", indonesianMonths[t.Month()-1], t.Year())
}

func endLabel(end *string) string {
	if end == nil || *end == "" {
		return "Sekarang"
	}
	return monthYear(*end)
}
