package generation

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

const maxSlugLen = 15

// ArtifactFilename builds the download name for a generated resume, e.g.
// "resume_smith_sons_posting-7_20260829.pdf".
func ArtifactFilename(company, postingID string, createdAt time.Time) string {
	return fmt.Sprintf("resume_%s_%s_%s.pdf", companySlug(company), postingID, createdAt.Format("20060102"))
}

// companySlug lowercases the company name, keeps letters and digits, folds
// everything else to single underscores, and truncates.
func companySlug(company string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(company) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore && b.Len() > 0:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "_")
	if slug == "" {
		slug = "company"
	}
	if len(slug) > maxSlugLen {
		slug = strings.TrimSuffix(slug[:maxSlugLen], "_")
	}
	return slug
}
