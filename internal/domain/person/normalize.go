package person

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeEmail returns the form used for email comparison and uniqueness:
// trimmed and lower-cased. Empty means "no email signal".
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DeriveDisplayName builds a display name from the input. Structured name
// parts win over the single name string; missing parts collapse away so a
// lone firstname yields just that. An empty result is valid.
func DeriveDisplayName(input ResolveInput) string {
	parts := make([]string, 0, 2)
	if first := strings.TrimSpace(input.FirstName); first != "" {
		parts = append(parts, first)
	}
	if last := strings.TrimSpace(input.LastName); last != "" {
		parts = append(parts, last)
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	return strings.TrimSpace(input.Name)
}

// FoldKey returns the case-folded comparison key for names and companies.
// Unicode case folding rather than LOWER() so that non-ASCII names compare
// correctly; SQLite's LOWER only folds ASCII.
func FoldKey(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}

// normalizedInput is the canonical shape the match cascade compares against
// stored records. Building it never fails; signals are simply present or
// absent.
type normalizedInput struct {
	displayName     string
	nameFolded      string
	email           string
	emailNormalized string
	company         string
	companyFolded   string
	title           string
	role            string
	personType      string
	platform        string
	platformUserID  string
	source          string
}

func normalizeInput(input ResolveInput) normalizedInput {
	norm := normalizedInput{
		displayName:     DeriveDisplayName(input),
		email:           strings.TrimSpace(input.Email),
		emailNormalized: NormalizeEmail(input.Email),
		company:         strings.TrimSpace(input.Company),
		title:           strings.TrimSpace(input.Title),
		role:            strings.TrimSpace(input.Role),
		personType:      strings.TrimSpace(input.PersonType),
		platform:        strings.TrimSpace(input.Platform),
		// Platform user ids are opaque tokens, compared case-sensitively.
		platformUserID: input.PlatformUserID,
		source:         strings.TrimSpace(input.Source),
	}
	norm.nameFolded = FoldKey(norm.displayName)
	norm.companyFolded = FoldKey(norm.company)
	return norm
}

// hasPlatformSignal reports whether both halves of the platform pair are
// present. A half-supplied pair is treated as "platform signal absent", not
// as an error.
func (n normalizedInput) hasPlatformSignal() bool {
	return n.platform != "" && n.platformUserID != ""
}
