package scoring

// Suggestion bands. The generator is deterministic: a score maps to a
// fixed ordered list, shared by every provider that returns no
// suggestion text of its own.
var (
	correctiveSuggestions = []string{
		"Add more keywords relevant to the roles you are targeting",
		"Quantify your achievements with numbers and metrics",
		"Use strong action verbs to describe your experience",
	}

	refinementSuggestions = []string{
		"Tailor your keywords to each job description",
		"Expand the skills section with role-specific technologies",
		"Keep section headings simple so automated parsers can find them",
	}

	affirmingSuggestions = []string{
		"Your resume is well optimized for ATS screening",
		"Keep your keywords current as job requirements evolve",
	}
)

// Suggest maps a score to its suggestion band: below 60 corrective,
// 60 to 79 refinement, 80 and above affirming.
func Suggest(score int) []string {
	switch {
	case score < 60:
		return append([]string(nil), correctiveSuggestions...)
	case score < 80:
		return append([]string(nil), refinementSuggestions...)
	default:
		return append([]string(nil), affirmingSuggestions...)
	}
}
