package selection

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jmorales/jobhunter/internal/prompts"
	"github.com/jmorales/jobhunter/internal/types"
)

// maxDescriptionChars bounds how much posting text enters the prompt.
// Postings scraped from job boards can run to tens of thousands of characters
// of boilerplate; the relevant requirements are near the top.
const maxDescriptionChars = 8000

// buildPrompt constructs the selection prompt. The prompt is deterministic and
// bounded: if the combined experience text would exceed the budget, the oldest
// experiences are dropped first (profile order is most-recent-first).
// Returns the prompt and the number of experiences omitted by truncation.
func buildPrompt(profile *types.CandidateProfile, posting *types.JobPosting, maxPerExperience, maxPromptChars int) (string, int) {
	intro := prompts.MustGet("selection.json", "select-content-intro")
	rules := prompts.MustGet("selection.json", "select-content-rules")

	description := posting.Description
	if len(description) > maxDescriptionChars {
		// Back up to a rune boundary so the cut never splits a multi-byte
		// character.
		cut := maxDescriptionChars
		for cut > 0 && !utf8.RuneStart(description[cut]) {
			cut--
		}
		description = description[:cut]
	}

	rulesText := prompts.Format(rules, map[string]string{
		"MaxPerExperience": fmt.Sprintf("%d", maxPerExperience),
	})

	// Everything except the experience listing is fixed cost; the experience
	// budget is whatever remains.
	base := prompts.Format(intro, map[string]string{
		"Title":       posting.Title,
		"Company":     posting.Company,
		"Description": description,
		"Summary":     profile.Summary,
		"Skills":      strings.Join(profile.Skills, ", "),
		"Experiences": "",
	})
	budget := maxPromptChars - len(base) - len(rulesText)

	experienceText, omitted := formatExperiences(profile.Experiences, budget)

	prompt := prompts.Format(intro, map[string]string{
		"Title":       posting.Title,
		"Company":     posting.Company,
		"Description": description,
		"Summary":     profile.Summary,
		"Skills":      strings.Join(profile.Skills, ", "),
		"Experiences": experienceText,
	})

	return prompt + rulesText, omitted
}

// formatExperiences renders experiences in order until the budget is spent.
// Each experience is included whole or not at all, so the mapping from
// accomplishment indices back to the profile stays unambiguous.
func formatExperiences(experiences []types.WorkExperience, budget int) (string, int) {
	var sb strings.Builder
	included := 0

	for _, exp := range experiences {
		block := formatExperience(&exp)
		if sb.Len()+len(block) > budget && included > 0 {
			break
		}
		sb.WriteString(block)
		included++
		if sb.Len() >= budget {
			break
		}
	}

	return sb.String(), len(experiences) - included
}

func formatExperience(exp *types.WorkExperience) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Experience %s: %s at %s (%s - %s)\n",
		exp.ID, exp.Title, exp.Company, exp.StartDate, exp.EndDate))
	for i, acc := range exp.Accomplishments {
		sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, acc))
	}
	sb.WriteString("\n")
	return sb.String()
}
