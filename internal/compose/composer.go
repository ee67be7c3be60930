// Package compose assembles a tailored resume from a candidate profile and a
// content selection. It is a pure transformation: given the same inputs it
// always produces the same resume, and it never invents content of its own.
package compose

import (
	"fmt"

	"github.com/jmorales/jobhunter/internal/types"
)

// DefaultMaxStatements caps accomplishments per experience section when the
// caller does not pass its own bound.
const DefaultMaxStatements = 4

// Compose merges the selection into the profile's contact details and
// experience history. Experiences keep the order they have in the profile
// regardless of the order the selection lists them in; experiences the
// selection left empty are omitted from the resume entirely. Each section
// keeps at most maxPerExperience statements (DefaultMaxStatements if zero),
// independent of whatever bound the selection was produced under.
func Compose(profile *types.CandidateProfile, posting *types.JobPosting, selection *types.SelectionResult, maxPerExperience int) (*types.TailoredResume, error) {
	if maxPerExperience <= 0 {
		maxPerExperience = DefaultMaxStatements
	}

	// Map experience ID to its selected statements for O(1) lookup.
	selected := make(map[string][]types.SelectedStatement, len(selection.Experiences))
	for _, exp := range selection.Experiences {
		if _, dup := selected[exp.ExperienceID]; dup {
			return nil, &ConsistencyFault{
				Message: fmt.Sprintf("selection lists experience twice (experience_id: %s)", exp.ExperienceID),
			}
		}
		selected[exp.ExperienceID] = exp.Statements
	}

	// Every selected experience must exist in the profile.
	known := make(map[string]bool, len(profile.Experiences))
	for i := range profile.Experiences {
		known[profile.Experiences[i].ID] = true
	}
	for id := range selected {
		if !known[id] {
			return nil, &ConsistencyFault{
				Message: fmt.Sprintf("selection references unknown experience (experience_id: %s)", id),
			}
		}
	}

	sections := make([]types.ResumeSection, 0, len(selection.Experiences))
	for i := range profile.Experiences {
		exp := &profile.Experiences[i]
		statements, ok := selected[exp.ID]
		if !ok || len(statements) == 0 {
			continue
		}
		if len(statements) > maxPerExperience {
			statements = statements[:maxPerExperience]
		}

		texts := make([]string, 0, len(statements))
		for _, stmt := range statements {
			if stmt.Text == "" {
				return nil, &ConsistencyFault{
					Message: fmt.Sprintf("empty statement for experience (experience_id: %s)", exp.ID),
				}
			}
			texts = append(texts, stmt.Text)
		}

		sections = append(sections, types.ResumeSection{
			Company:    exp.Company,
			Title:      exp.Title,
			Location:   exp.Location,
			StartDate:  exp.StartDate,
			EndDate:    exp.EndDate,
			Statements: texts,
		})
	}

	if len(sections) == 0 {
		return nil, &ConsistencyFault{Message: "selection produced no usable experience sections"}
	}

	summary := selection.Summary
	if summary == "" {
		summary = profile.Summary
	}
	skills := selection.Skills
	if len(skills) == 0 {
		skills = append([]string(nil), profile.Skills...)
	}

	return &types.TailoredResume{
		Name:        profile.Name,
		Email:       profile.Email,
		Phone:       profile.Phone,
		Location:    profile.Location,
		LinkedIn:    profile.LinkedIn,
		Summary:     summary,
		Skills:      skills,
		Experiences: sections,
		Target: types.TargetPostingInfo{
			PostingID: posting.ID,
			Title:     posting.Title,
			Company:   posting.Company,
		},
	}, nil
}
