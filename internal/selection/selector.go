// Package selection chooses and rewrites the profile content most relevant to a posting.
//
// The selector asks the generative model to pick and condense accomplishment
// statements per experience. The model is non-deterministic and occasionally
// malformed, so every reply is schema-checked and provenance-checked before it
// is trusted; after the retry budget is exhausted the selector degrades to the
// profile's own content rather than failing the pipeline.
package selection

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jmorales/jobhunter/internal/llm"
	"github.com/jmorales/jobhunter/internal/prompts"
	"github.com/jmorales/jobhunter/internal/schemas"
	"github.com/jmorales/jobhunter/internal/types"
)

// Options configures the selector.
type Options struct {
	// MaxPerExperience caps statements kept per experience (also the degraded
	// fallback cap).
	MaxPerExperience int
	// MaxRetries is how many times a failed model call or unparseable reply is
	// retried with the stricter formatting instruction.
	MaxRetries int
	// MaxPromptChars bounds prompt size; oldest experiences are truncated first.
	MaxPromptChars int
}

// DefaultOptions returns the selector defaults.
func DefaultOptions() Options {
	return Options{
		MaxPerExperience: 4,
		MaxRetries:       2,
		MaxPromptChars:   16000,
	}
}

// Selector produces a SelectionResult for a profile/posting pair.
type Selector struct {
	client llm.Client
	opts   Options
}

// New creates a Selector. Zero-valued options fall back to defaults.
func New(client llm.Client, opts Options) *Selector {
	defaults := DefaultOptions()
	if opts.MaxPerExperience <= 0 {
		opts.MaxPerExperience = defaults.MaxPerExperience
	}
	if opts.MaxRetries < 0 {
		opts.MaxRetries = defaults.MaxRetries
	}
	if opts.MaxPromptChars <= 0 {
		opts.MaxPromptChars = defaults.MaxPromptChars
	}
	return &Selector{client: client, opts: opts}
}

// selectionReply mirrors the JSON shape the model is instructed to produce.
type selectionReply struct {
	Summary     string   `json:"summary"`
	Skills      []string `json:"skills"`
	Experiences []struct {
		ExperienceID string `json:"experience_id"`
		Statements   []struct {
			Text    string `json:"text"`
			Sources []int  `json:"sources"`
		} `json:"statements"`
	} `json:"experiences"`
}

// Select asks the model to choose and rewrite the most relevant content.
// It never fails on model trouble: after all retries are exhausted it returns
// the degraded selection with a warning attached. The only error it returns is
// context cancellation.
func (s *Selector) Select(ctx context.Context, profile *types.CandidateProfile, posting *types.JobPosting) (*types.SelectionResult, error) {
	prompt, omitted := buildPrompt(profile, posting, s.opts.MaxPerExperience, s.opts.MaxPromptChars)

	var warnings []string
	if omitted > 0 {
		warnings = append(warnings, fmt.Sprintf("prompt truncated: %d oldest experiences omitted", omitted))
	}

	strictSuffix := prompts.MustGet("selection.json", "select-content-strict")

	var lastErr error
	for attempt := 0; attempt <= s.opts.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		attemptPrompt := prompt
		if attempt > 0 {
			attemptPrompt = prompt + strictSuffix
		}

		raw, err := s.client.GenerateJSON(ctx, attemptPrompt)
		if err != nil {
			lastErr = &GenerationError{Message: "model call failed", Cause: err}
			continue
		}

		result, err := s.parseReply(raw, profile)
		if err != nil {
			lastErr = err
			continue
		}

		result.Warnings = append(warnings, result.Warnings...)
		return result, nil
	}

	// Degraded path: the caller still gets a usable selection built from the
	// profile's own content, flagged so the user knows it is less tailored.
	result := Fallback(profile, s.opts.MaxPerExperience)
	result.Warnings = append(warnings, fmt.Sprintf("model selection failed after %d attempts, using original content: %v",
		s.opts.MaxRetries+1, lastErr))
	return result, nil
}

// parseReply validates and decodes a model reply into a SelectionResult.
// Provenance is enforced here: unknown experience ids and out-of-range source
// indices make the whole reply unusable, since a reply that fabricates
// references cannot be trusted not to fabricate content.
func (s *Selector) parseReply(raw string, profile *types.CandidateProfile) (*types.SelectionResult, error) {
	cleaned := llm.CleanJSONBlock(raw)

	if err := schemas.Validate("selection_reply.json", cleaned); err != nil {
		return nil, &ParseError{Message: "reply failed schema validation", Cause: err}
	}

	var reply selectionReply
	if err := json.Unmarshal([]byte(cleaned), &reply); err != nil {
		return nil, &ParseError{Message: "reply is not valid JSON", Cause: err}
	}

	expByID := make(map[string]*types.WorkExperience)
	for i := range profile.Experiences {
		expByID[profile.Experiences[i].ID] = &profile.Experiences[i]
	}

	result := &types.SelectionResult{
		Summary: strings.TrimSpace(reply.Summary),
		Skills:  filterKnownSkills(reply.Skills, profile.Skills),
	}
	if result.Summary == "" {
		result.Summary = profile.Summary
	}

	seen := make(map[string]bool)
	for _, re := range reply.Experiences {
		exp, ok := expByID[re.ExperienceID]
		if !ok {
			return nil, &ParseError{Message: fmt.Sprintf("reply references unknown experience %q", re.ExperienceID)}
		}
		if seen[re.ExperienceID] {
			return nil, &ParseError{Message: fmt.Sprintf("reply lists experience %q twice", re.ExperienceID)}
		}
		seen[re.ExperienceID] = true

		sel := types.ExperienceSelection{ExperienceID: re.ExperienceID}
		for _, st := range re.Statements {
			if len(sel.Statements) >= s.opts.MaxPerExperience {
				break
			}
			text := strings.TrimSpace(st.Text)
			if text == "" {
				continue
			}
			for _, src := range st.Sources {
				if src < 0 || src >= len(exp.Accomplishments) {
					return nil, &ParseError{Message: fmt.Sprintf(
						"statement in experience %q cites out-of-range source %d", re.ExperienceID, src)}
				}
			}
			sel.Statements = append(sel.Statements, types.SelectedStatement{
				Text:    text,
				Sources: st.Sources,
			})
		}
		if len(sel.Statements) > 0 {
			result.Experiences = append(result.Experiences, sel)
		}
	}

	if len(result.Experiences) == 0 && len(profile.Experiences) > 0 {
		return nil, &ParseError{Message: "reply selected no statements"}
	}

	return result, nil
}

// Fallback builds the degraded selection: the original accomplishment
// statements unmodified, truncated to maxPerExperience, in profile order.
// It is deterministic and always succeeds.
func Fallback(profile *types.CandidateProfile, maxPerExperience int) *types.SelectionResult {
	result := &types.SelectionResult{
		Summary:  profile.Summary,
		Skills:   append([]string(nil), profile.Skills...),
		Degraded: true,
	}

	for _, exp := range profile.Experiences {
		sel := types.ExperienceSelection{ExperienceID: exp.ID}
		for i, acc := range exp.Accomplishments {
			if i >= maxPerExperience {
				break
			}
			sel.Statements = append(sel.Statements, types.SelectedStatement{
				Text:    acc,
				Sources: []int{i},
			})
		}
		if len(sel.Statements) > 0 {
			result.Experiences = append(result.Experiences, sel)
		}
	}

	return result
}

// filterKnownSkills keeps only skills the profile actually lists, preserving
// the model's relevance ordering. Case-insensitive match, profile spelling wins.
func filterKnownSkills(replySkills, profileSkills []string) []string {
	if len(replySkills) == 0 {
		return append([]string(nil), profileSkills...)
	}

	canonical := make(map[string]string, len(profileSkills))
	for _, skill := range profileSkills {
		canonical[strings.ToLower(strings.TrimSpace(skill))] = skill
	}

	var out []string
	used := make(map[string]bool)
	for _, skill := range replySkills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if orig, ok := canonical[key]; ok && !used[key] {
			out = append(out, orig)
			used[key] = true
		}
	}

	// Profile skills the model skipped go after the matched ones so the
	// skills line never shrinks below what the profile holds.
	for _, skill := range profileSkills {
		key := strings.ToLower(strings.TrimSpace(skill))
		if !used[key] {
			out = append(out, skill)
			used[key] = true
		}
	}

	return out
}
