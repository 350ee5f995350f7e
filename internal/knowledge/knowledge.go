// Package knowledge holds the static FAQ document backing the assistant and
// the relevance scoring that selects which sections reach the model prompt.
package knowledge

import (
	"sort"
	"strings"
	"sync"
)

// Section is a titled chunk of the knowledge document.
type Section struct {
	Title   string
	Content string
}

const overviewTitle = "Company Overview"

const (
	titleMatchWeight   = 5
	contentMatchWeight = 1
	maxRelevant        = 3
)

var (
	sectionsOnce sync.Once
	sections     []Section
)

// Sections returns the knowledge document split into titled sections. The
// split is computed once; the document never changes at runtime.
func Sections() []Section {
	sectionsOnce.Do(func() {
		sections = Split(document)
	})
	return sections
}

// Split cuts a markdown document at each top-level "## " heading. The heading
// line becomes the title, everything until the next heading the content.
func Split(doc string) []Section {
	parts := strings.Split(doc, "## ")
	if len(parts) <= 1 {
		return nil
	}

	out := make([]Section, 0, len(parts)-1)
	for _, part := range parts[1:] {
		lines := strings.SplitN(part, "\n", 2)
		title := strings.TrimSpace(lines[0])
		content := ""
		if len(lines) > 1 {
			content = strings.TrimSpace(lines[1])
		}
		out = append(out, Section{Title: title, Content: content})
	}
	return out
}

type scoredSection struct {
	Section
	score int
}

// Retrieve selects the sections most relevant to query. Each query word
// scores +5 when it appears as a substring of a section title and +1 when it
// appears in the content. Substring matching deliberately favors recall over
// precision. At most three scoring sections are kept, and the company
// overview section is always prepended so the model keeps baseline grounding
// even for narrow or empty queries. The result is deterministic: ties keep
// document order.
func Retrieve(query string, all []Section) []Section {
	queryWords := strings.Fields(strings.ToLower(query))

	scored := make([]scoredSection, 0, len(all))
	for _, sec := range all {
		title := strings.ToLower(sec.Title)
		content := strings.ToLower(sec.Content)

		score := 0
		for _, word := range queryWords {
			if strings.Contains(title, word) {
				score += titleMatchWeight
			}
			if strings.Contains(content, word) {
				score += contentMatchWeight
			}
		}
		scored = append(scored, scoredSection{Section: sec, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	relevant := make([]Section, 0, maxRelevant+1)
	for _, s := range scored {
		if s.score <= 0 || len(relevant) == maxRelevant {
			break
		}
		relevant = append(relevant, s.Section)
	}

	hasOverview := false
	for _, sec := range relevant {
		if strings.Contains(sec.Title, overviewTitle) {
			hasOverview = true
			break
		}
	}
	if !hasOverview {
		for _, sec := range all {
			if strings.Contains(sec.Title, overviewTitle) {
				relevant = append([]Section{sec}, relevant...)
				break
			}
		}
	}

	return relevant
}

// ContextBlock renders the selected sections back into markdown for prompt
// injection.
func ContextBlock(selected []Section) string {
	parts := make([]string, 0, len(selected))
	for _, sec := range selected {
		parts = append(parts, "## "+sec.Title+"\n"+sec.Content)
	}
	return strings.Join(parts, "\n\n")
}
