package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	doc := "# Title\n\n## First\nline one\nline two\n\n## Second\ncontent here\n"
	secs := Split(doc)

	assert.Len(t, secs, 2)
	assert.Equal(t, "First", secs[0].Title)
	assert.Equal(t, "line one\nline two", secs[0].Content)
	assert.Equal(t, "Second", secs[1].Title)
	assert.Equal(t, "content here", secs[1].Content)
}

func TestSplit_NoHeadings(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Split("just a plain paragraph"))
}

func TestSections_ContainsOverview(t *testing.T) {
	t.Parallel()

	secs := Sections()
	assert.NotEmpty(t, secs)

	found := false
	for _, sec := range secs {
		if sec.Title == "Company Overview" {
			found = true
			assert.Contains(t, sec.Content, "SevakAI")
		}
	}
	assert.True(t, found, "knowledge document must contain the Company Overview section")
}

func TestRetrieve_BoundAndOverview(t *testing.T) {
	t.Parallel()

	queries := []string{
		"",
		"cook",
		"how much does a cook cost",
		"something entirely unrelated zzzz",
		"driver background verification in hyderabad",
	}

	for _, q := range queries {
		result := Retrieve(q, Sections())

		assert.LessOrEqual(t, len(result), 4, "query %q returned too many sections", q)
		assert.NotEmpty(t, result, "query %q must still include the overview", q)

		overview := 0
		for _, sec := range result {
			if sec.Title == "Company Overview" {
				overview++
			}
		}
		assert.Equal(t, 1, overview, "query %q must include the overview exactly once", q)
	}
}

func TestRetrieve_EmptyQueryIsOverviewOnly(t *testing.T) {
	t.Parallel()

	result := Retrieve("", Sections())
	assert.Len(t, result, 1)
	assert.Equal(t, "Company Overview", result[0].Title)
}

func TestRetrieve_TitleMatchOutranksContentMatch(t *testing.T) {
	t.Parallel()

	all := []Section{
		{Title: "Company Overview", Content: "about the company"},
		{Title: "Pricing", Content: "drivers cost money"},
		{Title: "Drivers", Content: "full-time and part-time"},
	}

	result := Retrieve("drivers", all)

	// Overview is prepended, then the title match, then the content match.
	assert.Equal(t, []string{"Company Overview", "Drivers", "Pricing"},
		[]string{result[0].Title, result[1].Title, result[2].Title})
}

func TestRetrieve_CookQuery(t *testing.T) {
	t.Parallel()

	result := Retrieve("cook", Sections())

	titles := make([]string, 0, len(result))
	for _, sec := range result {
		titles = append(titles, sec.Title)
	}
	assert.Contains(t, titles, "Cooks & Chefs")
}

func TestRetrieve_Deterministic(t *testing.T) {
	t.Parallel()

	first := Retrieve("maid pricing hyderabad", Sections())
	second := Retrieve("maid pricing hyderabad", Sections())
	assert.Equal(t, first, second)
}

func TestContextBlock(t *testing.T) {
	t.Parallel()

	block := ContextBlock([]Section{
		{Title: "A", Content: "one"},
		{Title: "B", Content: "two"},
	})
	assert.Equal(t, "## A\none\n\n## B\ntwo", block)
}
