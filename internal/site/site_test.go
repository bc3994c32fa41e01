package site

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContent(t *testing.T) {
	c := Default()

	assert.Equal(t, "WebCraft", c.Name)
	assert.Len(t, c.Nav, 5)
	assert.Len(t, c.Services, 4)
	assert.Len(t, c.Process, 5)
	assert.Len(t, c.FAQs, 5)
	assert.Len(t, c.Projects, 6)
	assert.Equal(t, []string{"All", "Web Application", "E-commerce", "Corporate Website", "E-learning"}, c.Categories)
	assert.Equal(t, "+1 (555) 123-4567", c.Contact[1].Content)
	assert.Equal(t, "01", c.Process[0].Number)
}

func TestParseRejectsBadContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", "categories: [All]"},
		{"categories without All", "name: X\ncategories: [Web]"},
		{"unknown project category", "name: X\ncategories: [All]\nprojects: [{id: 1, category: Web}]"},
		{"duplicate project", "name: X\ncategories: [All, Web]\nprojects: [{id: 1, category: Web}, {id: 1, category: Web}]"},
		{"invalid yaml", "name: [unclosed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestNavState(t *testing.T) {
	var n NavState
	assert.False(t, n.MenuOpen)
	assert.Equal(t, "/about?menu=open", n.ToggleHref("/about"))

	n.Toggle()
	assert.True(t, n.MenuOpen)
	assert.Equal(t, "/about", n.ToggleHref("/about"))

	n.FollowLink()
	assert.False(t, n.MenuOpen)

	n.Toggle()
	n.Escape()
	assert.False(t, n.MenuOpen)
}

func TestAccordionKeepsOneOpen(t *testing.T) {
	a := NewAccordion()
	assert.False(t, a.IsOpen(0))

	a.Toggle(1)
	assert.True(t, a.IsOpen(1))

	a.Toggle(3)
	assert.True(t, a.IsOpen(3))
	assert.False(t, a.IsOpen(1))

	a.Toggle(3)
	assert.False(t, a.IsOpen(3))
	assert.Equal(t, -1, a.Open)
}

func TestParseAccordion(t *testing.T) {
	assert.True(t, ParseAccordion("2", 5).IsOpen(2))
	assert.Equal(t, -1, ParseAccordion("5", 5).Open)
	assert.Equal(t, -1, ParseAccordion("-1", 5).Open)
	assert.Equal(t, -1, ParseAccordion("abc", 5).Open)
	assert.Equal(t, -1, ParseAccordion("", 5).Open)
}

func projectIDs(ps []Project) []int {
	ids := make([]int, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func TestPortfolioFilter(t *testing.T) {
	v := NewPortfolioView(Default())
	assert.Equal(t, CategoryAll, v.Category())
	assert.Len(t, v.Projects(), 6)

	v.Filter("Web Application")
	if diff := cmp.Diff([]int{1, 4, 5}, projectIDs(v.Projects())); diff != "" {
		t.Errorf("Web Application projects mismatch (-want +got):\n%s", diff)
	}

	v.Filter("E-learning")
	assert.Equal(t, []int{6}, projectIDs(v.Projects()))

	v.Filter("Mobile Apps")
	assert.Equal(t, CategoryAll, v.Category())
	assert.Len(t, v.Projects(), 6)
}

func TestPortfolioModal(t *testing.T) {
	v := NewPortfolioView(Default())

	_, open := v.Selected()
	assert.False(t, open)

	require.True(t, v.Select(2))
	p, open := v.Selected()
	require.True(t, open)
	assert.Equal(t, "GreenLeaf E-commerce", p.Title)
	assert.Len(t, p.Results, 3)

	assert.False(t, v.Select(42))
	p, _ = v.Selected()
	assert.Equal(t, 2, p.ID)

	v.Close()
	_, open = v.Selected()
	assert.False(t, open)
}

func TestYear(t *testing.T) {
	assert.GreaterOrEqual(t, Year(), 2024)
}
