package site

import (
	"strconv"
	"time"
)

// CategoryAll selects every portfolio project
const CategoryAll = "All"

// NavState is the mobile menu. It starts closed.
type NavState struct {
	MenuOpen bool
}

// Toggle flips the menu
func (n *NavState) Toggle() {
	n.MenuOpen = !n.MenuOpen
}

// FollowLink closes the menu, as choosing a link navigates away
func (n *NavState) FollowLink() {
	n.MenuOpen = false
}

// Escape closes the menu
func (n *NavState) Escape() {
	n.MenuOpen = false
}

// ToggleHref links back to path with the menu flipped
func (n NavState) ToggleHref(path string) string {
	if n.MenuOpen {
		return path
	}
	return path + "?menu=open"
}

// Accordion keeps at most one item open. Open is -1 when all are closed.
type Accordion struct {
	Open int
}

// NewAccordion returns an accordion with every item closed
func NewAccordion() Accordion {
	return Accordion{Open: -1}
}

// Toggle opens item i, closing any other, or closes it if it was open
func (a *Accordion) Toggle(i int) {
	if a.Open == i {
		a.Open = -1
		return
	}
	a.Open = i
}

// IsOpen reports whether item i is expanded
func (a Accordion) IsOpen(i int) bool {
	return a.Open >= 0 && a.Open == i
}

// ParseAccordion reads the open item from a query value, ignoring anything
// that is not an index below count
func ParseAccordion(value string, count int) Accordion {
	a := NewAccordion()
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 || i >= count {
		return a
	}
	a.Toggle(i)
	return a
}

// PortfolioView is the portfolio grid's filter and open project modal
type PortfolioView struct {
	content  *Content
	category string
	selected *Project
}

// NewPortfolioView shows every project with no modal open
func NewPortfolioView(content *Content) *PortfolioView {
	return &PortfolioView{content: content, category: CategoryAll}
}

// Filter selects a category. Unknown categories fall back to All.
func (v *PortfolioView) Filter(category string) {
	v.category = CategoryAll
	for _, c := range v.content.Categories {
		if c == category {
			v.category = category
			return
		}
	}
}

// Category is the active filter
func (v *PortfolioView) Category() string {
	return v.category
}

// Projects returns the projects matching the active filter in content order
func (v *PortfolioView) Projects() []Project {
	if v.category == CategoryAll {
		return v.content.Projects
	}
	var out []Project
	for _, p := range v.content.Projects {
		if p.Category == v.category {
			out = append(out, p)
		}
	}
	return out
}

// Select opens the modal for a project. It reports false for unknown ids.
func (v *PortfolioView) Select(id int) bool {
	p, ok := v.content.Project(id)
	if !ok {
		return false
	}
	v.selected = &p
	return true
}

// Selected returns the project shown in the modal
func (v *PortfolioView) Selected() (Project, bool) {
	if v.selected == nil {
		return Project{}, false
	}
	return *v.selected, true
}

// Close dismisses the modal
func (v *PortfolioView) Close() {
	v.selected = nil
}

// Year is the current year for the footer copyright
func Year() int {
	return time.Now().Year()
}
