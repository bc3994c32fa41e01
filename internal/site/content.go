// Package site holds the agency's page content and the small pieces of view
// state the pages toggle through query parameters.
package site

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Link is a navigation entry
type Link struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// Service is an offering shown on the services page
type Service struct {
	Title       string   `yaml:"title"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
}

// ProcessStep is one stage of how a project runs
type ProcessStep struct {
	Number      string `yaml:"number"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// FAQ is a question with its answer
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Project is a portfolio case study
type Project struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	Industry    string   `yaml:"industry"`
	Description string   `yaml:"description"`
	Challenge   string   `yaml:"challenge"`
	Solution    string   `yaml:"solution"`
	Results     []string `yaml:"results"`
	Image       string   `yaml:"image"`
}

// Testimonial is a client quote on the home page
type Testimonial struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
}

// Feature is a titled blurb (reasons to choose us, company values)
type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Stat is a headline number on the about page
type Stat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

// TeamMember is a person on the about page
type TeamMember struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// ContactInfo is one way to reach the agency
type ContactInfo struct {
	Title       string `yaml:"title"`
	Content     string `yaml:"content"`
	Description string `yaml:"description"`
}

// About is the about page copy
type About struct {
	Story  []string     `yaml:"story"`
	Stats  []Stat       `yaml:"stats"`
	Values []Feature    `yaml:"values"`
	Team   []TeamMember `yaml:"team"`
	WhyUs  []string     `yaml:"why_us"`
}

// Content is everything the pages render
type Content struct {
	Name         string        `yaml:"name"`
	Tagline      string        `yaml:"tagline"`
	Nav          []Link        `yaml:"nav"`
	Services     []Service     `yaml:"services"`
	WhyChooseUs  []Feature     `yaml:"why_choose_us"`
	Testimonials []Testimonial `yaml:"testimonials"`
	Clients      []string      `yaml:"clients"`
	Process      []ProcessStep `yaml:"process"`
	FAQs         []FAQ         `yaml:"faqs"`
	Categories   []string      `yaml:"categories"`
	Projects     []Project     `yaml:"projects"`
	About        About         `yaml:"about"`
	Contact      []ContactInfo `yaml:"contact"`
}

// Parse decodes YAML content and checks it is usable
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the content bundled with the binary
func Default() *Content {
	c, err := Parse(defaultContent)
	if err != nil {
		// content.yaml is embedded at build time and covered by tests
		panic(err)
	}
	return c
}

func (c *Content) validate() error {
	if c.Name == "" {
		return fmt.Errorf("site content: name is required")
	}
	if len(c.Categories) == 0 || c.Categories[0] != CategoryAll {
		return fmt.Errorf("site content: categories must start with %q", CategoryAll)
	}

	known := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		known[cat] = true
	}
	seen := make(map[int]bool, len(c.Projects))
	for _, p := range c.Projects {
		if seen[p.ID] {
			return fmt.Errorf("site content: duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
		if !known[p.Category] {
			return fmt.Errorf("site content: project %d has unknown category %q", p.ID, p.Category)
		}
	}
	return nil
}

// Project returns the project with the given id
func (c *Content) Project(id int) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
