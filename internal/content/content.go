// Package content holds the portfolio's text: hero, about, projects and
// work history. The default copy ships inside the binary as YAML.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var defaultYAML []byte

type SocialPlatform string

const (
	GitHub   SocialPlatform = "github"
	Dribbble SocialPlatform = "dribbble"
	Behance  SocialPlatform = "behance"
	Threads  SocialPlatform = "threads"
	LinkedIn SocialPlatform = "linkedin"
	Twitter  SocialPlatform = "twitter"
)

type SkillCategory string

const (
	Frontend SkillCategory = "frontend"
	Backend  SkillCategory = "backend"
	Mobile   SkillCategory = "mobile"
	Tools    SkillCategory = "tools"
	Design   SkillCategory = "design"
)

var categoryLabels = map[SkillCategory]string{
	Frontend: "Frontend",
	Backend:  "Backend",
	Mobile:   "Mobile",
	Tools:    "Tools",
	Design:   "Design",
}

// Label is the heading shown above a skill group.
func (c SkillCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

type NavItem struct {
	ID         string `yaml:"id" json:"id"`
	Label      string `yaml:"label" json:"label"`
	Href       string `yaml:"href" json:"href"`
	IsExternal bool   `yaml:"external,omitempty" json:"isExternal,omitempty"`
}

type SocialLink struct {
	Platform  SocialPlatform `yaml:"platform" json:"platform"`
	URL       string         `yaml:"url" json:"url"`
	AriaLabel string         `yaml:"ariaLabel" json:"ariaLabel"`
}

type Project struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Thumbnail   string   `yaml:"thumbnail" json:"thumbnail"`
	Tags        []string `yaml:"tags" json:"tags"`
	LiveURL     string   `yaml:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	SourceURL   string   `yaml:"sourceUrl,omitempty" json:"sourceUrl,omitempty"`
	Featured    bool     `yaml:"featured" json:"featured"`
	Year        int      `yaml:"year" json:"year"`
}

type BlogPost struct {
	ID          string   `yaml:"id" json:"id"`
	Title       string   `yaml:"title" json:"title"`
	Excerpt     string   `yaml:"excerpt" json:"excerpt"`
	PublishedAt string   `yaml:"publishedAt" json:"publishedAt"`
	ReadTime    int      `yaml:"readTime" json:"readTime"`
	Tags        []string `yaml:"tags" json:"tags"`
	Slug        string   `yaml:"slug" json:"slug"`
	CoverImage  string   `yaml:"coverImage,omitempty" json:"coverImage,omitempty"`
}

type Hero struct {
	Name         string   `yaml:"name" json:"name"`
	Title        string   `yaml:"title" json:"title"`
	Roles        []string `yaml:"roles" json:"roles"`
	Description  string   `yaml:"description" json:"description"`
	ProfileImage string   `yaml:"profileImage" json:"profileImage"`
	CTAText      string   `yaml:"ctaText" json:"ctaText"`
	CTAHref      string   `yaml:"ctaHref" json:"ctaHref"`
}

type Skill struct {
	Name        string        `yaml:"name" json:"name"`
	Category    SkillCategory `yaml:"category" json:"category"`
	Proficiency int           `yaml:"proficiency" json:"proficiency"` // 0-100
}

type About struct {
	Headline   string   `yaml:"headline" json:"headline"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
	Skills     []Skill  `yaml:"skills" json:"skills"`
}

// Experience is one job on the resume timeline. Dates are "YYYY-MM".
type Experience struct {
	ID           string   `yaml:"id" json:"id"`
	Company      string   `yaml:"company" json:"company"`
	Role         string   `yaml:"role" json:"role"`
	StartDate    string   `yaml:"startDate" json:"startDate"`
	EndDate      string   `yaml:"endDate,omitempty" json:"endDate,omitempty"`
	Current      bool     `yaml:"current" json:"current"`
	Description  string   `yaml:"description" json:"description"`
	Achievements []string `yaml:"achievements" json:"achievements"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	LogoPath     string   `yaml:"logoPath,omitempty" json:"logoPath,omitempty"`
}

type Education struct {
	Degree       string   `yaml:"degree" json:"degree"`
	Institution  string   `yaml:"institution" json:"institution"`
	StartDate    string   `yaml:"startDate" json:"startDate"`
	EndDate      string   `yaml:"endDate,omitempty" json:"endDate,omitempty"`
	Current      bool     `yaml:"current" json:"current"`
	LogoPath     string   `yaml:"logoPath,omitempty" json:"logoPath,omitempty"`
	BulletPoints []string `yaml:"bulletPoints" json:"bulletPoints"`
}

// ResumeSkills is the three-column skill summary beside the timeline.
type ResumeSkills struct {
	Languages  []string `yaml:"languages" json:"languages"`
	Frameworks []string `yaml:"frameworks" json:"frameworks"`
	Tools      []string `yaml:"tools" json:"tools"`
}

type Portfolio struct {
	Hero         Hero         `yaml:"hero" json:"hero"`
	Navigation   []NavItem    `yaml:"navigation" json:"navigation"`
	Socials      []SocialLink `yaml:"socials" json:"socials"`
	Projects     []Project    `yaml:"projects" json:"projects"`
	Blog         []BlogPost   `yaml:"blog" json:"blog"`
	About        About        `yaml:"about" json:"about"`
	Experience   []Experience `yaml:"experience" json:"experience"`
	Education    []Education  `yaml:"education" json:"education"`
	ResumeSkills ResumeSkills `yaml:"resumeSkills" json:"resumeSkills"`
}

// Default returns the embedded portfolio. The embedded file is part of the
// build, so a parse failure is a programming error.
func Default() *Portfolio {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded portfolio: %v", err))
	}
	return p
}

// Load reads a portfolio from a YAML file on disk.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes and validates a YAML portfolio.
func Parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode portfolio: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the fields the page cannot render without.
func (p *Portfolio) Validate() error {
	if p.Hero.Name == "" {
		return fmt.Errorf("hero: name is required")
	}

	navIDs := make(map[string]bool)
	for i, n := range p.Navigation {
		if n.ID == "" || n.Href == "" {
			return fmt.Errorf("navigation[%d]: id and href are required", i)
		}
		if navIDs[n.ID] {
			return fmt.Errorf("navigation[%d]: duplicate id %q", i, n.ID)
		}
		navIDs[n.ID] = true
	}

	for i, s := range p.Socials {
		switch s.Platform {
		case GitHub, Dribbble, Behance, Threads, LinkedIn, Twitter:
		default:
			return fmt.Errorf("socials[%d]: unknown platform %q", i, s.Platform)
		}
		if s.URL == "" {
			return fmt.Errorf("socials[%d]: url is required", i)
		}
	}

	projectIDs := make(map[string]bool)
	for i, pr := range p.Projects {
		if pr.ID == "" || pr.Title == "" {
			return fmt.Errorf("projects[%d]: id and title are required", i)
		}
		if projectIDs[pr.ID] {
			return fmt.Errorf("projects[%d]: duplicate id %q", i, pr.ID)
		}
		projectIDs[pr.ID] = true
	}

	slugs := make(map[string]bool)
	for i, b := range p.Blog {
		if b.ID == "" || b.Title == "" || b.Slug == "" {
			return fmt.Errorf("blog[%d]: id, title and slug are required", i)
		}
		if slugs[b.Slug] {
			return fmt.Errorf("blog[%d]: duplicate slug %q", i, b.Slug)
		}
		slugs[b.Slug] = true
		if _, err := time.Parse(time.DateOnly, b.PublishedAt); err != nil {
			return fmt.Errorf("blog[%d]: published date: %w", i, err)
		}
		if b.ReadTime < 0 {
			return fmt.Errorf("blog[%d]: negative read time", i)
		}
	}

	for i, s := range p.About.Skills {
		if _, ok := categoryLabels[s.Category]; !ok {
			return fmt.Errorf("about.skills[%d]: unknown category %q", i, s.Category)
		}
		if s.Proficiency < 0 || s.Proficiency > 100 {
			return fmt.Errorf("about.skills[%d]: proficiency %d out of range", i, s.Proficiency)
		}
	}

	expIDs := make(map[string]bool)
	for i, e := range p.Experience {
		if e.ID == "" {
			return fmt.Errorf("experience[%d]: id is required", i)
		}
		if expIDs[e.ID] {
			return fmt.Errorf("experience[%d]: duplicate id %q", i, e.ID)
		}
		expIDs[e.ID] = true
		if _, err := parseMonth(e.StartDate); err != nil {
			return fmt.Errorf("experience[%d]: start date: %w", i, err)
		}
		if !e.Current {
			if _, err := parseMonth(e.EndDate); err != nil {
				return fmt.Errorf("experience[%d]: end date: %w", i, err)
			}
		}
	}
	return nil
}

// SkillGroup is every skill of one category.
type SkillGroup struct {
	Category SkillCategory `json:"category"`
	Label    string        `json:"label"`
	Skills   []Skill       `json:"skills"`
}

// SkillsByCategory groups skills, ordering groups by first appearance.
func (a About) SkillsByCategory() []SkillGroup {
	var groups []SkillGroup
	index := make(map[SkillCategory]int)
	for _, s := range a.Skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category, Label: s.Category.Label()})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

func (p *Portfolio) FeaturedProjects() []Project {
	return p.filterProjects(true)
}

func (p *Portfolio) OtherProjects() []Project {
	return p.filterProjects(false)
}

func (p *Portfolio) filterProjects(featured bool) []Project {
	var out []Project
	for _, pr := range p.Projects {
		if pr.Featured == featured {
			out = append(out, pr)
		}
	}
	return out
}

// DateRange renders "2019 — 2023" or "2023 — Present".
func DateRange(start, end string, current bool) string {
	from := year(start)
	if current {
		return from + " — Present"
	}
	return from + " — " + year(end)
}

func (e Experience) DateRange() string {
	return DateRange(e.StartDate, e.EndDate, e.Current)
}

func (e Education) DateRange() string {
	return DateRange(e.StartDate, e.EndDate, e.Current)
}

// PublishedOn formats the publish date as "Jan 2, 2006".
func (b BlogPost) PublishedOn() string {
	t, err := time.Parse(time.DateOnly, b.PublishedAt)
	if err != nil {
		return b.PublishedAt
	}
	return t.Format("Jan 2, 2006")
}

func parseMonth(s string) (time.Time, error) {
	return time.Parse("2006-01", s)
}

func year(s string) string {
	t, err := parseMonth(s)
	if err != nil {
		return ""
	}
	return strconv.Itoa(t.Year())
}
