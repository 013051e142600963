// Package view turns portfolio content plus animation state into the
// view model the page shell renders.
package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/motion"
)

// Observed element IDs. Per-item IDs are prefixed with the item's ID.
const (
	AboutHeadline  = "about-headline"
	AboutContent   = "about-content"
	AboutSkills    = "about-skills"
	ProjectsHeader = "projects-header"
	ResumeHeader   = "resume-header"
	projectPrefix  = "project-"
	jobPrefix      = "experience-"
)

func ProjectBlock(id string) string { return projectPrefix + id }
func JobBlock(id string) string     { return jobPrefix + id }

var (
	heroParts    = motion.StaggerConfig{BaseDelay: 100 * time.Millisecond, StaggerDelay: 100 * time.Millisecond}
	cardStagger  = motion.StaggerConfig{StaggerDelay: 150 * time.Millisecond}
	jobStagger   = motion.StaggerConfig{StaggerDelay: 100 * time.Millisecond}
	otherTagsMax = 3
)

// HeroRevealDelay is how long after mount the hero plays its entrance.
const HeroRevealDelay = 100 * time.Millisecond

// State is everything the view reads from the animation subsystem.
type State struct {
	Observed func(id string) motion.AnimationState
	Navbar   motion.NavbarVisibility
	Progress float64
	Hero     HeroEntrance
}

// HeroEntrance is the hero's mount animation as the scheduler reports it.
type HeroEntrance struct {
	Loaded   bool
	Style    motion.EntranceStyle
	Progress float64
}

// Initial is the state of a page that has not scrolled or mounted yet.
func Initial() State {
	return State{
		Observed: func(string) motion.AnimationState { return motion.AnimationState{} },
		Navbar:   motion.NavbarVisibility{IsVisible: true, IsAtTop: true},
		Hero:     HeroEntrance{Style: motion.StyleFor(false, HeroRevealDelay)},
	}
}

type Page struct {
	Progress   float64              `json:"progress"`
	Navigation Navigation           `json:"navigation"`
	Socials    []content.SocialLink `json:"socials"`
	Hero       Hero                 `json:"hero"`
	Blog       []Post               `json:"blog,omitempty"`
	About      About                `json:"about"`
	Projects   Projects             `json:"projects"`
	Resume     Resume               `json:"resume"`
	Footer     Footer               `json:"footer"`
	Presets    motion.PresetTable   `json:"presets"`
}

type Navigation struct {
	Class string    `json:"class"`
	Items []NavLink `json:"items"`
}

type NavLink struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Href   string `json:"href"`
	Target string `json:"target,omitempty"`
	Rel    string `json:"rel,omitempty"`
}

type Hero struct {
	Class        string     `json:"class"`
	Name         string     `json:"name"`
	Initial      string     `json:"initial"`
	Description  string     `json:"description"`
	ProfileImage string     `json:"profileImage"`
	ProfileAlt   string     `json:"profileAlt"`
	CTAText      string     `json:"ctaText"`
	CTAHref      string     `json:"ctaHref"`
	Parts        []HeroPart `json:"parts"`

	Style    motion.EntranceStyle `json:"style"`
	Progress float64              `json:"progress"`
}

type HeroPart struct {
	Text           string `json:"text"`
	Class          string `json:"class"`
	AnimationDelay string `json:"animationDelay"`
}

type Post struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Published  string   `json:"published"`
	ReadTime   string   `json:"readTime"`
	Tags       []string `json:"tags"`
	Href       string   `json:"href"`
	CoverImage string   `json:"coverImage,omitempty"`
}

type About struct {
	Headline      string               `json:"headline"`
	HeadlineClass string               `json:"headlineClass"`
	Paragraphs    []string             `json:"paragraphs"`
	ContentClass  string               `json:"contentClass"`
	SkillGroups   []content.SkillGroup `json:"skillGroups"`
	SkillsClass   string               `json:"skillsClass"`
}

type Projects struct {
	HeaderClass string         `json:"headerClass"`
	Featured    []ProjectCard  `json:"featured"`
	Others      []OtherProject `json:"others,omitempty"`
}

type ProjectCard struct {
	content.Project
	Class           string `json:"class"`
	Initial         string `json:"initial"`
	TransitionDelay string `json:"transitionDelay"`
}

type OtherProject struct {
	Year  int      `json:"year"`
	Title string   `json:"title"`
	Tags  []string `json:"tags"`
}

type Resume struct {
	HeaderClass string               `json:"headerClass"`
	Jobs        []Job                `json:"jobs"`
	Education   []School             `json:"education,omitempty"`
	Skills      content.ResumeSkills `json:"skills"`
}

type Job struct {
	ID              string   `json:"id"`
	Role            string   `json:"role"`
	Company         string   `json:"company"`
	Description     string   `json:"description"`
	Achievements    []string `json:"achievements,omitempty"`
	DateRange       string   `json:"dateRange"`
	LogoPath        string   `json:"logoPath,omitempty"`
	Class           string   `json:"class"`
	TransitionDelay string   `json:"transitionDelay"`
}

type School struct {
	Degree       string   `json:"degree"`
	Institution  string   `json:"institution"`
	DateRange    string   `json:"dateRange"`
	LogoPath     string   `json:"logoPath,omitempty"`
	BulletPoints []string `json:"bulletPoints"`
}

type Footer struct {
	Copyright string `json:"copyright"`
	Note      string `json:"note"`
}

// ClassFor appends flag to base when on.
func ClassFor(base string, on bool, flag string) string {
	if on {
		return base + " " + flag
	}
	return base
}

func visible(base string, st motion.AnimationState) string {
	return ClassFor(base, st.IsVisible, "visible")
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func initial(s string) string {
	for _, r := range s {
		return strings.ToUpper(string(r))
	}
	return ""
}

// Build maps content and animation state to the page view model.
func Build(p *content.Portfolio, st State, year int) Page {
	observed := st.Observed
	if observed == nil {
		observed = Initial().Observed
	}

	navClass := "navigation scrolled"
	if st.Navbar.IsAtTop {
		navClass = "navigation at-top"
	}
	navClass = ClassFor(navClass, !st.Navbar.IsVisible, "hidden")

	page := Page{
		Progress:   st.Progress,
		Navigation: Navigation{Class: navClass},
		Socials:    p.Socials,
		Hero:       buildHero(p.Hero, st.Hero),
		About: About{
			Headline:      p.About.Headline,
			HeadlineClass: visible("about-headline", observed(AboutHeadline)),
			Paragraphs:    p.About.Paragraphs,
			ContentClass:  visible("about-content", observed(AboutContent)),
			SkillGroups:   p.About.SkillsByCategory(),
			SkillsClass:   visible("about-skills", observed(AboutSkills)),
		},
		Projects: Projects{HeaderClass: visible("projects-header", observed(ProjectsHeader))},
		Resume: Resume{
			HeaderClass: visible("resume-header", observed(ResumeHeader)),
			Skills:      p.ResumeSkills,
		},
		Footer: Footer{
			Copyright: fmt.Sprintf("© %d %s. Built with Go & Gin.", year, p.Hero.Name),
			Note:      "Designed & developed with precision.",
		},
		Presets: motion.Presets(),
	}

	for _, item := range p.Navigation {
		link := NavLink{ID: item.ID, Label: item.Label, Href: item.Href}
		if item.IsExternal {
			link.Target = "_blank"
			link.Rel = "noopener noreferrer"
		}
		page.Navigation.Items = append(page.Navigation.Items, link)
	}

	for _, b := range p.Blog {
		page.Blog = append(page.Blog, Post{
			ID:         b.ID,
			Title:      b.Title,
			Excerpt:    b.Excerpt,
			Published:  b.PublishedOn(),
			ReadTime:   fmt.Sprintf("%d min read", b.ReadTime),
			Tags:       b.Tags,
			Href:       "/blog/" + b.Slug,
			CoverImage: b.CoverImage,
		})
	}

	for i, pr := range p.FeaturedProjects() {
		page.Projects.Featured = append(page.Projects.Featured, ProjectCard{
			Project:         pr,
			Class:           visible("project-card", observed(ProjectBlock(pr.ID))),
			Initial:         initial(pr.Title),
			TransitionDelay: millis(motion.StaggerDelayFor(i, cardStagger)),
		})
	}
	for _, pr := range p.OtherProjects() {
		tags := pr.Tags
		if len(tags) > otherTagsMax {
			tags = tags[:otherTagsMax]
		}
		page.Projects.Others = append(page.Projects.Others, OtherProject{Year: pr.Year, Title: pr.Title, Tags: tags})
	}

	for i, e := range p.Experience {
		page.Resume.Jobs = append(page.Resume.Jobs, Job{
			ID:              e.ID,
			Role:            e.Role,
			Company:         e.Company,
			Description:     e.Description,
			Achievements:    e.Achievements,
			DateRange:       e.DateRange(),
			LogoPath:        e.LogoPath,
			Class:           visible("experience-item", observed(JobBlock(e.ID))),
			TransitionDelay: millis(motion.StaggerDelayFor(i, jobStagger)),
		})
	}
	for _, ed := range p.Education {
		page.Resume.Education = append(page.Resume.Education, School{
			Degree:       ed.Degree,
			Institution:  ed.Institution,
			DateRange:    ed.DateRange(),
			LogoPath:     ed.LogoPath,
			BulletPoints: ed.BulletPoints,
		})
	}

	return page
}

func buildHero(h content.Hero, e HeroEntrance) Hero {
	// A zero State still gets a usable style.
	if e.Style.Transition == "" {
		e.Style = motion.StyleFor(e.Loaded, HeroRevealDelay)
	}

	texts := []struct{ text, class string }{
		{"Hi, I'm ", "hero-greeting"},
		{h.Name, "hero-name"},
		{",", "hero-comma"},
		{h.Title, "hero-role"},
	}
	parts := make([]HeroPart, 0, len(texts))
	for i, t := range texts {
		parts = append(parts, HeroPart{
			Text:           t.text,
			Class:          t.class,
			AnimationDelay: seconds(motion.StaggerDelayFor(i, heroParts)),
		})
	}

	return Hero{
		Class:        ClassFor("hero", e.Loaded, "loaded"),
		Name:         h.Name,
		Initial:      initial(h.Name),
		Description:  h.Description,
		ProfileImage: h.ProfileImage,
		ProfileAlt:   h.Name + " profile",
		CTAText:      h.CTAText,
		CTAHref:      h.CTAHref,
		Parts:        parts,
		Style:        e.Style,
		Progress:     e.Progress,
	}
}
