package view

import (
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/motion"
)

// Block is one scroll-animated element of the page.
type Block struct {
	ID       string
	Override motion.Override
	Height   float64 // estimated rendered height in pixels
}

// Estimated heights of the single-column layout.
const (
	sectionPadding  = 96
	headerHeight    = 140
	headlineHeight  = 120
	paragraphHeight = 110
	skillsBase      = 80
	skillGroupRow   = 48
	cardHeight      = 420
	otherRow        = 64
	jobHeight       = 180
	schoolHeight    = 160
	footerHeight    = 160
)

// Blocks lists the observed elements in page order with their trigger
// settings.
func Blocks(p *content.Portfolio) []Block {
	blocks := []Block{
		{ID: AboutHeadline, Override: motion.Override{Threshold: motion.Threshold(0.2)}, Height: headlineHeight},
		{
			ID:       AboutContent,
			Override: motion.Override{Threshold: motion.Threshold(0.1), Delay: motion.Delay(200 * time.Millisecond)},
			Height:   float64(len(p.About.Paragraphs)) * paragraphHeight,
		},
		{
			ID:       AboutSkills,
			Override: motion.Override{Threshold: motion.Threshold(0.1), Delay: motion.Delay(400 * time.Millisecond)},
			Height:   skillsBase + float64(len(p.About.SkillsByCategory()))*skillGroupRow,
		},
		{ID: ProjectsHeader, Override: motion.Override{Threshold: motion.Threshold(0.2)}, Height: headerHeight},
	}
	for i, pr := range p.FeaturedProjects() {
		blocks = append(blocks, Block{
			ID: ProjectBlock(pr.ID),
			Override: motion.Override{
				Threshold: motion.Threshold(0.1),
				Delay:     motion.Delay(motion.StaggerDelayFor(i, cardStagger)),
			},
			Height: cardHeight,
		})
	}
	blocks = append(blocks, Block{ID: ResumeHeader, Override: motion.Override{Threshold: motion.Threshold(0.2)}, Height: headerHeight})
	for i, e := range p.Experience {
		blocks = append(blocks, Block{
			ID: JobBlock(e.ID),
			Override: motion.Override{
				Threshold: motion.Threshold(0.1),
				Delay:     motion.Delay(motion.StaggerDelayFor(i, jobStagger)),
			},
			Height: jobHeight,
		})
	}
	return blocks
}

// Layout places every block on the page for a given viewport height.
type Layout struct {
	Elements       map[string]*motion.Element
	DocumentHeight float64
}

// EstimateLayout stacks the hero, the blocks and the unobserved filler
// (other projects, education, footer) top to bottom.
func EstimateLayout(p *content.Portfolio, viewportHeight float64) Layout {
	l := Layout{Elements: make(map[string]*motion.Element)}
	y := viewportHeight // the hero fills the first screen

	for _, b := range Blocks(p) {
		switch b.ID {
		case AboutHeadline, ProjectsHeader, ResumeHeader:
			y += sectionPadding
		}
		l.Elements[b.ID] = &motion.Element{ID: b.ID, Top: y, Height: b.Height}
		y += b.Height

		switch b.ID {
		case AboutSkills:
			y += sectionPadding
		case ProjectBlock(lastFeaturedID(p)):
			if others := len(p.OtherProjects()); others > 0 {
				y += headerHeight/2 + float64(others)*otherRow
			}
			y += sectionPadding
		}
	}

	y += float64(len(p.Education))*schoolHeight + sectionPadding + footerHeight
	l.DocumentHeight = y
	return l
}

func lastFeaturedID(p *content.Portfolio) string {
	featured := p.FeaturedProjects()
	if len(featured) == 0 {
		return ""
	}
	return featured[len(featured)-1].ID
}
