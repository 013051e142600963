package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultPortfolio(t *testing.T) {
	p := Default()

	if p.Hero.Name == "" {
		t.Error("Expected hero name")
	}
	if len(p.Navigation) != 3 {
		t.Errorf("Expected 3 navigation items, got %d", len(p.Navigation))
	}
	if len(p.FeaturedProjects()) != 3 {
		t.Errorf("Expected 3 featured projects, got %d", len(p.FeaturedProjects()))
	}
	if len(p.OtherProjects()) != 1 {
		t.Errorf("Expected 1 other project, got %d", len(p.OtherProjects()))
	}
	if len(p.Experience) != 2 || len(p.Education) != 2 {
		t.Errorf("Unexpected resume sizes: %d jobs, %d schools", len(p.Experience), len(p.Education))
	}
}

func TestSkillsByCategoryKeepsFirstAppearanceOrder(t *testing.T) {
	about := About{Skills: []Skill{
		{Name: "Go", Category: Backend},
		{Name: "HTMX", Category: Frontend},
		{Name: "SQLite", Category: Backend},
		{Name: "Git", Category: Tools},
	}}

	groups := about.SkillsByCategory()
	if len(groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(groups))
	}

	wantOrder := []SkillCategory{Backend, Frontend, Tools}
	for i, g := range groups {
		if g.Category != wantOrder[i] {
			t.Errorf("Group %d = %s, want %s", i, g.Category, wantOrder[i])
		}
	}
	if groups[0].Label != "Backend" {
		t.Errorf("Label = %q, want Backend", groups[0].Label)
	}
	if len(groups[0].Skills) != 2 || groups[0].Skills[1].Name != "SQLite" {
		t.Errorf("Backend skills = %+v", groups[0].Skills)
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		start, end string
		current    bool
		want       string
	}{
		{"2023-08", "", true, "2023 — Present"},
		{"2019-09", "2023-05", false, "2019 — 2023"},
		{"2016-01", "", false, "2016 — "},
	}
	for _, tt := range tests {
		if got := DateRange(tt.start, tt.end, tt.current); got != tt.want {
			t.Errorf("DateRange(%q, %q, %v) = %q, want %q", tt.start, tt.end, tt.current, got, tt.want)
		}
	}
}

func TestParseRejectsInvalidContent(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"missing name", "hero: {title: x}", "name is required"},
		{"bad platform", "hero: {name: a}\nsocials: [{platform: myspace, url: x}]", "unknown platform"},
		{"duplicate project", "hero: {name: a}\nprojects: [{id: p, title: t}, {id: p, title: u}]", "duplicate id"},
		{"bad proficiency", "hero: {name: a}\nabout: {skills: [{name: Go, category: backend, proficiency: 120}]}", "out of range"},
		{"bad category", "hero: {name: a}\nabout: {skills: [{name: Go, category: cooking}]}", "unknown category"},
		{"missing end date", "hero: {name: a}\nexperience: [{id: j, startDate: '2020-01'}]", "end date"},
		{"blog without slug", "hero: {name: a}\nblog: [{id: b, title: t, publishedAt: '2026-01-15'}]", "slug are required"},
		{"duplicate blog slug", "hero: {name: a}\nblog: [{id: a, title: t, slug: s, publishedAt: '2026-01-15'}, {id: b, title: u, slug: s, publishedAt: '2026-01-16'}]", "duplicate slug"},
		{"bad blog date", "hero: {name: a}\nblog: [{id: b, title: t, slug: s, publishedAt: 'January'}]", "published date"},
		{"bad yaml", "hero: [", "decode portfolio"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	if err := os.WriteFile(path, []byte("hero:\n  name: Someone\n"), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Hero.Name != "Someone" {
		t.Errorf("Name = %q", p.Hero.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestParseBlog(t *testing.T) {
	p, err := Parse([]byte("hero: {name: a}\nblog: [{id: b, title: t, slug: s, publishedAt: '2026-01-15', readTime: 8}]"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := p.Blog[0].PublishedOn(); got != "Jan 15, 2026" {
		t.Errorf("PublishedOn = %q", got)
	}
}
