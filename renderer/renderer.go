// Package renderer renders performance and holdings reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/classfolio"
)

//go:embed templates/*.md
var templateFS embed.FS

// reports holds every report template, named after its file.
var reports = template.Must(template.ParseFS(templateFS, "templates/*.md"))

// PerformanceMarkdown renders the returns and daily values of every portfolio.
func PerformanceMarkdown(p *classfolio.Performance, cfg *classfolio.Config, lastUpdated string) string {
	return render("performance.md", NewPerformance(p, cfg, lastUpdated))
}

// HoldingsMarkdown renders the allocation of every section.
func HoldingsMarkdown(cfg *classfolio.Config) string {
	return render("holdings.md", NewHoldings(cfg))
}

// render executes a report template; failures are rendered in place of the report.
func render(name string, data any) string {
	var b strings.Builder
	if err := reports.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error rendering %q: %v", name, err)
	}
	return b.String()
}
