package commands

import (
	"github.com/himanshoe/chartytools/internal/catalog"
	"github.com/himanshoe/chartytools/internal/docstub"
)

// DocsCmd implements the 'docs' command.
type DocsCmd struct {
	Dir         string `short:"d" help:"Directory pages are written below (overrides docs.base_dir)" type:"path"`
	Frontmatter bool   `help:"Prepend YAML front matter with uid and fingerprint to new pages"`
	DryRun      bool   `help:"Show which pages would be created without writing anything"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text format to this file" type:"path"`
}

func (d *DocsCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}

	baseDir := cfg.Docs.BaseDir
	if d.Dir != "" {
		baseDir = d.Dir
	}

	recorder, prom := newRecorder(d.MetricsFile)
	out := g.out()
	gen := docstub.NewGenerator(baseDir,
		docstub.WithOutput(out),
		docstub.WithFrontmatter(d.Frontmatter || cfg.Docs.Frontmatter),
		docstub.WithDryRun(d.DryRun),
		docstub.WithColor(isColorSupported(out)),
		docstub.WithRecorder(recorder),
	)

	if _, err := gen.Generate(catalog.All()); err != nil {
		return err
	}
	return writeMetrics(prom, d.MetricsFile)
}
