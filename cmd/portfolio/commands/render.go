package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	portfolio "github.com/goliatone/go-portfolio"
	"github.com/goliatone/go-portfolio/pkg/binder"
	"github.com/goliatone/go-portfolio/pkg/config"
	"github.com/goliatone/go-portfolio/pkg/orchestrator"
	pkgportfolio "github.com/goliatone/go-portfolio/pkg/portfolio"
)

type renderFlags struct {
	page      string
	data      string
	out       string
	templates string
	theme     string
	variant   string
	strict    bool
}

func renderCmd(opts *options) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Load the data files and write the bound page",
		Example: `  portfolio render --page site/index.html --data site --out dist/index.html
  portfolio render --page index.html --data https://ada.example.com/ --theme acme`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			return runRender(cmd, opts, cfg, flags.strict)
		},
	}

	cmd.Flags().StringVar(&flags.page, "page", "", "host page to bind (default index.html)")
	cmd.Flags().StringVar(&flags.data, "data", "", "directory holding data/, or base URL of the data origin")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&flags.templates, "templates", "", "directory of section templates overriding the built-in ones")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "theme name")
	cmd.Flags().StringVar(&flags.variant, "variant", "", "theme variant")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with an error when a section fails to render")
	return cmd
}

// apply layers explicitly set flags over the config file.
func (f *renderFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("page") {
		cfg.Page = f.page
	}
	if changed("data") {
		if strings.HasPrefix(f.data, "http://") || strings.HasPrefix(f.data, "https://") {
			cfg.BaseURL = f.data
		} else {
			cfg.BaseURL = ""
			cfg.SiteDir = f.data
		}
	}
	if changed("out") {
		cfg.Output = f.out
	}
	if changed("templates") {
		cfg.Templates = f.templates
	}
	if changed("theme") {
		cfg.Theme.Name = f.theme
	}
	if changed("variant") {
		cfg.Theme.Variant = f.variant
	}
}

func runRender(cmd *cobra.Command, opts *options, cfg config.Config, strict bool) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	page, err := os.ReadFile(cfg.Page)
	if err != nil {
		return fmt.Errorf("read page: %w", err)
	}

	orch, err := buildOrchestrator(opts, cfg)
	if err != nil {
		return err
	}

	result, err := orch.Run(cmd.Context(), orchestrator.Request{
		Page:         bytes.NewReader(page),
		ThemeName:    cfg.Theme.Name,
		ThemeVariant: cfg.Theme.Variant,
	})
	if err != nil {
		return err
	}

	logReport(opts, result)

	if cfg.Output == "" {
		if _, err := cmd.OutOrStdout().Write(result.HTML); err != nil {
			return err
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := os.WriteFile(cfg.Output, result.HTML, 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		opts.logger.Printf("page written to %s", cfg.Output)
	}

	if failed := result.Report.Failed(); strict && len(failed) > 0 {
		return fmt.Errorf("sections failed: %v", failed)
	}
	return nil
}

func buildOrchestrator(opts *options, cfg config.Config) (*orchestrator.Orchestrator, error) {
	sources, err := cfg.Sources()
	if err != nil {
		return nil, err
	}

	binderOptions := []binder.Option{binder.WithMarkers(cfg.Markers)}
	if cfg.Templates != "" {
		if !fileExists(cfg.Templates) {
			return nil, fmt.Errorf("templates directory %s not found", cfg.Templates)
		}
		binderOptions = append(binderOptions, binder.WithTemplateFS(os.DirFS(cfg.Templates)))
	}

	options := []orchestrator.Option{
		orchestrator.WithLogger(opts.logger),
		orchestrator.WithLoader(portfolio.NewLoader(cfg.LoaderOptions()...)),
		orchestrator.WithSources(sources),
		orchestrator.WithBinderOptions(binderOptions...),
	}

	if manifest := cfg.Theme.Manifest(); manifest != nil {
		selector, err := binder.NewManifestSelector(cfg.Theme.Name, cfg.Theme.Variant, manifest)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithThemeSelector(selector))
	} else if cfg.Theme.Name != "" {
		opts.logger.Printf("theme %q has no templates in the config, using built-in templates", cfg.Theme.Name)
	}

	return orchestrator.New(options...), nil
}

func logReport(opts *options, result orchestrator.Result) {
	present := result.Dataset.Names()
	opts.logger.Printf("loaded %d of %d resources %v", len(present), len(pkgportfolio.ResourceNames()), present)
	for _, section := range result.Report.Sections {
		switch section.Outcome {
		case binder.Bound:
			opts.logger.Printf("%-14s bound %d/%d records into %d container(s)", section.Kind, section.Rendered, section.Records, section.Containers)
		case binder.Failed:
			opts.logger.Printf("%-14s failed: %v", section.Kind, section.Err)
		default:
			opts.logger.Printf("%-14s skipped (%s)", section.Kind, section.Outcome)
		}
	}
}
