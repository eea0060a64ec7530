package app

import (
	"context"
	"fmt"
	"time"

	"github.com/warraqdev/warraq/internal/config"
	"github.com/warraqdev/warraq/internal/domain"
	"github.com/warraqdev/warraq/internal/layout"
	"github.com/warraqdev/warraq/internal/output"
	"github.com/warraqdev/warraq/internal/pagedoc"
	"github.com/warraqdev/warraq/internal/source"
	"github.com/warraqdev/warraq/internal/utils"
)

// Book collects the raw inputs of one formatting run: identity fields given
// directly and the files each prose section is read from. The epigraph is
// inline text, not a path.
type Book struct {
	Title          string
	Author         string
	Tagline        string
	Epigraph       string
	IntroPath      string
	ConclusionPath string
	Chapters       source.ChapterSource
}

// Orchestrator coordinates the formatting pipeline
type Orchestrator struct {
	cfg    *config.Config
	logger *utils.Logger
	writer *output.Writer
}

// Options contains options for creating an orchestrator
type Options struct {
	Config  *config.Config
	Verbose bool
}

// New creates an orchestrator from a loaded configuration.
func New(opts Options) (*Orchestrator, error) {
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logLevel := cfg.Logging.Level
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := cfg.Logging.Format
	if logFormat == "" {
		logFormat = "pretty"
	}

	logger := utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  logFormat,
		Verbose: opts.Verbose,
	})

	return &Orchestrator{
		cfg:    cfg,
		logger: logger,
		writer: output.NewWriter(),
	}, nil
}

// Run formats one book end to end: gather the sections, lay them out, render
// the planned artifacts and store them. Every artifact is rendered before the
// first one is written, so a failed run leaves no partial output behind.
func (o *Orchestrator) Run(ctx context.Context, book Book) ([]output.Artifact, error) {
	start := time.Now()
	layoutCfg := o.cfg.LayoutOptions()
	plan := PlanArtifacts(o.cfg.Output)

	o.logger.Info().
		Str("title", book.Title).
		Str("output", plan.Primary()).
		Msg("Starting formatting run")

	man, err := o.gather(ctx, book)
	if err != nil {
		return nil, err
	}

	prepared, err := layout.PrepareManuscript(man, layoutCfg)
	if err != nil {
		return nil, err
	}

	bar := utils.NewProgressBar(-1, utils.DescFormatting)
	sections := layout.BuildSections(prepared, layoutCfg)
	var flat string
	if plan.WriteText {
		flat = layout.RenderFlat(sections, layoutCfg)
	}
	bar.Finish()

	var paged []byte
	if plan.WritePDF {
		paged, err = o.renderPaged(ctx, prepared, sections, layoutCfg)
		if err != nil {
			return nil, err
		}
	}

	if plan.WriteText {
		if err := o.writer.WriteText(ctx, plan.TextPath, flat); err != nil {
			return nil, err
		}
		o.logger.Info().Str("path", plan.TextPath).Int("bytes", len(flat)).Msg("Flat document written")
	}
	if plan.WritePDF {
		if err := o.writer.WritePDF(ctx, plan.PDFPath, paged); err != nil {
			return nil, err
		}
		o.logger.Info().Str("path", plan.PDFPath).Int("bytes", len(paged)).Msg("Paginated document written")
	}
	if plan.WriteReport {
		if err := o.writer.WriteReport(ctx, plan.ReportPath, output.BuildReport(prepared)); err != nil {
			return nil, err
		}
		o.logger.Info().Str("path", plan.ReportPath).Msg("Build report written")
	}

	o.logger.Info().
		Dur("duration", time.Since(start)).
		Int("artifacts", len(o.writer.Artifacts())).
		Msg("Formatting completed")

	return o.writer.Artifacts(), nil
}

// gather reads every section named by the book, in reading order: the
// introduction first, then the chapters, then the conclusion.
func (o *Orchestrator) gather(ctx context.Context, book Book) (*domain.Manuscript, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	files, err := source.Resolve(book.Chapters)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().Int("files", len(files)).Msg("Chapter files resolved")

	bar := utils.NewProgressBar(len(files)+2, utils.DescGathering)

	intro, err := source.ReadSection(book.IntroPath)
	if err != nil {
		return nil, err
	}
	bar.Add(1)

	chapters, err := source.Load(files, o.cfg.Layout.Chapters)
	if err != nil {
		return nil, err
	}
	bar.Add(len(chapters))

	conclusion, err := source.ReadSection(book.ConclusionPath)
	if err != nil {
		return nil, err
	}
	bar.Add(1)
	bar.Finish()

	return &domain.Manuscript{
		Title:        book.Title,
		Author:       book.Author,
		Tagline:      book.Tagline,
		Epigraph:     book.Epigraph,
		Introduction: intro,
		Chapters:     chapters,
		Conclusion:   conclusion,
	}, nil
}

func (o *Orchestrator) renderPaged(ctx context.Context, man *domain.Manuscript, sections []domain.Section, layoutCfg domain.LayoutConfig) ([]byte, error) {
	renderer, err := pagedoc.New(pagedoc.CapabilityPDF)
	if err != nil {
		return nil, err
	}

	bar := utils.NewProgressBar(-1, utils.DescRendering)
	defer bar.Finish()

	data, err := renderer.Render(ctx, &pagedoc.Document{
		Manuscript: man,
		Sections:   sections,
		Layout:     layoutCfg,
		Page:       o.cfg.PageOptions(),
	})
	if err != nil {
		if ctx.Err() != nil {
			o.logger.Warn().Msg("Rendering cancelled")
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("paginated rendering failed: %w", err)
	}
	return data, nil
}
