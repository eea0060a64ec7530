package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/warraqdev/warraq/internal/app"
	"github.com/warraqdev/warraq/internal/config"
	"github.com/warraqdev/warraq/internal/manifest"
	"github.com/warraqdev/warraq/internal/pagedoc"
	"github.com/warraqdev/warraq/internal/shaping"
	"github.com/warraqdev/warraq/internal/source"
	"github.com/warraqdev/warraq/internal/utils"
	"github.com/warraqdev/warraq/pkg/version"

	// Capabilities linked into this build.
	_ "github.com/warraqdev/warraq/internal/pagedoc/fpdf"
	_ "github.com/warraqdev/warraq/internal/shaping/arabic"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger

	// Dependencies for testing
	osStat = os.Stat
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "warraq [manifest]",
	Short: "Format a fixed-structure novel into decorated text or PDF",
	Long: `Warraq assembles a novel from its sections (an introduction, a fixed
number of chapters, a conclusion) and formats it into a single decorated
text document or a paginated PDF, laid out right to left with Arabic
conventions by default.

Sections come from flags or from a book manifest (YAML or JSON); a lone
positional argument is shorthand for --manifest.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.warraq/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	// Book flags
	rootCmd.PersistentFlags().String("title", "", "Book title")
	rootCmd.PersistentFlags().String("author", "", "Author name")
	rootCmd.PersistentFlags().String("tagline", "", "Tagline under the title")
	rootCmd.PersistentFlags().String("epigraph", "", "Epigraph quote for the title page")
	rootCmd.PersistentFlags().String("intro", "", "Introduction file")
	rootCmd.PersistentFlags().String("conclusion", "", "Conclusion file")
	rootCmd.PersistentFlags().String("chapters-dir", "", "Directory holding the chapter files")
	rootCmd.PersistentFlags().StringArray("chapter", nil, "Chapter file, in order (repeatable)")
	rootCmd.PersistentFlags().StringP("manifest", "m", "", "Book manifest file (YAML or JSON)")

	// Layout flags
	rootCmd.PersistentFlags().Int("line-width", config.DefaultWidth, "Wrap width in display columns")
	rootCmd.PersistentFlags().Int("indent", 0, "Leading spaces on every wrapped line")
	rootCmd.PersistentFlags().Int("line-spacing", config.DefaultSpacing, "Blank lines between paragraphs")
	rootCmd.PersistentFlags().Bool("ltr", false, "Lay text out left to right")
	rootCmd.PersistentFlags().String("ornament", config.DefaultOrnament, "Ornament framing the headers")
	rootCmd.PersistentFlags().Bool("stats", false, "Append the word-count block")
	rootCmd.PersistentFlags().Int("chapters", config.DefaultChapters, "Exact number of chapters the book must have")

	// Page flags
	rootCmd.PersistentFlags().String("page-size", string(config.DefaultPageSize), "Page size: a4, a5 or letter")
	rootCmd.PersistentFlags().String("font", "", "Font family to look for")
	rootCmd.PersistentFlags().String("font-file", "", "Font file to embed")
	rootCmd.PersistentFlags().Float64("pdf-line-spacing", config.DefaultLineSpacing, "Line height factor on pages")
	rootCmd.PersistentFlags().Float64("header-space-before", config.DefaultHeaderSpaceBefore, "Space above headers in mm")
	rootCmd.PersistentFlags().Float64("header-space-after", config.DefaultHeaderSpaceAfter, "Space below headers in mm")
	rootCmd.PersistentFlags().Bool("chapter-breaks", true, "Start every chapter on a fresh page")

	// Output flags
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutputPath, "Output path")
	rootCmd.PersistentFlags().Bool("pdf", false, "Render a paginated PDF")
	rootCmd.PersistentFlags().Bool("keep-text", false, "Keep the flat document next to the PDF")
	rootCmd.PersistentFlags().Bool("report", false, "Write a JSON build report next to the output")

	rootCmd.MarkFlagsMutuallyExclusive("chapters-dir", "chapter")

	// Bind flags to viper. --ltr stays unbound: it inverts layout.rtl and
	// is applied in run.
	_ = viper.BindPFlag("layout.width", rootCmd.PersistentFlags().Lookup("line-width"))
	_ = viper.BindPFlag("layout.indent", rootCmd.PersistentFlags().Lookup("indent"))
	_ = viper.BindPFlag("layout.spacing", rootCmd.PersistentFlags().Lookup("line-spacing"))
	_ = viper.BindPFlag("layout.ornament", rootCmd.PersistentFlags().Lookup("ornament"))
	_ = viper.BindPFlag("layout.stats", rootCmd.PersistentFlags().Lookup("stats"))
	_ = viper.BindPFlag("layout.chapters", rootCmd.PersistentFlags().Lookup("chapters"))
	_ = viper.BindPFlag("page.size", rootCmd.PersistentFlags().Lookup("page-size"))
	_ = viper.BindPFlag("page.font", rootCmd.PersistentFlags().Lookup("font"))
	_ = viper.BindPFlag("page.font_file", rootCmd.PersistentFlags().Lookup("font-file"))
	_ = viper.BindPFlag("page.line_spacing", rootCmd.PersistentFlags().Lookup("pdf-line-spacing"))
	_ = viper.BindPFlag("page.header_space_before", rootCmd.PersistentFlags().Lookup("header-space-before"))
	_ = viper.BindPFlag("page.header_space_after", rootCmd.PersistentFlags().Lookup("header-space-after"))
	_ = viper.BindPFlag("page.chapter_breaks", rootCmd.PersistentFlags().Lookup("chapter-breaks"))
	_ = viper.BindPFlag("output.path", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("output.pdf", rootCmd.PersistentFlags().Lookup("pdf"))
	_ = viper.BindPFlag("output.keep_text", rootCmd.PersistentFlags().Lookup("keep-text"))
	_ = viper.BindPFlag("output.report", rootCmd.PersistentFlags().Lookup("report"))

	// Add subcommands
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	// Initialize logger
	logLevel := "info"
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  "pretty",
		Verbose: verbose,
	})

	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// A positional argument is shorthand for --manifest
	manifestPath, _ := cmd.Flags().GetString("manifest")
	if len(args) == 1 {
		if manifestPath != "" {
			return fmt.Errorf("manifest given twice: %q and --manifest %q", args[0], manifestPath)
		}
		manifestPath = args[0]
	}

	// Check if there is anything to format
	if manifestPath == "" && !cmd.Flags().Changed("title") {
		return cmd.Help()
	}

	var man *manifest.Config
	if manifestPath != "" {
		man, err = manifest.NewLoader().Load(manifestPath)
		if err != nil {
			return fmt.Errorf("failed to load manifest: %w", err)
		}
		applyManifestOptions(cmd, cfg, man.Options)
	}

	if cmd.Flags().Changed("ltr") {
		ltr, _ := cmd.Flags().GetBool("ltr")
		cfg.Layout.RightToLeft = !ltr
	}

	book := buildBook(cmd, man)
	if err := validateBook(book); err != nil {
		return err
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	orchestrator, err := app.New(app.Options{Config: cfg, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	artifacts, err := orchestrator.Run(ctx, book)
	if err != nil {
		return err
	}

	for _, artifact := range artifacts {
		fmt.Printf("%s %s\n", color.GreenString("saved"), artifact.Path)
	}
	return nil
}

// applyManifestOptions folds the manifest's layout overrides into the
// loaded configuration. A flag set on the command line wins over the
// manifest; the manifest wins over the config file.
func applyManifestOptions(cmd *cobra.Command, cfg *config.Config, opts manifest.Options) {
	flags := cmd.Flags()
	if opts.Width > 0 && !flags.Changed("line-width") {
		cfg.Layout.Width = opts.Width
	}
	if opts.ChapterCount > 0 && !flags.Changed("chapters") {
		cfg.Layout.Chapters = opts.ChapterCount
	}
	if opts.Indent > 0 && !flags.Changed("indent") {
		cfg.Layout.Indent = opts.Indent
	}
	if opts.Spacing > 0 && !flags.Changed("line-spacing") {
		cfg.Layout.Spacing = opts.Spacing
	}
	if opts.Ornament != "" && !flags.Changed("ornament") {
		cfg.Layout.Ornament = opts.Ornament
	}
	if opts.Stats && !flags.Changed("stats") {
		cfg.Layout.Stats = true
	}
	if opts.Output != "" && !flags.Changed("output") {
		cfg.Output.Path = opts.Output
	}
}

// buildBook assembles the run's inputs, starting from the manifest when one
// was given and letting explicit flags override its fields. Setting either
// chapter flag replaces the manifest's chapter source entirely.
func buildBook(cmd *cobra.Command, man *manifest.Config) app.Book {
	var book app.Book
	if man != nil {
		book = app.Book{
			Title:          man.Title,
			Author:         man.Author,
			Tagline:        man.Tagline,
			Epigraph:       man.Epigraph,
			IntroPath:      man.Intro,
			ConclusionPath: man.Conclusion,
			Chapters:       man.ChapterSource(),
		}
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		book.Title, _ = flags.GetString("title")
	}
	if flags.Changed("author") {
		book.Author, _ = flags.GetString("author")
	}
	if flags.Changed("tagline") {
		book.Tagline, _ = flags.GetString("tagline")
	}
	if flags.Changed("epigraph") {
		book.Epigraph, _ = flags.GetString("epigraph")
	}
	if flags.Changed("intro") {
		book.IntroPath, _ = flags.GetString("intro")
	}
	if flags.Changed("conclusion") {
		book.ConclusionPath, _ = flags.GetString("conclusion")
	}
	if flags.Changed("chapters-dir") || flags.Changed("chapter") {
		dir, _ := flags.GetString("chapters-dir")
		files, _ := flags.GetStringArray("chapter")
		book.Chapters = source.ChapterSource{Dir: dir, Files: files}
	}
	return book
}

// validateBook rejects runs that are missing a required input before any
// file is touched.
func validateBook(book app.Book) error {
	switch {
	case book.Title == "":
		return fmt.Errorf("a title is required (--title or a manifest)")
	case book.Author == "":
		return fmt.Errorf("an author is required (--author or a manifest)")
	case book.IntroPath == "":
		return fmt.Errorf("an introduction file is required (--intro or a manifest)")
	case book.ConclusionPath == "":
		return fmt.Errorf("a conclusion file is required (--conclusion or a manifest)")
	case book.Chapters.Dir == "" && len(book.Chapters.Files) == 0:
		return fmt.Errorf("chapters are required (--chapters-dir, --chapter or a manifest)")
	}
	return nil
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check rendering dependencies",
	Long:  "Verifies that the rendering backends, fonts and output locations this build relies on are available.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Checking rendering dependencies...")
		pass := color.New(color.FgGreen).SprintFunc()
		warn := color.New(color.FgYellow).SprintFunc()
		fail := color.New(color.FgRed).SprintFunc()
		allPassed := true

		// Check 1: paginated backend
		fmt.Print("  Page backend: ")
		if backends := pagedoc.Available(); len(backends) > 0 {
			fmt.Printf("%s (%s)\n", pass("OK"), strings.Join(backends, ", "))
		} else {
			fmt.Println(fail("MISSING (PDF output will be unavailable)"))
			allPassed = false
		}

		// Check 2: Arabic shaper
		fmt.Print("  Arabic shaping: ")
		if _, ok := shaping.Lookup(shaping.CapabilityArabic); ok {
			fmt.Println(pass("OK"))
		} else {
			fmt.Println(warn("NOT LINKED (right-to-left pages come out unshaped)"))
		}

		// Check 3: config file
		fmt.Print("  Config: ")
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Printf("%s (%v)\n", warn("WARN"), err)
			cfg = config.Default()
		} else {
			fmt.Println(pass("OK"))
		}

		// Check 4: embeddable font
		fmt.Print("  Font: ")
		family, fontPath, err := pagedoc.ResolveFont(cfg.PageOptions())
		switch {
		case err != nil:
			fmt.Printf("%s (%v)\n", fail("FAILED"), err)
			allPassed = false
		case fontPath == "":
			fmt.Println(warn("NOT FOUND (pages fall back to the built-in font)"))
		default:
			fmt.Printf("%s (%s: %s)\n", pass("OK"), family, fontPath)
		}

		// Check 5: output location
		fmt.Print("  Output location: ")
		dir := filepath.Dir(cfg.Output.Path)
		if info, statErr := osStat(dir); statErr != nil {
			fmt.Printf("%s (%s)\n", warn("WILL BE CREATED"), dir)
		} else if !info.IsDir() {
			fmt.Printf("%s (%s)\n", fail("NOT A DIRECTORY"), dir)
			allPassed = false
		} else if checkWritable(dir) {
			fmt.Println(pass("OK"))
		} else {
			fmt.Printf("%s (%s)\n", fail("NOT WRITABLE"), dir)
			allPassed = false
		}

		fmt.Println()
		if allPassed {
			fmt.Println("All critical checks passed!")
		} else {
			fmt.Println("Some checks failed. Please resolve the issues above.")
		}
		return nil
	},
}

// checkWritable reports whether a new file can be created in dir.
func checkWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".warraq_write_*")
	if err != nil {
		return false
	}
	f.Close()
	os.Remove(f.Name())
	return true
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
