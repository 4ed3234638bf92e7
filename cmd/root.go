package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mlinenweber/JTomato/config"
	"github.com/mlinenweber/JTomato/filter"
	"github.com/mlinenweber/JTomato/tomato"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *tomato.Client

	version   = "dev"
	buildTime = "unknown"

	// Command flags
	country    string
	limit      int
	page       int
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "jtomato",
	Short: "Browse the Rotten Tomatoes movie catalog from the command line",
	Long: `jtomato is a CLI for the Rotten Tomatoes API. It can search the
catalog, list box office / in theaters / DVD charts, and show detailed
movie information including cast and critic reviews.

A valid API key must be configured (tomato.api_key in config.yaml or
the JTOMATO_TOMATO_API_KEY environment variable).`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information for the version command.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration and the catalog client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	opts := []tomato.Option{
		tomato.WithPageLimit(cfg.Tomato.PageLimit),
	}
	if cfg.Tomato.RateLimit > 0 {
		opts = append(opts, tomato.WithRateLimit(cfg.Tomato.RateLimit))
	}
	client = tomato.NewClient(cfg.Tomato.APIKey, logger, opts...)

	// Country flag falls back to the configured default.
	if cmd.Flags().Lookup("country") != nil && !cmd.Flags().Changed("country") {
		country = cfg.Tomato.Country
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Color only makes sense on a real terminal.
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// filterMovies applies the --filter/--preset expression, if any.
func filterMovies(movies []tomato.Movie) ([]tomato.Movie, error) {
	expression := filterExpr
	if expression == "" && preset != "" {
		presetExpr, ok := cfg.Filter.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		expression = presetExpr
	}
	if expression == "" {
		return movies, nil
	}

	compiled, err := filter.NewExprCompiler().Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return filter.Select(compiled, movies), nil
}

// printMovies renders a movie list to stdout.
func printMovies(movies []tomato.Movie) {
	for _, movie := range movies {
		fmt.Printf("• %s", movie.Title)
		if movie.Year > 0 {
			fmt.Printf(" (%d)", movie.Year)
		}
		if movie.Ratings.CriticsScore > 0 {
			fmt.Printf(" [critics %d%%]", movie.Ratings.CriticsScore)
		}
		fmt.Println()
	}
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression, e.g. 'criticsScore() > 80'")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}
