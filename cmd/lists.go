package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mlinenweber/JTomato/tomato"
)

// limitedList runs a limit-bounded list operation and prints the result.
func limitedList(name string, fetch func(context.Context, string, int) ([]tomato.Movie, error)) error {
	logger.Info().Str("list", name).Str("country", country).Int("limit", limit).Msg("Fetching list")

	movies, err := fetch(context.Background(), country, limit)
	if err != nil {
		return err
	}

	movies, err = filterMovies(movies)
	if err != nil {
		return err
	}

	if len(movies) == 0 {
		fmt.Println("No movies found.")
		return nil
	}

	fmt.Printf("\n%s (%d movies):\n", name, len(movies))
	fmt.Println(strings.Repeat("-", 60))
	printMovies(movies)
	return nil
}

// pagedList runs a paginated list operation and prints one page.
func pagedList(name string, fetch func(context.Context, string, int) ([]tomato.Movie, int, error)) error {
	logger.Info().Str("list", name).Str("country", country).Int("page", page).Msg("Fetching list")

	movies, total, err := fetch(context.Background(), country, page)
	if err != nil {
		return err
	}

	movies, err = filterMovies(movies)
	if err != nil {
		return err
	}

	if len(movies) == 0 {
		fmt.Println("No movies found.")
		return nil
	}

	fmt.Printf("\n%s, page %d (%d of %d total):\n", name, page, len(movies), total)
	fmt.Println(strings.Repeat("-", 60))
	printMovies(movies)
	return nil
}

var boxOfficeCmd = &cobra.Command{
	Use:   "boxoffice",
	Short: "List top box office earning movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return limitedList("Box office", client.BoxOfficeMovies)
	},
}

var openingCmd = &cobra.Command{
	Use:   "opening",
	Short: "List current opening movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return limitedList("Opening movies", client.OpeningMovies)
	},
}

var rentalsCmd = &cobra.Command{
	Use:   "rentals",
	Short: "List the current top DVD rentals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return limitedList("Top rentals", client.TopRentals)
	},
}

var theatersCmd = &cobra.Command{
	Use:   "theaters",
	Short: "List movies currently in theaters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pagedList("In theaters", client.InTheatersMovies)
	},
}

var upcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List upcoming movies",
	RunE: func(cmd *cobra.Command, args []string) error {
		return pagedList("Upcoming movies", client.UpcomingMovies)
	},
}

var dvdsCmd = &cobra.Command{
	Use:       "dvds <current|new|upcoming>",
	Short:     "List DVD releases",
	Long:      `List current release, new release, or upcoming DVDs.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"current", "new", "upcoming"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "current":
			return pagedList("Current release DVDs", client.CurrentReleaseDVDs)
		case "new":
			return pagedList("New release DVDs", client.NewReleaseDVDs)
		case "upcoming":
			return pagedList("Upcoming DVDs", client.UpcomingDVDs)
		default:
			return fmt.Errorf("unknown DVD list: %s", args[0])
		}
	},
}

var similarCmd = &cobra.Command{
	Use:   "similar <id>",
	Short: "List movies similar to a given movie",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return limitedList("Similar movies", func(ctx context.Context, country string, limit int) ([]tomato.Movie, error) {
			return client.SimilarMovies(ctx, tomato.Movie{ID: tomato.MovieID(args[0])}, country, limit)
		})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{boxOfficeCmd, openingCmd, rentalsCmd, similarCmd} {
		cmd.Flags().StringVar(&country, "country", "", "ISO 3166-1 alpha-2 country code for localized data")
		cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of movies (0 for server default, capped at 50)")
		addFilterFlags(cmd)
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{theatersCmd, upcomingCmd, dvdsCmd} {
		cmd.Flags().StringVar(&country, "country", "", "ISO 3166-1 alpha-2 country code for localized data")
		cmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
		addFilterFlags(cmd)
		rootCmd.AddCommand(cmd)
	}
}
