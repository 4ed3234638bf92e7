package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog for movies",
	Long: `Search the movie catalog with a plain text query. Results are
paginated; use --page to fetch further pages.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&page, "page", 1, "result page to fetch")
	addFilterFlags(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	logger.Info().Str("query", query).Int("page", page).Msg("Searching movies")

	movies, total, err := client.SearchMovies(context.Background(), query, page)
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

	fmt.Printf("\n%d of %d matches (page %d):\n", len(movies), total, page)
	fmt.Println(strings.Repeat("-", 60))
	printMovies(movies)

	return nil
}
