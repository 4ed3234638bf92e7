package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mlinenweber/JTomato/tomato"
)

var (
	showCast    bool
	showReviews bool
	reviewPage  int
)

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show detailed information for a movie",
	Long: `Show detailed information for a movie by its catalog ID, optionally
including the cast listing and critic reviews.`,
	Args: cobra.ExactArgs(1),
	RunE: runMovie,
}

func init() {
	rootCmd.AddCommand(movieCmd)

	movieCmd.Flags().BoolVar(&showCast, "cast", false, "include the full cast listing")
	movieCmd.Flags().BoolVar(&showReviews, "reviews", false, "include critic reviews")
	movieCmd.Flags().IntVar(&reviewPage, "review-page", 1, "review page to fetch")
}

func runMovie(cmd *cobra.Command, args []string) error {
	movieID := tomato.MovieID(args[0])

	var (
		detail  *tomato.Movie
		cast    []tomato.CastMember
		reviews []tomato.Review
	)

	// The library issues one request per call; fan the independent
	// lookups out here instead.
	g, ctx := errgroup.WithContext(context.Background())

	g.Go(func() error {
		var err error
		detail, err = client.MovieInfo(ctx, tomato.Movie{ID: movieID})
		return err
	})

	if showCast {
		g.Go(func() error {
			var err error
			cast, err = client.MovieCast(ctx, movieID)
			return err
		})
	}

	if showReviews {
		g.Go(func() error {
			var err error
			reviews, _, err = client.MovieReviews(ctx, movieID, reviewPage, country)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if detail == nil {
		fmt.Println("Movie not found.")
		return nil
	}

	printMovieDetail(detail)

	if showCast {
		fmt.Printf("\nCast:\n")
		for _, member := range cast {
			fmt.Printf("  • %s", member.Name)
			if len(member.Characters) > 0 {
				fmt.Printf(" as %s", strings.Join(member.Characters, ", "))
			}
			fmt.Println()
		}
	}

	if showReviews {
		fmt.Printf("\nReviews (page %d):\n", reviewPage)
		for _, review := range reviews {
			fmt.Printf("  • %s", review.Critic)
			if review.Publication != "" {
				fmt.Printf(" (%s)", review.Publication)
			}
			if review.Freshness != "" {
				fmt.Printf(" [%s]", review.Freshness)
			}
			fmt.Println()
			if review.Quote != "" {
				fmt.Printf("    %q\n", review.Quote)
			}
		}
	}

	return nil
}

func printMovieDetail(movie *tomato.Movie) {
	fmt.Printf("%s", movie.Title)
	if movie.Year > 0 {
		fmt.Printf(" (%d)", movie.Year)
	}
	fmt.Println()

	if movie.MPAARating != "" {
		fmt.Printf("Rated: %s\n", movie.MPAARating)
	}
	if movie.Runtime > 0 {
		fmt.Printf("Runtime: %d min\n", movie.Runtime)
	}
	if movie.Ratings.CriticsScore > 0 {
		fmt.Printf("Critics: %d%% (%s)\n", movie.Ratings.CriticsScore, movie.Ratings.CriticsRating)
	}
	if movie.Ratings.AudienceScore > 0 {
		fmt.Printf("Audience: %d%%\n", movie.Ratings.AudienceScore)
	}
	if movie.ReleaseDates.Theater != "" {
		fmt.Printf("In theaters: %s\n", movie.ReleaseDates.Theater)
	}
	if movie.ReleaseDates.DVD != "" {
		fmt.Printf("On DVD: %s\n", movie.ReleaseDates.DVD)
	}
	if movie.IMDBID() != "" {
		fmt.Printf("IMDB: tt%s\n", movie.IMDBID())
	}
	if movie.Synopsis != "" {
		fmt.Printf("\n%s\n", movie.Synopsis)
	}
	if movie.CriticsConsensus != "" {
		fmt.Printf("\nConsensus: %s\n", movie.CriticsConsensus)
	}
}
