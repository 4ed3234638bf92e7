package filter

import (
	"github.com/mlinenweber/JTomato/tomato"
)

// Filter defines the basic interface for movie filters
type Filter interface {
	// Evaluate checks if a movie matches the filter criteria
	Evaluate(movie tomato.Movie) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Select returns the movies matching the filter, preserving order.
func Select(f Filter, movies []tomato.Movie) []tomato.Movie {
	matches := make([]tomato.Movie, 0, len(movies))
	for _, movie := range movies {
		if f.Evaluate(movie) {
			matches = append(matches, movie)
		}
	}
	return matches
}
