package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/mlinenweber/JTomato/tomato"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache(size)
		}
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		env: staticEnvironment(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	env   map[string]any
	cache *lruCache
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.env),
		expr.AllowUndefinedVariables(), // movie properties are injected at runtime
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	compiled := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, compiled)
	}

	return compiled, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate evaluates the filter against a movie. Movies that make the
// expression fail at runtime are treated as non-matching.
func (f *exprFilter) Evaluate(movie tomato.Movie) bool {
	env := runtimeEnvironment(movie)

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false
	}

	// AsBool() during compilation guarantees a bool result.
	return result.(bool)
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// staticEnvironment holds the helpers visible at compile time.
func staticEnvironment() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	return env
}

// addHelperFunctions adds the movie-independent helpers.
func addHelperFunctions(env map[string]any) {
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["now"] = time.Now
}

// runtimeEnvironment builds the evaluation environment for one movie.
func runtimeEnvironment(movie tomato.Movie) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	env["Movie"] = movie
	env["Title"] = movie.Title
	env["Year"] = movie.Year
	env["MPAARating"] = movie.MPAARating
	env["Runtime"] = movie.Runtime
	env["Synopsis"] = movie.Synopsis
	env["CriticsConsensus"] = movie.CriticsConsensus
	env["CriticsScore"] = movie.Ratings.CriticsScore
	env["CriticsRating"] = movie.Ratings.CriticsRating
	env["AudienceScore"] = movie.Ratings.AudienceScore
	env["AudienceRating"] = movie.Ratings.AudienceRating
	env["TheaterRelease"] = movie.ReleaseDates.Theater
	env["DVDRelease"] = movie.ReleaseDates.DVD
	env["IMDBID"] = movie.IMDBID()

	env["criticsScore"] = func() int { return movie.Ratings.CriticsScore }
	env["audienceScore"] = func() int { return movie.Ratings.AudienceScore }
	env["certifiedFresh"] = func() bool {
		return strings.EqualFold(movie.Ratings.CriticsRating, "Certified Fresh")
	}
	env["rated"] = func(rating string) bool {
		return strings.EqualFold(movie.MPAARating, rating)
	}
	env["hasActor"] = createHasActorFunc(movie.AbridgedCast)

	return env
}

func createHasActorFunc(cast []tomato.CastMember) func(string) bool {
	return func(name string) bool {
		for _, member := range cast {
			if strings.EqualFold(member.Name, name) {
				return true
			}
		}
		return false
	}
}
