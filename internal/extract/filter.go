package extract

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	apperrors "github.com/livp123/logstat/pkg/errors"
)

// Env is the environment a filter expression is evaluated against, one
// well-formed log line at a time.
type Env struct {
	Type   string                 // value of the "type" key
	Size   int                    // line length in bytes, excluding terminator
	Line   string                 // the raw line
	Fields map[string]interface{} // the decoded object
}

// Field returns the value of a top-level key, or nil if absent.
func (e Env) Field(name string) interface{} {
	return e.Fields[name]
}

// Has reports whether the object carries a top-level key.
func (e Env) Has(name string) bool {
	_, ok := e.Fields[name]
	return ok
}

var regexCache sync.Map

// Match reports whether the raw line matches the given regular expression.
// Compiled patterns are cached across lines.
func (e Env) Match(pattern string) bool {
	cached, ok := regexCache.Load(pattern)
	if !ok {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		cached, _ = regexCache.LoadOrStore(pattern, re)
	}
	return cached.(*regexp.Regexp).MatchString(e.Line)
}

// Filter is a compiled boolean expression applied to well-formed lines
// before aggregation.
type Filter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles src against the Env environment. A compile failure
// is fatal to the run, unlike per-line evaluation errors.
func CompileFilter(src string) (*Filter, error) {
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, apperrors.NewFilterError(src, err)
	}
	return &Filter{source: src, program: program}, nil
}

// Source returns the original expression text.
func (f *Filter) Source() string {
	return f.source
}

// Match evaluates the filter for one line.
func (f *Filter) Match(env Env) (bool, error) {
	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter %q: %v", f.source, err)
	}
	matched, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q: expected bool, got %T", f.source, output)
	}
	return matched, nil
}
