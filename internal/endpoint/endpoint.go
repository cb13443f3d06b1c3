// Package endpoint holds the table of NLPearl operations: which API versions
// each one exists in and the HTTP method and path it uses per version.
//
// Every resource client resolves its route here, so the version guard and
// the per-version request shape live in one place.
package endpoint

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	nlpearl "github.com/spetersoncode/nlpearl"
)

// Route is an HTTP method and a path template relative to the versioned base URL.
// Path placeholders are written {name} and filled in order by Expand.
type Route struct {
	Method string
	Path   string
}

// Expand fills the path placeholders with the given values, path-escaped.
func (r Route) Expand(params ...string) (string, error) {
	var b strings.Builder
	rest := r.Path
	n := 0
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			return "", fmt.Errorf("endpoint: unterminated placeholder in %q", r.Path)
		}
		if n >= len(params) {
			return "", fmt.Errorf("endpoint: %q needs more than %d parameters", r.Path, len(params))
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(params[n]))
		n++
		rest = rest[open+end+1:]
	}
	if n != len(params) {
		return "", fmt.Errorf("endpoint: %q takes %d parameters, got %d", r.Path, n, len(params))
	}
	return b.String(), nil
}

// Operation describes one SDK operation.
type Operation struct {
	Name string

	// Only restricts the operation to a single generation. Empty means both.
	Only nlpearl.Version

	// Routes maps a request shape (V1 or V2) to its route.
	Routes map[nlpearl.Version]Route

	// Alternative names the operation that replaces this one in the other generation.
	Alternative string

	// TextFallback allows a non-JSON success body to be returned as text.
	TextFallback bool
}

// Available reports whether the operation exists under the active version.
// v1-only operations require exactly v1; v2-only operations run under
// anything but v1, so newer tags keep working.
func (op Operation) Available(active nlpearl.Version) bool {
	switch op.Only {
	case nlpearl.V1:
		return active == nlpearl.V1
	case nlpearl.V2:
		return active != nlpearl.V1
	default:
		return true
	}
}

// Guard returns a *nlpearl.VersionMismatchError if the operation is not
// available under the active version.
func (op Operation) Guard(active nlpearl.Version) error {
	if op.Available(active) {
		return nil
	}
	return &nlpearl.VersionMismatchError{
		Op:          op.Name,
		Required:    op.Only,
		Active:      active,
		Alternative: op.Alternative,
	}
}

// Resolve runs the version guard and returns the route for the active version.
func (op Operation) Resolve(active nlpearl.Version) (Route, error) {
	if err := op.Guard(active); err != nil {
		return Route{}, err
	}
	r, ok := op.Routes[active.RequestShape()]
	if !ok {
		return Route{}, fmt.Errorf("endpoint: %s has no route for %s", op.Name, active)
	}
	return r, nil
}

// Versions returns the generations the operation is mounted under.
func (op Operation) Versions() []nlpearl.Version {
	if op.Only != "" {
		return []nlpearl.Version{op.Only}
	}
	return []nlpearl.Version{nlpearl.V1, nlpearl.V2}
}

// Lookup returns the operation with the given name.
func Lookup(name string) (Operation, bool) {
	op, ok := operations[name]
	return op, ok
}

// MustLookup is like Lookup but panics if the operation is unknown.
func MustLookup(name string) Operation {
	op, ok := operations[name]
	if !ok {
		panic("endpoint: unknown operation " + name)
	}
	return op
}

// All returns every operation sorted by name.
func All() []Operation {
	ops := make([]Operation, 0, len(operations))
	for _, op := range operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].Name < ops[j].Name })
	return ops
}
