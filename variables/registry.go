package variables

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	scssReference = regexp.MustCompile(`\$([a-zA-Z0-9\-_]+)`)
	cssReference  = regexp.MustCompile(`var\((--[a-zA-Z0-9\-_]+)\)`)
)

// Registry holds raw variable values from all sources of a single parse
// under canonical names: lowercase "--bs-name". SCSS "$name", CSS "--name"
// and "--bs-name" all denote the same variable, so later assignment through
// any of them replaces earlier one.
type Registry struct {
	values map[string]string
}

func NewRegistry() *Registry {
	return &Registry{values: make(map[string]string)}
}

func canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if rest, ok := strings.CutPrefix(name, "--"); ok && !strings.HasPrefix(rest, "bs-") {
		return "--bs-" + rest
	}
	return name
}

// Set stores value under canonical name.
func (r *Registry) Set(name, value string) {
	r.values[canonical(name)] = value
}

// Lookup returns raw (unresolved) value.
func (r *Registry) Lookup(name string) (string, bool) {
	v, ok := r.values[canonical(name)]
	return v, ok
}

func (r *Registry) Len() int {
	return len(r.values)
}

// Names returns canonical names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.values))
	for n := range r.values {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Resolve substitutes "$name" and "var(--name)" references in value
// recursively. Reference which cannot be resolved, including circular one, is
// left as is and reported to warn.
func (r *Registry) Resolve(value string, warn func(string)) string {
	if warn == nil {
		warn = func(string) {}
	}
	return r.resolve(value, make(map[string]bool), warn)
}

func (r *Registry) resolve(value string, visiting map[string]bool, warn func(string)) string {
	substitute := func(ref, name, kind string) string {
		if visiting[name] {
			warn(fmt.Sprintf("circular %s variable reference: %s", kind, ref))
			return ref
		}
		v, ok := r.values[name]
		if !ok {
			warn(fmt.Sprintf("unresolved %s variable reference: %s", kind, ref))
			return ref
		}
		visiting[name] = true
		defer delete(visiting, name)
		return r.resolve(v, visiting, warn)
	}

	value = scssReference.ReplaceAllStringFunc(value, func(ref string) string {
		return substitute(ref, canonical("--bs-"+ref[1:]), "SCSS")
	})
	return cssReference.ReplaceAllStringFunc(value, func(ref string) string {
		m := cssReference.FindStringSubmatch(ref)
		return substitute(ref, canonical(m[1]), "CSS")
	})
}

// ResolveVariable returns value of named variable with references resolved.
// Variable referring back to itself is reported as circular.
func (r *Registry) ResolveVariable(name string, warn func(string)) (string, bool) {
	name = canonical(name)
	v, ok := r.values[name]
	if !ok {
		return "", false
	}
	if warn == nil {
		warn = func(string) {}
	}
	return r.resolve(v, map[string]bool{name: true}, warn), true
}
