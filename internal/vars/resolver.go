package vars

import (
	"regexp"
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/notify"
)

// Provider is one variable scope. Scopes are consulted in the order they
// were handed to the resolver.
type Provider interface {
	Resolve(name string) (string, bool)
	Label() string
}

var templateVarPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Resolver substitutes {{name}} placeholders in a single left-to-right pass.
// Substituted text is never re-scanned, so a value containing another
// placeholder stays as-is. Names with a $ prefix go to the dynamic provider
// and fall back to an empty string; anything unresolved elsewhere keeps its
// placeholder and raises one warning naming the variable.
type Resolver struct {
	sink      notify.Sink
	dynamic   Provider
	providers []Provider
}

func NewResolver(sink notify.Sink, dynamic Provider, providers ...Provider) *Resolver {
	return &Resolver{sink: sink, dynamic: dynamic, providers: providers}
}

// Expand resolves every placeholder in input. Literal double quotes are
// stripped from the substituted output unconditionally; the transfer tool
// receives each argument pre-tokenized, so quotes only corrupt values.
func (r *Resolver) Expand(input string) string {
	result := templateVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := templateVarPattern.FindStringSubmatch(match)
		if len(sub) < 2 {
			return match
		}
		name := strings.TrimSpace(sub[1])
		if name == "" {
			return match
		}
		if strings.HasPrefix(name, "$") {
			if r.dynamic != nil {
				if value, ok := r.dynamic.Resolve(name); ok {
					return value
				}
			}
			return ""
		}
		for _, provider := range r.providers {
			if provider == nil {
				continue
			}
			if value, ok := provider.Resolve(name); ok {
				return value
			}
		}
		notify.Warnf(r.sink, "unresolved template variable {{%s}}", name)
		return match
	})
	return strings.ReplaceAll(result, `"`, "")
}

// Scope is the document variable scope: insertion-ordered, rebuilt from
// scratch on every parse.
type Scope struct {
	names  []string
	values map[string]string
}

func NewScope() *Scope {
	return &Scope{values: make(map[string]string)}
}

func (s *Scope) Set(name, value string) {
	if _, ok := s.values[name]; !ok {
		s.names = append(s.names, name)
	}
	s.values[name] = value
}

func (s *Scope) Resolve(name string) (string, bool) {
	value, ok := s.values[name]
	return value, ok
}

func (s *Scope) Label() string {
	return "file"
}

func (s *Scope) Names() []string {
	return append([]string(nil), s.names...)
}

// MapProvider serves a fixed value set with case-insensitive lookup, the
// shape environment scopes arrive in.
type MapProvider struct {
	values map[string]string
	label  string
}

func NewMapProvider(label string, values map[string]string) *MapProvider {
	normalized := make(map[string]string, len(values))
	for k, v := range values {
		normalized[strings.ToLower(k)] = v
	}
	return &MapProvider{values: normalized, label: label}
}

func (p *MapProvider) Resolve(name string) (string, bool) {
	value, ok := p.values[strings.ToLower(name)]
	return value, ok
}

func (p *MapProvider) Label() string {
	return p.label
}
