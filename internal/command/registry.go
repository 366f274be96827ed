package command

import (
	"regexp"
	"strings"

	"github.com/dekarrin/quarry/internal/qerrors"
)

// Registry holds the compiled command definitions in registration order. It
// is immutable once built, so it is safe for any number of concurrent
// readers; all validation of definitions happens at build time and a bad
// definition can never surface as a dispatch-time failure.
type Registry struct {
	defs     []Definition
	patterns []*regexp.Regexp
}

// NewRegistry compiles the given definitions into a Registry. Order is
// preserved and significant: Parse tries patterns in registration order and
// stops at the first full match, so when patterns overlap, the
// earlier-registered definition wins.
//
// A definition with an empty name, a name already taken, a missing factory,
// or a pattern that does not compile makes construction fail with a non-nil
// error.
func NewRegistry(defs []Definition) (*Registry, error) {
	reg := &Registry{}
	if err := reg.init(defs); err != nil {
		return nil, err
	}
	return reg, nil
}

func (reg *Registry) init(defs []Definition) error {
	reg.defs = make([]Definition, len(defs))
	reg.patterns = make([]*regexp.Regexp, len(defs))

	seen := map[string]bool{}
	for i, def := range defs {
		if def.Name == "" {
			return qerrors.Registrationf(def.Name, "definition at index %d has no name", i)
		}
		if seen[def.Name] {
			return qerrors.Registrationf(def.Name, "name is already registered")
		}
		if def.Pattern == "" {
			return qerrors.Registrationf(def.Name, "definition has no pattern")
		}
		if def.New == nil {
			return qerrors.Registrationf(def.Name, "definition has no factory")
		}

		re, err := regexp.Compile(anchored(def.Pattern))
		if err != nil {
			return qerrors.Registrationf(def.Name, "compile pattern: %v", err)
		}

		seen[def.Name] = true
		reg.defs[i] = def
		reg.patterns[i] = re
	}

	return nil
}

// anchored forces a pattern to match the entire input rather than any
// substring of it. The pattern body is wrapped in a non-capturing group so
// that a top-level alternation cannot escape the anchors; being
// non-capturing, the wrapper leaves group numbering and names untouched.
func anchored(pat string) string {
	pat = strings.TrimPrefix(pat, "^")
	if strings.HasSuffix(pat, "$") && !strings.HasSuffix(pat, `\$`) {
		pat = pat[:len(pat)-1]
	}
	return "^(?:" + pat + ")$"
}

// Match holds what a definition's pattern captured from one line of input.
// It is built once per successful Parse and not retained beyond the
// dispatch it was built for.
type Match struct {

	// Args has the text of every capture group that participated in the
	// match, in group order. Groups that did not participate (absent
	// optional groups) are dropped entirely, shifting later groups down; an
	// absent group is never reported as an empty string.
	Args []string

	// Named maps the name of every participating named group to its text.
	// A participating named group appears both here and in Args.
	Named map[string]string
}

// Parse finds the first registered definition whose pattern matches text,
// which must already have had its sentinel stripped and its whitespace
// trimmed. On a match it instantiates the definition's command bound to text
// and ctx and returns it along with what the pattern captured. ok is false
// when no definition matches; that is an absence, not an error.
//
// Constructing the command must not touch game state, so Parse itself has no
// side effects.
func (reg *Registry) Parse(text string, ctx Context) (cmd Command, m *Match, ok bool) {
	for i := range reg.defs {
		idx := reg.patterns[i].FindStringSubmatchIndex(text)
		if idx == nil {
			continue
		}

		return reg.defs[i].New(text, ctx), reg.buildMatch(i, text, idx), true
	}

	return nil, nil, false
}

// buildMatch derives the positional and named argument views of one pattern
// match. Both come from the same submatch index set, so they can never
// disagree about which groups participated.
func (reg *Registry) buildMatch(defIdx int, text string, idx []int) *Match {
	m := &Match{Named: map[string]string{}}

	names := reg.patterns[defIdx].SubexpNames()
	for group := 1; group < len(names); group++ {
		start, end := idx[2*group], idx[2*group+1]
		if start < 0 {
			// group did not participate in the match
			continue
		}

		val := text[start:end]
		m.Args = append(m.Args, val)
		if names[group] != "" {
			m.Named[names[group]] = val
		}
	}

	return m
}

// Definitions returns a copy of the registered definitions in registration
// order, for callers that want to enumerate or display them.
func (reg *Registry) Definitions() []Definition {
	defs := make([]Definition, len(reg.defs))
	copy(defs, reg.defs)
	return defs
}

// Lookup finds the registered definition with the given name. If no name
// matches exactly, a definition whose name's first word equals name is
// accepted, so that multi-word commands such as "time set" can be looked up
// by their leading verb.
func (reg *Registry) Lookup(name string) (Definition, bool) {
	for _, def := range reg.defs {
		if def.Name == name {
			return def, true
		}
	}
	for _, def := range reg.defs {
		if fields := strings.Fields(def.Name); len(fields) > 0 && fields[0] == name {
			return def, true
		}
	}
	return Definition{}, false
}
