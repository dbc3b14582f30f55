package command

import (
	"fmt"

	"github.com/agnivade/levenshtein"
)

// SuggestionThreshold is the maximum edit distance at which an unknown name
// still produces a "did you mean" suggestion.
const SuggestionThreshold = 3

// Group is a namespace of related commands. A group without prefixes
// exposes its commands at the top level; a group with prefixes is entered
// by its prefix (or prefix alias) first, and falls back to Default when the
// next token matches no sub-command.
type Group struct {
	Name        string
	Description string
	Prefixes    []string
	Default     string

	commands []*Command
	index    map[string]*Command
}

// Commands returns the group's commands in registration order.
func (g *Group) Commands() []*Command { return g.commands }

// Lookup resolves name or alias to a command. Matching is case-sensitive.
func (g *Group) Lookup(name string) (*Command, bool) {
	cmd, ok := g.index[name]
	return cmd, ok
}

func (g *Group) add(cmd *Command) error {
	if g.index == nil {
		g.index = make(map[string]*Command)
	}
	names := append([]string{cmd.Name}, cmd.Aliases...)
	for _, n := range names {
		if _, dup := g.index[n]; dup {
			return fmt.Errorf("group %s: duplicate command name %q", g.Name, n)
		}
	}
	for _, n := range names {
		g.index[n] = cmd
	}
	g.commands = append(g.commands, cmd)
	return nil
}

func (g *Group) names() []string {
	names := make([]string, 0, len(g.index))
	for n := range g.index {
		names = append(names, n)
	}
	return names
}

// Registry is the static table the dispatcher consults: top-level commands
// from prefix-less groups plus prefixed groups as sub-namespaces.
type Registry struct {
	groups   []*Group
	byName   map[string]*Group
	topLevel map[string]*Command
	prefixed map[string]*Group
}

// Default is the process-wide registry that command packages register into
// from init().
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:   make(map[string]*Group),
		topLevel: make(map[string]*Command),
		prefixed: make(map[string]*Group),
	}
}

// MustGroup registers a group, panicking on prefix or name collisions.
// Registration happens at init time, so a panic here is a programming error
// caught on first run.
func (r *Registry) MustGroup(g *Group) *Group {
	if _, dup := r.byName[g.Name]; dup {
		panic(fmt.Sprintf("registry: duplicate group %q", g.Name))
	}
	for _, p := range g.Prefixes {
		if _, dup := r.prefixed[p]; dup {
			panic(fmt.Sprintf("registry: duplicate group prefix %q", p))
		}
		if _, dup := r.topLevel[p]; dup {
			panic(fmt.Sprintf("registry: group prefix %q collides with a command", p))
		}
	}
	r.byName[g.Name] = g
	r.groups = append(r.groups, g)
	for _, p := range g.Prefixes {
		r.prefixed[p] = g
	}
	return g
}

// MustAdd adds commands to a previously registered group.
func (r *Registry) MustAdd(group string, cmds ...*Command) {
	g, ok := r.byName[group]
	if !ok {
		panic(fmt.Sprintf("registry: unknown group %q", group))
	}
	for _, cmd := range cmds {
		if err := g.add(cmd); err != nil {
			panic("registry: " + err.Error())
		}
		if len(g.Prefixes) > 0 {
			continue
		}
		names := append([]string{cmd.Name}, cmd.Aliases...)
		for _, n := range names {
			if _, dup := r.topLevel[n]; dup {
				panic(fmt.Sprintf("registry: duplicate top-level name %q", n))
			}
			if _, dup := r.prefixed[n]; dup {
				panic(fmt.Sprintf("registry: name %q collides with a group prefix", n))
			}
			r.topLevel[n] = cmd
		}
	}
}

// Groups returns all groups in registration order.
func (r *Registry) Groups() []*Group { return r.groups }

// Resolve maps tokens to a command and its remaining arguments. Matching is
// exact and case-sensitive; a miss returns a NotFoundError carrying the
// nearest known name within SuggestionThreshold, if any.
func (r *Registry) Resolve(tokens []string) (*Command, []string, error) {
	head := tokens[0]

	if g, ok := r.prefixed[head]; ok {
		rest := tokens[1:]
		if len(rest) > 0 {
			if cmd, ok := g.Lookup(rest[0]); ok {
				return cmd, rest[1:], nil
			}
		}
		if g.Default != "" {
			if cmd, ok := g.Lookup(g.Default); ok {
				return cmd, rest, nil
			}
		}
		name := head
		if len(rest) > 0 {
			name = rest[0]
		}
		return nil, nil, &NotFoundError{Name: name, Suggestion: nearest(name, g.names())}
	}

	if cmd, ok := r.topLevel[head]; ok {
		return cmd, tokens[1:], nil
	}

	return nil, nil, &NotFoundError{Name: head, Suggestion: r.Suggest(head)}
}

// Suggest returns the known name closest to name across every namespace,
// or "" when nothing is within SuggestionThreshold.
func (r *Registry) Suggest(name string) string {
	candidates := make([]string, 0, len(r.topLevel)+len(r.prefixed))
	for n := range r.topLevel {
		candidates = append(candidates, n)
	}
	for n := range r.prefixed {
		candidates = append(candidates, n)
	}
	for _, g := range r.groups {
		if len(g.Prefixes) > 0 {
			candidates = append(candidates, g.names()...)
		}
	}
	return nearest(name, candidates)
}

// Find locates a command by name or alias in any group, for help rendering.
func (r *Registry) Find(name string) (*Command, *Group, bool) {
	for _, g := range r.groups {
		if cmd, ok := g.Lookup(name); ok {
			return cmd, g, true
		}
	}
	return nil, nil, false
}

func nearest(name string, candidates []string) string {
	best := ""
	bestDist := SuggestionThreshold + 1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
