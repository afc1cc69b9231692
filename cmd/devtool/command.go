package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

const appName = "characterforge"

// Command is one devtool subcommand.
type Command interface {
	Name() string
	Description() string
	Run(args []string) error
}

// Aliased is implemented by commands reachable under shorter names.
type Aliased interface {
	Aliases() []string
}

// Registry resolves subcommand names, aliases included.
type Registry struct {
	commands map[string]Command
	aliases  map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
	}
}

// Register adds cmd and its aliases. A name clash is a programming error and panics.
func (r *Registry) Register(cmd Command) {
	r.claim(cmd.Name(), cmd.Name())
	r.commands[cmd.Name()] = cmd
	if a, ok := cmd.(Aliased); ok {
		for _, alias := range a.Aliases() {
			r.claim(alias, cmd.Name())
			r.aliases[alias] = cmd.Name()
		}
	}
}

func (r *Registry) claim(name, owner string) {
	if _, taken := r.commands[name]; taken {
		panic(fmt.Sprintf("devtool: %q registered twice", name))
	}
	if prev, taken := r.aliases[name]; taken {
		panic(fmt.Sprintf("devtool: %q already aliases %q, cannot alias %q", name, prev, owner))
	}
}

func (r *Registry) Get(name string) (Command, bool) {
	if target, ok := r.aliases[name]; ok {
		name = target
	}
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the commands ordered by name.
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// WriteHelp prints usage with the descriptions aligned by display width.
func (r *Registry) WriteHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: devtool <command> [args...]  (%s)\n\nAvailable Commands:\n", appName)

	cmds := r.List()
	labels := make([]string, len(cmds))
	width := 0
	for i, cmd := range cmds {
		labels[i] = cmd.Name()
		if a, ok := cmd.(Aliased); ok && len(a.Aliases()) > 0 {
			labels[i] += " (" + strings.Join(a.Aliases(), ", ") + ")"
		}
		if lw := runewidth.StringWidth(labels[i]); lw > width {
			width = lw
		}
	}

	for i, cmd := range cmds {
		fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight(labels[i], width), cmd.Description())
	}
}
