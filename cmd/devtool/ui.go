package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type tone string

const (
	toneInfo    tone = "\033[0;34m"
	toneOK      tone = "\033[0;32m"
	toneWarn    tone = "\033[1;33m"
	toneFail    tone = "\033[0;31m"
	toneNeutral tone = "\033[0m"
)

var toneMarks = map[tone]string{
	toneInfo: "ℹ",
	toneOK:   "✓",
	toneWarn: "⚠",
	toneFail: "✗",
}

// console writes devtool status lines. Colour is dropped when NO_COLOR is set.
type console struct {
	out   io.Writer
	color bool
}

var term = newConsole(os.Stdout)

func newConsole(out io.Writer) *console {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &console{out: out, color: !noColor}
}

func (c *console) line(t tone, format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if mark, ok := toneMarks[t]; ok {
		msg = mark + " " + msg
	}
	if c.color {
		msg = string(t) + msg + string(toneNeutral)
	}
	fmt.Fprintln(c.out, msg)
}

func (c *console) header(title string) {
	msg := "=== " + title + " ==="
	if c.color {
		msg = string(toneWarn) + msg + string(toneNeutral)
	}
	fmt.Fprintf(c.out, "\n%s\n", msg)
}

func PrintInfo(format string, a ...interface{})    { term.line(toneInfo, format, a...) }
func PrintSuccess(format string, a ...interface{}) { term.line(toneOK, format, a...) }
func PrintWarning(format string, a ...interface{}) { term.line(toneWarn, format, a...) }
func PrintError(format string, a ...interface{})   { term.line(toneFail, format, a...) }
func PrintHeader(title string)                     { term.header(title) }

// shellMeta lists argument fragments devtool refuses to forward to a subprocess.
// '&' and ';' stay allowed since connection strings and SQL carry them.
var shellMeta = []struct {
	pattern string
	reason  string
}{
	{"\n", "newline"},
	{"\r", "carriage return"},
	{"\x00", "null byte"},
	{"|", "pipe"},
	{"`", "backtick"},
	{"$(", "command substitution"},
	{">", "redirection"},
	{"<", "redirection"},
}

func rejectShellMeta(args ...string) error {
	for _, arg := range args {
		for _, m := range shellMeta {
			if strings.Contains(arg, m.pattern) {
				return fmt.Errorf("refusing argument %q: contains %s", arg, m.reason)
			}
		}
	}
	return nil
}

// runStreaming runs a subprocess with its output attached to the terminal.
func runStreaming(name string, args ...string) error {
	if err := rejectShellMeta(append([]string{name}, args...)...); err != nil {
		return err
	}
	// #nosec G204 - arguments screened by rejectShellMeta
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
