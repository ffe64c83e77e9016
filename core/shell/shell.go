// Package shell implements the command-processing core of myshell: the
// tokenizer, variable expansion, builtin dispatch, process launching
// and asynchronous child reaping.
package shell

import (
	"io"
	"os"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/environ"
	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/journal"
)

const (
	// DefaultPrompt is the prompt template; \w is replaced with the
	// working directory.
	DefaultPrompt = `myshell:\w> `
	// DefaultFallbackPrompt is used when the working directory can't be
	// read.
	DefaultFallbackPrompt = `myshell> `
)

var promptColor = color.New(color.FgCyan, color.Bold)

// Options configures a Shell. Zero values get usable defaults.
type Options struct {
	// Env is the environment store; defaults to a store seeded from the
	// interpreter's own environment.
	Env *environ.Store

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Prompt         string
	FallbackPrompt string

	// IsTerminal reports whether the shell talks to a terminal. It
	// controls prompt coloring and readline's line editing.
	IsTerminal func() bool

	// Record receives shell events. Nil disables event logging.
	Record journal.Recorder
}

// Shell drives the read-tokenize-expand-dispatch-launch loop.
type Shell struct {
	Env      *environ.Store
	Launcher *Launcher

	expander *Expander
	opts     Options
}

// New creates a Shell. The reaper is started separately so tests can
// run the pipeline without touching signal handling.
func New(opts Options) *Shell {
	if opts.Env == nil {
		opts.Env = environ.NewStoreFromEnviron(os.Environ())
	}
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Prompt == "" {
		opts.Prompt = DefaultPrompt
	}
	if opts.FallbackPrompt == "" {
		opts.FallbackPrompt = DefaultFallbackPrompt
	}
	if opts.IsTerminal == nil {
		opts.IsTerminal = func() bool { return false }
	}

	return &Shell{
		Env: opts.Env,
		Launcher: &Launcher{
			Env:    opts.Env,
			Stdin:  opts.Stdin,
			Stdout: opts.Stdout,
			Stderr: opts.Stderr,
			Record: opts.Record,
		},
		expander: NewExpander(opts.Env),
		opts:     opts,
	}
}

func (s *Shell) Stdout() io.Writer { return s.opts.Stdout }
func (s *Shell) Stderr() io.Writer { return s.opts.Stderr }

// Prompt renders the prompt for the current working directory.
func (s *Shell) Prompt() string {
	wd, err := os.Getwd()
	if err != nil {
		return s.opts.FallbackPrompt
	}

	prompt := strings.ReplaceAll(s.opts.Prompt, `\w`, wd)
	if s.opts.IsTerminal() {
		prompt = promptColor.Sprint(prompt)
	}
	return prompt
}

// Run reads and interprets lines until EOF or exit.
func (s *Shell) Run() error {
	cfg := &readline.Config{
		Stdin:          readline.NewCancelableStdin(s.opts.Stdin),
		Stdout:         s.opts.Stdout,
		Stderr:         s.opts.Stderr,
		FuncIsTerminal: s.opts.IsTerminal,
	}
	if err := cfg.Init(); err != nil {
		return err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		rl.SetPrompt(s.Prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return err

		case len(line) == 0:
			continue // empty line
		}

		if quit := s.Interpret(line); quit {
			return nil
		}
	}
}

// Interpret runs a single command line and reports whether the loop
// should terminate.
//
// Builtins and exit are matched against the raw first token; expansion
// and re-splitting happen only for external commands, after which a
// trailing & selects a background launch.
func (s *Shell) Interpret(line string) (quit bool) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return false
	}

	if tokens[0] == "exit" {
		return true
	}

	if builtin, ok := AllBuiltins[tokens[0]]; ok {
		builtin.Main(s, tokens)
		return false
	}

	argv := s.expander.PostProcess(tokens)

	background := false
	if n := len(argv); n > 0 && argv[n-1] == "&" {
		background = true
		argv = argv[:n-1]
	}
	if len(argv) == 0 {
		return false
	}

	s.Launcher.Launch(argv, background)
	return false
}
