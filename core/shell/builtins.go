package shell

import (
	"fmt"
	"os"
	"strings"
)

// EnvHome is the variable consulted by cd and ~ handling.
const EnvHome = "HOME"

// AllBuiltins holds a list of all registered shell builtins. Builtins
// are matched against the first token before any variable expansion
// runs and never spawn a process.
var AllBuiltins = make(map[string]Builtin)

type Builtin interface {
	Main(s *Shell, args []string) int
}

type BuiltinFunc func(s *Shell, args []string) int

func (f BuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Cd changes the interpreter's working directory. With no argument or
// "~" it goes to HOME (falling back to / when HOME is unset); a leading
// "~" in the argument is replaced with HOME's value.
func Cd(s *Shell, args []string) int {
	if len(args) == 1 || args[1] == "~" {
		home, ok := s.Env.LookupEnv(EnvHome)
		if !ok {
			home = "/"
		}
		if err := os.Chdir(home); err != nil {
			fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
			return 1
		}
		return 0
	}

	path := args[1]
	if strings.HasPrefix(path, "~") {
		home, ok := s.Env.LookupEnv(EnvHome)
		if !ok {
			fmt.Fprintf(s.Stderr(), "%s: %s not set\n", args[0], EnvHome)
			return 1
		}
		path = home + path[1:]
	}

	if err := os.Chdir(path); err != nil {
		fmt.Fprintf(s.Stderr(), "%s: %v\n", args[0], err)
		return 1
	}
	return 0
}

// Echo expands variables in its arguments, joins them with single
// spaces and prints them followed by a newline. With no arguments it
// prints nothing at all, not even the newline.
//
// Builtins run before the post-processor, so this is the one place a
// builtin performs its own expansion.
func Echo(s *Shell, args []string) int {
	if len(args) == 1 {
		return 0
	}

	expanded := make([]string, 0, len(args)-1)
	for _, arg := range args[1:] {
		expanded = append(expanded, s.expander.Expand(arg))
	}
	fmt.Fprintln(s.Stdout(), strings.Join(expanded, " "))
	return 0
}

// Export sets a variable in the environment store from a single
// NAME=VALUE argument, overwriting any previous value. A missing
// argument or a missing = reports an error and changes nothing.
func Export(s *Shell, args []string) int {
	if len(args) < 2 {
		fmt.Fprintf(s.Stderr(), "%s: missing argument\n", args[0])
		return 1
	}

	name, value, ok := splitAssignment(args[1])
	if !ok {
		fmt.Fprintf(s.Stderr(), "%s: invalid argument\n", args[0])
		return 1
	}

	s.Env.Setenv(name, value)
	return 0
}

// splitAssignment splits NAME=VALUE at the first =.
func splitAssignment(arg string) (name, value string, ok bool) {
	eq := strings.Index(arg, "=")
	if eq <= 0 {
		return "", "", false
	}
	return arg[:eq], arg[eq+1:], true
}

func init() {
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["echo"] = BuiltinFunc(Echo)
	AllBuiltins["export"] = BuiltinFunc(Export)
}
