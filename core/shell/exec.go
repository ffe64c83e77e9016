package shell

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"syscall"

	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/environ"
	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/journal"
)

// Launcher spawns external commands.
type Launcher struct {
	// Env supplies the environment for spawned processes.
	Env *environ.Store

	// Stdin, Stdout and Stderr are inherited by spawned processes.
	// Stderr also receives the launcher's own failure reports.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Record receives an event per launched command. Nil disables
	// recording.
	Record journal.Recorder
}

// Launch spawns argv as a new process. Foreground launches block until
// that child terminates and report abnormal termination by signal;
// background launches return immediately, leaving termination to the
// reaper. Any trailing & must already be stripped from argv.
//
// Every failure is reported to Stderr and leaves the interpreter
// running.
func (l *Launcher) Launch(argv []string, background bool) {
	if len(argv) == 0 {
		return
	}

	if l.Record != nil {
		_ = l.Record(&journal.Event{
			RunCommand: &journal.RunCommand{Command: argv, Background: background},
		})
	}

	// Resolve the program up front: this is the failure execvp would
	// produce inside the child, surfaced without creating one.
	path, err := exec.LookPath(argv[0])
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			fmt.Fprintf(l.Stderr, "%s: command not found\n", argv[0])
		} else {
			fmt.Fprintf(l.Stderr, "%s: %v\n", argv[0], err)
		}
		return
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    l.Env.Environ(),
		Stdin:  l.Stdin,
		Stdout: l.Stdout,
		Stderr: l.Stderr,
	}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(l.Stderr, "%s: %v\n", argv[0], err)
		return
	}

	if background {
		// The reaper collects it whenever it terminates.
		return
	}

	err = cmd.Wait()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			fmt.Fprintf(l.Stderr, "Child terminated abnormally by signal %d\n", ws.Signal())
		}
	case err != nil:
		// The reaper may have collected the child first; report and
		// keep going.
		fmt.Fprintf(l.Stderr, "wait: %v\n", err)
	}
}
