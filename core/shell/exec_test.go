package shell

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/environ"
	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/journal"
)

func testLauncher() (*Launcher, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	l := &Launcher{
		Env:    environ.NewStoreFromEnviron(os.Environ()),
		Stdout: stdout,
		Stderr: stderr,
	}
	return l, stdout, stderr
}

func TestLaunchNotFound(t *testing.T) {
	l, _, stderr := testLauncher()

	l.Launch([]string{"definitely-not-a-real-command-4cb2f"}, false)

	assert.Contains(t, stderr.String(), "command not found")
}

func TestLaunchForeground(t *testing.T) {
	l, stdout, stderr := testLauncher()

	l.Launch([]string{"echo", "hi"}, false)

	assert.Equal(t, "hi\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestLaunchPassesEnvironment(t *testing.T) {
	l, stdout, _ := testLauncher()
	l.Env.Setenv("MYSHELL_TEST_VAR", "42")

	l.Launch([]string{"sh", "-c", "echo $MYSHELL_TEST_VAR"}, false)

	assert.Equal(t, "42\n", stdout.String())
}

func TestLaunchReportsSignal(t *testing.T) {
	l, _, stderr := testLauncher()

	l.Launch([]string{"sh", "-c", "kill -9 $$"}, false)

	assert.Contains(t, stderr.String(), "terminated abnormally by signal 9")
}

func TestLaunchBackgroundReturnsImmediately(t *testing.T) {
	l, _, stderr := testLauncher()

	start := time.Now()
	l.Launch([]string{"sleep", "2"}, true)

	assert.Less(t, int64(time.Since(start)), int64(time.Second))
	assert.Empty(t, stderr.String())
}

func TestLaunchRecordsEvents(t *testing.T) {
	l, _, _ := testLauncher()

	var events []*journal.Event
	l.Record = func(e *journal.Event) error {
		events = append(events, e)
		return nil
	}

	l.Launch([]string{"echo", "hi"}, false)

	if assert.Len(t, events, 1) {
		assert.Equal(t, []string{"echo", "hi"}, events[0].RunCommand.Command)
		assert.False(t, events[0].RunCommand.Background)
	}
}

func TestLaunchEmptyArgv(t *testing.T) {
	l, stdout, stderr := testLauncher()

	l.Launch(nil, false)

	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}
