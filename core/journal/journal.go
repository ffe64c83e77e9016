// Package journal records child process terminations and shell events.
package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
)

// TerminationLine is the fixed line appended to the termination record
// for every reaped child.
const TerminationLine = "Child process was terminated"

// Journal appends termination lines to a persistent record.
//
// Every append opens, writes and closes the file so no handle is shared
// with the reaper's asynchronous context.
type Journal struct {
	fs   afero.Fs
	path string
}

// New creates a journal writing to path on fs.
func New(fs afero.Fs, path string) *Journal {
	return &Journal{fs: fs, path: path}
}

// Append writes one termination line to the record. Failures are
// swallowed; losing a line is preferable to killing the reap cycle.
func (j *Journal) Append() {
	fd, err := j.fs.OpenFile(j.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return
	}
	defer fd.Close()

	fmt.Fprintln(fd, TerminationLine)
}

// Read returns the current contents of the termination record.
func (j *Journal) Read() ([]byte, error) {
	return afero.ReadFile(j.fs, j.path)
}

// Event is a single entry in the shell's event log.
type Event struct {
	TimestampMicros int64 `json:"timestamp_micros"`

	// At most one of the following is set.
	RunCommand *RunCommand `json:"run_command,omitempty"`
	Reaped     *Reaped     `json:"reaped,omitempty"`
}

// RunCommand records a command handed to the process launcher.
type RunCommand struct {
	Command    []string `json:"command"`
	Background bool     `json:"background,omitempty"`
}

// Reaped records a child collected by the reaper.
type Reaped struct {
	PID int `json:"pid"`
}

// Recorder is a callback that stores events in an external datastore.
type Recorder func(e *Event) error

// NopRecorder discards all events.
func NopRecorder(*Event) error { return nil }

// NewJSONLinesRecorder creates a Recorder that exports events in
// newline delimited JSON object format.
func NewJSONLinesRecorder(w io.Writer) Recorder {
	return func(e *Event) error {
		if e.TimestampMicros == 0 {
			e.TimestampMicros = time.Now().UnixNano() / int64(time.Microsecond)
		}
		entry, err := json.Marshal(e)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(entry))
		return err
	}
}

// ReadJSONLinesLog parses a newline delimited JSON event log.
func ReadJSONLinesLog(r io.Reader, handler func(e *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var event Event
		if err := decoder.Decode(&event); err != nil {
			return err
		}
		handler(&event)
	}
	return nil
}
