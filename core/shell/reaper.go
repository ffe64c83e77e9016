package shell

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/Hatemabdelfatah/Simple-Shell-Multi-Processing/core/journal"
)

// Reaper collects terminated child processes out-of-band.
//
// It wakes on SIGCHLD and drains every terminated child with a
// non-blocking wait, because multiple terminations can coalesce into a
// single delivered signal. Each reaped child appends one line to the
// termination journal. The goroutine holds no file handles between
// wake-ups; the journal opens and closes the record per append.
type Reaper struct {
	journal *journal.Journal
	record  journal.Recorder

	sigs chan os.Signal
	done chan struct{}
}

// StartReaper subscribes to SIGCHLD and starts the reap loop. record
// may be nil to disable event logging.
func StartReaper(j *journal.Journal, record journal.Recorder) *Reaper {
	if record == nil {
		record = journal.NopRecorder
	}
	r := &Reaper{
		journal: j,
		record:  record,
		// Buffered: coalesced signals only need one pending wake-up.
		sigs: make(chan os.Signal, 1),
		done: make(chan struct{}),
	}

	signal.Notify(r.sigs, unix.SIGCHLD)
	go r.run()

	return r
}

// Stop unsubscribes from SIGCHLD and waits for the loop to finish.
// Children terminating afterwards are no longer collected.
func (r *Reaper) Stop() {
	signal.Stop(r.sigs)
	close(r.sigs)
	<-r.done
}

func (r *Reaper) run() {
	defer close(r.done)
	for range r.sigs {
		r.drain()
	}
}

// drain reaps every currently terminated child without blocking.
func (r *Reaper) drain() {
	for {
		var ws unix.WaitStatus
		pid, err := unix.Wait4(-1, &ws, unix.WNOHANG, nil)
		switch {
		case err == unix.EINTR:
			continue
		case err != nil || pid <= 0:
			// No terminated children left (or none at all).
			return
		}

		r.journal.Append()
		_ = r.record(&journal.Event{Reaped: &journal.Reaped{PID: pid}})
	}
}
