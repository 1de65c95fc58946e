// Package term puts the controlling terminal into the unbuffered, no-echo
// mode the LC-3 machine needs for its memory-mapped keyboard and its GETC
// and IN traps, and restores it on exit or interrupt.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/waxwing-systems/lc3vm/internal/log"
)

// ErrNoTTY is returned by NewAdapter when the given file is not a terminal,
// which is the normal case under `go test` and in CI: stdin is redirected.
var ErrNoTTY = fmt.Errorf("term: not a terminal")

// interruptExitCode is the process exit code used on SIGINT, matching the
// original program's exit(-2).
const interruptExitCode = -2

// Adapter implements the terminal-adapter contract the VM core consumes:
// raw-mode toggling, a non-blocking keyboard poll, and blocking
// single-character reads, backed by golang.org/x/term and termios ioctls.
type Adapter struct {
	in      *os.File
	fd      int
	state   *term.State
	pending *byte

	log *log.Logger
}

// NewAdapter wraps in (conventionally os.Stdin) for use as a terminal
// adapter. It returns ErrNoTTY if in is not connected to a terminal.
func NewAdapter(in *os.File) (*Adapter, error) {
	fd := int(in.Fd())

	if !term.IsTerminal(fd) {
		return nil, ErrNoTTY
	}

	return &Adapter{in: in, fd: fd, log: log.DefaultLogger()}, nil
}

// EnableRawMode puts the terminal into no-echo, no-line-buffering mode and
// remembers the prior state so RestoreMode can undo it. It also sets VMIN=0,
// VTIME=1 so reads return after a bounded ~100ms wait rather than blocking
// forever, which is what makes KeyAvailable's poll non-blocking in practice.
func (a *Adapter) EnableRawMode() error {
	state, err := term.MakeRaw(a.fd)
	if err != nil {
		return fmt.Errorf("term: enable raw mode: %w", err)
	}

	a.state = state

	if err := a.setReadTimeout(0, 1); err != nil {
		return fmt.Errorf("term: set read timeout: %w", err)
	}

	a.log.Debug("raw mode enabled")

	return nil
}

// RestoreMode restores whatever terminal state EnableRawMode observed.
// Errors are logged, not returned: cleanup must not fail the process.
func (a *Adapter) RestoreMode() {
	if a.state == nil {
		return
	}

	if err := term.Restore(a.fd, a.state); err != nil {
		a.log.Warn("restore terminal mode failed", log.Any("err", err))
	}
}

// KeyAvailable reports whether at least one byte is waiting on stdin. It may
// block up to the bounded VTIME set by EnableRawMode while finding out.
func (a *Adapter) KeyAvailable() bool {
	var buf [1]byte

	n, err := a.in.Read(buf[:])
	if err != nil || n == 0 {
		return false
	}

	a.pending = &buf[0]

	return true
}

// ReadChar blocks until one byte is available on stdin and returns it. If
// KeyAvailable already consumed a byte this cycle, that byte is returned
// first.
func (a *Adapter) ReadChar() byte {
	if a.pending != nil {
		c := *a.pending
		a.pending = nil

		return c
	}

	var buf [1]byte

	for {
		n, err := a.in.Read(buf[:])
		if n == 1 {
			return buf[0]
		}

		// A read that times out under VMIN=0/VTIME returns no bytes, which
		// os.File reports as io.EOF; keep waiting.
		if err != nil && !errors.Is(err, io.EOF) {
			return 0
		}
	}
}

// InstallInterruptHandler arranges for SIGINT to restore the terminal,
// write a trailing newline, and terminate the process with a distinct exit
// code, matching the original handler's restore/newline/exit(-2) sequence.
func (a *Adapter) InstallInterruptHandler() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGINT)

	go func() {
		<-sig

		a.RestoreMode()
		fmt.Println()
		os.Exit(interruptExitCode)
	}()
}

func (a *Adapter) setReadTimeout(vmin, vtime byte) error {
	termios, err := unix.IoctlGetTermios(a.fd, getTermiosIoctl)
	if err != nil {
		return err
	}

	termios.Cc[unix.VMIN] = vmin
	termios.Cc[unix.VTIME] = vtime

	return unix.IoctlSetTermios(a.fd, setTermiosIoctl, termios)
}
