//go:build !windows

package spawn

import (
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// RunInteractive runs the final dispatched command: the container
// runtime attached to the caller's own stdio, with a PTY allocated when
// tty is requested and both stdin and stdout are terminals. SIGINT and
// SIGTERM received while it runs cancel the subprocess; a second signal
// forces an immediate exit rather than waiting on a wedged child.
func RunInteractive(ctx context.Context, program string, args []string, tty bool) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var interrupted int32
	go func() {
		for range sigCh {
			if atomic.CompareAndSwapInt32(&interrupted, 0, 1) {
				cancel()
				continue
			}
			os.Exit(130)
		}
	}()

	cmd := exec.CommandContext(ctx, program, args...)

	usePTY := tty && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if usePTY {
		return runWithPTY(cmd)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	code, spawnErr := exitCodeFromErr(err)
	if spawnErr != nil {
		return 0, &RuntimeSpawnFailed{Program: program, Cause: spawnErr}
	}
	return code, nil
}

// runWithPTY allocates a pseudo-terminal for cmd, puts the caller's own
// terminal into raw mode for the duration, and relays window-size
// changes through to the child.
func runWithPTY(cmd *exec.Cmd) (int, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return 0, &RuntimeSpawnFailed{Program: cmd.Path, Cause: err}
	}
	defer ptmx.Close()

	resizeCh := make(chan os.Signal, 1)
	signal.Notify(resizeCh, syscall.SIGWINCH)
	defer signal.Stop(resizeCh)
	go func() {
		for range resizeCh {
			_ = pty.InheritSize(os.Stdin, ptmx)
		}
	}()
	resizeCh <- syscall.SIGWINCH

	stdinFd := int(os.Stdin.Fd())
	if oldState, err := term.MakeRaw(stdinFd); err == nil {
		defer term.Restore(stdinFd, oldState)
	}

	doneOut := make(chan struct{})
	go func() {
		defer close(doneOut)
		_, _ = io.Copy(os.Stdout, ptmx)
	}()
	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()

	err = cmd.Wait()
	_ = ptmx.Close()
	<-doneOut

	code, spawnErr := exitCodeFromErr(err)
	if spawnErr != nil {
		return 0, &RuntimeSpawnFailed{Program: cmd.Path, Cause: spawnErr}
	}
	return code, nil
}
