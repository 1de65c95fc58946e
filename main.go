// Command lc3vm is an interpreter for LC-3 object code: it loads one or more
// binary images into a simulated 16-bit machine and runs them to
// completion.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/waxwing-systems/lc3vm/internal/term"
	"github.com/waxwing-systems/lc3vm/internal/vm"
)

const (
	exitOK         = 0
	exitLoadFailed = 1
	exitUsage      = 2
	exitAborted    = 3
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stdout, "usage: lc3vm <image-file> [<image-file> ...]")
		return exitUsage
	}

	var opts []vm.Option

	adapter, err := term.NewAdapter(os.Stdin)
	if err == nil {
		if err := adapter.EnableRawMode(); err != nil {
			fmt.Fprintf(os.Stdout, "failed to enable raw mode: %s\n", err)
		} else {
			defer adapter.RestoreMode()
			adapter.InstallInterruptHandler()
			opts = append(opts, vm.WithTerminal(adapter))
		}
	} else if !errors.Is(err, term.ErrNoTTY) {
		fmt.Fprintf(os.Stdout, "failed to attach terminal: %s\n", err)
	}

	machine := vm.New(opts...)
	loader := vm.NewLoader(machine)

	for _, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed to load image: %s\n", path)
			return exitLoadFailed
		}

		if _, _, err := loader.Load(b); err != nil {
			fmt.Fprintf(os.Stdout, "failed to load image: %s\n", path)
			return exitLoadFailed
		}
	}

	if err := machine.Run(); err != nil {
		fmt.Fprintf(os.Stdout, "%s\n", err)
		return exitAborted
	}

	return exitOK
}
