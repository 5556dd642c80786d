package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"intervals/interval"
)

const helpText = `Available commands:
  add <start> <end>     Add the interval [start, end) to the set
  remove <start> <end>  Remove the interval [start, end) from the set
  clear                 Empty the interval set
  displayList           Display the current interval set
  enableDebugging       Enable diagnostic output
  disableDebugging      Disable diagnostic output
  help                  Show this help
  exit                  Exit the program`

// commandLoop reads commands from in, applies them to a single interval set
// and writes the results to out.
type commandLoop struct {
	in  io.Reader
	out io.Writer

	json bool

	set interval.Set
}

func newCommandLoop(in io.Reader, out io.Writer, json bool) *commandLoop {
	return &commandLoop{
		in:   in,
		out:  out,
		json: json,
	}
}

// run processes commands until exit or the end of the input. Command errors
// are reported to the user and do not terminate the loop.
func (l *commandLoop) run() error {
	scanner := bufio.NewScanner(l.in)

	fmt.Fprint(l.out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			fmt.Fprint(l.out, "> ")
			continue
		}

		if fields[0] == "exit" {
			return nil
		}

		err := l.dispatch(fields[0], fields[1:])
		if err != nil {
			fmt.Fprintln(l.out, "Error:", err)
		}

		fmt.Fprint(l.out, "> ")
	}

	return errors.Wrap(scanner.Err(), "reading commands")
}

func (l *commandLoop) dispatch(cmd string, args []string) error {
	switch cmd {
	case "add", "remove":
		start, end, err := parseRange(args)
		if err != nil {
			return err
		}

		if cmd == "add" {
			err = l.set.Insert(start, end)
		} else {
			err = l.set.Remove(start, end)
		}
		if err != nil {
			return errors.Wrapf(err, "%s %d %d", cmd, start, end)
		}

		return l.display()
	case "clear":
		l.set.Clear()

		return l.display()
	case "displayList":
		return l.display()
	case "enableDebugging":
		l.set.Debug = log.Printf
		fmt.Fprintln(l.out, "Debugging mode enabled")

		return nil
	case "disableDebugging":
		l.set.Debug = nil
		fmt.Fprintln(l.out, "Debugging mode disabled")

		return nil
	case "help":
		fmt.Fprintln(l.out, helpText)

		return nil
	default:
		return errors.Errorf("unknown command %q, try 'help'", cmd)
	}
}

// parseRange parses the two integer arguments of add and remove and validates
// that they form a proper interval.
func parseRange(args []string) (start, end int, err error) {
	if len(args) != 2 {
		return 0, 0, errors.Errorf("expected 2 arguments, got %d", len(args))
	}

	start, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "parsing start value")
	}

	end, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "parsing end value")
	}

	if start >= end {
		return 0, 0, errors.Errorf("start must be less than end, got [%d, %d)", start, end)
	}

	return start, end, nil
}

// display renders the current interval set to the output, either in the
// original "[(1, 3), (5, 8)]" form or as a JSON array.
func (l *commandLoop) display() error {
	if l.json {
		intervals := l.set.Intervals()
		if intervals == nil {
			intervals = []interval.Interval{}
		}

		out, err := jsoniter.MarshalToString(intervals)
		if err != nil {
			return errors.Wrap(err, "encoding intervals")
		}

		fmt.Fprintln(l.out, "Intervals:", out)

		return nil
	}

	fmt.Fprintln(l.out, "Intervals:", l.set.String())

	return nil
}
