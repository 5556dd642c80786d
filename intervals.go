// Intervals is an interactive manager for a set of disjoint integer
// intervals. It reads commands from standard input, one per line, and prints
// the resulting interval set after every change.
//
// Supported commands are add, remove, clear, displayList, enableDebugging,
// disableDebugging, help and exit. Intervals are half-open: "add 1 3" adds
// the integers 1 and 2 to the set.
//
// Diagnostic messages will be written to stderr.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/pkg/profile"
)

func main() {
	format := flag.String("format", "text", "Output format for interval listings. One of [text, json].")
	profilingAddr := flag.String("profilingAddr", "", "Listening address for profiling server. Empty disables the server.")
	cpuProfile := flag.Bool("profile", false, "Write a CPU profile to /tmp.")

	flag.Parse()

	switch *format {
	case "text", "json":
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "Unknown format %q\n\n", *format)
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *profilingAddr != "" {
		go func() {
			log.Println("starting profiling server on", *profilingAddr)
			err := http.ListenAndServe(*profilingAddr, nil)
			if err != nil {
				log.Printf("can't start profiling server on %s: %s", *profilingAddr, err)
			}
		}()
	}

	if *cpuProfile {
		defer profile.Start(profile.ProfilePath("/tmp")).Stop()
	}

	fmt.Println("Manage Intervals program. Type 'help' for a list of commands.")

	loop := newCommandLoop(os.Stdin, os.Stdout, *format == "json")

	err := loop.run()
	if err != nil {
		log.Fatalf("can't run command loop: %s", err)
	}
}
