// Command classguard is a thin demo/ops CLI around the classification
// decision core: it marshals files on disk into SubjectContext,
// ResourceDescriptor, and Policy values, invokes the core, and prints
// the result. It carries no business logic of its own.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(Run(os.Args, os.Stdout, os.Stderr))
}

// Run dispatches on args[1] and returns a process exit code. It takes
// stdout/stderr as parameters so tests can capture output without
// exec'ing a binary, matching the teacher's cmd/helm.Run shape.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		printUsage(stderr)
		return 2
	}

	switch args[1] {
	case "decide":
		return runDecide(args[2:], stdout, stderr)
	case "render":
		return runRender(args[2:], stdout, stderr)
	case "validate":
		return runValidate(args[2:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "classguard: unknown command %q\n", args[1])
		printUsage(stderr)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: classguard <command> [arguments]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  decide   <subject.json> <resource.json> [policy.json]")
	fmt.Fprintln(w, "  render   <subject.json> <resource.json> <policy.json> <payload.json> [config.yaml]")
	fmt.Fprintln(w, "  validate <policy.json>")
}
