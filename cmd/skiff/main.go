package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"skiff/builtins"
	"skiff/eval"
	"skiff/parser"
	"skiff/repl"
	"skiff/trace"
)

func main() {
	traceEnabled := flag.Bool("trace", false, "Enable function-call tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter pattern (glob, e.g., 'fib' or 'do_*')")
	flag.Parse()

	if *traceEnabled {
		var filters []string
		if *traceFilter != "" {
			filters = strings.Split(*traceFilter, ",")
			for i := range filters {
				filters[i] = strings.TrimSpace(filters[i])
			}
		}
		trace.Init(true, filters, os.Stderr)
		log.Printf("Tracing enabled (filters: %v)", filters)
	} else {
		trace.Init(false, nil, nil)
	}

	if flag.NArg() == 0 {
		repl.New(os.Stdin, os.Stdout).Run()
		return
	}

	if err := runFile(flag.Arg(0), os.Stderr); err != nil {
		os.Exit(1)
	}
}

// runFile executes one script, reporting failures to out. Parse
// diagnostics render with span highlighting, same as the REPL; the
// runtime-error prefix is reserved for errors raised during execution.
func runFile(path string, out io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "Failed to read %s: %v\n", path, err)
		return err
	}
	source := string(src)

	program, diags := parser.Parse(source)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprint(out, d.Render(source))
		}
		return fmt.Errorf("%d parse error(s)", len(diags))
	}

	ev := eval.New()
	builtins.Install(ev)
	if _, err := ev.Eval(program); err != nil {
		fmt.Fprintf(out, "== Runtime Error: %v\n", err)
		return err
	}
	return nil
}
