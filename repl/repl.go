package repl

import (
	"bufio"
	"fmt"
	"io"

	"skiff/builtins"
	"skiff/eval"
	"skiff/parser"
)

const prompt = "> "

// Repl is the interactive read-eval-print loop. One evaluator lives
// for the whole session, so bindings persist from line to line.
type Repl struct {
	evaluator *eval.Evaluator
	in        *bufio.Scanner
	out       io.Writer
}

// New creates a session with builtins installed
func New(in io.Reader, out io.Writer) *Repl {
	ev := eval.New()
	builtins.Install(ev)
	return &Repl{
		evaluator: ev,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Evaluator exposes the session's evaluator
func (r *Repl) Evaluator() *eval.Evaluator {
	return r.evaluator
}

// Run loops until `quit` or end of input. Each line is parsed on its
// own; parse diagnostics are rendered against that line and nothing
// executes, while runtime errors are reported and the session
// continues either way.
func (r *Repl) Run() {
	for {
		fmt.Fprint(r.out, prompt)
		if !r.in.Scan() {
			fmt.Fprintln(r.out)
			return
		}
		line := r.in.Text()
		if line == "quit" {
			return
		}
		if line == "" {
			continue
		}
		r.evalLine(line)
	}
}

// evalLine parses and runs one line of input
func (r *Repl) evalLine(line string) {
	program, diags := parser.Parse(line)
	if len(diags) > 0 {
		for _, d := range diags {
			fmt.Fprint(r.out, d.Render(line))
		}
		return
	}

	result, err := r.evaluator.Eval(program)
	r.evaluator.ClearBreak()
	if err != nil {
		fmt.Fprintf(r.out, "== Runtime Error: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, result.String())
}
