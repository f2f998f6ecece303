package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"skiff/types"
)

// stdinReader is shared so successive input() calls do not discard
// buffered bytes
var stdinReader = bufio.NewReader(os.Stdin)

// builtinPrint writes its arguments space-separated followed by a
// newline. Strings print their raw contents, not their quoted form.
// print() -> nil
func builtinPrint(interp types.Interp, args []types.Value) (types.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Display()
	}
	fmt.Println(strings.Join(parts, " "))
	return types.Nil, nil
}

// builtinInput reads one line from standard input, without the
// trailing newline. An optional prompt is written first.
// input([prompt]) -> string
func builtinInput(interp types.Interp, args []types.Value) (types.Value, error) {
	if len(args) > 1 {
		return nil, types.NewError(types.ErrBadArgCount)
	}
	if len(args) == 1 {
		fmt.Print(args[0].Display())
	}
	line, err := stdinReader.ReadString('\n')
	if err != nil && line == "" {
		return types.NewStr(""), nil
	}
	line = strings.TrimRight(line, "\r\n")
	return types.NewStr(line), nil
}

// builtinType returns the kind of its argument as a string
// type(value) -> string
func builtinType(interp types.Interp, args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewError(types.ErrBadArgCount)
	}
	return types.NewStr(args[0].Kind().String()), nil
}

// builtinExit terminates the process. An optional numeric argument is
// the exit status, defaulting to 0.
// exit([status]) -> does not return
func builtinExit(interp types.Interp, args []types.Value) (types.Value, error) {
	status := 0
	if len(args) > 0 {
		n, err := types.AsNumber(args[0])
		if err != nil {
			return nil, err
		}
		status = int(n)
	}
	os.Exit(status)
	return types.Nil, nil
}

// builtinSleep pauses execution for the given number of seconds
// sleep(seconds) -> nil
func builtinSleep(interp types.Interp, args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewError(types.ErrBadArgCount)
	}
	secs, err := types.AsNumber(args[0])
	if err != nil {
		return nil, err
	}
	time.Sleep(time.Duration(secs * float64(time.Second)))
	return types.Nil, nil
}

// builtinRun executes another source file against the live evaluator
// in a nested scope and yields its final value
// run(path) -> value
func builtinRun(interp types.Interp, args []types.Value) (types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewError(types.ErrBadArgCount)
	}
	path, err := types.AsStr(args[0])
	if err != nil {
		return nil, err
	}
	return interp.EvalFile(path.Val)
}
