package conformance

import (
	"fmt"
	"strings"

	"skiff/builtins"
	"skiff/eval"
	"skiff/parser"
	"skiff/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests. One evaluator serves a whole run,
// so a suite's setup bindings are visible to its tests; each setup
// block runs at most once.
type Runner struct {
	evaluator   *eval.Evaluator
	setupSuites map[string]bool
}

// NewRunner creates a test runner with builtins installed
func NewRunner() *Runner {
	ev := eval.New()
	builtins.Install(ev)
	return &Runner{
		evaluator:   ev,
		setupSuites: make(map[string]bool),
	}
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}

	if err := r.runSetup(test.Suite); err != nil {
		return TestResult{Test: test, Error: err}
	}

	err := r.check(test.Test)
	return TestResult{Test: test, Passed: err == nil, Error: err}
}

// RunAll executes every loaded test
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, 0, len(tests))
	for _, test := range tests {
		results = append(results, r.Run(test))
	}
	return results
}

// runSetup executes a suite's setup source the first time one of its
// tests runs
func (r *Runner) runSetup(suite TestSuite) error {
	if suite.Setup == "" || r.setupSuites[suite.Name] {
		return nil
	}
	r.setupSuites[suite.Name] = true
	if _, err := r.evaluator.Run(suite.Setup); err != nil {
		return fmt.Errorf("suite setup: %w", err)
	}
	return nil
}

// check runs one test case's code and compares against its expectation
func (r *Runner) check(tc TestCase) error {
	program, diags := parser.Parse(tc.Code)

	if len(tc.Expect.Diagnostics) > 0 {
		return checkDiagnostics(tc.Expect.Diagnostics, diags)
	}
	if len(diags) > 0 {
		return fmt.Errorf("unexpected parse errors: %v", diags)
	}

	result, err := r.evaluator.Eval(program)
	r.evaluator.ClearBreak()

	if tc.Expect.Error != "" {
		if err == nil {
			return fmt.Errorf("got %s, want runtime error %s", result.String(), tc.Expect.Error)
		}
		if got := types.CodeOf(err).String(); got != tc.Expect.Error {
			return fmt.Errorf("error code = %s, want %s", got, tc.Expect.Error)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("runtime error: %w", err)
	}

	if tc.Expect.Type != "" {
		if got := result.Kind().String(); got != tc.Expect.Type {
			return fmt.Errorf("kind = %s, want %s", got, tc.Expect.Type)
		}
	}
	if tc.Expect.Value != nil || tc.Expect.Type == "" {
		want := yamlToValue(tc.Expect.Value)
		if !result.Equal(want) {
			return fmt.Errorf("got %s, want %s", result.String(), want.String())
		}
	}
	return nil
}

// checkDiagnostics verifies every expected substring appears in some
// parse error message
func checkDiagnostics(want []string, diags []parser.ParseError) error {
	if len(diags) == 0 {
		return fmt.Errorf("parsed cleanly, want diagnostics %v", want)
	}
	for _, substr := range want {
		found := false
		for _, d := range diags {
			if strings.Contains(d.Message, substr) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no diagnostic contains %q in %v", substr, diags)
		}
	}
	return nil
}

// yamlToValue converts a YAML scalar to a runtime value
func yamlToValue(v interface{}) types.Value {
	switch x := v.(type) {
	case nil:
		return types.Nil
	case bool:
		return types.NewBool(x)
	case int:
		return types.NewNumber(float64(x))
	case int64:
		return types.NewNumber(float64(x))
	case float64:
		return types.NewNumber(x)
	case string:
		return types.NewStr(x)
	default:
		return types.NewStr(fmt.Sprintf("%v", x))
	}
}

// Stats summarizes a run
type Stats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats tallies results
func ComputeStats(results []TestResult) Stats {
	var s Stats
	for _, r := range results {
		s.Total++
		switch {
		case r.Skipped:
			s.Skipped++
		case r.Passed:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}

// FormatStats renders a run summary
func FormatStats(s Stats) string {
	return fmt.Sprintf("total=%d passed=%d failed=%d skipped=%d", s.Total, s.Passed, s.Failed, s.Skipped)
}
