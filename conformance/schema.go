package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Setup       string     `yaml:"setup,omitempty"` // source run once before the suite's tests
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or string
	Code        string      `yaml:"code"`
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what result is expected from a test. The runner
// checks fields in a fixed order of precedence:
//
//  1. Diagnostics, when non-empty: the code must parse with errors and
//     every listed substring must appear in some diagnostic message;
//     nothing executes and the other fields are ignored.
//  2. Error, when set: execution must fail with exactly that runtime
//     error code name; Value and Type are ignored.
//  3. Type, when set: the result's kind name must match. Value is then
//     compared only if it is also present.
//  4. Otherwise the result is compared against Value, where an absent
//     or explicit `null` Value means the run must yield nil. Beware the
//     YAML surface: quote code containing `#` or a leading special
//     character, or the scalar will be silently truncated.
type Expectation struct {
	Value       interface{} `yaml:"value,omitempty"`       // exact match on the final value
	Error       string      `yaml:"error,omitempty"`       // runtime error code name, e.g. CannotAdd
	Type        string      `yaml:"type,omitempty"`        // kind name: number, string, bool, map, func, nil
	Diagnostics []string    `yaml:"diagnostics,omitempty"` // substrings of expected parse errors
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	if tc.Skip == nil {
		return false, ""
	}
	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
