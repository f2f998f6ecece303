package conformance

import (
	"strings"
	"testing"
)

func TestLoadAllTestsFindsSuites(t *testing.T) {
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("LoadAllTests: %v", err)
	}
	if len(tests) == 0 {
		t.Fatal("no tests loaded")
	}

	files := make(map[string]bool)
	for _, tc := range tests {
		files[tc.File] = true
	}
	for _, want := range []string{
		"arithmetic.yaml", "builtins.yaml", "control_flow.yaml",
		"diagnostics.yaml", "functions.yaml",
	} {
		if !files[want] {
			t.Errorf("suite %s not loaded", want)
		}
	}
}

func TestLoadedCodeKeepsHashCharacter(t *testing.T) {
	// an unquoted plain scalar would swallow " #" as a YAML comment,
	// silently truncating the program under test
	tests, err := LoadAllTests()
	if err != nil {
		t.Fatalf("LoadAllTests: %v", err)
	}
	for _, tc := range tests {
		if tc.File == "diagnostics.yaml" && tc.Test.Name == "two_problems_one_pass" {
			if !strings.Contains(tc.Test.Code, "#") {
				t.Fatalf("code = %q, lost the # character to YAML comment parsing", tc.Test.Code)
			}
			return
		}
	}
	t.Fatal("two_problems_one_pass not found in diagnostics.yaml")
}
