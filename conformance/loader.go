package conformance

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TestPath is where the YAML suites live, relative to this package
const TestPath = "testdata"

// LoadedTest represents a test with its source file path
type LoadedTest struct {
	File  string
	Suite TestSuite
	Test  TestCase
}

// LoadAllTests walks the suite directory and loads every test case
func LoadAllTests() ([]LoadedTest, error) {
	var loaded []LoadedTest

	err := filepath.Walk(TestPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".yaml" {
			return nil
		}

		suite, err := loadSuiteFile(path)
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(TestPath, path)
		for _, test := range suite.Tests {
			loaded = append(loaded, LoadedTest{
				File:  relPath,
				Suite: suite,
				Test:  test,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loaded, nil
}

// loadSuiteFile parses a single YAML suite
func loadSuiteFile(path string) (TestSuite, error) {
	var suite TestSuite
	data, err := os.ReadFile(path)
	if err != nil {
		return suite, err
	}
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return suite, err
	}
	return suite, nil
}
