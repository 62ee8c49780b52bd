//go:build integration

// Package integration drives the API end to end through Godog features.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/Avaria395/SmartExpenseTracker/test/integration/steps"
)

// suiteOptions builds the Godog run configuration. Scenarios share one
// in-memory database, so they run sequentially and without randomization.
func suiteOptions(t *testing.T) godog.Options {
	opts := godog.Options{
		Format:      "pretty",
		Paths:       []string{"features"},
		Output:      colors.Colored(os.Stdout),
		Concurrency: 1,
		Randomize:   0,
		Strict:      true,
		TestingT:    t,
	}
	if tags := os.Getenv("GODOG_TAGS"); tags != "" {
		opts.Tags = tags
	}
	if format := os.Getenv("GODOG_FORMAT"); format != "" {
		opts.Format = format
	}
	return opts
}

func TestFeatures(t *testing.T) {
	opts := suiteOptions(t)
	suite := godog.TestSuite{
		Name:                 "smart-expense-tracker-api",
		ScenarioInitializer:  steps.InitializeScenario,
		TestSuiteInitializer: steps.InitializeTestSuite,
		Options:              &opts,
	}
	if suite.Run() != 0 {
		t.Fatal("one or more feature scenarios failed")
	}
}
