// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/Avaria395/SmartExpenseTracker/internal/infra/cache"
	"github.com/Avaria395/SmartExpenseTracker/internal/infra/dependency"
	"github.com/Avaria395/SmartExpenseTracker/test/integration/mock"
)

// testContext holds the state of one scenario. The database and redis
// connections are shared across scenarios and wiped between them; the
// HTTP server is rebuilt per scenario.
type testContext struct {
	server       *httptest.Server
	client       *http.Client
	db           *mock.Db
	statsCache   *cache.RedisCache
	headers      map[string]string
	ids          map[string]string
	responseCode int
	responseBody []byte
}

// InitializeTestSuite sets up suite-wide resources.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:     &http.Client{Timeout: 10 * time.Second},
		db:         mock.NewDb(),
		statsCache: cache.NewRedisCacheFromClient(mock.NewRedis()),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := test.before(); err != nil {
			return ctx, err
		}
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seeding steps
	ctx.Given(`^a book named "([^"]*)" exists$`, test.aBookNamedExists)
	ctx.Given(`^an expense category named "([^"]*)" exists$`, test.anExpenseCategoryNamedExists)
	ctx.Given(`^an income category named "([^"]*)" exists$`, test.anIncomeCategoryNamedExists)
	ctx.Given(`^an account named "([^"]*)" with balance "([^"]*)" exists$`, test.anAccountNamedWithBalanceExists)
	ctx.Given(`^a budget of "([^"]*)" for category "([^"]*)" in (\d+)-(\d+) exists$`, test.aBudgetForCategoryExists)
	ctx.Given(`^a total budget of "([^"]*)" for (\d+)-(\d+) exists$`, test.aTotalBudgetExists)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)
	ctx.When(`^I store the response field "([^"]*)" as "([^"]*)"$`, test.iStoreTheResponseFieldAs)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) rows in the "([^"]*)" table$`, test.theDbShouldContainRowsInTheTable)
	ctx.Then(`^the account "([^"]*)" should have balance "([^"]*)"$`, test.theAccountShouldHaveBalance)
	ctx.Then(`^the budget for "([^"]*)" in (\d+)-(\d+) should have spent "([^"]*)"$`, test.theBudgetShouldHaveSpent)
}

// before resets the scenario state and rebuilds the HTTP server on top of
// the wiped database.
func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.ids = make(map[string]string)
	t.responseCode = 0
	t.responseBody = nil

	if err := t.db.Clear(); err != nil {
		return err
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}

	injector := dependency.New(t.db.DbConn, t.statsCache, time.Minute, time.UTC, func() bool {
		return true
	})
	t.server = httptest.NewServer(injector.Router.Setup("test"))
	return nil
}
