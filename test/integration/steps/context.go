// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/chart-of-accounts/backend/config"
	"github.com/chart-of-accounts/backend/internal/infra/dependency"
	"github.com/chart-of-accounts/backend/internal/integration/persistence/model"
	"github.com/chart-of-accounts/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// suite holds resources shared by every scenario.
type suite struct {
	db       *mock.Db
	redis    *mock.Redis
	injector *dependency.Injector
	server   *httptest.Server
}

var shared *suite

// testContext holds the state of a single scenario.
type testContext struct {
	*suite
	client      *http.Client
	headers     map[string]string
	accessToken string
	response    *response
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite starts the API over an in-memory database and cache.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		cfg := &config.Config{
			Server: config.ServerConfig{Environment: "test"},
			Redis:  config.RedisConfig{CacheTTL: time.Minute},
			JWT: config.JWTConfig{
				Secret: testJWTSecret,
				Expiry: time.Hour,
				Issuer: "chart-of-accounts-test",
			},
			Pagination: config.PaginationConfig{DefaultLimit: 50, MaxLimit: 100},
		}

		db := mock.NewDb(model.Models()...)
		redis := mock.NewRedis()
		injector := dependency.NewInjector(cfg, db.DbConn, redis.Client)

		shared = &suite{
			db:       db,
			redis:    redis,
			injector: injector,
			server:   httptest.NewServer(injector.Router.Setup(cfg.Server.Environment)),
		}
	})

	ctx.AfterSuite(func() {
		if shared == nil {
			return
		}
		shared.server.Close()
		shared.redis.Close()
		_ = shared.db.Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated as "([^"]*)"$`, test.iAmAuthenticatedAs)

	// Data setup steps
	ctx.Given(`^a chart of type "([^"]*)" and version "([^"]*)" exists$`, test.aChartOfTypeAndVersionExists)
	ctx.Given(`^the chart (\d+) has the accounts:$`, test.theChartHasTheAccounts)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.suite = shared
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil

	if err := t.redis.Clear(); err != nil {
		return err
	}
	return t.db.ClearDB()
}
