package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "coffeequeue/internal/adapters/in/http"
	"coffeequeue/internal/adapters/out/postgres"
	"coffeequeue/internal/adapters/out/postgres/orderrepo"
	"coffeequeue/internal/core/application/usecases/commands"
	"coffeequeue/internal/core/application/usecases/queries"
	"coffeequeue/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type orderJSON struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customer_name"`
	Drink        string    `json:"drink"`
	Size         string    `json:"size"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type queueJSON struct {
	Active     []orderJSON `json:"active"`
	RecentDone []orderJSON `json:"recent_done"`
}

type errorJSON struct {
	Error string `json:"error"`
}

type uowFactoryAdapter struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (a uowFactoryAdapter) Create() commands.OrderUoW {
	return a.factory.Create()
}

var _ ports.UnitOfWork = (*postgres.GormUnitOfWork)(nil)

// APIIntegrationTestSuite drives the JSON API end to end against a real
// PostgreSQL container: cashier creates orders, barista transitions them,
// both read their views back.
type APIIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	router    *echo.Echo
}

func (suite *APIIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	uowFactory := uowFactoryAdapter{factory: postgres.NewGormUnitOfWorkFactory(db)}
	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(uowFactory),
		commands.NewChangeOrderStatusCommandHandler(uowFactory),
		queries.NewGetOrderQueryHandler(db),
		queries.NewGetOrdersQueryHandler(db),
		queries.NewGetQueueQueryHandler(db),
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.router = httpadapter.NewRouter(server, logger)
}

func (suite *APIIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders RESTART IDENTITY").Error)
}

func (suite *APIIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *APIIntegrationTestSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)
	return rec
}

func (suite *APIIntegrationTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

func (suite *APIIntegrationTestSuite) createOrder(customer, drink, size, notes string) orderJSON {
	body := fmt.Sprintf(
		`{"customer_name": %q, "drink": %q, "size": %q, "notes": %q}`,
		customer, drink, size, notes,
	)
	rec := suite.do(http.MethodPost, "/api/orders", body)
	suite.Require().Equal(http.StatusCreated, rec.Code)

	var created orderJSON
	suite.decode(rec, &created)
	return created
}

func (suite *APIIntegrationTestSuite) TestOrderLifecycle_EndToEnd() {
	created := suite.createOrder("Alex", "Latte", "Large", "Oat milk")
	suite.Positive(created.ID)
	suite.Equal("Alex", created.CustomerName)
	suite.Equal("NEW", created.Status)
	suite.Equal("Oat milk", created.Notes)
	suite.False(created.CreatedAt.IsZero())

	rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/orders/%d", created.ID), `{"status": "IN_PROGRESS"}`)
	suite.Require().Equal(http.StatusOK, rec.Code)
	var updated orderJSON
	suite.decode(rec, &updated)
	suite.Equal("IN_PROGRESS", updated.Status)

	rec = suite.do(http.MethodGet, "/api/orders?status=IN_PROGRESS", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var inProgress []orderJSON
	suite.decode(rec, &inProgress)
	suite.Require().Len(inProgress, 1)
	suite.Equal(created.ID, inProgress[0].ID)

	rec = suite.do(http.MethodPatch, fmt.Sprintf("/api/orders/%d", created.ID), `{"status": "DONE"}`)
	suite.Require().Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/api/queue", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var queue queueJSON
	suite.decode(rec, &queue)
	suite.Empty(queue.Active)
	suite.Require().Len(queue.RecentDone, 1)
	suite.Equal(created.ID, queue.RecentDone[0].ID)
}

func (suite *APIIntegrationTestSuite) TestCreateOrder_MissingSize_NothingPersisted() {
	rec := suite.do(http.MethodPost, "/api/orders", `{"customer_name": "Alex", "drink": "Latte", "size": ""}`)

	suite.Require().Equal(http.StatusBadRequest, rec.Code)
	var errResp errorJSON
	suite.decode(rec, &errResp)
	suite.Contains(errResp.Error, "size")

	rec = suite.do(http.MethodGet, "/api/orders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var orders []orderJSON
	suite.decode(rec, &orders)
	suite.Empty(orders)
}

func (suite *APIIntegrationTestSuite) TestListOrders_NewestFirst() {
	first := suite.createOrder("Sam", "Espresso", "Small", "Double shot")
	second := suite.createOrder("Kim", "Mocha", "Medium", "Less sugar")

	rec := suite.do(http.MethodGet, "/api/orders", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var orders []orderJSON
	suite.decode(rec, &orders)

	suite.Require().Len(orders, 2)
	suite.Equal(second.ID, orders[0].ID)
	suite.Equal(first.ID, orders[1].ID)
}

func (suite *APIIntegrationTestSuite) TestListOrders_InvalidStatusFilter() {
	rec := suite.do(http.MethodGet, "/api/orders?status=BOGUS", "")

	suite.Require().Equal(http.StatusBadRequest, rec.Code)
	var errResp errorJSON
	suite.decode(rec, &errResp)
	suite.Equal("invalid status", errResp.Error)
}

func (suite *APIIntegrationTestSuite) TestGetOrder_FoundAndMissing() {
	created := suite.createOrder("Alex", "Latte", "Large", "")

	rec := suite.do(http.MethodGet, fmt.Sprintf("/api/orders/%d", created.ID), "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var found orderJSON
	suite.decode(rec, &found)
	suite.Equal(created.ID, found.ID)

	rec = suite.do(http.MethodGet, "/api/orders/9999", "")
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *APIIntegrationTestSuite) TestChangeStatus_UnknownOrder() {
	rec := suite.do(http.MethodPatch, "/api/orders/9999", `{"status": "DONE"}`)

	suite.Require().Equal(http.StatusNotFound, rec.Code)
}

func (suite *APIIntegrationTestSuite) TestChangeStatus_InvalidStatus() {
	created := suite.createOrder("Alex", "Latte", "Large", "")

	rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/orders/%d", created.ID), `{"status": "CANCELLED"}`)

	suite.Require().Equal(http.StatusBadRequest, rec.Code)
	var errResp errorJSON
	suite.decode(rec, &errResp)
	suite.Equal("invalid status", errResp.Error)

	// The order is untouched.
	rec = suite.do(http.MethodGet, fmt.Sprintf("/api/orders/%d", created.ID), "")
	var unchanged orderJSON
	suite.decode(rec, &unchanged)
	suite.Equal("NEW", unchanged.Status)
}

func (suite *APIIntegrationTestSuite) TestChangeStatus_ReopenDoneOrder() {
	created := suite.createOrder("Alex", "Latte", "Large", "")
	suite.do(http.MethodPatch, fmt.Sprintf("/api/orders/%d", created.ID), `{"status": "DONE"}`)

	rec := suite.do(http.MethodPatch, fmt.Sprintf("/api/orders/%d", created.ID), `{"status": "NEW"}`)

	suite.Require().Equal(http.StatusOK, rec.Code)
	var reopened orderJSON
	suite.decode(rec, &reopened)
	suite.Equal("NEW", reopened.Status)
}

func (suite *APIIntegrationTestSuite) TestHealthz() {
	rec := suite.do(http.MethodGet, "/healthz", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("OK", rec.Body.String())
}

func TestAPIIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(APIIntegrationTestSuite))
}
