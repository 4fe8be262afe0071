package http_test

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	httpadapter "coffeequeue/internal/adapters/in/http"
	"coffeequeue/internal/core/application/usecases/commands"
	"coffeequeue/internal/core/application/usecases/queries"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openapiPath = "../../../../api/openapi.yml"

func loadAPIDocument(t *testing.T) *openapi3.T {
	t.Helper()

	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(openapiPath)
	require.NoError(t, err)
	require.NoError(t, doc.Validate(loader.Context))
	return doc
}

func Test_OpenAPIDocument_IsValid(t *testing.T) {
	doc := loadAPIDocument(t)

	assert.Equal(t, "Coffee Queue API", doc.Info.Title)
	assert.NotEmpty(t, doc.Paths.Map())
}

// Every operation the document promises must be registered on the router,
// and every registered route (swagger UI aside) must be documented.
func Test_OpenAPIDocument_MatchesRegisteredRoutes(t *testing.T) {
	doc := loadAPIDocument(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	// Handlers are never invoked here, only their routes are inspected.
	e := httpadapter.NewRouter(httpadapter.NewServer(
		commands.CreateOrderCommandHandler{},
		commands.ChangeOrderStatusCommandHandler{},
		queries.GetOrderQueryHandler{},
		queries.GetOrdersQueryHandler{},
		queries.GetQueueQueryHandler{},
	), logger)

	registered := make(map[string]map[string]bool)
	for _, route := range e.Routes() {
		if strings.HasPrefix(route.Path, "/swagger") {
			continue
		}
		path := echoPathToOpenAPI(route.Path)
		if registered[path] == nil {
			registered[path] = make(map[string]bool)
		}
		registered[path][route.Method] = true
	}

	documented := make(map[string]map[string]bool)
	for path, item := range doc.Paths.Map() {
		documented[path] = make(map[string]bool)
		for method := range item.Operations() {
			documented[path][method] = true
		}
	}

	for path, methods := range documented {
		require.Contains(t, registered, path, "documented path is not routed")
		for method := range methods {
			assert.Truef(t, registered[path][method], "documented operation %s %s is not routed", method, path)
		}
	}

	for path, methods := range registered {
		require.Containsf(t, documented, path, "routed path %s is undocumented", path)
		for method := range methods {
			assert.Truef(t, documented[path][method], "routed operation %s %s is undocumented", method, path)
		}
	}
}

func Test_OpenAPIDocument_StatusEnumeration(t *testing.T) {
	doc := loadAPIDocument(t)

	status := doc.Components.Schemas["Status"]
	require.NotNil(t, status)
	assert.ElementsMatch(t, []any{"NEW", "IN_PROGRESS", "DONE"}, status.Value.Enum)
}

func echoPathToOpenAPI(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if strings.HasPrefix(segment, ":") {
			segments[i] = "{" + segment[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}
