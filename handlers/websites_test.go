package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/seoatlas/seoatlas/internal/projects"
	"github.com/seoatlas/seoatlas/internal/websites"
	"github.com/stretchr/testify/require"
)

func newWebsiteTestServer(t *testing.T) (*gin.Engine, *projects.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	projectRepo := projects.NewMemoryRepository()
	g := gin.New()
	RegisterWebsiteRoutes(g, websites.NewMemoryRepository(projectRepo))
	RegisterProjectRoutes(g, projectRepo)
	return g, projectRepo
}

func TestWebsiteCreateEchoesDomain(t *testing.T) {
	g, _ := newWebsiteTestServer(t)

	w := doJSON(t, g, http.MethodPost, "/websites/create", `{"domain":"https://example.com"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	require.Equal(t, "https://example.com", created["domain"])
}

func TestWebsiteCRUD(t *testing.T) {
	g, _ := newWebsiteTestServer(t)

	w := doJSON(t, g, http.MethodPost, "/websites/create", `{"domain":"https://example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	id := created["id"].(string)

	w = doJSON(t, g, http.MethodGet, "/websites/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, g, http.MethodGet, "/websites/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = doJSON(t, g, http.MethodPut, "/websites/"+id, `{"domain":"https://other.example.com","status":"live"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "https://other.example.com", updated["domain"])
	require.Equal(t, "live", updated["status"])

	w = doJSON(t, g, http.MethodDelete, "/websites/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Website deleted")

	w = doJSON(t, g, http.MethodGet, "/websites/"+id, "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestWebsiteDomainValidation(t *testing.T) {
	g, _ := newWebsiteTestServer(t)

	for _, bad := range []string{
		`{"domain":"not-a-url"}`,
		`{"domain":"ftp://example.com"}`,
		`{}`,
	} {
		w := doJSON(t, g, http.MethodPost, "/websites/create", bad)
		require.Equal(t, http.StatusBadRequest, w.Code, bad)
		require.True(t, strings.Contains(w.Body.String(), "detail"))
	}
}

func TestWebsiteDeleteCascade(t *testing.T) {
	g, projectRepo := newWebsiteTestServer(t)

	w := doJSON(t, g, http.MethodPost, "/websites/create", `{"domain":"https://example.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	websiteID := created["id"].(string)

	w = doJSON(t, g, http.MethodPost, "/projects/create",
		`{"name":"P1","client_id":"c1","project_type":"blog","website_id":"`+websiteID+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = doJSON(t, g, http.MethodPost, "/projects/create",
		`{"name":"P2","client_id":"c1","project_type":"blog"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, g, http.MethodDelete, "/websites/"+websiteID, "")
	require.Equal(t, http.StatusOK, w.Code)

	remaining, err := projectRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "P2", remaining[0].Name)
}
