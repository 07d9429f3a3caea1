package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"resume-relevance/internal/repository"
	"resume-relevance/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store := storage.NewStore(filepath.Join(t.TempDir(), "resumes.json"))
	repo := repository.NewResumeRepository(store)

	app := fiber.New()
	api := app.Group("/api")
	NewResumeHandler(repo, zap.NewNop()).RegisterRoutes(api)
	return app
}

const validResume = `{
	"name": "John Doe",
	"position": "Python Developer",
	"experience": 4,
	"skills": ["Python", "Django", "PostgreSQL", "Docker"],
	"education": "Higher technical",
	"languages": ["English B2"],
	"contact_info": {"email": "john@example.com", "phone": "+1-555-0101"}
}`

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func TestCreateResumeReturnsStoredRecord(t *testing.T) {
	app := newTestApp(t)

	status, raw := doRequest(t, app, fiber.MethodPost, "/api/resumes", validResume)
	require.Equal(t, fiber.StatusCreated, status)

	body := gjson.ParseBytes(raw)
	require.True(t, body.Get("success").Bool())
	require.NotEmpty(t, body.Get("data.id").String())
	require.Equal(t, "John Doe", body.Get("data.name").String())
	require.NotEmpty(t, body.Get("data.created_at").String())
}

func TestCreateResumeRejectsInvalidPayload(t *testing.T) {
	app := newTestApp(t)

	// missing required name and skills
	status, raw := doRequest(t, app, fiber.MethodPost, "/api/resumes", `{"position": "Dev"}`)
	require.Equal(t, fiber.StatusBadRequest, status)
	require.False(t, gjson.GetBytes(raw, "success").Bool())
}

func TestCreateResumeRejectsMalformedJSON(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, fiber.MethodPost, "/api/resumes", `{"name": `)
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestListResumesPaginated(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 3; i++ {
		status, _ := doRequest(t, app, fiber.MethodPost, "/api/resumes", validResume)
		require.Equal(t, fiber.StatusCreated, status)
	}

	status, raw := doRequest(t, app, fiber.MethodGet, "/api/resumes?page=1&page_size=2", "")
	require.Equal(t, fiber.StatusOK, status)

	body := gjson.ParseBytes(raw)
	require.Len(t, body.Get("data").Array(), 2)
	require.EqualValues(t, 3, body.Get("pagination.total_items").Int())
	require.EqualValues(t, 2, body.Get("pagination.total_pages").Int())
}

func TestListResumesEmptyStore(t *testing.T) {
	app := newTestApp(t)

	status, raw := doRequest(t, app, fiber.MethodGet, "/api/resumes", "")
	require.Equal(t, fiber.StatusOK, status)

	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Empty(t, body.Data)
}

func TestGetResumeNotFound(t *testing.T) {
	app := newTestApp(t)

	status, _ := doRequest(t, app, fiber.MethodGet, "/api/resumes/missing-id", "")
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestUpdateAndDeleteResume(t *testing.T) {
	app := newTestApp(t)

	status, raw := doRequest(t, app, fiber.MethodPost, "/api/resumes", validResume)
	require.Equal(t, fiber.StatusCreated, status)
	id := gjson.GetBytes(raw, "data.id").String()

	status, raw = doRequest(t, app, fiber.MethodPut, "/api/resumes/"+id, `{"position": "Senior Python Developer"}`)
	require.Equal(t, fiber.StatusOK, status)
	require.Equal(t, "Senior Python Developer", gjson.GetBytes(raw, "data.position").String())
	require.Equal(t, "John Doe", gjson.GetBytes(raw, "data.name").String())

	status, _ = doRequest(t, app, fiber.MethodDelete, "/api/resumes/"+id, "")
	require.Equal(t, fiber.StatusOK, status)

	status, _ = doRequest(t, app, fiber.MethodGet, "/api/resumes/"+id, "")
	require.Equal(t, fiber.StatusNotFound, status)
}

func TestImportHHResume(t *testing.T) {
	app := newTestApp(t)

	payload := `{
		"first_name": "Ivan",
		"last_name": "Petrov",
		"title": "Go Developer",
		"experience": {"total": {"months": 36}},
		"key_skills": [{"name": "Go"}, {"name": "Docker"}]
	}`
	status, raw := doRequest(t, app, fiber.MethodPost, "/api/import/hh", payload)
	require.Equal(t, fiber.StatusCreated, status)

	body := gjson.ParseBytes(raw)
	require.Equal(t, "Ivan Petrov", body.Get("data.name").String())
	require.EqualValues(t, 3, body.Get("data.experience").Int())

	status, _ = doRequest(t, app, fiber.MethodPost, "/api/import/hh", "not-json{")
	require.Equal(t, fiber.StatusBadRequest, status)
}
