package wire

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"owner-admin/internal/data/entity"
	"owner-admin/internal/data/repository"
	"owner-admin/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*httptest.Server, *repository.MemoryUserRepository) {
	t.Helper()

	users := repository.NewMemoryUserRepository()
	repos := &repository.Repository{
		User: users,
		Role: repository.NewMemoryRoleRepository(
			entity.Role{ID: 1, Name: "admin"},
			entity.Role{ID: 2, Name: "operator"},
		),
		Owner:   repository.NewMemoryOwnerRepository(),
		Session: repository.NewMemorySessionRepository(),
	}

	config := &utils.Config{
		Session: utils.SessionConfig{TTLHours: 1},
	}

	app, err := Wiring(repos, config, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)

	return srv, users
}

// newClient returns a cookie-jar client that does not follow redirects, so
// each response's status and Location can be asserted directly.
func newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func get(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.PostForm(url, form)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestUnauthenticatedRequestsRedirectToLogin(t *testing.T) {
	srv, _ := newTestApp(t)
	client := newClient(t)

	// Form routes and mutation routes are both gated.
	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/owners"},
		{http.MethodGet, "/owner/create"},
		{http.MethodGet, "/owner/update/1"},
		{http.MethodGet, "/users/logout"},
	}
	for _, p := range paths {
		resp := get(t, client, srv.URL+p.path)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode, p.path)
		require.Equal(t, "/users/login", resp.Header.Get("Location"), p.path)
	}

	resp := postForm(t, client, srv.URL+"/owner/create", url.Values{"first_name": {"x"}})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/users/login", resp.Header.Get("Location"))

	resp = postForm(t, client, srv.URL+"/owner/delete/1", url.Values{})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/users/login", resp.Header.Get("Location"))
}

func TestRegisterLoginOwnerCRUDLogout(t *testing.T) {
	srv, users := newTestApp(t)
	client := newClient(t)

	// Registration form lists the roles.
	resp := get(t, client, srv.URL+"/users/register")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := body(t, resp)
	require.Contains(t, page, "admin")
	require.Contains(t, page, "operator")

	// Register redirects to login and writes exactly one role link.
	resp = postForm(t, client, srv.URL+"/users/register", url.Values{
		"username":   {"boss"},
		"password":   {"hunter2"},
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
		"role":       {"1"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/users/login", resp.Header.Get("Location"))

	links := users.RoleLinks()
	require.Len(t, links, 1)
	require.Equal(t, int64(1), links[0].RoleID)

	created, err := users.FindByUsername(t.Context(), "boss")
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, created.ID, links[0].UserID)
	require.NotEqual(t, "hunter2", created.PasswordHash)

	// Wrong password bounces back to the login form.
	resp = postForm(t, client, srv.URL+"/users/login", url.Values{
		"username": {"boss"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/users/login", resp.Header.Get("Location"))

	// Correct credentials land on home, which forwards to the owner list.
	resp = postForm(t, client, srv.URL+"/users/login", url.Values{
		"username": {"boss"},
		"password": {"hunter2"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))

	resp = get(t, client, srv.URL+"/")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/owners", resp.Header.Get("Location"))

	resp = get(t, client, srv.URL+"/owners")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), "No owners yet.")

	// Create.
	resp = postForm(t, client, srv.URL+"/owner/create", url.Values{
		"first_name":   {"Grace"},
		"last_name":    {"Hopper"},
		"phone_number": {"555-0100"},
		"email":        {"grace@example.com"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/owners", resp.Header.Get("Location"))

	resp = get(t, client, srv.URL+"/owners")
	page = body(t, resp)
	require.Contains(t, page, "Grace")
	require.Contains(t, page, "Hopper")
	require.Contains(t, page, "555-0100")
	require.Contains(t, page, "grace@example.com")

	// Update form is prefilled; unknown ids are a 404 page.
	resp = get(t, client, srv.URL+"/owner/update/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), `value="Grace"`)

	resp = get(t, client, srv.URL+"/owner/update/999")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = postForm(t, client, srv.URL+"/owner/update/1", url.Values{
		"first_name":   {"Bea"},
		"last_name":    {"Arthur"},
		"phone_number": {"555-0199"},
		"email":        {"bea@example.com"},
	})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = get(t, client, srv.URL+"/owners")
	page = body(t, resp)
	require.Contains(t, page, "Bea")
	require.NotContains(t, page, "Grace")

	// Delete confirmation then delete.
	resp = get(t, client, srv.URL+"/owner/delete/1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, body(t, resp), "Bea")

	resp = postForm(t, client, srv.URL+"/owner/delete/1", url.Values{})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = get(t, client, srv.URL+"/owners")
	require.Contains(t, body(t, resp), "No owners yet.")

	// Logout revokes the session; the guard rejects the next request.
	resp = get(t, client, srv.URL+"/users/logout")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postForm(t, client, srv.URL+"/users/logout", url.Values{})
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/users/login", resp.Header.Get("Location"))

	resp = get(t, client, srv.URL+"/owners")
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/users/login", resp.Header.Get("Location"))
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	srv, _ := newTestApp(t)
	client := newClient(t)

	form := url.Values{
		"username":   {"boss"},
		"password":   {"hunter2"},
		"first_name": {"Ada"},
		"last_name":  {"Lovelace"},
		"email":      {"ada@example.com"},
		"role":       {"1"},
	}

	resp := postForm(t, client, srv.URL+"/users/register", form)
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	resp = postForm(t, client, srv.URL+"/users/register", form)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body(t, resp), "username already taken")
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestApp(t)
	client := newClient(t)

	resp := get(t, client, srv.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
