package view

import (
	"net/http/httptest"
	"testing"

	"owner-admin/internal/dto/response"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRendererExecutesEveryPage(t *testing.T) {
	r, err := NewRenderer(zap.NewNop())
	require.NoError(t, err)

	owner := &response.OwnerView{
		ID:          1,
		FirstName:   "Grace",
		LastName:    "Hopper",
		PhoneNumber: "555-0100",
		Email:       "grace@example.com",
	}

	pages := []struct {
		name string
		data any
		want string
	}{
		{"owners.gohtml", OwnersData{Username: "boss", Owners: []response.OwnerView{*owner}}, "Grace"},
		{"owners.gohtml", OwnersData{Username: "boss"}, "No owners yet."},
		{"owner_create.gohtml", OwnerFormData{}, "Create owner"},
		{"owner_update.gohtml", OwnerFormData{Owner: owner}, `value="Grace"`},
		{"owner_delete.gohtml", OwnerFormData{Owner: owner}, "Really delete"},
		{"register.gohtml", RegisterData{Roles: []response.RoleOption{{ID: 1, Name: "admin"}}}, "admin"},
		{"login.gohtml", LoginData{}, "Login"},
		{"logout.gohtml", LogoutData{Username: "boss"}, "boss"},
		{"error.gohtml", ErrorData{Status: 404, Message: "Owner not found"}, "Owner not found"},
	}

	for _, page := range pages {
		rec := httptest.NewRecorder()
		r.HTML(rec, 200, page.name, page.data)

		require.Equal(t, 200, rec.Code, page.name)
		require.Contains(t, rec.Body.String(), page.want, page.name)
		require.Contains(t, rec.Header().Get("Content-Type"), "text/html", page.name)
	}
}

func TestRendererErrorPage(t *testing.T) {
	r, err := NewRenderer(zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.Error(rec, 500, "Internal server error")

	require.Equal(t, 500, rec.Code)
	require.Contains(t, rec.Body.String(), "Internal server error")
}
