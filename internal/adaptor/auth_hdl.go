package adaptor

import (
	"net/http"

	"owner-admin/internal/dto/request"
	"owner-admin/internal/dto/response"
	"owner-admin/internal/usecase"
	"owner-admin/internal/view"
	"owner-admin/pkg/middleware"
	"owner-admin/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	view    *view.Renderer
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, renderer *view.Renderer, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		view:    renderer,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// ShowRegister handles GET /users/register
func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, http.StatusOK, "")
}

// Register handles POST /users/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.view.Error(w, http.StatusBadRequest, "Invalid form submission")
		return
	}

	roleID, err := utils.ParseID(r.PostFormValue("role"))
	if err != nil {
		h.renderRegister(w, r, http.StatusBadRequest, "A role must be selected")
		return
	}

	req := &request.RegisterForm{
		Username:  r.PostFormValue("username"),
		Password:  r.PostFormValue("password"),
		FirstName: r.PostFormValue("first_name"),
		LastName:  r.PostFormValue("last_name"),
		Email:     r.PostFormValue("email"),
		RoleID:    roleID,
	}

	if err := h.service.Register(r.Context(), req); err != nil {
		h.log.Warn("Registration failed", zap.Error(err), zap.String("username", req.Username))
		h.renderRegister(w, r, http.StatusBadRequest, err.Error())
		return
	}

	utils.SeeOther(w, r, middleware.LoginPath)
}

// ShowLogin handles GET /users/login
func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.view.HTML(w, http.StatusOK, "login.gohtml", view.LoginData{})
}

// Login handles POST /users/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		utils.SeeOther(w, r, middleware.LoginPath)
		return
	}

	req := &request.LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	// Failures carry no detail back to the form, only the redirect
	session, err := h.service.Login(r.Context(), req)
	if err != nil {
		utils.SeeOther(w, r, middleware.LoginPath)
		return
	}

	h.setSessionCookie(w, session)
	utils.SeeOther(w, r, "/")
}

// ShowLogout handles GET /users/logout
func (h *AuthHandler) ShowLogout(w http.ResponseWriter, r *http.Request) {
	username, _ := utils.GetUsernameFromContext(r.Context())
	h.view.HTML(w, http.StatusOK, "logout.gohtml", view.LogoutData{Username: username})
}

// Logout handles POST /users/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.SeeOther(w, r, middleware.LoginPath)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		h.log.Error("Logout failed", zap.Error(err))
		h.view.Error(w, http.StatusInternalServerError, "Error destroying session")
		return
	}

	h.clearSessionCookie(w)
	utils.SeeOther(w, r, middleware.LoginPath)
}

// ==================== HELPER METHODS ====================

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, status int, errMsg string) {
	roles, err := h.service.ListRoles(r.Context())
	if err != nil {
		h.view.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.view.HTML(w, status, "register.gohtml", view.RegisterData{
		Roles: response.RolesToOptions(roles),
		Error: errMsg,
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *response.AuthSession) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
