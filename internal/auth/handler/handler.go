// Package handler is the thin HTTP layer over the authentication service.
// It translates JSON and bearer tokens; every decision, including the admin
// capability check, belongs to the service.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"custos/internal/auth/models"
	"custos/internal/platform/middleware"
	dErrors "custos/pkg/domain-errors"
	"custos/pkg/platform/httputil"
)

// Service defines the interface for authentication operations.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Principal, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.Session, error)
	Logout(ctx context.Context, token string) (string, error)
	CurrentUser(ctx context.Context, token string) (*models.Principal, error)
	ListUsers(ctx context.Context, token string) ([]*models.Principal, error)
	DeleteUser(ctx context.Context, token, username string) error
}

// Handler handles the authentication and admin endpoints.
type Handler struct {
	auth   Service
	logger *slog.Logger
}

// New creates a new auth Handler.
func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{auth: auth, logger: logger}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/logout", h.handleLogout)
	r.Get("/auth/me", h.handleCurrentUser)

	r.Get("/admin/users", h.handleListUsers)
	r.Delete("/admin/users/{username}", h.handleDeleteUser)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	p, err := h.auth.Register(r.Context(), req)
	if err != nil {
		h.logFailure(r, "register", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, registerResponse{
		Username: p.Username,
		Role:     string(p.Role),
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	sess, err := h.auth.Login(r.Context(), req)
	if err != nil {
		h.logFailure(r, "login", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, loginResponse{
		Token:    sess.Token,
		Username: sess.Username,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	username, err := h.auth.Logout(r.Context(), bearerToken(r))
	if err != nil {
		h.logFailure(r, "logout", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, logoutResponse{Username: username})
}

func (h *Handler) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	p, err := h.auth.CurrentUser(r.Context(), bearerToken(r))
	if err != nil {
		h.logFailure(r, "current_user", err)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, newPrincipalResponse(p))
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.auth.ListUsers(r.Context(), bearerToken(r))
	if err != nil {
		h.logFailure(r, "list_users", err)
		httputil.WriteError(w, err)
		return
	}

	users := make([]principalResponse, 0, len(list))
	for _, p := range list {
		users = append(users, newPrincipalResponse(p))
	}

	httputil.WriteJSON(w, http.StatusOK, listUsersResponse{Users: users})
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	if err := h.auth.DeleteUser(r.Context(), bearerToken(r), username); err != nil {
		h.logFailure(r, "delete_user", err)
		httputil.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logFailure(r *http.Request, operation string, err error) {
	h.logger.WarnContext(r.Context(), "operation failed",
		"request_id", middleware.GetRequestID(r.Context()),
		"operation", operation,
		"error", err.Error(),
	)
}

// bearerToken extracts the session token from the Authorization header. An
// absent or malformed header is simply the anonymous caller.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
