package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/internal/rbac"
	"github.com/ledgerline/ledgerline/internal/shared"
)

// Handler exposes authentication endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	rbac     *rbac.Service
	sessions *shared.SessionManager
	csrf     *shared.CSRFManager
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, rbacService *rbac.Service, sessions *shared.SessionManager, csrf *shared.CSRFManager) *Handler {
	return &Handler{logger: logger, service: service, rbac: rbacService, sessions: sessions, csrf: csrf}
}

// MountRoutes registers authentication routes. Login is rate limited per
// client IP to slow down credential stuffing.
func (h *Handler) MountRoutes(r chi.Router) {
	r.With(httprate.LimitByIP(10, time.Minute)).Post("/login", h.login)
	r.Post("/register", h.register)
	r.Post("/logout", h.logout)
	r.Get("/profile", h.profile)
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileResponse struct {
	ID          int64    `json:"id"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	IsActive    bool     `json:"is_active"`
	IsCEO       bool     `json:"is_ceo"`
	Permissions []string `json:"permissions"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := httpx.ValidateStruct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.FullName, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			httpx.Error(w, http.StatusConflict, err.Error())
			return
		}
		h.logger.Error("register", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSON(w, http.StatusCreated, profileResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.FullName,
		Email:    user.Email,
		IsActive: user.IsActive,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := httpx.ValidateStruct(req); err != nil {
		httpx.RespondValidation(w, err)
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}
	sess.SetUser(strconv.FormatInt(user.ID, 10))

	expiresAt := time.Now().Add(h.sessions.TTL())
	if err := h.service.RegisterSession(r.Context(), sess.ID, user.ID, expiresAt, r.RemoteAddr, r.UserAgent()); err != nil {
		h.logger.Error("register session", slog.Any("error", err))
	}

	token, _ := h.csrf.EnsureToken(r.Context(), sess)
	perms, err := h.rbac.EffectivePermissions(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("resolve permissions at login", slog.Any("error", err))
		perms = []string{}
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"user": profileResponse{
			ID:          user.ID,
			Username:    user.Username,
			Name:        user.FullName,
			Email:       user.Email,
			IsActive:    user.IsActive,
			IsCEO:       user.IsCEO,
			Permissions: perms,
		},
		"csrf_token": token,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess != nil {
		if err := h.service.RemoveSession(r.Context(), sess.ID); err != nil {
			h.logger.Error("remove session", slog.Any("error", err))
		}
		h.sessions.Destroy(sess)
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// profile returns the caller's account plus a freshly resolved permission
// set, so the client never trusts a stale cached copy.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	sess := shared.SessionFromContext(r.Context())
	if sess == nil || sess.User() == "" {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, please sign in")
		return
	}
	userID, err := strconv.ParseInt(sess.User(), 10, 64)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "unauthorized, please sign in")
		return
	}

	identity, err := h.rbac.FindIdentity(r.Context(), userID)
	if err != nil {
		if errors.Is(err, rbac.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "user not found")
			return
		}
		h.logger.Error("load profile", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	perms, err := h.rbac.EffectivePermissions(r.Context(), userID)
	if err != nil {
		h.logger.Error("resolve permissions", slog.Any("error", err))
		httpx.Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httpx.JSON(w, http.StatusOK, profileResponse{
		ID:          identity.ID,
		Username:    identity.Username,
		Name:        identity.FullName,
		Email:       identity.Email,
		IsActive:    identity.IsActive,
		IsCEO:       identity.IsCEO,
		Permissions: perms,
	})
}
