package company

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerline/ledgerline/internal/platform/httpx"
	"github.com/ledgerline/ledgerline/internal/rbac"
	"github.com/ledgerline/ledgerline/internal/shared"
)

// maxLogoBytes bounds the accepted logo upload size.
const maxLogoBytes = 5 << 20

type Handler struct {
	service *Service
	mw      rbac.Middleware
}

func NewHandler(service *Service, mw rbac.Middleware) *Handler {
	return &Handler{service: service, mw: mw}
}

func (h *Handler) MountRoutes(r chi.Router) {
	// Every signed-in user may read the profile; only holders of the
	// company-edit permission may change it.
	r.With(h.mw.RequireAuthenticated()).Get("/", h.get)
	r.Group(func(r chi.Router) {
		r.Use(h.mw.Require(shared.PermEditCompanyDetails))
		r.Post("/", h.create)
		r.Put("/", h.update)
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	details, err := h.service.Get(r.Context())
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, details)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	fields, err := parseForm(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if fields.CompanyName == nil || *fields.CompanyName == "" {
		httpx.FieldErrors(w, "validation failed", map[string]string{"company_name": "required"})
		return
	}
	details, err := h.service.Create(r.Context(), fields)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, details)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	fields, err := parseForm(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	details, err := h.service.Update(r.Context(), fields)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, details)
}

// parseForm reads the multipart body. Absent fields stay nil so updates
// only touch what the client sent.
func parseForm(r *http.Request) (UpdateFields, error) {
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		return UpdateFields{}, err
	}
	text := func(name string) *string {
		values, ok := r.MultipartForm.Value[name]
		if !ok || len(values) == 0 {
			return nil
		}
		return &values[0]
	}
	fields := UpdateFields{
		CompanyName:        text("company_name"),
		Address:            text("address"),
		City:               text("city"),
		State:              text("state"),
		PinCode:            text("pin_code"),
		Country:            text("country"),
		Phone:              text("phone"),
		Email:              text("email"),
		GSTNo:              text("gst_no"),
		RegistrationNumber: text("registration_number"),
	}
	if raw := text("is_own_company"); raw != nil {
		isOwn, err := strconv.ParseBool(*raw)
		if err != nil {
			return UpdateFields{}, err
		}
		fields.IsOwnCompany = &isOwn
	}

	file, _, err := r.FormFile("logo")
	if err == nil {
		defer file.Close()
		logo, err := io.ReadAll(io.LimitReader(file, maxLogoBytes))
		if err != nil {
			return UpdateFields{}, err
		}
		fields.Logo = logo
	} else if err != http.ErrMissingFile {
		return UpdateFields{}, err
	}
	return fields, nil
}
