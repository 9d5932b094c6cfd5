package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ledgerline/ledgerline/internal/auth"
	"github.com/ledgerline/ledgerline/internal/company"
	"github.com/ledgerline/ledgerline/internal/invoices"
	"github.com/ledgerline/ledgerline/internal/purchaseorders"
	"github.com/ledgerline/ledgerline/internal/rbac"
	"github.com/ledgerline/ledgerline/internal/shared"
	"github.com/ledgerline/ledgerline/internal/transactions"
	"github.com/ledgerline/ledgerline/internal/users"
	"github.com/ledgerline/ledgerline/internal/vendors"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager

	AuthHandler          *auth.Handler
	VendorHandler        *vendors.Handler
	TransactionHandler   *transactions.Handler
	InvoiceHandler       *invoices.Handler
	PurchaseOrderHandler *purchaseorders.Handler
	CompanyHandler       *company.Handler
	UsersHandler         *users.Handler
	RBACHandler          *rbac.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Route("/api/vendors", params.VendorHandler.MountRoutes)
	r.Route("/api/transactions", params.TransactionHandler.MountRoutes)
	r.Route("/api/invoices", params.InvoiceHandler.MountRoutes)
	r.Route("/api/purchase-orders", params.PurchaseOrderHandler.MountRoutes)
	r.Route("/api/company", params.CompanyHandler.MountRoutes)
	r.Route("/api/admin", func(r chi.Router) {
		params.UsersHandler.MountRoutes(r)
		params.RBACHandler.MountRoutes(r)
	})

	return r
}
