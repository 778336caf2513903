package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vitacart/storefront/internal/storefront/session"
	"github.com/vitacart/storefront/pkg/accessx"
	"github.com/vitacart/storefront/pkg/httpx"
	"github.com/vitacart/storefront/pkg/shopapi"
	"github.com/vitacart/storefront/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	Guard      *session.Guard
	API        *shopapi.Client
	Classifier *accessx.Classifier

	// Pages serves the storefront's static page tree. Defaults to the
	// configured pages directory; tests swap in a stub.
	Pages http.Handler
}

func NewRouter(
	guard *session.Guard,
	api *shopapi.Client,
	classifier *accessx.Classifier,
	pages http.Handler,
	buildVersion string,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		Guard:        guard,
		API:          api,
		Classifier:   classifier,
		Pages:        pages,
	}

	// Set default middleware chain. The visitor cookie must exist before
	// anything consults the session store.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		VisitorMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerProxy()
	r.registerSystem()
	r.registerPages()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /api/auth/login - strict rate limit (authentication attempts)
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(&LoginHandler{Guard: r.Guard},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/auth/logout - always succeeds locally
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(&LogoutHandler{Guard: r.Guard},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// GET /api/session - consulted by every page for nav rendering
	r.Mux.Handle("GET /api/session",
		httpx.Chain(&SessionHandler{Guard: r.Guard},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /api/notifications", &NotificationsHandler{})
}

func (r *Router) registerProxy() {
	r.Mux.Handle("GET /api/products",
		httpx.Chain(&ProductsHandler{API: r.API},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /api/products/{id}",
		httpx.Chain(&ProductHandler{API: r.API},
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /api/orders",
		httpx.Chain(&OrdersHandler{Guard: r.Guard, API: r.API},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("GET /api/orders/{id}",
		httpx.Chain(&OrderHandler{Guard: r.Guard, API: r.API},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/orders",
		httpx.Chain(&CreateOrderHandler{Guard: r.Guard, API: r.API},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /api/payments",
		httpx.Chain(&PaymentsHandler{Guard: r.Guard, API: r.API},
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.Guard.Store))
}

func (r *Router) registerPages() {
	// Everything else is a page request; the guard runs before any page
	// content is served.
	r.Mux.Handle("/",
		httpx.Chain(r.Pages,
			GuardMiddleware(r.Guard, r.Classifier),
		),
	)
}
