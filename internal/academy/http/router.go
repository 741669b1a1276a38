package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/upperhound/academy/internal/academy/service"
	"github.com/upperhound/academy/internal/academy/store"
	"github.com/upperhound/academy/pkg/httpx"
	"github.com/upperhound/academy/pkg/jwtx"
	"github.com/upperhound/academy/pkg/slogx"

	_ "github.com/upperhound/academy/api/docs" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       *jwtx.Signer
	verifier     *jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	InvitationService *service.InvitationService
	AccountService    *service.AccountService
	TokenService      *service.TokenService
	BootstrapService  *service.BootstrapService
}

func NewRouter(
	signer *jwtx.Signer,
	verifier *jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerInvitations()
	r.registerAuth()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Upper Hound Academy Invitation Service API
//	@version		0.1.0
//	@description	Invitation lifecycle service for the Upper Hound Dog Grooming Academy coursework platform.
//	@description
//	@description				Staff issue single-use invitation tokens; recipients verify and accept them to create accounts.
//	@description				Session tokens are EdDSA-signed JWTs presented as Bearer credentials.
//
//	@contact.name				Upper Hound Academy Platform Team
//	@contact.url				https://github.com/upperhound/academy
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerInvitations() {
	issueHandler := &InvitationIssueHandler{InvitationService: r.InvitationService}
	listHandler := &InvitationListHandler{InvitationService: r.InvitationService}
	verifyHandler := &InvitationVerifyHandler{InvitationService: r.InvitationService}
	acceptHandler := &InvitationAcceptHandler{InvitationService: r.InvitationService}

	// POST /invitations - staff operation, moderate rate limit by account
	securedIssue := httpx.Chain(issueHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole("course_leader", "admin"),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)
	r.Mux.Handle("POST /invitations", securedIssue)

	// GET /invitations - admin dashboard feed, moderate rate limit by account
	securedList := httpx.Chain(listHandler,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole("admin"),
		httpx.RateLimitByAccount(httpx.ModerateLimit),
	)
	r.Mux.Handle("GET /invitations", securedList)

	// POST /invitations/verify - public token probe, strict rate limit by IP
	r.Mux.Handle("POST /invitations/verify",
		httpx.Chain(verifyHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /invitations/accept - public token probe, strict rate limit by IP
	r.Mux.Handle("POST /invitations/accept",
		httpx.Chain(acceptHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{AccountService: r.AccountService}
	loginHandler := &LoginHandler{
		AccountService: r.AccountService,
		TokenService:   r.TokenService,
	}

	// POST /auth/register - public signup endpoint, strict rate limit by IP
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - authentication attempts, strict rate limit by IP
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /bootstrap",
		httpx.Chain(bootstrapHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
