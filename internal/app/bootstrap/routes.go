// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	aboutadminfeature "github.com/kapilraj10/portfolio-web/internal/app/features/aboutadmin"
	blogfeature "github.com/kapilraj10/portfolio-web/internal/app/features/blog"
	blogadminfeature "github.com/kapilraj10/portfolio-web/internal/app/features/blogadmin"
	contactfeature "github.com/kapilraj10/portfolio-web/internal/app/features/contact"
	contactinfoadminfeature "github.com/kapilraj10/portfolio-web/internal/app/features/contactinfoadmin"
	dashboardfeature "github.com/kapilraj10/portfolio-web/internal/app/features/dashboard"
	errorsfeature "github.com/kapilraj10/portfolio-web/internal/app/features/errors"
	experienceadminfeature "github.com/kapilraj10/portfolio-web/internal/app/features/experienceadmin"
	healthfeature "github.com/kapilraj10/portfolio-web/internal/app/features/health"
	homefeature "github.com/kapilraj10/portfolio-web/internal/app/features/home"
	imagesadminfeature "github.com/kapilraj10/portfolio-web/internal/app/features/imagesadmin"
	inboxfeature "github.com/kapilraj10/portfolio-web/internal/app/features/inbox"
	loginfeature "github.com/kapilraj10/portfolio-web/internal/app/features/login"
	logoutfeature "github.com/kapilraj10/portfolio-web/internal/app/features/logout"
	projectsadminfeature "github.com/kapilraj10/portfolio-web/internal/app/features/projectsadmin"
	statsadminfeature "github.com/kapilraj10/portfolio-web/internal/app/features/statsadmin"
	appresources "github.com/kapilraj10/portfolio-web/internal/app/resources"
	aboutstore "github.com/kapilraj10/portfolio-web/internal/app/store/about"
	adminauthstore "github.com/kapilraj10/portfolio-web/internal/app/store/adminauth"
	blogstore "github.com/kapilraj10/portfolio-web/internal/app/store/blog"
	contactstore "github.com/kapilraj10/portfolio-web/internal/app/store/contact"
	contactinfostore "github.com/kapilraj10/portfolio-web/internal/app/store/contactinfo"
	experiencestore "github.com/kapilraj10/portfolio-web/internal/app/store/experience"
	imagestore "github.com/kapilraj10/portfolio-web/internal/app/store/image"
	projectstore "github.com/kapilraj10/portfolio-web/internal/app/store/project"
	projectstatsstore "github.com/kapilraj10/portfolio-web/internal/app/store/projectstats"
	"github.com/kapilraj10/portfolio-web/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and any Startup
// hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the backend API client bundled in Deps
//   - logger: the fully configured zap.Logger for this app
//
// The route map has two halves:
//   - Public site: home, blog, contact, health probes, embedded assets.
//     No authentication; every page degrades to default content when the
//     backend is unreachable.
//   - Admin console under /admin: everything except /admin/login sits
//     behind the session guard, which requires an admin or moderator
//     role obtained through the two-step (password + OTP) sign-in.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	// One store per backend resource; all share the API client and its
	// connection pool.
	aboutStore := aboutstore.New(deps.API)
	authStore := adminauthstore.New(deps.API)
	blogStore := blogstore.New(deps.API)
	contactStore := contactstore.New(deps.API)
	contactInfoStore := contactinfostore.New(deps.API)
	experienceStore := experiencestore.New(deps.API)
	imageStore := imagestore.New(deps.API)
	projectStore := projectstore.New(deps.API)
	statsStore := projectstatsstore.New(deps.API)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Session middleware: loads SessionUser into context if logged in.
	// Public routes simply have no session, which is fine.
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection middleware. Cookie name is "portfolio_csrf" to avoid
	// collisions with other services on the same domain. Forms carry the
	// token under gorilla's default field name.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("portfolio_csrf"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...))

	// ─────────────────────────────────────────────────────────────────────────
	// Public site
	// ─────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// Landing page: profile, expertise, experience, projects, stats, contact
	homeHandler := homefeature.NewHandler(aboutStore, experienceStore, projectStore, statsStore, contactInfoStore, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Blog listing and post pages
	blogHandler := blogfeature.NewHandler(blogStore, errLog, logger)
	r.Mount("/blog", blogfeature.Routes(blogHandler))

	// Standalone contact page
	contactHandler := contactfeature.NewHandler(contactStore, errLog, logger)
	r.Mount("/contact", contactfeature.Routes(contactHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// ─────────────────────────────────────────────────────────────────────────
	// Admin console
	// ─────────────────────────────────────────────────────────────────────────

	r.Route("/admin", func(ar chi.Router) {
		// Two-step sign-in is the only console route outside the guard.
		loginHandler := loginfeature.NewHandler(authStore, sessionMgr, errLog, logger)
		ar.Mount("/login", loginfeature.Routes(loginHandler))

		ar.Group(func(gr chi.Router) {
			gr.Use(sessionMgr.RequireConsole("admin", "moderator"))

			gr.Get("/", func(w http.ResponseWriter, req *http.Request) {
				http.Redirect(w, req, "/admin/dashboard", http.StatusSeeOther)
			})

			dashboardHandler := dashboardfeature.NewHandler(contactStore, imageStore, logger)
			gr.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

			aboutAdminHandler := aboutadminfeature.NewHandler(aboutStore, errLog, logger)
			gr.Mount("/about", aboutadminfeature.Routes(aboutAdminHandler))

			experienceAdminHandler := experienceadminfeature.NewHandler(experienceStore, errLog, logger)
			gr.Mount("/experiences", experienceadminfeature.Routes(experienceAdminHandler))

			projectsAdminHandler := projectsadminfeature.NewHandler(projectStore, errLog, logger)
			gr.Mount("/projects", projectsadminfeature.Routes(projectsAdminHandler))

			blogAdminHandler := blogadminfeature.NewHandler(blogStore, errLog, logger)
			gr.Mount("/blogs", blogadminfeature.Routes(blogAdminHandler))

			statsAdminHandler := statsadminfeature.NewHandler(statsStore, errLog, logger)
			gr.Mount("/stats", statsadminfeature.Routes(statsAdminHandler))

			contactInfoAdminHandler := contactinfoadminfeature.NewHandler(contactInfoStore, errLog, logger)
			gr.Mount("/contact-info", contactinfoadminfeature.Routes(contactInfoAdminHandler))

			imagesAdminHandler := imagesadminfeature.NewHandler(imageStore, errLog, logger)
			gr.Mount("/images", imagesadminfeature.Routes(imagesAdminHandler))

			inboxHandler := inboxfeature.NewHandler(contactStore, errLog, logger)
			gr.Mount("/inbox", inboxfeature.Routes(inboxHandler))

			logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
			gr.Mount("/logout", logoutfeature.Routes(logoutHandler))
		})
	})

	// 404 catch-all for unmatched routes
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
