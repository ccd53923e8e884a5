// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/brightharbor/schoolhub/internal/app/features/about"
	analyticsfeature "github.com/brightharbor/schoolhub/internal/app/features/analytics"
	authfeature "github.com/brightharbor/schoolhub/internal/app/features/authapi"
	bannersfeature "github.com/brightharbor/schoolhub/internal/app/features/banners"
	contactfeature "github.com/brightharbor/schoolhub/internal/app/features/contact"
	dashboardfeature "github.com/brightharbor/schoolhub/internal/app/features/dashboard"
	eventsfeature "github.com/brightharbor/schoolhub/internal/app/features/events"
	galleryfeature "github.com/brightharbor/schoolhub/internal/app/features/gallery"
	healthfeature "github.com/brightharbor/schoolhub/internal/app/features/health"
	mediafeature "github.com/brightharbor/schoolhub/internal/app/features/media"
	seedfeature "github.com/brightharbor/schoolhub/internal/app/features/seed"
	settingsfeature "github.com/brightharbor/schoolhub/internal/app/features/settings"
	teamfeature "github.com/brightharbor/schoolhub/internal/app/features/team"
	testimonialsfeature "github.com/brightharbor/schoolhub/internal/app/features/testimonials"
	uploadsfeature "github.com/brightharbor/schoolhub/internal/app/features/uploads"
	"github.com/brightharbor/schoolhub/internal/app/system/auth"
	"github.com/brightharbor/schoolhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. SchoolHub mounts the JSON API
// under /api, the uploaded-file server under the configured upload URL,
// and the health endpoint at the root.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens := auth.NewTokens(appCfg.JWTSecret, appCfg.TokenTTL)
	errLog := respond.NewErrorLogger(logger)
	db := deps.MongoDatabase

	// The media library needs Cloudinary credentials; without them the
	// media routes are simply absent.
	var mediaLib mediafeature.Library
	if appCfg.CloudinaryCloudName != "" {
		lib, err := mediafeature.NewCloudinaryLibrary(
			appCfg.CloudinaryCloudName, appCfg.CloudinaryAPIKey, appCfg.CloudinaryAPISecret)
		if err != nil {
			return nil, err
		}
		mediaLib = lib
	} else {
		logger.Info("media library disabled, no cloudinary credentials")
	}

	r := chi.NewRouter()

	// Global auth middleware: loads verified claims into context when a
	// token is presented. Anonymous requests pass through; RequireAuth
	// on the protected groups rejects them there.
	r.Use(tokens.LoadUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Get("/health", healthHandler.Serve)

	// Uploaded files with pre-compressed file support (gzip/brotli)
	r.Handle(appCfg.UploadURL+"/*", fileserver.Handler(appCfg.UploadURL, appCfg.UploadDir))

	r.Route("/api", func(api chi.Router) {
		authHandler := authfeature.NewHandler(db, tokens, errLog, logger)
		api.Route("/auth", authHandler.MountRoutes)

		bannersHandler := bannersfeature.NewHandler(db, errLog, logger)
		api.Route("/banners", bannersHandler.MountRoutes)

		eventsHandler := eventsfeature.NewHandler(db, errLog, logger)
		api.Route("/events", eventsHandler.MountRoutes)

		teamHandler := teamfeature.NewHandler(db, errLog, logger)
		api.Route("/team", teamHandler.MountRoutes)

		testimonialsHandler := testimonialsfeature.NewHandler(db, errLog, logger)
		api.Route("/testimonials", testimonialsHandler.MountRoutes)

		galleryHandler := galleryfeature.NewHandler(db, errLog, logger)
		api.Route("/gallery", galleryHandler.MountRoutes)

		contactHandler := contactfeature.NewHandler(db, errLog, logger)
		api.Route("/contact", contactHandler.MountRoutes)

		aboutHandler := aboutfeature.NewHandler(db, errLog, logger)
		api.Route("/about", aboutHandler.MountRoutes)

		settingsHandler := settingsfeature.NewHandler(db, errLog, logger)
		api.Route("/settings", settingsHandler.MountRoutes)

		analyticsHandler := analyticsfeature.NewHandler(db, errLog, logger)
		api.Route("/analytics", analyticsHandler.MountRoutes)

		dashboardHandler := dashboardfeature.NewHandler(db, errLog, logger)
		api.Route("/dashboard", dashboardHandler.MountRoutes)

		uploadsHandler := uploadsfeature.NewHandler(appCfg.UploadDir, appCfg.UploadURL, errLog, logger)
		api.Route("/upload", uploadsHandler.MountRoutes)

		seedHandler := seedfeature.NewHandler(db, appCfg.SeedSecret, errLog, logger)
		api.Route("/seed", seedHandler.MountRoutes)

		if mediaLib != nil {
			mediaHandler := mediafeature.NewHandler(mediaLib, errLog, logger)
			api.Route("/media", mediaHandler.MountRoutes)
		}
	})

	return r, nil
}
