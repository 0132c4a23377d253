// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	healthfeature "github.com/loomfeed/loomfeed/internal/app/features/health"
	profilefeature "github.com/loomfeed/loomfeed/internal/app/features/profile"
	threadsfeature "github.com/loomfeed/loomfeed/internal/app/features/threads"
	userdirfeature "github.com/loomfeed/loomfeed/internal/app/features/userdir"
	threadstore "github.com/loomfeed/loomfeed/internal/app/store/threads"
	userstore "github.com/loomfeed/loomfeed/internal/app/store/users"
	"github.com/loomfeed/loomfeed/internal/app/system/revalidate"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the stores, wires the
// coordinators, and mounts a feature router per API area.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	users := userstore.New(deps.MongoDatabase)
	threads := threadstore.New(deps.MongoDatabase)
	pageCache := revalidate.New(deps.Redis, logger)

	uploader := &profilefeature.StorageUploader{
		Store:   deps.Storage,
		BaseURL: appCfg.BaseURL + appCfg.StorageLocalURL,
	}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Redis, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Stored avatars are served straight off disk with pre-compressed
	// file support (gzip/brotli).
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Profile upsert
	profileCoord := profilefeature.NewCoordinator(users, uploader, pageCache, logger)
	profileHandler := profilefeature.NewHandler(profileCoord, logger)
	r.Mount("/profile", profilefeature.Routes(profileHandler))

	// Thread creation
	threadsCoord := threadsfeature.NewCoordinator(users, threads, pageCache, logger)
	threadsHandler := threadsfeature.NewHandler(threadsCoord, logger)
	r.Mount("/threads", threadsfeature.Routes(threadsHandler))

	// User directory, profiles, and post trees
	userdirHandler := userdirfeature.NewHandler(users, deps.MongoDatabase, logger)
	r.Mount("/users", userdirfeature.Routes(userdirHandler))

	return r, nil
}
