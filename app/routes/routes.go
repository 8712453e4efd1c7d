package routes

import (
	"net/http"
	"time"

	"blogpost/app/controllers"
	"blogpost/app/middleware"
	"blogpost/app/repositories"
	"blogpost/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Options configures the middleware chain.
type Options struct {
	Logger         zerolog.Logger
	RequestTimeout time.Duration
}

// SetupRoutes defines the blog post API over a Badger-backed store.
func SetupRoutes(db *badger.DB, opts Options) *mux.Router {
	return SetupRoutesWithRepository(repositories.NewBadgerBlogPostRepository(db), opts)
}

// SetupRoutesWithRepository defines the blog post API over any store.
func SetupRoutesWithRepository(repo repositories.BlogPostRepository, opts Options) *mux.Router {
	router := mux.NewRouter()

	chain := []mux.MiddlewareFunc{
		middleware.RequestID(opts.Logger),
		middleware.Logger,
		middleware.Recoverer,
		middleware.ContentTypeJSON,
	}
	if opts.RequestTimeout > 0 {
		chain = append(chain, middleware.Timeout(opts.RequestTimeout))
	}
	router.Use(chain...)

	controller := controllers.NewBlogPostController(services.NewBlogPostService(repo))

	router.HandleFunc("/blogpost", controller.Index).Methods("GET")
	router.HandleFunc("/blogpost/{id}", controller.Show).Methods("GET")
	router.HandleFunc("/blogpost", controller.Create).Methods("POST")
	router.HandleFunc("/blogpost/{id}", controller.Edit).Methods("PUT")
	router.HandleFunc("/blogpost/{id}", controller.Delete).Methods("DELETE")

	router.HandleFunc("/healthz", controller.Health).Methods("GET")

	// Router middleware only runs for matched routes, so the fallbacks get
	// the chain applied directly. Unknown methods are reported as 404 too.
	notFound := wrap(http.HandlerFunc(controllers.NotFound), chain)
	router.NotFoundHandler = notFound
	router.MethodNotAllowedHandler = notFound

	return router
}

func wrap(h http.Handler, chain []mux.MiddlewareFunc) http.Handler {
	for i := len(chain) - 1; i >= 0; i-- {
		h = chain[i](h)
	}
	return h
}

// NewServer builds the HTTP server for the router.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
