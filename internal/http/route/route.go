package route

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/http/controller"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/http/view"
)

type RouteConfig struct {
	App              *chi.Mux
	Log              *logrus.Logger
	ErrorHandler     *controller.ErrorHandler
	CommitController *controller.CommitController
}

func (c *RouteConfig) Setup() *chi.Mux {
	r := c.App
	if r == nil {
		r = chi.NewRouter()
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(c.Log))
	r.Use(c.ErrorHandler.Recoverer)

	r.NotFound(c.ErrorHandler.Handle(c.ErrorHandler.NotFound))
	r.MethodNotAllowed(c.ErrorHandler.Handle(c.ErrorHandler.MethodNotAllowed))

	r.Get("/", c.ErrorHandler.Handle(c.CommitController.Index))
	r.Handle("/static/*", http.StripPrefix("/static/", view.Static()))
	return r
}

// RequestLogger logs one line per request once the response is written.
func RequestLogger(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				log.WithFields(logrus.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"status":      status,
					"bytes":       ww.BytesWritten(),
					"duration_ms": time.Since(start).Milliseconds(),
					"request_id":  middleware.GetReqID(r.Context()),
					"remote_addr": r.RemoteAddr,
				}).Info("HTTP request")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
