package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/apperror"
	"github.com/fedejuret/fulltimeforce-github-commits-test/internal/model"
)

const internalServerError = "Internal Server Error"

// Handler is an HTTP handler that reports failure by returning an error.
type Handler func(w http.ResponseWriter, r *http.Request) error

// ErrorHandler turns Handler errors into JSON error responses.
type ErrorHandler struct {
	log          *logrus.Logger
	exposeErrors bool
}

func NewErrorHandler(log *logrus.Logger, exposeErrors bool) *ErrorHandler {
	return &ErrorHandler{log: log, exposeErrors: exposeErrors}
}

// Handle adapts h to net/http. A StatusError decides status and message; any
// other error answers 500 "Internal Server Error" unless errors are exposed.
func (e *ErrorHandler) Handle(h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			e.Write(w, r, err)
		}
	}
}

// Write sends the JSON body for err.
func (e *ErrorHandler) Write(w http.ResponseWriter, r *http.Request, err error) {
	status, message := e.describe(err)

	entry := e.log.WithError(err).WithFields(logrus.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"request_id": middleware.GetReqID(r.Context()),
	})
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Request rejected")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(model.ErrorResponse{Status: status, Message: message}); err != nil {
		e.log.WithError(err).Error("Error encoding error response")
	}
}

func (e *ErrorHandler) describe(err error) (int, string) {
	if se, ok := apperror.As(err); ok {
		return se.Status(), se.Message()
	}
	if e.exposeErrors {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, internalServerError
}

func (e *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) error {
	return apperror.New(http.StatusNotFound, "Not Found")
}

func (e *ErrorHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) error {
	return apperror.New(http.StatusMethodNotAllowed, "Method Not Allowed")
}

// Recoverer converts a panic in next into a 500 JSON response.
func (e *ErrorHandler) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			e.log.WithFields(logrus.Fields{
				"panic":      rec,
				"path":       r.URL.Path,
				"request_id": middleware.GetReqID(r.Context()),
			}).Error("Recovered from panic")
			e.Write(w, r, apperror.New(http.StatusInternalServerError, internalServerError))
		}()
		next.ServeHTTP(w, r)
	})
}
