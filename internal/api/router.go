package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	apimiddleware "github.com/coursekit/course-api/internal/api/middleware"
	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/service"
	"github.com/coursekit/course-api/internal/service/auth"
)

// BasePath prefixes every API route.
const BasePath = "/api/v1"

// RouterConfig holds the dependencies of the HTTP router.
type RouterConfig struct {
	Logger        *slog.Logger
	JWTService    auth.JWTService
	Tokens        TokenIssuer
	Users         service.UserService
	Files         service.FileService
	Courses       service.CourseService
	Exercises     service.ExerciseService
	Static        http.FileSystem
	PublicBaseURL string
}

// NewRouter builds the router with all routes and middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(apimiddleware.NewTraceMiddleware(log))
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTService)
	users := NewUserHandler(cfg.Users)
	authHandler := NewAuthHandler(cfg.Tokens)
	files := NewFileHandler(cfg.Files, cfg.PublicBaseURL)
	courses := NewCourseHandler(cfg.Courses, cfg.PublicBaseURL)
	exercises := NewExerciseHandler(cfg.Exercises)

	r.Route(BasePath, func(r chi.Router) {
		r.Post("/users", users.CreateUser)
		r.Post("/authentication/login", authHandler.Login)
		r.Post("/authentication/refresh", authHandler.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/me", users.GetUserMe)
			r.Get("/users/{user_id}", users.GetUser)
			r.Patch("/users/{user_id}", users.UpdateUser)
			r.Delete("/users/{user_id}", users.DeleteUser)

			r.Post("/files", files.CreateFile)
			r.Get("/files/{file_id}", files.GetFile)
			r.Delete("/files/{file_id}", files.DeleteFile)

			r.Get("/courses", courses.ListCourses)
			r.Post("/courses", courses.CreateCourse)
			r.Get("/courses/{course_id}", courses.GetCourse)
			r.Patch("/courses/{course_id}", courses.UpdateCourse)
			r.Delete("/courses/{course_id}", courses.DeleteCourse)

			r.Get("/exercises", exercises.ListExercises)
			r.Post("/exercises", exercises.CreateExercise)
			r.Get("/exercises/{exercise_id}", exercises.GetExercise)
			r.Patch("/exercises/{exercise_id}", exercises.UpdateExercise)
			r.Delete("/exercises/{exercise_id}", exercises.DeleteExercise)
		})
	})

	if cfg.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", staticHandler(cfg.Static)))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

// staticHandler serves stored files without directory listings.
func staticHandler(fs http.FileSystem) http.Handler {
	files := http.FileServer(fs)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// requestLogger logs one line per request with its status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		logger.FromContext(r.Context()).Info("request completed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)))
	})
}
