package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lecturemind/internal/handlers"
	"lecturemind/internal/storage"
	"lecturemind/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Auth        Authenticator
	Lectures    storage.LectureStore
	Courses     storage.CourseStore
	Transcripts storage.TranscriptStore
	Pipeline    handlers.Ingestor
	RAG         handlers.RAGService
	Index       handlers.IndexAdmin
	VectorStore vectorstore.VectorStore
	Renderer    handlers.Renderer
	MediaDir    string
	PDFDir      string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	uploadHandler := handlers.NewUploadHandler(deps.Pipeline)
	lectureHandler := handlers.NewLectureHandler(deps.Lectures, deps.Transcripts, deps.Index, deps.MediaDir)
	transcriptHandler := handlers.NewTranscriptHandler(deps.Lectures, deps.Transcripts)
	askHandler := handlers.NewAskHandler(deps.Lectures, deps.RAG)
	summaryHandler := handlers.NewSummaryHandler(deps.Lectures, deps.RAG)
	pdfHandler := handlers.NewPDFHandler(deps.Lectures, deps.Transcripts, deps.RAG, deps.Renderer, deps.PDFDir)
	courseHandler := handlers.NewCourseHandler(deps.Courses, deps.Lectures)
	healthHandler := handlers.NewHealthHandler(deps.VectorStore)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(deps.Auth))

			r.Route("/lectures", func(r chi.Router) {
				r.Post("/upload", uploadHandler.ServeHTTP)
				r.Get("/my-lectures", lectureHandler.List)
				r.Post("/multi-search", askHandler.MultiSearch)

				r.Route("/{lectureID}", func(r chi.Router) {
					r.Get("/", lectureHandler.Detail)
					r.Put("/", lectureHandler.Update)
					r.Delete("/", lectureHandler.Delete)
					r.Post("/ask", askHandler.Ask)
					r.Get("/transcript", transcriptHandler.Transcript)
					r.Get("/search", transcriptHandler.Search)
					r.Get("/summary", summaryHandler.Summary)
					r.Get("/summary/html", summaryHandler.SummaryHTML)
					r.Post("/pdf", pdfHandler.Generate)
					r.Get("/pdf/{filename}", pdfHandler.Download)
				})
			})

			r.Route("/courses", func(r chi.Router) {
				r.Post("/", courseHandler.Create)
				r.Get("/", courseHandler.List)
			})
		})
	})

	// Liveness probe.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r
}
