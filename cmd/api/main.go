package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"lecturemind/internal/config"
	"lecturemind/internal/http"
	"lecturemind/internal/index"
	"lecturemind/internal/ingest"
	"lecturemind/internal/llm"
	"lecturemind/internal/rag"
	"lecturemind/internal/storage"
	"lecturemind/internal/transcribe"
	"lecturemind/internal/vectorstore"
	"lecturemind/internal/workflow"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	lectureRepo := storage.NewLectureRepo(db)
	courseRepo := storage.NewCourseRepo(db)
	transcripts, err := storage.NewFileTranscriptStore(cfg.LectureDir)
	if err != nil {
		log.Fatalf("Failed to create transcript store: %v", err)
	}

	ctx := context.Background()

	// Initialize Qdrant vector store
	vectorStore, err := vectorstore.NewQdrantStore(cfg.QdrantURL, cfg.QdrantAPIKey)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedDocuments(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.QdrantVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	lectureIndex := index.New(embedder, vectorStore, cfg.QdrantVectorSize)

	// Create LLM and transcription clients (external service layer)
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
	whisperClient := transcribe.NewWhisperClient(cfg.WhisperBaseURL, cfg.LLMAPIKey, cfg.WhisperModelName)

	tokens, err := llm.NewTokenCounter()
	if err != nil {
		slog.Warn("Token counter unavailable, context truncation disabled", "error", err)
		tokens = nil
	}

	// Assemble workflows and the RAG service
	summarizer := workflow.NewSummarizer(llmClient)
	qaWorkflow := workflow.NewQAWorkflow(transcripts, lectureIndex, llmClient, tokens)
	searchWorkflow := workflow.NewSearchWorkflow(transcripts, lectureIndex, llmClient)
	summaryWorkflow := workflow.NewSummaryWorkflow(transcripts, llmClient, summarizer)
	ragService := rag.NewService(transcripts, lectureRepo, lectureIndex, llmClient, qaWorkflow, searchWorkflow, summaryWorkflow, summarizer)
	slog.Info("RAG service initialized")

	// Create ingest pipeline
	pipeline := ingest.NewPipeline(whisperClient, transcripts, lectureRepo, lectureIndex, summarizer, cfg.LectureDir)

	// Optional drop-dir watcher
	if cfg.WatchDir != "" {
		watcher, err := ingest.NewWatcher(pipeline, cfg.WatchDir, cfg.WatchOwnerID)
		if err != nil {
			log.Fatalf("Failed to create watcher: %v", err)
		}
		if err := watcher.Start(ctx); err != nil {
			log.Fatalf("Failed to start watcher: %v", err)
		}
		defer watcher.Stop()
		slog.Info("Watching for new recordings", "dir", cfg.WatchDir, "owner_id", cfg.WatchOwnerID)
	}

	// API tokens are optional; without them every request maps to the
	// watch owner, which suits single-user deployments.
	var auth http.Authenticator
	if cfg.APITokens != "" {
		auth, err = http.NewTokenAuthenticator(cfg.APITokens)
		if err != nil {
			log.Fatalf("Failed to parse API tokens: %v", err)
		}
	} else {
		slog.Warn("No API tokens configured, running in single-user mode", "user_id", cfg.WatchOwnerID)
		auth = &http.SingleUserAuthenticator{UserID: cfg.WatchOwnerID}
	}

	// Create router with dependencies
	deps := &http.Deps{
		Auth:        auth,
		Lectures:    lectureRepo,
		Courses:     courseRepo,
		Transcripts: transcripts,
		Pipeline:    pipeline,
		RAG:         ragService,
		Index:       lectureIndex,
		VectorStore: vectorStore,
		MediaDir:    cfg.LectureDir,
		PDFDir:      cfg.PDFDir,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
