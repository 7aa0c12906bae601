// Package gin provides the HTTP surface: question answering over POST /ask
// (text form field or multipart audio upload), catalog status, and the
// administrative cache refresh.
package gin

import (
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mokoena/salaw"
	"github.com/mokoena/salaw/audio"
)

// MaxUploadBytes caps request bodies (audio uploads).
const MaxUploadBytes = 16 << 20 // 16 MiB

// Server answers legal questions over HTTP.
type Server struct {
	store       salaw.DocumentStore
	assembler   salaw.ContextAssembler
	classifier  salaw.Classifier
	answerer    salaw.Answerer
	transcriber salaw.Transcriber // nil disables the audio path
	validator   *audio.Validator
	logger      *slog.Logger
	router      *gin.Engine
}

// NewServer wires the request pipeline. transcriber may be nil, in which
// case audio questions are rejected as unavailable.
func NewServer(
	store salaw.DocumentStore,
	assembler salaw.ContextAssembler,
	classifier salaw.Classifier,
	answerer salaw.Answerer,
	transcriber salaw.Transcriber,
	logger *slog.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		store:       store,
		assembler:   assembler,
		classifier:  classifier,
		answerer:    answerer,
		transcriber: transcriber,
		validator:   audio.NewValidator(),
		logger:      logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.MaxMultipartMemory = MaxUploadBytes

	r.POST("/ask", s.handleAsk)
	r.GET("/resources", s.handleResources)
	r.POST("/refresh", s.handleRefresh)
	r.GET("/healthz", s.handleHealth)

	s.router = r
	return s
}

// Handler exposes the router for serving and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.router.Run(addr)
}

// requestLogger attaches a request ID and logs each request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		start := time.Now()

		c.Next()

		s.logger.Info("request",
			"id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// handleAsk accepts either a text question (form field "question") or a
// spoken one (multipart file field "audio").
func (s *Server) handleAsk(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes)

	if question, ok := c.GetPostForm("question"); ok {
		s.answerText(c, question)
		return
	}
	if file, err := c.FormFile("audio"); err == nil {
		s.answerAudio(c, file)
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}

func (s *Server) answerText(c *gin.Context, question string) {
	question = strings.TrimSpace(question)
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty question"})
		return
	}
	s.answer(c, question)
}

func (s *Server) answerAudio(c *gin.Context, file *multipart.FileHeader) {
	if s.transcriber == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "audio questions not supported"})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no audio file"})
		return
	}

	// The upload is staged in a temp file that is removed on every exit
	// path.
	tmp, err := os.CreateTemp("", "salaw-audio-*.wav")
	if err != nil {
		s.logger.Error("create temp audio file", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "system error"})
		return
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := c.SaveUploadedFile(file, tmp.Name()); err != nil {
		s.logger.Error("save audio upload", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio processing failed"})
		return
	}

	if err := s.validator.Validate(tmp); err != nil {
		s.logger.Warn("audio validation failed", "error", salaw.ErrorMessage(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio processing failed"})
		return
	}

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		s.logger.Error("read audio upload", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "system error"})
		return
	}

	question, err := s.transcriber.Transcribe(c.Request.Context(), data)
	if err != nil {
		s.logger.Warn("transcription failed", "code", salaw.ErrorCode(err), "error", salaw.ErrorMessage(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio processing failed"})
		return
	}

	s.answerText(c, question)
}

// answer runs the shared pipeline: classify, assemble, answer.
func (s *Server) answer(c *gin.Context, question string) {
	ctx := c.Request.Context()

	categories := s.classifier.Classify(question)
	legalContext, err := s.assembler.Assemble(ctx, categories)
	if err != nil {
		s.logger.Error("context assembly failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "system error"})
		return
	}

	result, err := s.answerer.Answer(ctx, question, legalContext)
	if err != nil {
		s.logger.Error("answering failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "system error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question":   question,
		"answer":     result.Text,
		"references": result.References,
		"degraded":   result.Degraded,
	})
}

func (s *Server) handleResources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": s.store.Statuses()})
}

// handleRefresh deletes the cache and re-downloads every catalog entry.
// Explicitly administrative: request serving never triggers this. The
// refresh runs on a detached context so a client disconnect cannot abandon
// the store half-populated after the available set was cleared.
func (s *Server) handleRefresh(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())
	if err := s.store.Refresh(ctx); err != nil {
		s.logger.Error("refresh failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "refresh failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"refreshed": len(s.store.Available())})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"documents": len(s.store.Available()),
	})
}
