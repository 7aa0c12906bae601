package gin_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/mokoena/salaw"
	salawgin "github.com/mokoena/salaw/gin"
	"github.com/mokoena/salaw/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type fixtures struct {
	store       *mock.DocumentStore
	assembler   *mock.ContextAssembler
	classifier  *mock.Classifier
	answerer    *mock.Answerer
	transcriber *mock.Transcriber
}

func defaultFixtures() *fixtures {
	return &fixtures{
		store: &mock.DocumentStore{
			AvailableFn: func() []salaw.Resource { return salaw.DefaultCatalog().All() },
			StatusesFn:  func() []salaw.ResourceStatus { return nil },
			RefreshFn:   func(ctx context.Context) error { return nil },
		},
		assembler: &mock.ContextAssembler{
			AssembleFn: func(ctx context.Context, categories []salaw.Category) (string, error) {
				return "legal context", nil
			},
		},
		classifier: &mock.Classifier{
			ClassifyFn:          func(string) []salaw.Category { return nil },
			IsOfficerQuestionFn: func(string) bool { return false },
		},
		answerer: &mock.Answerer{
			AnswerFn: func(ctx context.Context, question, legalContext string) (*salaw.AnswerResult, error) {
				return &salaw.AnswerResult{
					Text:       "Answer citing Section 12.",
					References: []string{"Section 12"},
				}, nil
			},
		},
		transcriber: &mock.Transcriber{
			TranscribeFn: func(ctx context.Context, wav []byte) (string, error) {
				return "transcribed question", nil
			},
		},
	}
}

func newServer(f *fixtures) http.Handler {
	return salawgin.NewServer(f.store, f.assembler, f.classifier, f.answerer, f.transcriber, discardLogger()).Handler()
}

func postQuestion(t *testing.T, h http.Handler, question string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"question": {question}}
	req := httptest.NewRequest(http.MethodPost, "/ask", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// wavFixture builds a minimal valid PCM WAV file: mono, 16 kHz, 16-bit,
// one second of silence.
func wavFixture(t *testing.T, channels, sampleRate int) []byte {
	t.Helper()

	const bitsPerSample = 16
	samples := sampleRate // one second
	dataLen := samples * channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*bitsPerSample/8))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(channels*bitsPerSample/8))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))
	return buf.Bytes()
}

func postAudio(t *testing.T, h http.Handler, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("audio", "question.wav")
	require.NoError(t, err)
	_, err = fw.Write(body)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/ask", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_Ask_Text(t *testing.T) {
	t.Parallel()

	t.Run("answers a text question", func(t *testing.T) {
		t.Parallel()

		w := postQuestion(t, newServer(defaultFixtures()), "When is arrest lawful?")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Question   string   `json:"question"`
			Answer     string   `json:"answer"`
			References []string `json:"references"`
			Degraded   bool     `json:"degraded"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "When is arrest lawful?", resp.Question)
		assert.Equal(t, "Answer citing Section 12.", resp.Answer)
		assert.Equal(t, []string{"Section 12"}, resp.References)
		assert.False(t, resp.Degraded)
	})

	t.Run("passes classified categories to the assembler", func(t *testing.T) {
		t.Parallel()

		f := defaultFixtures()
		f.classifier.ClassifyFn = func(string) []salaw.Category {
			return []salaw.Category{salaw.CategoryMilitary}
		}
		var got []salaw.Category
		f.assembler.AssembleFn = func(ctx context.Context, categories []salaw.Category) (string, error) {
			got = categories
			return "ctx", nil
		}

		w := postQuestion(t, newServer(f), "army question")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []salaw.Category{salaw.CategoryMilitary}, got)
	})

	t.Run("rejects an empty question", func(t *testing.T) {
		t.Parallel()

		w := postQuestion(t, newServer(defaultFixtures()), "   ")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "empty question")
	})

	t.Run("rejects a request with neither question nor audio", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/ask", nil)
		w := httptest.NewRecorder()
		newServer(defaultFixtures()).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request")
	})

	t.Run("degraded answers still return 200", func(t *testing.T) {
		t.Parallel()

		f := defaultFixtures()
		f.answerer.AnswerFn = func(ctx context.Context, question, legalContext string) (*salaw.AnswerResult, error) {
			return &salaw.AnswerResult{Text: "System temporarily unavailable. Please try again later.", Degraded: true}, nil
		}

		w := postQuestion(t, newServer(f), "anything")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"degraded":true`)
	})
}

func TestServer_Ask_Audio(t *testing.T) {
	t.Parallel()

	t.Run("transcribes and answers", func(t *testing.T) {
		t.Parallel()

		w := postAudio(t, newServer(defaultFixtures()), wavFixture(t, 1, 16000))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "transcribed question")
	})

	t.Run("rejects non-WAV uploads", func(t *testing.T) {
		t.Parallel()

		w := postAudio(t, newServer(defaultFixtures()), []byte("not audio at all"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "audio processing failed")
	})

	t.Run("rejects stereo uploads", func(t *testing.T) {
		t.Parallel()

		w := postAudio(t, newServer(defaultFixtures()), wavFixture(t, 2, 16000))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("transcription failure is a client error", func(t *testing.T) {
		t.Parallel()

		f := defaultFixtures()
		f.transcriber.TranscribeFn = func(ctx context.Context, wav []byte) (string, error) {
			return "", salaw.Errorf(salaw.EINVALID, "could not understand audio")
		}

		w := postAudio(t, newServer(f), wavFixture(t, 1, 16000))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("audio unavailable without a transcriber", func(t *testing.T) {
		t.Parallel()

		f := defaultFixtures()
		f.transcriber = nil
		h := salawgin.NewServer(f.store, f.assembler, f.classifier, f.answerer, nil, discardLogger()).Handler()

		w := postAudio(t, h, wavFixture(t, 1, 16000))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestServer_Resources(t *testing.T) {
	t.Parallel()

	f := defaultFixtures()
	f.store.StatusesFn = func() []salaw.ResourceStatus {
		return []salaw.ResourceStatus{{
			Resource:  salaw.Resource{Name: "Defence Act 42 of 2002", Filename: "defence_act.pdf", SourceURL: "https://example.com/a42-02.pdf", Category: salaw.CategoryMilitary},
			Available: true,
			Size:      4096,
		}}
	}

	req := httptest.NewRequest(http.MethodGet, "/resources", nil)
	w := httptest.NewRecorder()
	newServer(f).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Defence Act 42 of 2002")
	assert.Contains(t, w.Body.String(), `"available":true`)
}

func TestServer_Refresh(t *testing.T) {
	t.Parallel()

	t.Run("refreshes and reports the available count", func(t *testing.T) {
		t.Parallel()

		f := defaultFixtures()
		refreshed := false
		f.store.RefreshFn = func(ctx context.Context) error {
			refreshed = true
			return nil
		}

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		w := httptest.NewRecorder()
		newServer(f).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, refreshed)
		assert.Contains(t, w.Body.String(), `"refreshed":`)
	})

	t.Run("runs to completion when the client disconnects", func(t *testing.T) {
		t.Parallel()

		f := defaultFixtures()
		var refreshErr error
		f.store.RefreshFn = func(ctx context.Context) error {
			refreshErr = ctx.Err()
			return nil
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodPost, "/refresh", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		newServer(f).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, refreshErr, "refresh should not observe the request cancellation")
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	newServer(defaultFixtures()).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
