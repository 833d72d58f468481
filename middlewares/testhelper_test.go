package middlewares_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/folio/internal"
	"github.com/dmitrymomot/folio/middlewares"
	"github.com/dmitrymomot/folio/pkg/logger"
)

// syncBuffer lets the logger and the test read/write concurrently.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// entries decodes the JSON log lines written so far.
func (b *syncBuffer) entries() []map[string]any {
	var out []map[string]any
	for _, line := range bytes.Split([]byte(b.String()), []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var m map[string]any
		if json.Unmarshal(line, &m) == nil {
			out = append(out, m)
		}
	}
	return out
}

type testContext struct {
	rw      *internal.ResponseWriter
	request *http.Request
	log     *slog.Logger
	logs    *syncBuffer
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	logs := &syncBuffer{}
	return &testContext{
		rw:      internal.NewResponseWriter(w),
		request: r,
		log:     logger.NewWithWriter(logs, slog.LevelDebug, middlewares.RequestIDExtractor()),
		logs:    logs,
	}
}

func (c *testContext) Request() *http.Request                   { return c.request }
func (c *testContext) Response() http.ResponseWriter            { return c.rw }
func (c *testContext) ResponseWriter() *internal.ResponseWriter { return c.rw }
func (c *testContext) Context() context.Context                 { return c.request.Context() }
func (c *testContext) SetContext(ctx context.Context)           { c.request = c.request.WithContext(ctx) }
func (c *testContext) Param(name string) string                 { return "" }
func (c *testContext) Header(name string) string                { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)             { c.rw.Header().Set(name, value) }
func (c *testContext) Deadline() (time.Time, bool)              { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}                    { return c.request.Context().Done() }
func (c *testContext) Err() error                               { return c.request.Context().Err() }
func (c *testContext) Value(key any) any                        { return c.request.Context().Value(key) }
func (c *testContext) Written() bool                            { return c.rw.Written() }
func (c *testContext) Logger() *slog.Logger                     { return c.log }
func (c *testContext) BindJSON(v any) error                     { return json.NewDecoder(c.request.Body).Decode(v) }
func (c *testContext) LogDebug(msg string, attrs ...any)        { c.log.DebugContext(c.Context(), msg, attrs...) }
func (c *testContext) LogInfo(msg string, attrs ...any)         { c.log.InfoContext(c.Context(), msg, attrs...) }
func (c *testContext) LogWarn(msg string, attrs ...any)         { c.log.WarnContext(c.Context(), msg, attrs...) }
func (c *testContext) LogError(msg string, attrs ...any)        { c.log.ErrorContext(c.Context(), msg, attrs...) }
func (c *testContext) Get(key any) any                          { return c.request.Context().Value(key) }
func (c *testContext) Set(key, value any)                       { c.SetContext(context.WithValue(c.Context(), key, value)) }

func (c *testContext) RealIP() string {
	host, _, err := net.SplitHostPort(c.request.RemoteAddr)
	if err != nil {
		return c.request.RemoteAddr
	}
	return host
}

func (c *testContext) JSON(code int, v any) error {
	c.rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.rw.WriteHeader(code)
	_, err := c.rw.Write([]byte(s))
	return err
}

func (c *testContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

var _ internal.Context = (*testContext)(nil)
