package client

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"github.com/coursekit/course-api/internal/platform/logger"
	"github.com/coursekit/course-api/internal/redact"
)

// maxCurlBody bounds the request body rendered into curl commands.
const maxCurlBody = 4096

// MakeCurlFromRequest renders req as a curl command, one part per line.
// Header values and the body are redacted. body is the request content, or
// nil when there is none.
func MakeCurlFromRequest(req *http.Request, body []byte) string {
	parts := []string{
		fmt.Sprintf("curl -X '%s'", req.Method),
		fmt.Sprintf("'%s'", req.URL.String()),
	}

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range req.Header[name] {
			parts = append(parts, fmt.Sprintf("-H '%s: %s'", name, redact.Header(name, value)))
		}
	}

	if len(body) > 0 {
		text := renderBody(req.Header.Get("Content-Type"), body)
		parts = append(parts, fmt.Sprintf("-d '%s'", text))
	}

	return strings.Join(parts, " \\\n  ")
}

func renderBody(contentType string, body []byte) string {
	if strings.HasPrefix(contentType, "multipart/") {
		return fmt.Sprintf("<multipart body, %d bytes>", len(body))
	}
	truncated := ""
	if len(body) > maxCurlBody {
		body = body[:maxCurlBody]
		truncated = "...(truncated)"
	}
	return redact.Secrets(string(body)) + truncated
}

// CurlLogger logs every request as a curl command at debug level. The body
// is buffered so it can be both rendered and sent.
func CurlLogger(log *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			l := logger.FromContextOrDefault(req.Context(), log)
			if !l.Enabled(req.Context(), slog.LevelDebug) {
				return next.RoundTrip(req)
			}

			var body []byte
			if req.Body != nil && req.Body != http.NoBody {
				data, err := io.ReadAll(req.Body)
				_ = req.Body.Close()
				if err != nil {
					return nil, fmt.Errorf("failed to read request body: %w", err)
				}
				body = data
				req = req.Clone(req.Context())
				req.Body = io.NopCloser(bytes.NewReader(data))
				req.GetBody = func() (io.ReadCloser, error) {
					return io.NopCloser(bytes.NewReader(data)), nil
				}
			}

			l.Debug("cURL command",
				slog.String("method", req.Method),
				slog.String("url", req.URL.String()),
				slog.String("curl", MakeCurlFromRequest(req, body)))
			return next.RoundTrip(req)
		})
	}
}
