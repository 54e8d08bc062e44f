package http

import (
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after an error HTTP status or a transport failure (httpStatus 0)
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

const redacted = "REDACTED"

// ZapHTTPLogger writes HTTPLogger events to zap. Query parameters named in
// redactParams are masked so credentials carried in URLs never reach the log.
type ZapHTTPLogger struct {
	logger       *zap.Logger
	redactParams map[string]struct{}
	maxBody      int
}

// NewZapHTTPLogger creates a logger masking the given query parameters.
func NewZapHTTPLogger(logger *zap.Logger, redactParams ...string) *ZapHTTPLogger {
	params := make(map[string]struct{}, len(redactParams))
	for _, p := range redactParams {
		params[strings.ToLower(p)] = struct{}{}
	}
	return &ZapHTTPLogger{logger: logger, redactParams: params, maxBody: 512}
}

func (l *ZapHTTPLogger) LogRequest(method, rawURL string, headers map[string]string) {
	l.logger.Debug("http request",
		zap.String("method", method),
		zap.String("url", l.Redact(rawURL)),
		zap.String("accept", headers["Accept"]),
	)
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, rawURL string, headers map[string]string, httpStatus int, responseBody string, latency int64) {
	l.logger.Debug("http response",
		zap.String("method", method),
		zap.String("url", l.Redact(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", l.truncate(responseBody)),
	)
}

func (l *ZapHTTPLogger) LogResponseError(method, rawURL string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	l.logger.Warn("http response error",
		zap.String("method", method),
		zap.String("url", l.Redact(rawURL)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", l.truncate(responseBody)),
		zap.String("error", l.Redact(err.Error())),
	)
}

// Redact masks the configured query parameters of any URL found in s.
func (l *ZapHTTPLogger) Redact(s string) string {
	if len(l.redactParams) == 0 {
		return s
	}
	out := s
	for _, field := range strings.Fields(s) {
		candidate := strings.Trim(field, `"':,`)
		u, err := url.Parse(candidate)
		if err != nil || u.RawQuery == "" {
			continue
		}
		query := u.Query()
		changed := false
		for key := range query {
			if _, ok := l.redactParams[strings.ToLower(key)]; ok {
				query.Set(key, redacted)
				changed = true
			}
		}
		if changed {
			u.RawQuery = query.Encode()
			out = strings.ReplaceAll(out, candidate, u.String())
		}
	}
	return out
}

func (l *ZapHTTPLogger) truncate(s string) string {
	if len(s) <= l.maxBody {
		return s
	}
	return s[:l.maxBody] + "..."
}
