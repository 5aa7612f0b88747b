package logger

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID - HTTP-заголовок, в котором клиент передает и получает идентификатор запроса.
const HeaderRequestID = "X-Request-ID"

// MaxRequestIDLength - предел длины идентификатора, принятого от клиента.
const MaxRequestIDLength = 128

type requestIDKey struct{}

// NewRequestIDContext сохраняет идентификатор запроса. Пустой или непригодный
// идентификатор из заголовка заменяется новым UUID.
func NewRequestIDContext(ctx context.Context, headerValue string) context.Context {
	requestID, ok := ParseRequestID(headerValue)
	if !ok {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// ParseRequestID проверяет идентификатор из заголовка: непустой, не длиннее
// MaxRequestIDLength, только видимые ASCII-символы.
func ParseRequestID(headerValue string) (string, bool) {
	id := strings.TrimSpace(headerValue)
	if id == "" || len(id) > MaxRequestIDLength {
		return "", false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return "", false
		}
	}
	return id, true
}

// GetRequestID извлекает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok && id != ""
}

func requestIDField(ctx context.Context) (zap.Field, bool) {
	id, ok := GetRequestID(ctx)
	if !ok {
		return zap.Skip(), false
	}
	return zap.String(RequestID, id), true
}
