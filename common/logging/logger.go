package logging

import (
	"context"
	"github.com/TakeoffTech/go-log/zapx"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"go.uber.org/zap"
	"log"
	"net/http"
)

var logger *zap.SugaredLogger

// init function will initialise a base logger
func init() {
	zapLogger, err := zapx.New(zapx.Config{
		ServiceName: common.ServiceName,
	})
	if err != nil {
		log.Printf(`{"severity": "error", "message": "failed to initialize zap logging: %v"}`, err)
		logger = zap.S()

		return
	}
	logger = zapLogger
}

type CtxLogger struct{}

// GetLoggerFromContext is used to get a logger from context
// If context based logger is not found base logger is returned
func GetLoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(CtxLogger{}).(*zap.SugaredLogger); ok {
		return l
	}

	return logger
}

// GetContextWithLogger This function accepts a http.Request object, extracts the X-Correlation-ID
// and the requester email from request object
// Returns a new context based logger key and newLogger carrying those fields
func GetContextWithLogger(request *http.Request) (CtxLogger, *zap.SugaredLogger) {
	newLogger := GetLoggerWithXCorrelationID(request.Header.Get(common.HeaderXCorrelationID))
	if request.Header.Get(common.HeaderUserEmail) != "" {
		newLogger = newLogger.With(common.HeaderUserEmail, request.Header.Get(common.HeaderUserEmail))
	}

	return CtxLogger{}, newLogger
}

// GetLoggerWithXCorrelationID This function accepts a xCorrelationID string,
// Returns a newLogger with the X-Correlation-ID
func GetLoggerWithXCorrelationID(xCorrelationID string) *zap.SugaredLogger {
	newLogger := logger
	if xCorrelationID != "" {
		newLogger = logger.With(common.HeaderXCorrelationID, xCorrelationID)
	}

	return newLogger
}
