package http

import (
	"net/http"
	"strconv"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	actorContextKey = "actor"

	headerUserID    = "X-User-Id"
	headerUserRole  = "X-User-Role"
	headerRequestID = "X-Request-Id"
)

var (
	httpInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "laundry",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "laundry",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests processed.",
	}, []string{"method", "route", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "laundry",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latencies in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// ActorMiddleware resolves the authenticated caller from the identity
// headers set by the upstream auth layer. Requests without a valid identity
// are rejected with 401 before reaching any handler.
func ActorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		rawID := ctx.Request().Header.Get(headerUserID)
		rawRole := ctx.Request().Header.Get(headerUserRole)
		if rawID == "" || rawRole == "" {
			return unauthorized(ctx)
		}

		value, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			return unauthorized(ctx)
		}

		id, err := kernel.NewID(value)
		if err != nil {
			return unauthorized(ctx)
		}

		role, err := user.RoleFromString(rawRole)
		if err != nil {
			return unauthorized(ctx)
		}

		actor, err := user.NewActor(id, role)
		if err != nil {
			return unauthorized(ctx)
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "authentication required",
	})
}

// actorFromContext returns the actor stored by ActorMiddleware.
// Routes registered outside the middleware have no actor; the boolean
// guards against that wiring mistake.
func actorFromContext(ctx echo.Context) (user.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(user.Actor)
	return actor, ok
}

// RequestIDMiddleware tags every response with a request identifier,
// keeping the one the client sent when present.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		requestID := ctx.Request().Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Response().Header().Set(headerRequestID, requestID)
		return next(ctx)
	}
}

// MetricsMiddleware records request counts, latencies and in-flight gauge
// per method/route/status.
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		httpInFlight.Inc()
		defer httpInFlight.Dec()

		start := time.Now()
		err := next(ctx)

		route := ctx.Path()
		if route == "" {
			route = "unknown"
		}

		labels := prometheus.Labels{
			"method": ctx.Request().Method,
			"route":  route,
			"status": strconv.Itoa(ctx.Response().Status),
		}

		httpRequestsTotal.With(labels).Inc()
		httpRequestDuration.With(labels).Observe(time.Since(start).Seconds())

		return err
	}
}
