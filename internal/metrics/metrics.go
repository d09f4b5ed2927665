package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Метрика для количества HTTP запросов по ручкам и статусам
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notekeeper_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Метрика для длительности обработки запросов
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "notekeeper_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDuration)
}

// Handler отдает /metrics в формате Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware собирает метрики по каждому запросу
func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		method := ctx.Method()
		path := ctx.URL().Path

		next(ctx)

		RequestsTotal.WithLabelValues(method, path, strconv.Itoa(ctx.Status())).Inc()
		RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
