package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"reputation/pkg/apperrors"
)

const namespace = "reputation"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	ratingSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_submissions_total",
			Help:      "Rating submissions by outcome",
		},
		[]string{"outcome"},
	)

	ratingReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rating_replies_total",
			Help:      "Reply attachments by outcome",
		},
		[]string{"outcome"},
	)

	statisticsCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "statistics_cache_lookups_total",
			Help:      "Provider statistics cache lookups by result",
		},
		[]string{"result"},
	)
)

// outcome is "accepted" for nil, otherwise the error kind.
func outcome(err error) string {
	if err == nil {
		return "accepted"
	}
	return string(apperrors.KindOf(err))
}

func ObserveSubmission(err error) {
	ratingSubmissions.WithLabelValues(outcome(err)).Inc()
}

func ObserveReply(err error) {
	ratingReplies.WithLabelValues(outcome(err)).Inc()
}

func ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	statisticsCache.WithLabelValues(result).Inc()
}

// GinMiddleware records request count and latency per route template.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
