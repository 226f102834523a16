package agent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arr_agent_chat_requests_total",
		Help: "Chat requests handled.",
	})
	chatErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "arr_agent_chat_errors_total",
		Help: "Chat requests that ended in an error.",
	})
	chatDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "arr_agent_chat_duration_seconds",
		Help:    "End-to-end chat request latency.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
	})
	toolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arr_agent_tool_calls_total",
		Help: "Tool executions requested by the model.",
	}, []string{"tool"})
	toolErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "arr_agent_tool_errors_total",
		Help: "Tool executions that returned an error.",
	}, []string{"tool"})
)
