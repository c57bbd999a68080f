// Package metricskey provides metric definitions for the GiftAsset MCP server.
package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	// StatsGatewayCallsSucceeded is base for counter metric for total upstream API calls succeeded
	StatsGatewayCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_gateway_calls_succeeded",
		Help:         "stats_gateway_calls_succeeded provides total upstream API calls succeeded",
		RequiredTags: []string{"endpoint"},
	}

	StatsGatewayCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_gateway_calls_failed",
		Help:         "stats_gateway_calls_failed provides total upstream API calls failed",
		RequiredTags: []string{"endpoint"},
	}

	StatsGatewayResultsTruncated = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_gateway_results_truncated",
		Help:         "stats_gateway_results_truncated provides total oversized payloads truncated",
		RequiredTags: []string{"endpoint"},
	}

	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}
)

// Perf
var (
	PerfGatewayCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_gateway_call",
		Help:         "perf_gateway_call provides duration of upstream API call",
		RequiredTags: []string{"endpoint"},
	}

	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfGatewayCall,
	&PerfToolCall,
	&StatsGatewayCallsFailed,
	&StatsGatewayCallsSucceeded,
	&StatsGatewayResultsTruncated,
	&StatsToolCallsFailed,
	&StatsToolCallsSucceeded,
}
