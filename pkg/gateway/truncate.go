package gateway

import (
	"fmt"

	"github.com/GIFT-ASSET/giftasset-mcp/pkg/metricskey"
)

// truncateKeys are the list-bearing keys known from the upstream OpenAPI
// schemas, checked in fixed order.
var truncateKeys = []string{"items", "markets", "gifts"}

// truncate bounds oversized payloads so a single tool result cannot flood
// the caller's context window. A bare list longer than limit is replaced by
// {items, note}; an object has each known list key sliced in place, with a
// note naming the truncated key. Any other shape is returned unchanged.
//
// When an object carries more than one oversized key, a later key's note
// overwrites the earlier one. That mirrors the upstream contract and is kept
// as-is.
func truncate(endpoint string, data any, limit int) any {
	switch v := data.(type) {
	case []any:
		if len(v) > limit {
			metricskey.StatsGatewayResultsTruncated.IncrCounter(1, endpoint)
			return map[string]any{
				"items": v[:limit],
				"note":  fmt.Sprintf("List truncated: showing top %d out of %d items due to context limits.", limit, len(v)),
			}
		}
		return v
	case map[string]any:
		for _, key := range truncateKeys {
			if list, ok := v[key].([]any); ok && len(list) > limit {
				metricskey.StatsGatewayResultsTruncated.IncrCounter(1, endpoint)
				v[key] = list[:limit]
				v["note"] = fmt.Sprintf("'%s' truncated to top %d items", key, limit)
			}
		}
		return v
	}
	return data
}
