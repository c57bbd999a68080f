package utils_test

import (
	"testing"

	"github.com/GIFT-ASSET/giftasset-mcp/utils"
	"github.com/stretchr/testify/assert"
)

func TestCleanJSON(t *testing.T) {
	tcases := []struct {
		in  string
		exp string
	}{
		{`{"slug":"plushpepe-1"}`, `{"slug":"plushpepe-1"}`},
		{"Sure, here you go: {\"slug\":\"plushpepe-1\"}", `{"slug":"plushpepe-1"}`},
		{"```json\n{\"slug\":\"plushpepe-1\"}\n```", `{"slug":"plushpepe-1"}`},
		{`[1,2,3] trailing`, `[1,2,3]`},
		{`no json at all`, `no json at all`},
	}
	for _, tc := range tcases {
		assert.Equal(t, tc.exp, string(utils.CleanJSON([]byte(tc.in))), "input: %s", tc.in)
	}
}

func TestToJSON(t *testing.T) {
	assert.Equal(t, `{"a":1}`, utils.ToJSON(map[string]int{"a": 1}))
	assert.Equal(t, "{\n\t\"a\": 1\n}", utils.ToJSONIndent(map[string]int{"a": 1}))
	assert.Equal(t, "{\n\t\"a\": 1\n}", utils.JSONIndent(`{"a":1}`))
}
