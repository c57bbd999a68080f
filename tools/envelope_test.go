package tools_test

import (
	"testing"

	"github.com/GIFT-ASSET/giftasset-mcp/tools"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestEnvelope(t *testing.T) {
	res := tools.Success(map[string]any{"slug": "plushpepe-1"})
	exp := `{
  "status": "success",
  "data": {
    "slug": "plushpepe-1"
  }
}`
	assert.Equal(t, exp, res.JSON())

	res = tools.Failure(errors.New("API Error 404: not found"))
	exp = `{
  "status": "error",
  "message": "API Error 404: not found"
}`
	assert.Equal(t, exp, res.JSON())
}

type namedTool struct {
	tools.ITool
	name string
	desc string
}

func (t *namedTool) Name() string        { return t.name }
func (t *namedTool) Description() string { return t.desc }

func TestGetDescriptions(t *testing.T) {
	out := tools.GetDescriptions(
		&namedTool{name: "get_gift_info", desc: "Get gift info."},
		&namedTool{name: "get_ton_price", desc: "Get TON price."},
	)
	assert.Contains(t, out, `"get_gift_info"`)
	assert.Contains(t, out, `"get_ton_price"`)
}
