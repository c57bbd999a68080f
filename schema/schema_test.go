package schema_test

import (
	"reflect"
	"testing"

	"github.com/GIFT-ASSET/giftasset-mcp/schema"
	"github.com/GIFT-ASSET/giftasset-mcp/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SaleQuery struct {
	CollectionName string `json:"collection_name" jsonschema:"title=Collection,description=Name of the collection"`
	Limit          int    `json:"limit,omitempty" jsonschema:"title=Limit,description=Number of gifts to return,default=10"`
}

func TestSchema(t *testing.T) {
	s, err := schema.New(reflect.TypeOf(SaleQuery{}))
	require.NoError(t, err)

	exp := `{
	"properties": {
		"collection_name": {
			"type": "string",
			"title": "Collection",
			"description": "Name of the collection"
		},
		"limit": {
			"type": "integer",
			"title": "Limit",
			"description": "Number of gifts to return",
			"default": 10
		}
	},
	"type": "object",
	"required": [
		"collection_name"
	]
}`
	assert.Equal(t, exp, utils.ToJSONIndent(s.Parameters))
	assert.Equal(t, exp, s.String())

	// cached per type
	s2, err := schema.New(reflect.TypeOf(SaleQuery{}))
	require.NoError(t, err)
	assert.Same(t, s, s2)
}
