// Package tools defines the Tool interface for marketplace capabilities,
// including registration, parameter schema, MCP integration, and the uniform
// response envelope every capability returns.
package tools
