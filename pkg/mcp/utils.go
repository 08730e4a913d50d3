package mcp

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// stringArg returns the named string argument, or "" when absent.
func stringArg(request mcp.CallToolRequest, name string) (string, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("'%s' must be a string", name)
	}
	return s, nil
}

// intArg returns the named integer argument, or def when absent. JSON numbers
// arrive as float64 and must be whole.
func intArg(request mcp.CallToolRequest, name string, def int) (int, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("'%s' must be a whole number", name)
		}
		return int(v), nil
	case int:
		return v, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("'%s' must be a whole number", name)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("'%s' must be a number", name)
	}
}

func boolArg(request mcp.CallToolRequest, name string) bool {
	b, _ := request.Params.Arguments[name].(bool)
	return b
}

// jsonResult serializes v as the text content of a tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
