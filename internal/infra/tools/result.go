package tools

import (
	"bytes"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// textResult wraps raw JSON as a single text content block. Upstream bytes
// pass through verbatim so non-ASCII text is preserved unescaped.
func textResult(raw []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(bytes.TrimSpace(raw))}},
	}
}

// marshalJSON encodes locally built values without HTML escaping, matching
// the pass-through behavior of textResult for upstream payloads.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}
