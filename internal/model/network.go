package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultStatus is used when a captured response carries no status.
const DefaultStatus = 200

// NetworkRequest is a captured request/response pair.
type NetworkRequest struct {
	URL      string   `yaml:"url"      json:"url"`
	Method   string   `yaml:"method"   json:"method"`
	Response Response `yaml:"response" json:"response"`
}

// Response is the captured response of a NetworkRequest.
type Response struct {
	Status int   `yaml:"status,omitempty" json:"status,omitempty"` // 0 means DefaultStatus
	Body   Value `yaml:"body"             json:"body"`
}

// StatusOrDefault returns the captured status, or DefaultStatus when unset.
func (r Response) StatusOrDefault() int {
	if r.Status == 0 {
		return DefaultStatus
	}
	return r.Status
}

// UnmarshalYAML decodes the mapping by hand because yaml.v3 never hands an
// explicit null to a field unmarshaler, and `body: null` must stay distinct
// from a missing body.
func (r *Response) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: response must be a mapping", node.Line)
	}
	var out Response
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "status":
			if err := val.Decode(&out.Status); err != nil {
				return fmt.Errorf("status: %w", err)
			}
		case "body":
			body, err := valueFromNode(val)
			if err != nil {
				return fmt.Errorf("body: %w", err)
			}
			out.Body = body
		}
	}
	*r = out
	return nil
}

// NetworkCapture is the input bundle for mock generation.
type NetworkCapture struct {
	Requests []NetworkRequest `yaml:"requests" json:"requests"`
}
