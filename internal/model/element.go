package model

// Element describes a DOM node by its identifying attributes.
type Element struct {
	TagName     string `yaml:"tagName"               json:"tagName"`
	Role        string `yaml:"role,omitempty"        json:"role,omitempty"`        // Explicit ARIA role
	TextContent string `yaml:"textContent,omitempty" json:"textContent,omitempty"` // Visible text
	AriaLabel   string `yaml:"ariaLabel,omitempty"   json:"ariaLabel,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	TestID      string `yaml:"testId,omitempty"      json:"testId,omitempty"` // data-testid
	Name        string `yaml:"name,omitempty"        json:"name,omitempty"`
}

// SelectorType is the category of a selector suggestion.
type SelectorType string

const (
	SelectorRole        SelectorType = "role"
	SelectorLabel       SelectorType = "label"
	SelectorText        SelectorType = "text"
	SelectorPlaceholder SelectorType = "placeholder"
	SelectorTestID      SelectorType = "testid"
)

// Priority returns the fixed rank of the category. Lower is preferred.
func (t SelectorType) Priority() int {
	switch t {
	case SelectorRole:
		return 1
	case SelectorLabel:
		return 2
	case SelectorText:
		return 3
	case SelectorPlaceholder:
		return 4
	case SelectorTestID:
		return 5
	default:
		return 0
	}
}

// SelectorSuggestion is one candidate expression for locating an element.
type SelectorSuggestion struct {
	Selector string       `yaml:"selector" json:"selector"`
	Priority int          `yaml:"priority" json:"priority"`
	Type     SelectorType `yaml:"type"     json:"type"`
}
