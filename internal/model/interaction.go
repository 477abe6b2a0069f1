package model

// InteractionType is the kind of recorded user action.
type InteractionType string

const (
	Click    InteractionType = "click"
	TypeText InteractionType = "type"
	Navigate InteractionType = "navigate"
)

// Interaction is one recorded user action. Slice order is execution order.
type Interaction struct {
	Type      InteractionType `yaml:"type"                json:"type"`
	Target    Element         `yaml:"target"              json:"target"`
	Value     string          `yaml:"value,omitempty"     json:"value,omitempty"`     // Text for type events
	URL       string          `yaml:"url,omitempty"       json:"url,omitempty"`       // Destination for navigate events
	Timestamp float64         `yaml:"timestamp,omitempty" json:"timestamp,omitempty"` // Advisory only
}

// Recording is the input bundle for test generation.
type Recording struct {
	Interactions []Interaction    `yaml:"interactions"           json:"interactions"`
	NetworkCalls []NetworkRequest `yaml:"networkCalls,omitempty" json:"networkCalls,omitempty"`
	TestName     string           `yaml:"testName,omitempty"     json:"testName,omitempty"`
}
