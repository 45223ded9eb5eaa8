package domain

type NodePropertyType string

const (
	NodePropertyType_String     NodePropertyType = "string"
	NodePropertyType_Text       NodePropertyType = "text"
	NodePropertyType_TagInput   NodePropertyType = "tag_input"
	NodePropertyType_Integer    NodePropertyType = "integer"
	NodePropertyType_Number     NodePropertyType = "number"
	NodePropertyType_Boolean    NodePropertyType = "boolean"
	NodePropertyType_Array      NodePropertyType = "array"
	NodePropertyType_Map        NodePropertyType = "map"
	NodePropertyType_CodeEditor NodePropertyType = "code_editor"
)

type CodeLanguageType string

const (
	CodeLanguageType_JSON CodeLanguageType = "json"
)

type NodeProperty struct {
	Key         string           `json:"key" yaml:"key"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Required    bool             `json:"required" yaml:"required"`
	Hidden      bool             `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Advanced    bool             `json:"advanced,omitempty" yaml:"advanced,omitempty"` // For advanced options that should be hidden by default
	Type        NodePropertyType `json:"type" yaml:"type"`
	IsSecret    bool             `json:"is_secret,omitempty" yaml:"is_secret,omitempty"`

	// Validation
	Pattern   string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength int    `json:"min_length,omitempty" yaml:"min_length,omitempty"`
	MaxLength int    `json:"max_length,omitempty" yaml:"max_length,omitempty"`

	// Dynamic behavior
	DependsOn *DependsOn `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`

	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string `json:"help,omitempty" yaml:"help,omitempty"`

	Options    []NodePropertyOption   `json:"options,omitempty" yaml:"options,omitempty"`
	NumberOpts *NumberPropertyOptions `json:"number_opts,omitempty" yaml:"number_opts,omitempty"`

	CodeLanguage CodeLanguageType `json:"code_language,omitempty" yaml:"code_language,omitempty"`

	// Dynamic data loading
	Peekable               bool                              `json:"peekable,omitempty" yaml:"peekable,omitempty"`
	PeekableType           IntegrationPeekableType           `json:"peekable_type,omitempty" yaml:"peekable_type,omitempty"`
	PeekablePaginationType IntegrationPeekablePaginationType `json:"peekable_pagination_type,omitempty" yaml:"peekable_pagination_type,omitempty"`

	ExpressionChoice bool `json:"expression_choice,omitempty" yaml:"expression_choice,omitempty"`
}

type NodePropertyOption struct {
	Label       string `json:"label" yaml:"label"`
	Value       any    `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type DependsOn struct {
	PropertyKey string `json:"property_key" yaml:"property_key"`
	Value       any    `json:"value" yaml:"value"`
}

type NumberPropertyOptions struct {
	Min     float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Default float64 `json:"default,omitempty" yaml:"default,omitempty"`
	Step    float64 `json:"step,omitempty" yaml:"step,omitempty"`
}
