package inspect

// Node is one component in the inspection tree, e.g. a DealGrid with
// DealCard children.
type Node struct {
	// Type is the component type ("InfoPanel", "DealGrid", "DealCard", ...).
	Type string `json:"type"`

	// ID distinguishes siblings of the same type.
	ID string `json:"id,omitempty"`

	// Bounds contains the component dimensions, in terminal cells.
	Bounds Bounds `json:"bounds"`

	// Visible indicates if the component is currently rendered.
	Visible bool `json:"visible"`

	// State contains component-specific state information.
	State map[string]interface{} `json:"state,omitempty"`

	// Styles contains styling information.
	Styles *StyleInfo `json:"styles,omitempty"`

	// Children contains child components.
	Children []*Node `json:"children,omitempty"`

	// Content is the text content if applicable.
	Content string `json:"content,omitempty"`

	// Truncated is set when the content had to be cut to fit.
	Truncated *TruncationInfo `json:"truncated,omitempty"`
}

// Bounds represents component position and dimensions.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// StyleInfo contains styling information for a component.
type StyleInfo struct {
	Foreground string `json:"foreground,omitempty"`
	Background string `json:"background,omitempty"`

	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`

	Border      string `json:"border,omitempty"`
	BorderColor string `json:"border_color,omitempty"`
	// Padding is [top, right, bottom, left].
	Padding []int `json:"padding,omitempty"`

	// AppliedStyles names the registered styles this component used.
	AppliedStyles []string `json:"applied_styles,omitempty"`
}

// TruncationInfo describes a text cut.
type TruncationInfo struct {
	// OriginalLength is the text length before truncation.
	OriginalLength int `json:"original_length"`

	// DisplayLength is the displayed length after truncation.
	DisplayLength int `json:"display_length"`

	// Ellipsis indicates an ellipsis was appended.
	Ellipsis bool `json:"ellipsis"`
}

// NewNode creates a new visible Node with the given type.
func NewNode(nodeType string) *Node {
	return &Node{
		Type:    nodeType,
		Visible: true,
		State:   make(map[string]interface{}),
	}
}

// WithID sets the node ID and returns the node for chaining.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithBounds sets the node bounds and returns the node for chaining.
func (n *Node) WithBounds(x, y, width, height int) *Node {
	n.Bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	return n
}

// WithState adds a state key-value pair and returns the node for chaining.
func (n *Node) WithState(key string, value interface{}) *Node {
	if n.State == nil {
		n.State = make(map[string]interface{})
	}
	n.State[key] = value
	return n
}

// WithStyles sets the node styles and returns the node for chaining.
func (n *Node) WithStyles(styles *StyleInfo) *Node {
	n.Styles = styles
	return n
}

// AddChild appends a child node and returns the parent for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// WithContent sets the node content and returns the node for chaining.
func (n *Node) WithContent(content string) *Node {
	n.Content = content
	return n
}

// WithTruncation records a text cut and returns the node for chaining.
func (n *Node) WithTruncation(original, displayed int, hasEllipsis bool) *Node {
	n.Truncated = &TruncationInfo{
		OriginalLength: original,
		DisplayLength:  displayed,
		Ellipsis:       hasEllipsis,
	}
	return n
}
