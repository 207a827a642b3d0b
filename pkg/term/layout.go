package term

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rstone770/resize/pkg/dom"
)

// Layout errors.
var (
	ErrEmptyLayout   = errors.New("layout has no panes")
	ErrInvalidSplit  = errors.New("split must be row or column")
	ErrInvalidWeight = errors.New("weight must not be negative")
	ErrAmbiguousNode = errors.New("node must have either a name or children, not both")
)

// node is one entry in the YAML layout definition: a named leaf pane or
// a split with weighted children.
type node struct {
	Name     string   `yaml:"name,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Split    string   `yaml:"split,omitempty"`
	Weight   int      `yaml:"weight,omitempty"`
	Children []*node  `yaml:"children,omitempty"`
}

// weight returns the node's share of the parent axis (default 1).
func (n *node) weight() int {
	if n.Weight > 0 {
		return n.Weight
	}
	return 1
}

// Pane is a rectangular region of the terminal. Its size derives from
// the current viewport size and the layout tree on every measurement.
type Pane struct {
	layout *Layout
	node   *node
}

// Name returns the pane's name.
func (p *Pane) Name() string {
	return p.node.Name
}

// Tags returns the pane's tags.
func (p *Pane) Tags() []string {
	return p.node.Tags
}

// Size computes the pane's current dimensions from the viewport. Nothing
// is cached: a terminal resize is visible on the next call.
func (p *Pane) Size() dom.Size {
	return p.layout.measure()[p.node]
}

// Layout is a dom.Document over a tree of terminal panes bound to a
// viewport.
type Layout struct {
	viewport dom.Viewport
	root     *node
	panes    []*Pane // depth-first document order
}

// ParseLayout parses a YAML layout definition and binds it to viewport.
func ParseLayout(data []byte, viewport dom.Viewport) (*Layout, error) {
	var root node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	if err := validateNode(&root); err != nil {
		return nil, err
	}

	l := &Layout{viewport: viewport, root: &root}
	l.collect(&root)
	if len(l.panes) == 0 {
		return nil, ErrEmptyLayout
	}
	return l, nil
}

func validateNode(n *node) error {
	if n.Weight < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, n.Weight)
	}
	if n.Name != "" && len(n.Children) > 0 {
		return fmt.Errorf("%w: %q", ErrAmbiguousNode, n.Name)
	}
	if len(n.Children) > 0 {
		switch n.Split {
		case "", "row", "column":
		default:
			return fmt.Errorf("%w: %q", ErrInvalidSplit, n.Split)
		}
		for _, child := range n.Children {
			if err := validateNode(child); err != nil {
				return err
			}
		}
	}
	return nil
}

// collect gathers leaf panes depth-first, establishing document order.
func (l *Layout) collect(n *node) {
	if len(n.Children) == 0 {
		if n.Name != "" {
			l.panes = append(l.panes, &Pane{layout: l, node: n})
		}
		return
	}
	for _, child := range n.Children {
		l.collect(child)
	}
}

// Panes returns every pane in document order.
func (l *Layout) Panes() []*Pane {
	return l.panes
}

// Query returns all panes matching the selector, in document order.
// Unknown selectors match nothing.
func (l *Layout) Query(selector string) []dom.Element {
	var out []dom.Element
	for _, p := range l.panes {
		if l.matches(p, selector) {
			out = append(out, p)
		}
	}
	return out
}

func (l *Layout) matches(p *Pane, selector string) bool {
	switch {
	case selector == "*":
		return true
	case strings.HasPrefix(selector, "#"):
		return p.Name() == selector[1:]
	case strings.HasPrefix(selector, "."):
		for _, tag := range p.Tags() {
			if tag == selector[1:] {
				return true
			}
		}
		return false
	default:
		return p.Name() == selector
	}
}

// measure computes the size of every node from the current viewport
// size. Integer division remainders are absorbed by the last child of
// each split.
func (l *Layout) measure() map[*node]dom.Size {
	sizes := make(map[*node]dom.Size)
	assignSizes(l.root, l.viewport.Size(), sizes)
	return sizes
}

func assignSizes(n *node, size dom.Size, sizes map[*node]dom.Size) {
	sizes[n] = size
	if len(n.Children) == 0 {
		return
	}

	total := 0
	for _, child := range n.Children {
		total += child.weight()
	}

	if n.Split == "column" {
		remaining := size.Height
		for i, child := range n.Children {
			h := size.Height * child.weight() / total
			if i == len(n.Children)-1 {
				h = remaining
			}
			remaining -= h
			assignSizes(child, dom.Size{Width: size.Width, Height: h}, sizes)
		}
		return
	}

	remaining := size.Width
	for i, child := range n.Children {
		w := size.Width * child.weight() / total
		if i == len(n.Children)-1 {
			w = remaining
		}
		remaining -= w
		assignSizes(child, dom.Size{Width: w, Height: size.Height}, sizes)
	}
}

// Interface satisfaction checks.
var (
	_ dom.Element  = (*Pane)(nil)
	_ dom.Document = (*Layout)(nil)
)
