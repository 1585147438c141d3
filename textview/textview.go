// Package textview prints menu sessions as text, for debugging hosts
// without a display.
package textview

import (
	"fmt"
	"io"
	"strings"

	"github.com/automoto/emucommon/menu"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	header   lipgloss.Style
	footer   lipgloss.Style
	selected lipgloss.Style
	value    lipgloss.Style
	hidden   lipgloss.Style
	disabled lipgloss.Style
	tree     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		footer:   r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(0)).Background(lipgloss.ANSIColor(3)),
		value:    r.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		hidden:   r.NewStyle().Faint(true).Strikethrough(true),
		disabled: r.NewStyle().Faint(true),
		tree:     r.NewStyle().Foreground(lipgloss.ANSIColor(8)),
	}
}

// Screen writes what the menu shows: the header, the visible rows of the
// current menu with the selection marked, and the footer.
func Screen(w io.Writer, s *menu.Session) error {
	st := newStyles(lipgloss.NewRenderer(w))
	h := s.Host()
	var sb strings.Builder

	if hd := s.Header(); hd != "" {
		sb.WriteString(st.header.Render(hd))
		sb.WriteString("\n\n")
	}
	for _, row := range s.Rows() {
		line := label(h, row.Node)
		switch {
		case row.Selected:
			line = st.selected.Render("> " + line)
		case row.Node.Type() == h.SpacerType():
			line = ""
		case !h.IsNodeSelectable(row.Node):
			line = "  " + st.disabled.Render(line)
		default:
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if ft := s.Footer(); ft != "" {
		sb.WriteByte('\n')
		sb.WriteString(st.footer.Render(ft))
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Tree writes the whole menu tree. The selected node of each open menu is
// marked and nodes the host hides are struck through.
func Tree(w io.Writer, s *menu.Session) error {
	st := newStyles(lipgloss.NewRenderer(w))
	open := openPath(s)

	var sb strings.Builder
	root := s.Root()
	sb.WriteString(st.header.Render(label(s.Host(), root)))
	sb.WriteByte('\n')
	writeChildren(&sb, st, s.Host(), root, "", open)

	_, err := io.WriteString(w, sb.String())
	return err
}

// openPath maps each menu on the stack to its selected child.
func openPath(s *menu.Session) map[*menu.Node]*menu.Node {
	open := map[*menu.Node]*menu.Node{}
	if sel := s.Selected(); sel != nil {
		open[s.Current()] = sel
	}
	for n := s.Current(); n != nil && n.Parent() != nil; n = n.Parent() {
		open[n.Parent()] = n
	}
	return open
}

func writeChildren(sb *strings.Builder, st styles, h menu.Host, n *menu.Node, indent string, open map[*menu.Node]*menu.Node) {
	children := n.Children()
	for i, c := range children {
		last := i == len(children)-1
		branch, next := "├── ", "│   "
		if last {
			branch, next = "└── ", "    "
		}
		sb.WriteString(st.tree.Render(indent + branch))

		line := label(h, c)
		switch {
		case !h.IsNodeVisible(c):
			line = st.hidden.Render(line)
		case open[n] == c:
			line = st.selected.Render(line)
		case !h.IsNodeSelectable(c):
			line = st.disabled.Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')

		writeChildren(sb, st, h, c, indent+next, open)
	}
}

func label(h menu.Host, n *menu.Node) string {
	name, value := h.NodeName(n)
	if n.Type() == h.SpacerType() && name == "" {
		return "-"
	}
	if value == "" {
		return name
	}
	return fmt.Sprintf("%s: %s", name, value)
}
