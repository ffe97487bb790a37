// Package render turns a classification result into terminal output
// and decides which canvas tab should be active. It is the last hop
// before the screen; everything it needs (theme, width) arrives as
// arguments.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/rafabd1/prism/internal/classify"
	"github.com/rafabd1/prism/internal/data"
)

// Tab identifies one of the canvas views.
type Tab int

const (
	TabText Tab = iota
	TabCode
	TabData
)

func (t Tab) String() string {
	switch t {
	case TabCode:
		return "Code"
	case TabData:
		return "Data"
	default:
		return "Text"
	}
}

// View is the routed presentation of one classification result: the
// tab to activate and the content to fill it with. Activating the tab
// is the canvas's job; routing only computes.
type View struct {
	Tab     Tab
	Title   string
	Content string
}

// Route maps a classification result onto its view. The mapping is a
// pure function of the result: code goes to the Code tab through the
// highlighter, data to the Data tab through the tree renderer, and
// everything else to the Text tab through the markdown renderer.
func Route(res classify.Result, theme Theme, width int) View {
	switch res.Kind {
	case classify.KindCode:
		title := "Code"
		if res.Lang != "" {
			title = fmt.Sprintf("Code · %s", res.Lang)
		}
		return View{
			Tab:     TabCode,
			Title:   title,
			Content: Highlight(res.Body, res.Lang, theme),
		}
	case classify.KindData:
		return View{
			Tab:     TabData,
			Title:   "Data",
			Content: RenderTree(data.Tree(res.Value), theme),
		}
	default:
		return View{
			Tab:     TabText,
			Title:   "Text",
			Content: renderText(res.Body, theme, width),
		}
	}
}

// renderText runs the payload through glamour. Glamour failing (an
// odd terminal profile, usually) falls back to the raw body; the
// router never errors.
func renderText(body string, theme Theme, width int) string {
	if width <= 0 {
		width = 80
	}
	var (
		r   *glamour.TermRenderer
		err error
	)
	if theme.Dark {
		r, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
	} else {
		r, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(width),
		)
	}
	if err != nil {
		return body
	}
	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return out
}

// RenderTree draws a display tree with indentation and expansion
// markers. Collapsed nodes render as a single marked line; their
// children stay hidden until the canvas expands them.
func RenderTree(root *data.Node, theme Theme) string {
	var b strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	leafStyle := lipgloss.NewStyle().Foreground(theme.Text)
	markStyle := lipgloss.NewStyle().Foreground(theme.TextLight)
	renderNode(&b, root, 0, labelStyle, leafStyle, markStyle)
	return strings.TrimRight(b.String(), "\n")
}

func renderNode(b *strings.Builder, n *data.Node, depth int, label, leaf, mark lipgloss.Style) {
	indent := strings.Repeat("  ", depth)
	switch {
	case n.IsLeaf():
		if n.Leaf != "" {
			fmt.Fprintf(b, "%s%s: %s\n", indent, label.Render(n.Label), leaf.Render(n.Leaf))
		} else {
			fmt.Fprintf(b, "%s%s\n", indent, label.Render(n.Label))
		}
	case !n.Expanded:
		fmt.Fprintf(b, "%s%s %s\n", indent, mark.Render("▸"), label.Render(n.Label))
	default:
		fmt.Fprintf(b, "%s%s %s\n", indent, mark.Render("▾"), label.Render(n.Label))
		for _, c := range n.Children {
			renderNode(b, c, depth+1, label, leaf, mark)
		}
	}
}
