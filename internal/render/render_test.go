package render

import (
	"strings"
	"testing"

	"github.com/rafabd1/prism/internal/classify"
	"github.com/rafabd1/prism/internal/data"
)

func TestRouteTabSelection(t *testing.T) {
	theme := Dark()
	tests := []struct {
		name    string
		payload string
		wantTab Tab
	}{
		{"code_to_code_tab", "```python\nx = 1\n```", TabCode},
		{"data_to_data_tab", `{"a": 1}`, TabData},
		{"text_to_text_tab", "Hello, how are you?", TabText},
		{"empty_to_text_tab", "", TabText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := classify.Classify(tt.payload)
			view := Route(res, theme, 80)
			if view.Tab != tt.wantTab {
				t.Errorf("Route tab = %v, want %v", view.Tab, tt.wantTab)
			}
		})
	}
}

func TestRouteCodeTitleCarriesLanguage(t *testing.T) {
	res := classify.Classify("```python\nx = 1\n```")
	view := Route(res, Dark(), 80)
	if !strings.Contains(view.Title, "python") {
		t.Errorf("Title = %q, want the language in it", view.Title)
	}
}

func TestRouteDataContent(t *testing.T) {
	res := classify.Classify(`{"a": 1, "b": [2,3]}`)
	view := Route(res, Light(), 80)
	content := stripANSI(view.Content)
	for _, want := range []string{"a", "b", "[0]", "[1]", "2", "3"} {
		if !strings.Contains(content, want) {
			t.Errorf("data view missing %q:\n%s", want, content)
		}
	}
}

func TestRouteTextNeverEmpty(t *testing.T) {
	res := classify.Classify("plain words")
	view := Route(res, Dark(), 0) // zero width falls back internally
	if strings.TrimSpace(stripANSI(view.Content)) == "" {
		t.Error("text view came out empty")
	}
}

func TestRenderTreeCollapsedMarker(t *testing.T) {
	v, err := data.Decode(`{"outer": {"inner": {"leaf": 1}}}`)
	if err != nil {
		t.Fatal(err)
	}
	out := stripANSI(RenderTree(data.Tree(v), Dark()))
	if !strings.Contains(out, "▸ inner") {
		t.Errorf("collapsed node should render with the closed marker:\n%s", out)
	}
	if strings.Contains(out, "leaf") {
		t.Errorf("children of a collapsed node must stay hidden:\n%s", out)
	}
}

func TestThemeByName(t *testing.T) {
	if !ThemeByName("dark").Dark {
		t.Error("dark theme not dark")
	}
	if ThemeByName("light").Dark {
		t.Error("light theme is dark")
	}
	if !ThemeByName("nonsense").Dark {
		t.Error("unknown names fall back to dark")
	}
}
