package render

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rafabd1/prism/internal/classify"
)

// rule pairs a pattern with the style class it paints. Rules run in
// table order over each line and later matches overwrite earlier ones,
// so table order is load-bearing and must not be shuffled.
type rule struct {
	pattern *regexp.Regexp
	class   styleClass
}

type styleClass int

const (
	classKeyword styleClass = iota
	classString
	classComment
	classNumber
	classAccent
)

func (c styleClass) style(t Theme) lipgloss.Style {
	switch c {
	case classKeyword:
		return lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	case classString:
		return lipgloss.NewStyle().Foreground(t.Success)
	case classComment:
		return lipgloss.NewStyle().Foreground(t.TextLight).Italic(true)
	case classNumber:
		return lipgloss.NewStyle().Foreground(t.Warning)
	default:
		return lipgloss.NewStyle().Foreground(t.Secondary)
	}
}

// Per-language rule tables. Each language of the closed enumeration
// owns its ordered table; dispatch is over the enum, not over raw tag
// strings.
var (
	pythonRules = []rule{
		{regexp.MustCompile(`\b(def|class|import|from|return|if|elif|else|for|while|try|except|finally|with|as|pass|lambda|yield|raise|global|nonlocal|and|or|not|in|is|None|True|False)\b`), classKeyword},
		{regexp.MustCompile(`@\w+`), classAccent},
		{regexp.MustCompile(`\b\d+(\.\d+)?\b`), classNumber},
		{regexp.MustCompile(`"[^"]*"|'[^']*'`), classString},
		{regexp.MustCompile(`#.*$`), classComment},
	}

	javascriptRules = []rule{
		{regexp.MustCompile(`\b(function|const|let|var|return|if|else|for|while|do|switch|case|break|continue|new|class|extends|import|export|from|async|await|typeof|instanceof|this|null|undefined|true|false)\b`), classKeyword},
		{regexp.MustCompile(`=>`), classAccent},
		{regexp.MustCompile(`\b\d+(\.\d+)?\b`), classNumber},
		{regexp.MustCompile("\"[^\"]*\"|'[^']*'|`[^`]*`"), classString},
		{regexp.MustCompile(`//.*$`), classComment},
	}

	htmlRules = []rule{
		{regexp.MustCompile(`</?[A-Za-z][^>]*>`), classKeyword},
		{regexp.MustCompile(`"[^"]*"`), classString},
		{regexp.MustCompile(`<!--.*?-->`), classComment},
		{regexp.MustCompile(`&\w+;`), classAccent},
	}

	cssRules = []rule{
		{regexp.MustCompile(`^[^{}:;]+(?:\{|$)`), classAccent},
		{regexp.MustCompile(`[A-Za-z-]+\s*:`), classKeyword},
		{regexp.MustCompile(`#[0-9A-Fa-f]{3,8}\b`), classNumber},
		{regexp.MustCompile(`\b\d+(\.\d+)?(px|em|rem|%|vh|vw|s|ms)?\b`), classNumber},
		{regexp.MustCompile(`"[^"]*"|'[^']*'`), classString},
	}

	jsonRules = []rule{
		{regexp.MustCompile(`"[^"]*"`), classString},
		{regexp.MustCompile(`"[^"]*"\s*:`), classKeyword},
		{regexp.MustCompile(`\b(true|false|null)\b`), classAccent},
		{regexp.MustCompile(`-?\b\d+(\.\d+)?([eE][+-]?\d+)?\b`), classNumber},
	}

	// genericRules is the fallback table, used for plain text and for
	// explicit tags outside the enumeration. Markdown-ish cues only.
	genericRules = []rule{
		{regexp.MustCompile(`^#{1,2}\s+.+$`), classKeyword},
		{regexp.MustCompile(`(\*\*|__)[^*_]+(\*\*|__)`), classAccent},
		{regexp.MustCompile("`[^`]+`"), classString},
		{regexp.MustCompile(`^\s*([-*]|\d+\.)\s+`), classNumber},
	}
)

// rulesFor dispatches a language to its rule table.
func rulesFor(lang classify.Language) []rule {
	switch lang {
	case classify.LangPython:
		return pythonRules
	case classify.LangJavaScript:
		return javascriptRules
	case classify.LangHTML:
		return htmlRules
	case classify.LangCSS:
		return cssRules
	case classify.LangJSON:
		return jsonRules
	default:
		return genericRules
	}
}

// Highlight styles body for the terminal using the rule table of tag.
// The tag may be anything an author or user supplied; tags outside the
// enumeration keep the generic table rather than being rejected.
func Highlight(body, tag string, theme Theme) string {
	lang, ok := classify.ParseLanguage(tag)
	table := genericRules
	if ok && lang != classify.LangAuto {
		table = rulesFor(lang)
	}

	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = highlightLine(line, table, theme)
	}
	return strings.Join(lines, "\n")
}

// highlightLine paints one line. Matches are resolved into a per-rune
// class map first (later rules overwrite earlier ones, as the ordered
// tables require) and styled runs are emitted afterwards, so ANSI
// escapes never feed back into the patterns.
func highlightLine(line string, table []rule, theme Theme) string {
	if line == "" {
		return line
	}

	const noClass = styleClass(-1)
	classes := make([]styleClass, len(line))
	for i := range classes {
		classes[i] = noClass
	}
	for _, r := range table {
		for _, m := range r.pattern.FindAllStringIndex(line, -1) {
			for i := m[0]; i < m[1]; i++ {
				classes[i] = r.class
			}
		}
	}

	var b strings.Builder
	base := lipgloss.NewStyle().Foreground(theme.Text)
	start := 0
	for start < len(line) {
		end := start + 1
		for end < len(line) && classes[end] == classes[start] {
			end++
		}
		seg := line[start:end]
		if classes[start] == noClass {
			b.WriteString(base.Render(seg))
		} else {
			b.WriteString(classes[start].style(theme).Render(seg))
		}
		start = end
	}
	return b.String()
}
