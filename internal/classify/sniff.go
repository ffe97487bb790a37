package classify

import (
	"encoding/json"
	"strings"
)

// Language is the closed set of languages the renderer knows rule
// tables for. Auto is only ever an input (user preference meaning
// "detect for me"); Sniff never returns it.
type Language string

const (
	LangAuto       Language = "auto"
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangHTML       Language = "html"
	LangCSS        Language = "css"
	LangJSON       Language = "json"
	LangText       Language = "text"
)

// Languages lists every selectable member of the enumeration, in the
// order the canvas presents them.
func Languages() []Language {
	return []Language{LangAuto, LangPython, LangJavaScript, LangHTML, LangCSS, LangJSON, LangText}
}

// ParseLanguage maps a raw tag (fence tag or user input) onto the
// enumeration. The second result reports whether the tag was
// recognized; unrecognized tags are honored as opaque labels by the
// caller, so this never errors.
func ParseLanguage(tag string) (Language, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "auto":
		return LangAuto, true
	case "python", "py":
		return LangPython, true
	case "javascript", "js":
		return LangJavaScript, true
	case "html", "htm":
		return LangHTML, true
	case "css":
		return LangCSS, true
	case "json":
		return LangJSON, true
	case "text", "txt", "plain":
		return LangText, true
	}
	return LangText, false
}

// jsKeywords and pyKeywords are the lexical cues the sniffer looks
// for. Substring checks, not a parser: mixed or adversarial input
// will misclassify, and that is the documented contract.
var (
	jsKeywords = []string{"function ", "const ", "let ", "var ", "=>"}
	pyKeywords = []string{"def ", "import ", "class ", "from "}
)

// Sniff guesses the language of a code body from surface cues. The
// checks run in a fixed order and the first hit wins; the fallback is
// LangText, never LangAuto.
func Sniff(body string) Language {
	lower := strings.ToLower(body)

	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return LangHTML
	}
	if strings.Contains(lower, "{") && strings.Contains(lower, ":") && strings.Contains(lower, ";") {
		return LangCSS
	}
	for _, kw := range jsKeywords {
		if strings.Contains(lower, kw) {
			return LangJavaScript
		}
	}
	for _, kw := range pyKeywords {
		if strings.Contains(lower, kw) {
			return LangPython
		}
	}
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") && json.Valid([]byte(trimmed)) {
		return LangJSON
	}
	return LangText
}
