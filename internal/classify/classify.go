// Package classify decides how one block of agent-produced text should
// be presented: as code, as a structured-data tree, or as plain text.
//
// Classification is a total function over strings. It never fails and
// never blocks; a parse that does not succeed is a control-flow signal,
// not an error. Each call is independent, the package keeps no state
// between payloads.
package classify

import (
	"strings"

	"github.com/rafabd1/prism/internal/data"
)

// Kind selects the active variant of a Result.
type Kind int

const (
	// KindText is the fallback: free text, rendered as-is.
	KindText Kind = iota
	// KindCode is code, either fenced or recognized heuristically.
	KindCode
	// KindData is a payload that parses whole as a structured-data
	// document.
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindData:
		return "data"
	default:
		return "text"
	}
}

// Result is the single output of one classification pass. Exactly one
// variant is active: Lang is meaningful only for KindCode (the raw
// fence tag, a sniffed language, or a user override), Value only for
// KindData. Body carries the code body for KindCode and the original
// payload otherwise.
type Result struct {
	Kind  Kind
	Body  string
	Lang  string
	Value *data.Value
}

// codeOpeners are leading tokens that mark a payload as code even
// without fences (rule 3). Prefix match over the trimmed payload.
var codeOpeners = []string{
	"def ", "class ", "function ", "import ", "from ",
	"const ", "let ", "var ", "async def ", "#!/",
}

// Classify routes payload through the priority rules:
//
//  1. fence-first: a fenced block exists; the first one wins, its
//     explicit tag is honored verbatim, otherwise the body is sniffed;
//  2. structured data: the whole payload parses as a document;
//  3. heuristic code: the payload opens with a code idiom, or carries
//     a fence marker that the extractor could not pair up;
//  4. plain text.
//
// Every rule short-circuits on success, so exactly one variant comes
// out for any input, the empty string included.
func Classify(payload string) Result {
	return ClassifyWith(payload, LangAuto)
}

// ClassifyWith is Classify with a user language override. When
// override is not LangAuto it replaces the tag of any code result,
// fenced or heuristic; classification itself is unaffected.
func ClassifyWith(payload string, override Language) Result {
	if block, ok := FirstBlock(payload); ok {
		lang := block.Lang
		if lang == "" {
			lang = string(Sniff(block.Body))
		}
		if override != LangAuto {
			lang = string(override)
		}
		return Result{Kind: KindCode, Body: block.Body, Lang: lang}
	}

	if v, err := data.Decode(payload); err == nil {
		return Result{Kind: KindData, Body: payload, Value: v}
	}

	if looksLikeCode(payload) {
		lang := string(Sniff(payload))
		if override != LangAuto {
			lang = string(override)
		}
		return Result{Kind: KindCode, Body: payload, Lang: lang}
	}

	return Result{Kind: KindText, Body: payload}
}

// looksLikeCode reports whether an unfenced payload should still be
// treated as code: it opens with a known definition/declaration token,
// or it contains a fence marker the extractor could not pair (markers
// that do not start a line never toggle fence state).
func looksLikeCode(payload string) bool {
	trimmed := strings.TrimSpace(payload)
	for _, op := range codeOpeners {
		if strings.HasPrefix(trimmed, op) {
			return true
		}
	}
	return strings.Contains(payload, fenceMarker)
}
