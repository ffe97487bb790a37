package classify

import (
	"strings"
	"testing"
)

func TestClassifyFencedCode(t *testing.T) {
	res := Classify("```python\ndef f():\n    pass\n```")
	if res.Kind != KindCode {
		t.Fatalf("Kind = %v, want code", res.Kind)
	}
	if res.Lang != "python" {
		t.Errorf("Lang = %q, want python", res.Lang)
	}
	if res.Body != "def f():\n    pass" {
		t.Errorf("Body = %q", res.Body)
	}
}

func TestClassifyStructuredData(t *testing.T) {
	res := Classify(`{"a": 1, "b": [2,3]}`)
	if res.Kind != KindData {
		t.Fatalf("Kind = %v, want data", res.Kind)
	}
	if res.Value == nil {
		t.Fatal("Value is nil for a data result")
	}
}

func TestClassifyPlainText(t *testing.T) {
	const payload = "Hello, how are you?"
	res := Classify(payload)
	if res.Kind != KindText {
		t.Fatalf("Kind = %v, want text", res.Kind)
	}
	if res.Body != payload {
		t.Errorf("Body = %q, payload must pass through unchanged", res.Body)
	}
}

// An unterminated fence is recovered best-effort and its explicit tag
// is honored verbatim, not normalized.
func TestClassifyUnterminatedFence(t *testing.T) {
	res := Classify("```js\nlet x = 1;")
	if res.Kind != KindCode {
		t.Fatalf("Kind = %v, want code", res.Kind)
	}
	if res.Lang != "js" {
		t.Errorf("Lang = %q, want the given tag js", res.Lang)
	}
	if res.Body != "let x = 1;" {
		t.Errorf("Body = %q", res.Body)
	}
}

func TestClassifyHeuristicCode(t *testing.T) {
	res := Classify("def foo():\n    return 1")
	if res.Kind != KindCode {
		t.Fatalf("Kind = %v, want code (heuristic rule)", res.Kind)
	}
	if res.Lang != "python" {
		t.Errorf("Lang = %q, want python from the sniffer", res.Lang)
	}
}

// Fence rule precedes the data rule: a payload that would parse as a
// document still classifies as code when it carries a fence.
func TestClassifyPriorityFenceOverData(t *testing.T) {
	payload := "```sql\nSELECT 1;\n```"
	// Sanity: nothing here parses as a document, build one around it.
	payload = payload + "\n" // keep fence first
	res := Classify(payload)
	if res.Kind != KindCode {
		t.Fatalf("Kind = %v, want code", res.Kind)
	}

	// A fenced block inside an otherwise decodable payload still wins.
	mixed := "```json\n{\"inner\": true}\n```"
	res = Classify(mixed)
	if res.Kind != KindCode || res.Lang != "json" {
		t.Errorf("mixed payload: Kind = %v Lang = %q, want code/json", res.Kind, res.Lang)
	}
}

// Only the first fenced block is ever routed; the rest are discarded.
// Documented limitation carried over from the observed behavior, not
// a regression target.
func TestClassifyMultipleFencesFirstWins(t *testing.T) {
	payload := "```python\nfirst = True\n```\nand then\n```js\nlet second = 1;\n```"
	res := Classify(payload)
	if res.Kind != KindCode {
		t.Fatalf("Kind = %v, want code", res.Kind)
	}
	if res.Lang != "python" || res.Body != "first = True" {
		t.Errorf("got %q/%q, want the first block only", res.Lang, res.Body)
	}
}

// A fence marker that never starts a line cannot toggle fence state;
// the heuristic rule picks those payloads up as code.
func TestClassifyLoneFenceMarker(t *testing.T) {
	res := Classify("see the ``` marker mid-line")
	if res.Kind != KindCode {
		t.Fatalf("Kind = %v, want code via the lone-marker heuristic", res.Kind)
	}
}

func TestClassifyOverride(t *testing.T) {
	// Override replaces a sniffed language.
	res := ClassifyWith("def foo():\n    return 1", LangJavaScript)
	if res.Kind != KindCode || res.Lang != string(LangJavaScript) {
		t.Errorf("override on heuristic code: got %v/%q", res.Kind, res.Lang)
	}

	// Override replaces an explicit fence tag too: the user picked.
	res = ClassifyWith("```python\nx = 1\n```", LangText)
	if res.Lang != string(LangText) {
		t.Errorf("override on fenced code: Lang = %q, want text", res.Lang)
	}

	// Auto means no override.
	res = ClassifyWith("```python\nx = 1\n```", LangAuto)
	if res.Lang != "python" {
		t.Errorf("auto override: Lang = %q, want python", res.Lang)
	}

	// Override never changes the classification itself.
	res = ClassifyWith("Hello there", LangPython)
	if res.Kind != KindText {
		t.Errorf("override must not turn text into code: Kind = %v", res.Kind)
	}
}

// An unrecognized explicit tag is an opaque label, honored as-is; the
// sniffer is not consulted.
func TestClassifyUnrecognizedTagHonored(t *testing.T) {
	res := Classify("```brainfuck\n++++\n```")
	if res.Kind != KindCode || res.Lang != "brainfuck" {
		t.Errorf("got %v/%q, want code with the opaque tag kept", res.Kind, res.Lang)
	}
}

// Classification is total: any input maps to exactly one variant and
// nothing ever panics or errors.
func TestClassifyTotality(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"\n\n\n",
		"```",
		"``` \n",
		"{",
		"}",
		`{"a":}`,
		"null",
		"42",
		strings.Repeat("a", 100000),
		"\x00\xff",
	}
	for _, in := range inputs {
		res := Classify(in)
		switch res.Kind {
		case KindCode, KindData, KindText:
		default:
			t.Errorf("Classify(%q) produced unknown kind %v", in, res.Kind)
		}
	}
}

// A bare JSON scalar is still a whole-payload parse success.
func TestClassifyScalarDocument(t *testing.T) {
	for _, in := range []string{"42", `"quoted"`, "true", "null"} {
		res := Classify(in)
		if res.Kind != KindData {
			t.Errorf("Classify(%q) = %v, want data", in, res.Kind)
		}
	}
}
