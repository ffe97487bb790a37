package classify

import (
	"iter"
	"strings"
)

// fenceMarker delimits embedded code blocks in agent output.
const fenceMarker = "```"

// CodeBlock is one fenced block extracted from a payload.
// Lang is the raw tag found after the opening marker ("" if absent);
// it is kept verbatim, normalization only happens when a highlighter
// needs a rule table.
type CodeBlock struct {
	Lang string
	Body string
}

// Blocks returns the fenced code blocks of payload as a lazy sequence,
// in source order. The sequence is restartable: ranging over it again
// rescans the payload from the start.
//
// A line whose trimmed content starts with the fence marker toggles
// fence state; the remainder of an opening line is the language tag.
// If the payload ends while still inside a fence, the accumulated
// lines are flushed as a final block anyway. The tag resets between
// blocks.
func Blocks(payload string) iter.Seq[CodeBlock] {
	return func(yield func(CodeBlock) bool) {
		var (
			inside bool
			lang   string
			body   []string
		)
		for line := range strings.Lines(payload) {
			line = strings.TrimSuffix(line, "\n")
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, fenceMarker) {
				if inside {
					if !yield(CodeBlock{Lang: lang, Body: strings.Join(body, "\n")}) {
						return
					}
					inside = false
					lang = ""
					body = nil
				} else {
					inside = true
					lang = strings.TrimSpace(strings.TrimPrefix(trimmed, fenceMarker))
					body = nil
				}
				continue
			}
			if inside {
				body = append(body, line)
			}
		}
		if inside {
			// Unterminated fence: best-effort flush of what we have.
			yield(CodeBlock{Lang: lang, Body: strings.Join(body, "\n")})
		}
	}
}

// FirstBlock returns the first fenced block of payload, if any.
func FirstBlock(payload string) (CodeBlock, bool) {
	for b := range Blocks(payload) {
		return b, true
	}
	return CodeBlock{}, false
}

// ExtractBlocks collects every fenced block of payload into a slice.
func ExtractBlocks(payload string) []CodeBlock {
	var out []CodeBlock
	for b := range Blocks(payload) {
		out = append(out, b)
	}
	return out
}
