package lsp

import (
	"strings"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// LSP positions count UTF-16 code units within a line.

func offsetToPosition(content string, offset int) protocol.Position {
	offset = max(0, min(offset, len(content)))
	before := content[:offset]
	line := strings.Count(before, "\n")
	lineStart := strings.LastIndexByte(before, '\n') + 1

	character := 0
	for _, r := range before[lineStart:] {
		character += utf16Len(r)
	}
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(character)}
}

func positionToOffset(content string, pos protocol.Position) int {
	offset := 0
	for line := protocol.UInteger(0); line < pos.Line; line++ {
		i := strings.IndexByte(content[offset:], '\n')
		if i < 0 {
			return len(content)
		}
		offset += i + 1
	}

	units := 0
	for offset < len(content) && content[offset] != '\n' && units < int(pos.Character) {
		r, size := utf8.DecodeRuneInString(content[offset:])
		units += utf16Len(r)
		offset += size
	}
	return offset
}

func utf16Len(r rune) int {
	if r >= 0x10000 {
		return 2
	}
	return 1
}
