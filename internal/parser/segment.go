package parser

import (
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/restfile"
)

const blockSeparator = "###"

// Segment splits document text into blocks on lines whose trimmed content is
// exactly the separator token. A document with no separator is one block.
// Each block keeps its original line count; the start line of block i is the
// end line of block i-1 plus two, one line going to the separator. An empty
// block still occupies one line number so ranges never invert.
func Segment(text string) []restfile.Block {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")

	var blocks []restfile.Block
	start := 1
	flush := func(current []string) {
		count := len(current)
		if count == 0 {
			count = 1
		}
		blocks = append(blocks, restfile.Block{
			Range: restfile.LineRange{Start: start, End: start + count - 1},
			Lines: current,
		})
		start += count + 1
	}

	var current []string
	for _, line := range lines {
		if strings.TrimSpace(line) == blockSeparator {
			flush(current)
			current = nil
			continue
		}
		current = append(current, line)
	}
	flush(current)

	return blocks
}
