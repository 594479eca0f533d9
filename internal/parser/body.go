package parser

import (
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/notify"
	"github.com/unkn0wn-root/restcurl/internal/restfile"
)

const (
	externalBodyPrefix = "<@"
	includePrefix      = "<"
	mimeMultipartForm  = "multipart/form-data"
)

type bodyBuilder struct {
	started  bool
	buf      strings.Builder
	filePath string
}

// appendBodyLine adds one line's contribution to the accumulating body.
// Non-multipart lines concatenate with no separator; multipart lines join
// with CRLF. A `< path` line splices the file's raw contents unless the
// request is multipart, where it stays literal. A `<@ path` line associates
// an external body file instead of contributing text.
func (p *Parser) appendBodyLine(req *restfile.Request, b *bodyBuilder, line string) {
	b.started = true
	trimmed := strings.TrimSpace(line)
	multipart := isMultipart(req)

	if !multipart && strings.HasPrefix(trimmed, includePrefix) {
		if rest, ok := strings.CutPrefix(trimmed, externalBodyPrefix); ok {
			b.filePath = strings.TrimSpace(rest)
			return
		}
		path := strings.TrimSpace(strings.TrimPrefix(trimmed, includePrefix))
		data, err := p.fs.ReadFile(path)
		if err != nil {
			notify.Warnf(p.sink, "included file not found: %s", path)
			return
		}
		b.buf.Write(data)
		return
	}

	b.buf.WriteString(line)
	if multipart {
		b.buf.WriteString("\r\n")
	}
}

func isMultipart(req *restfile.Request) bool {
	contentType := strings.ToLower(req.Header("content-type"))
	return strings.HasPrefix(contentType, mimeMultipartForm)
}
