package parser

import (
	"regexp"
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/filesvc"
	"github.com/unkn0wn-root/restcurl/internal/notify"
	"github.com/unkn0wn-root/restcurl/internal/restfile"
	"github.com/unkn0wn-root/restcurl/internal/vars"
)

var variableLineRe = regexp.MustCompile(`^@([A-Za-z0-9_]+)\s*=\s*(.*)$`)

type scanState int

const (
	stateAwaitingRequestLine scanState = iota
	stateReadingHeaders
	stateReadingBody
)

// Parser turns request-file text into a Document. The document variable
// scope is rebuilt from scratch on every Parse call; nothing persists.
type Parser struct {
	fs      filesvc.Service
	sink    notify.Sink
	dynamic vars.Provider
	env     vars.Provider
}

func New(fs filesvc.Service, sink notify.Sink, dynamic, env vars.Provider) *Parser {
	return &Parser{fs: fs, sink: sink, dynamic: dynamic, env: env}
}

func (p *Parser) Parse(path string, data []byte) *restfile.Document {
	doc := &restfile.Document{Path: path}

	scope := vars.NewScope()
	resolver := vars.NewResolver(p.sink, p.dynamic, scope, p.env)

	for _, block := range Segment(string(data)) {
		if req := p.extractBlock(block, scope, resolver); req != nil {
			doc.Requests = append(doc.Requests, req)
		}
	}

	for _, name := range scope.Names() {
		value, _ := scope.Resolve(name)
		doc.Variables = append(doc.Variables, restfile.Variable{Name: name, Value: value})
	}

	return doc
}

// extractBlock runs the per-block state machine. Rule order matters:
// comments win over everything, blank lines drive the header/body
// transition, variable definitions are honored in any state, and only then
// do body, header, and request-line classification apply.
func (p *Parser) extractBlock(
	block restfile.Block,
	scope *vars.Scope,
	resolver *vars.Resolver,
) *restfile.Request {
	state := stateAwaitingRequestLine
	req := &restfile.Request{
		Headers: make(map[string]string),
		Range:   block.Range,
	}
	var body bodyBuilder

	for _, line := range block.Lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		if trimmed == "" {
			if state == stateReadingHeaders {
				state = stateReadingBody
			}
			// leading blanks before the request line and blanks inside
			// the body contribute nothing
			continue
		}

		if strings.HasPrefix(trimmed, "@") {
			if matches := variableLineRe.FindStringSubmatch(trimmed); matches != nil {
				scope.Set(matches[1], resolver.Expand(strings.TrimSpace(matches[2])))
				continue
			}
			if strings.Contains(trimmed, "=") {
				// malformed definition, dropped without a warning
				continue
			}
		}

		if state == stateReadingBody {
			p.appendBodyLine(req, &body, line)
			continue
		}

		if state == stateReadingHeaders {
			if idx := strings.Index(line, ":"); idx >= 0 {
				key := strings.ToLower(strings.TrimSpace(line[:idx]))
				if key != "" {
					req.Headers[key] = strings.TrimSpace(line[idx+1:])
				}
			}
			continue
		}

		parseRequestLine(trimmed, req)
		state = stateReadingHeaders
	}

	if body.started {
		req.Body = &restfile.BodySource{
			Text:     strings.TrimSpace(body.buf.String()),
			FilePath: body.filePath,
		}
	}

	if req.Method == "" {
		return nil
	}
	return req
}

func parseRequestLine(trimmed string, req *restfile.Request) {
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return
	}
	req.Method = strings.ToUpper(fields[0])
	if len(fields) > 1 {
		req.URL = fields[1]
	}
	if len(fields) > 2 {
		req.HTTPVersion = strings.TrimPrefix(fields[2], "HTTP/")
	}
}
