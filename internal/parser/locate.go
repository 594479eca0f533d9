package parser

import "github.com/unkn0wn-root/restcurl/internal/restfile"

// AtCursor returns the request whose line range contains the cursor, or an
// explicit absence when the cursor sits on a separator, in a gap, or outside
// every block. Callers must check the second return before using the request.
func AtCursor(doc *restfile.Document, line int) (*restfile.Request, bool) {
	if doc == nil {
		return nil, false
	}
	for _, req := range doc.Requests {
		if req.Range.Contains(line) {
			return req, true
		}
	}
	return nil, false
}

// Previous returns the request immediately before the one under the cursor.
// No wraparound: the first request has no previous.
func Previous(doc *restfile.Document, line int) (*restfile.Request, bool) {
	idx, ok := indexAtCursor(doc, line)
	if !ok || idx == 0 {
		return nil, false
	}
	return doc.Requests[idx-1], true
}

// Next is symmetric to Previous; the last request has no next.
func Next(doc *restfile.Document, line int) (*restfile.Request, bool) {
	idx, ok := indexAtCursor(doc, line)
	if !ok || idx == len(doc.Requests)-1 {
		return nil, false
	}
	return doc.Requests[idx+1], true
}

func indexAtCursor(doc *restfile.Document, line int) (int, bool) {
	if doc == nil {
		return 0, false
	}
	for i, req := range doc.Requests {
		if req.Range.Contains(line) {
			return i, true
		}
	}
	return 0, false
}
