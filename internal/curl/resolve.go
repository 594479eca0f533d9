package curl

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/filesvc"
	"github.com/unkn0wn-root/restcurl/internal/notify"
	"github.com/unkn0wn-root/restcurl/internal/restfile"
	"github.com/unkn0wn-root/restcurl/internal/vars"
)

// Resolve applies template substitution to one request and materializes its
// body, producing final strings for command assembly. File-backed bodies are
// spliced raw, without passing through the resolver.
func Resolve(
	req *restfile.Request,
	resolver *vars.Resolver,
	fs filesvc.Service,
	sink notify.Sink,
) restfile.ResolvedRequest {
	resolved := restfile.ResolvedRequest{
		Method:      req.Method,
		URL:         resolver.Expand(req.URL),
		HTTPVersion: req.HTTPVersion,
		Headers:     make(map[string]string, len(req.Headers)),
	}
	for key, value := range req.Headers {
		resolved.Headers[key] = resolver.Expand(value)
	}

	if req.Body == nil {
		return resolved
	}
	if req.Body.FilePath != "" {
		materializeFileBody(&resolved, resolver.Expand(req.Body.FilePath), fs, sink)
		return resolved
	}

	resolved.Body = resolver.Expand(req.Body.Text)
	resolved.HasBody = true
	return resolved
}

// materializeFileBody reads the externally associated body file. GraphQL
// files get special treatment: POST wraps the query into a JSON envelope
// (the raw text is spliced without quote escaping), every other method sends
// the collapsed query as a URL parameter instead of a body. Any other
// extension becomes the body unchanged.
func materializeFileBody(
	resolved *restfile.ResolvedRequest,
	path string,
	fs filesvc.Service,
	sink notify.Sink,
) {
	data, err := fs.ReadFile(path)
	if err != nil {
		notify.Warnf(sink, "body file not found: %s", path)
		return
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".graphql", ".gql":
		if resolved.Method == "POST" {
			resolved.Body = wrapGraphQLQuery(string(data))
			resolved.HasBody = true
			return
		}
		resolved.URL = appendQueryParam(resolved.URL, collapseWhitespace(string(data)))
	default:
		resolved.Body = string(data)
		resolved.HasBody = true
	}
}

func wrapGraphQLQuery(query string) string {
	return `{"query": "` + query + `"}`
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func appendQueryParam(rawURL, query string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "query=" + url.QueryEscape(query)
}
