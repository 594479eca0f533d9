package curl

import (
	"sort"
	"strings"

	"github.com/unkn0wn-root/restcurl/internal/restfile"
)

// BuildOptions carries everything the argument assembly needs beyond the
// resolved request itself.
type BuildOptions struct {
	HeadersFile  string
	BodyFile     string
	ExtraOptions []string
	Version      string
}

// BuildCommand turns one resolved request into the transfer-tool argument
// vector plus the response filetype hint and optional pipe target. Pure:
// no filesystem effects happen here (see Output for the side files).
func BuildCommand(req restfile.ResolvedRequest, opts BuildOptions) restfile.Command {
	args := []string{
		cmdCurl,
		flagSilent,
		flagDumpHeader, opts.HeadersFile,
		flagOutput, opts.BodyFile,
		flagRequest, req.Method,
	}

	if req.HasBody {
		if flag, ok := bodyFlag(req.Headers[headerContentType]); ok {
			args = append(args, flag, req.Body)
		}
	}

	pipeTarget := ""
	for _, key := range sortedHeaderKeys(req.Headers) {
		value := req.Headers[key]
		if strings.HasPrefix(key, pseudoHeaderPrefix) {
			if key == pseudoHeaderPipe {
				pipeTarget = value
			}
			continue
		}
		args = append(args, flagHeader, key+": "+value)
	}

	if req.HTTPVersion != "" {
		args = append(args, httpVersionFlagPrefix+req.HTTPVersion)
	}

	args = append(args, flagUserAgent, "restcurl/"+opts.Version)
	args = append(args, opts.ExtraOptions...)
	args = append(args, req.URL)

	return restfile.Command{
		Args:       args,
		Filetype:   ResponseFiletype(req.Headers[headerAccept]),
		PipeTarget: pipeTarget,
	}
}

// bodyFlag picks the data flag for the resolved content type; first match
// wins and at most one branch fires.
func bodyFlag(contentType string) (string, bool) {
	mediaType := normalizeMediaType(contentType)
	switch {
	case mediaType == mimeTextPlain:
		return flagDataRaw, true
	case strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "json"):
		return flagData, true
	case mediaType == mimeFormURLEncoded:
		return flagData, true
	case strings.HasPrefix(mediaType, mimeMultipartForm):
		return flagDataBinary, true
	default:
		return "", false
	}
}

// ResponseFiletype infers the viewer filetype hint from the accept header.
func ResponseFiletype(accept string) string {
	switch normalizeMediaType(accept) {
	case mimeJSON:
		return FiletypeJSON
	case mimeXML:
		return FiletypeXML
	case mimeHTML:
		return FiletypeHTML
	default:
		return FiletypeText
	}
}

// normalizeMediaType drops parameters and secondary entries so that
// "application/json; charset=utf-8" and "application/json, text/plain"
// both classify as JSON.
func normalizeMediaType(value string) string {
	if idx := strings.IndexAny(value, ";,"); idx >= 0 {
		value = value[:idx]
	}
	return strings.ToLower(strings.TrimSpace(value))
}

func sortedHeaderKeys(headers map[string]string) []string {
	keys := make([]string, 0, len(headers))
	for key := range headers {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
