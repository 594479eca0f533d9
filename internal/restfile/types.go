package restfile

// LineRange is an inclusive 1-based span of document lines.
type LineRange struct {
	Start int
	End   int
}

func (r LineRange) Contains(line int) bool {
	return line >= r.Start && line <= r.End
}

// Block is one separator-delimited section of a request file, prior to
// extraction into a Request. Lines holds the block's raw text without the
// separator line.
type Block struct {
	Range LineRange
	Lines []string
}

// Variable is a document-scope definition in definition order. Value is
// already resolved against the definitions above it.
type Variable struct {
	Name  string
	Value string
	Line  int
}

// BodySource carries the inline body text accumulated while scanning and,
// when the body was declared as an external file, the associated path.
type BodySource struct {
	Text     string
	FilePath string
}

type Request struct {
	Method      string
	URL         string
	HTTPVersion string
	Headers     map[string]string
	Body        *BodySource
	Range       LineRange
}

// Header looks up a header by its canonical lowercase key.
func (r *Request) Header(name string) string {
	if r == nil || r.Headers == nil {
		return ""
	}
	return r.Headers[name]
}

// ResolvedRequest is a Request after template substitution: URL, headers and
// body are final strings ready for command assembly.
type ResolvedRequest struct {
	Method      string
	URL         string
	HTTPVersion string
	Headers     map[string]string
	Body        string
	HasBody     bool
}

// Command is the fully materialized transfer-tool invocation plus the
// side-channel hints the downstream viewer consumes.
type Command struct {
	Args       []string
	Filetype   string
	PipeTarget string
}

type Document struct {
	Path      string
	Variables []Variable
	Requests  []*Request
}

// VariableMap flattens the document scope for lookup. Later definitions win,
// which mirrors how the scope was built.
func (d *Document) VariableMap() map[string]string {
	values := make(map[string]string, len(d.Variables))
	for _, v := range d.Variables {
		values[v.Name] = v.Value
	}
	return values
}
