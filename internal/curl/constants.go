package curl

const (
	cmdCurl = "curl"

	flagSilent     = "--silent"
	flagDumpHeader = "--dump-header"
	flagOutput     = "--output"
	flagRequest    = "--request"
	flagHeader     = "--header"
	flagDataRaw    = "--data-raw"
	flagData       = "--data"
	flagDataBinary = "--data-binary"
	flagUserAgent  = "--user-agent"

	httpVersionFlagPrefix = "--http"
)

const (
	headerContentType = "content-type"
	headerAccept      = "accept"

	pseudoHeaderPrefix = "http-client-"
	pseudoHeaderPipe   = "http-client-pipe"
)

const (
	mimeTextPlain      = "text/plain"
	mimeJSON           = "application/json"
	mimeXML            = "application/xml"
	mimeHTML           = "text/html"
	mimeFormURLEncoded = "application/x-www-form-urlencoded"
	mimeMultipartForm  = "multipart/form-data"
)

const (
	FiletypeJSON = "json"
	FiletypeXML  = "xml"
	FiletypeHTML = "html"
	FiletypeText = "text"
)

// File names inside the output directory. The downstream viewer expects
// these exact names.
const (
	headersFileName  = "headers.txt"
	bodyFileName     = "body.txt"
	filetypeFileName = "ft.txt"
	debugFileName    = "request.txt"
)
