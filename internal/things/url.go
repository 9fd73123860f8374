package things

import (
	"net/url"
	"strings"
)

// urlPrefix is the Things JSON import URL scheme.
const urlPrefix = "things:///json?data="

// URL builds the things:/// launch URL for an already-serialized payload.
// Spaces are percent-encoded as %20, not "+", which is what the Things URL
// handler expects in the data parameter.
func URL(payload []byte) string {
	escaped := url.QueryEscape(string(payload))
	return urlPrefix + strings.ReplaceAll(escaped, "+", "%20")
}
