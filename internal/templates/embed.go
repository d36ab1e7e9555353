package templates

import "embed"

// Files stores the HTML pages bundled into the binary.
//
//go:embed *.html
var Files embed.FS
