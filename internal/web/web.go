// Package web holds the embedded dashboard pages. The pages are plain HTML
// plus vanilla JS talking to the JSON API, so the binary ships self-contained.
package web

import _ "embed"

//go:embed index.html
var IndexHTML string

//go:embed upload.html
var UploadHTML string
