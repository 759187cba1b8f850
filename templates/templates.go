// Package templates embeds the HTML views so the binary runs without a
// templates directory next to it.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
