// Package static embeds the web stylesheet and other browser assets.
package static

import "embed"

// FS exposes web static assets for HTTP serving, rooted at the asset paths
// below /static/.
//
//go:embed css
var FS embed.FS
