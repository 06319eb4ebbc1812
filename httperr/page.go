// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr

import (
	"html"
	"io"
	"strconv"

	"github.com/valyala/fasttemplate"
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>{{status}} {{reason}}</title>
</head>
<body>
<h2>Site Error</h2>
<p>Sorry, a site error occurred.</p>
{{title}}{{message}}{{detail}}
</body>
</html>
`

var page = fasttemplate.New(pageTemplate, "{{", "}}")

// renderPage fills the error page for e. Title and message are escaped; the
// detail fragment is trusted HTML.
func renderPage(e *HTTPException) string {
	return page.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		switch tag {
		case "status":
			return io.WriteString(w, strconv.Itoa(e.status))
		case "reason":
			return io.WriteString(w, html.EscapeString(StatusText(e.status)))
		case "title":
			if e.title == "" {
				return 0, nil
			}
			return io.WriteString(w, "<p><strong>"+html.EscapeString(e.title)+"</strong></p>\n")
		case "message":
			if e.message == "" {
				return 0, nil
			}
			return io.WriteString(w, "<p>"+html.EscapeString(e.message)+"</p>\n")
		case "detail":
			if e.detail == "" {
				return 0, nil
			}
			return io.WriteString(w, e.detail+"\n")
		}
		return 0, nil
	})
}
