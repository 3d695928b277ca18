// Package page renders the thumbnail gallery document.
package page

import (
	"html/template"
	"io"
	"strings"
)

// Background is the fixed page background color.
const Background = "#CCCCCC"

// Paths are escaped by html/template even though they come from the local
// filesystem.
var tmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head>
<title>Thumbnails</title>
</head>
<body style="background-color:{{.Background}};">
{{range .Paths}}<img src="{{.}}" /><br />
{{end}}</body>
</html>
`))

type data struct {
	Background template.CSS
	Paths      []string
}

// Render writes the gallery page with one image per path, in order.
func Render(w io.Writer, paths []string) error {
	return tmpl.Execute(w, data{Background: Background, Paths: paths})
}

// HTML returns the gallery page as a string.
func HTML(paths []string) string {
	var sb strings.Builder
	// strings.Builder never fails and the template only ranges over strings.
	_ = Render(&sb, paths)
	return sb.String()
}
