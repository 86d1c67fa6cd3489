package core

import (
	"errors"
	"html/template"
)

var (
	ErrEmptySiteTitle  = errors.New("site title cannot be empty")
	ErrInvalidBaseURL  = errors.New("invalid base url")
	ErrUnknownAsset    = errors.New("unknown asset")
	ErrEmptyOutputPath = errors.New("output directory cannot be empty")
)

type ErrorData struct {
	Message string
	IsDev   bool
}

var ErrorTemplate = template.Must(template.New("error").Parse(`<!doctype html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>
        body { font-family: system-ui, sans-serif; max-width: 800px; margin: 50px auto; padding: 0 20px; }
        h1 { color: #e74c3c; }
        pre { background: #f8f9fa; padding: 15px; border-radius: 5px; overflow-x: auto; }
    </style>
</head>
<body>
    <h1>Something went wrong</h1>
    {{if .IsDev}}
    <pre>{{.Message}}</pre>
    {{else}}
    <p>The page could not be rendered. Please try again later.</p>
    {{end}}
</body>
</html>`))
