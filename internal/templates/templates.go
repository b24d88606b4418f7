// Package templates embeds the HTML page and the default configuration file.
package templates

import (
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

const (
	// Page renders the rectangle table; its data is the render package's page.
	Page = "page.html.tmpl"
	// Config renders a default rectviz.yaml from config.RenderConfig.
	Config = "rectviz.yaml.tmpl"
)

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the content of the named template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// HTML parses the named template with contextual HTML escaping.
func HTML(name string) (*htmltemplate.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	return htmltemplate.New(name).Parse(content)
}

// Text parses the named template as plain text.
func Text(name string) (*texttemplate.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	return texttemplate.New(name).Parse(content)
}
