package prompt

import (
	"fmt"
	"strings"
	"text/template"

	apperror "thread-translator/internal/error"
	"thread-translator/internal/translation"
)

// Composer renders role-specific prompts from a fixed template registry
type Composer struct {
	templates map[string]*template.Template
}

// templateData is everything a template may embed
type templateData struct {
	Role               string
	Language           string
	CustomInstructions string
	Style              string
	Messages           []translation.Message
}

// ------------------------------------------------------------------------------------------------------
// NewComposer parses the built-in template registry
func NewComposer() (*Composer, error) {
	parsed := make(map[string]*template.Template, len(templateBodies))

	for name, body := range templateBodies {
		tpl, err := template.New(name).Parse(body)
		if err != nil {
			return nil, apperror.NewConfigurationError(
				fmt.Sprintf("failed to parse template '%s'", name), err)
		}
		parsed[name] = tpl
	}

	return &Composer{templates: parsed}, nil
}

// ------------------------------------------------------------------------------------------------------
// Build renders the prompt for one translation request. The output
// deterministically embeds role, language, custom instructions, style and
// the full message list in order. A resolved template name that is absent
// from the registry is a fatal configuration error.
func (c *Composer) Build(profile translation.Profile, messages []translation.Message, style string) (string, error) {
	name := resolveTemplate(profile.Role)

	tpl, ok := c.templates[name]
	if !ok {
		return "", apperror.NewConfigurationError(
			fmt.Sprintf("no template registered for name '%s'", name), nil)
	}

	var b strings.Builder
	err := tpl.Execute(&b, templateData{
		Role:               profile.Role,
		Language:           profile.Language,
		CustomInstructions: profile.CustomInstructions,
		Style:              style,
		Messages:           messages,
	})
	if err != nil {
		return "", apperror.NewConfigurationError(
			fmt.Sprintf("failed to render template '%s'", name), err)
	}

	return b.String(), nil
}

// ------------------------------------------------------------------------------------------------------
// resolveTemplate maps a role to its template name, falling back to the
// general template for unmapped roles
func resolveTemplate(role string) string {
	if name, ok := roleTemplates[strings.ToLower(role)]; ok {
		return name
	}
	return generalTemplate
}
