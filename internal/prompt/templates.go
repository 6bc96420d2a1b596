package prompt

// Template names. Roles resolve to one of these; generalTemplate is the
// fallback for any unmapped role.
const (
	engineerTemplate = "engineer"
	productTemplate  = "product"
	businessTemplate = "business"
	generalTemplate  = "general"
)

// roleTemplates is static configuration mapping a requester role to a
// template name. Resolution never happens at runtime beyond this lookup.
var roleTemplates = map[string]string{
	"engineer":        engineerTemplate,
	"developer":       engineerTemplate,
	"devops":          engineerTemplate,
	"qa":              engineerTemplate,
	"product_manager": productTemplate,
	"product_owner":   productTemplate,
	"designer":        productTemplate,
	"executive":       businessTemplate,
	"sales":           businessTemplate,
	"marketing":       businessTemplate,
	"support":         generalTemplate,
}

var templateBodies = map[string]string{
	engineerTemplate: `You are explaining a technical conversation to a {{.Role}} who understands software but was not part of the discussion.
Explain what was discussed, the technical decisions made, and anything they may need to act on.
Respond in {{.Language}}. Desired style: {{.Style}}.
{{if .CustomInstructions}}Additional instructions from the reader: {{.CustomInstructions}}
{{end}}
Conversation:
{{range .Messages}}{{.Author}}: {{.Text}}
{{end}}`,

	productTemplate: `You are explaining a technical conversation to a {{.Role}}. Focus on outcomes, trade-offs and timelines rather than implementation detail.
Translate jargon into plain product language and call out decisions and open questions.
Respond in {{.Language}}. Desired style: {{.Style}}.
{{if .CustomInstructions}}Additional instructions from the reader: {{.CustomInstructions}}
{{end}}
Conversation:
{{range .Messages}}{{.Author}}: {{.Text}}
{{end}}`,

	businessTemplate: `You are explaining a technical conversation to a {{.Role}} with no engineering background.
Summarize what happened in business terms: impact, risk, cost and next steps. Avoid jargon entirely.
Respond in {{.Language}}. Desired style: {{.Style}}.
{{if .CustomInstructions}}Additional instructions from the reader: {{.CustomInstructions}}
{{end}}
Conversation:
{{range .Messages}}{{.Author}}: {{.Text}}
{{end}}`,

	generalTemplate: `You are explaining a technical conversation to a reader in the role of {{.Role}}.
Explain clearly what was discussed and decided, assuming limited technical context.
Respond in {{.Language}}. Desired style: {{.Style}}.
{{if .CustomInstructions}}Additional instructions from the reader: {{.CustomInstructions}}
{{end}}
Conversation:
{{range .Messages}}{{.Author}}: {{.Text}}
{{end}}`,
}
