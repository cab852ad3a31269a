package templates

// Python entry-file templates.

var pythonTemplates = []Template{
	{
		Name:     TemplateName("python", CategoryBasic),
		Language: "python",
		Category: CategoryBasic,
		Body: `# {{SERVER_NAME}} v{{SERVER_VERSION}}
# {{SERVER_DESCRIPTION}}
#
# Minimal MCP server running over the {{TRANSPORT}} transport.

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
	{
		Name:     TemplateName("python", CategoryTools),
		Language: "python",
		Category: CategoryTools,
		Body: `# {{SERVER_NAME}} v{{SERVER_VERSION}}
# {{SERVER_DESCRIPTION}}
#
# MCP server exposing tools over the {{TRANSPORT}} transport.
# Tool handlers are registered on the server instance below.

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
	{
		Name:     TemplateName("python", CategoryResources),
		Language: "python",
		Category: CategoryResources,
		Body: `# {{SERVER_NAME}} v{{SERVER_VERSION}}
# {{SERVER_DESCRIPTION}}
#
# MCP server exposing resources over the {{TRANSPORT}} transport.
# Resource providers are registered on the server instance below.

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
	{
		Name:     TemplateName("python", CategoryPrompts),
		Language: "python",
		Category: CategoryPrompts,
		Body: `# {{SERVER_NAME}} v{{SERVER_VERSION}}
# {{SERVER_DESCRIPTION}}
#
# MCP server exposing prompts over the {{TRANSPORT}} transport.
# Prompt definitions are registered on the server instance below.

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
	{
		Name:     TemplateName("python", CategoryAdvanced),
		Language: "python",
		Category: CategoryAdvanced,
		Body: `# {{SERVER_NAME}} v{{SERVER_VERSION}}
# {{SERVER_DESCRIPTION}}
#
# Full-capability MCP server (tools, resources, prompts) over the
# {{TRANSPORT}} transport.

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
}
