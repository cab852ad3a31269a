package templates

// Java entry-file templates.

var javaTemplates = []Template{
	{
		Name:     TemplateName("java", CategoryBasic),
		Language: "java",
		Category: CategoryBasic,
		Body: `/*
 * {{SERVER_NAME}} v{{SERVER_VERSION}}
 * {{SERVER_DESCRIPTION}}
 *
 * Minimal MCP server running over the {{TRANSPORT}} transport.
 */

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
	{
		Name:     TemplateName("java", CategoryTools),
		Language: "java",
		Category: CategoryTools,
		Body: `/*
 * {{SERVER_NAME}} v{{SERVER_VERSION}}
 * {{SERVER_DESCRIPTION}}
 *
 * MCP server exposing tools over the {{TRANSPORT}} transport.
 * Tool handlers are registered on the SDK server instance below.
 */

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
	{
		Name:     TemplateName("java", CategoryResources),
		Language: "java",
		Category: CategoryResources,
		Body: `/*
 * {{SERVER_NAME}} v{{SERVER_VERSION}}
 * {{SERVER_DESCRIPTION}}
 *
 * MCP server exposing resources over the {{TRANSPORT}} transport.
 * Resource providers are registered on the SDK server instance below.
 */

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
	{
		Name:     TemplateName("java", CategoryPrompts),
		Language: "java",
		Category: CategoryPrompts,
		Body: `/*
 * {{SERVER_NAME}} v{{SERVER_VERSION}}
 * {{SERVER_DESCRIPTION}}
 *
 * MCP server exposing prompts over the {{TRANSPORT}} transport.
 * Prompt definitions are registered on the SDK server instance below.
 */

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
	{
		Name:     TemplateName("java", CategoryAdvanced),
		Language: "java",
		Category: CategoryAdvanced,
		Body: `/*
 * {{SERVER_NAME}} v{{SERVER_VERSION}}
 * {{SERVER_DESCRIPTION}}
 *
 * Full-capability MCP server (tools, resources, prompts) over the
 * {{TRANSPORT}} transport.
 */

{{SERVER_CODE}}
`,
		Placeholders: []string{"SERVER_NAME", "SERVER_VERSION", "SERVER_DESCRIPTION", "TRANSPORT", "SERVER_CODE"},
	},
}
