package templates

// TypeScript entry-file templates. Bodies are data; the builder supplies the
// extracted server code through SERVER_CODE.

var typescriptTemplates = []Template{
	{
		Name:     TemplateName("typescript", CategoryBasic),
		Language: "typescript",
		Category: CategoryBasic,
		Body: `/**
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
		Name:     TemplateName("typescript", CategoryTools),
		Language: "typescript",
		Category: CategoryTools,
		Body: `/**
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
		Name:     TemplateName("typescript", CategoryResources),
		Language: "typescript",
		Category: CategoryResources,
		Body: `/**
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
		Name:     TemplateName("typescript", CategoryPrompts),
		Language: "typescript",
		Category: CategoryPrompts,
		Body: `/**
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
		Name:     TemplateName("typescript", CategoryAdvanced),
		Language: "typescript",
		Category: CategoryAdvanced,
		Body: `/**
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
