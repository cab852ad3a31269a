package parser

// Generic fallbacks used when a response carries code but no documentation.
// The mixed and plain-text strategies fill the gaps so downstream builders can
// rely on every textual field being present.

func defaultReadme(language string) string {
	switch language {
	case "python":
		return "# MCP Server\n\nA Model Context Protocol server implemented in Python.\n"
	case "java":
		return "# MCP Server\n\nA Model Context Protocol server implemented in Java.\n"
	default:
		return "# MCP Server\n\nA Model Context Protocol server implemented in TypeScript.\n"
	}
}

func defaultInstallInstructions(language string) string {
	switch language {
	case "python":
		return "pip install -r requirements.txt"
	case "java":
		return "mvn clean package"
	default:
		return "npm install\nnpm run build"
	}
}

func defaultUsageExample(language string) string {
	switch language {
	case "python":
		return "python server.py"
	case "java":
		return "java -jar target/server.jar"
	default:
		return "npm start"
	}
}
