package target

// DefaultCatalog returns the built-in target catalog.
//
// Tools are declared in a fixed order; within one scope that order decides
// which target wins field conflicts during discovery. Each tool may have a
// global target, a project target, or both.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Target{
		{
			ID:       "opencode_global",
			Tool:     "opencode",
			Label:    "OpenCode",
			Scope:    ScopeGlobal,
			Dialect:  DialectArrayCommand,
			Format:   FormatJSON,
			RootKey:  "mcp",
			Nested:   true,
			Path:     "~/.config/opencode/opencode.json",
			Category: CategoryCLI,
		},
		{
			ID:       "opencode_project",
			Tool:     "opencode",
			Label:    "OpenCode",
			Scope:    ScopeProject,
			Dialect:  DialectArrayCommand,
			Format:   FormatJSON,
			RootKey:  "mcp",
			Nested:   true,
			Path:     "opencode.json",
			Category: CategoryCLI,
		},
		{
			ID:       "claude_code_global",
			Tool:     "claude_code",
			Label:    "Claude Code",
			Scope:    ScopeGlobal,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Nested:   true,
			Path:     "~/.claude.json",
			Category: CategoryCLI,
		},
		{
			ID:       "claude_code_project",
			Tool:     "claude_code",
			Label:    "Claude Code",
			Scope:    ScopeProject,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".mcp.json",
			Category: CategoryCLI,
		},
		{
			ID:       "claude_desktop_global",
			Tool:     "claude_desktop",
			Label:    "Claude Desktop",
			Scope:    ScopeGlobal,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/Library/Application Support/Claude/claude_desktop_config.json",
			Category: CategoryDesktop,
		},
		{
			ID:       "vscode_global",
			Tool:     "vscode",
			Label:    "VS Code",
			Scope:    ScopeGlobal,
			Dialect:  DialectTypedRemote,
			Format:   FormatJSON,
			RootKey:  "servers",
			Path:     "~/Library/Application Support/Code/User/mcp.json",
			Category: CategoryEditor,
		},
		{
			ID:       "vscode_project",
			Tool:     "vscode",
			Label:    "VS Code",
			Scope:    ScopeProject,
			Dialect:  DialectTypedRemote,
			Format:   FormatJSON,
			RootKey:  "servers",
			Path:     ".vscode/mcp.json",
			Category: CategoryEditor,
		},
		{
			ID:       "windsurf_global",
			Tool:     "windsurf",
			Label:    "Windsurf",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/.codeium/windsurf/mcp_config.json",
			Category: CategoryEditor,
		},
		{
			ID:       "windsurf_project",
			Tool:     "windsurf",
			Label:    "Windsurf",
			Scope:    ScopeProject,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".windsurf/mcp_config.json",
			Category: CategoryEditor,
		},
		{
			ID:       "gemini_cli_global",
			Tool:     "gemini_cli",
			Label:    "Gemini CLI",
			Scope:    ScopeGlobal,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Nested:   true,
			Path:     "~/.gemini/settings.json",
			Category: CategoryCLI,
		},
		{
			ID:       "gemini_cli_project",
			Tool:     "gemini_cli",
			Label:    "Gemini CLI",
			Scope:    ScopeProject,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Nested:   true,
			Path:     ".gemini/settings.json",
			Category: CategoryCLI,
		},
		{
			ID:       "cursor_global",
			Tool:     "cursor",
			Label:    "Cursor",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/.cursor/mcp.json",
			Category: CategoryEditor,
		},
		{
			ID:       "cursor_project",
			Tool:     "cursor",
			Label:    "Cursor",
			Scope:    ScopeProject,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".cursor/mcp.json",
			Category: CategoryEditor,
		},
		{
			ID:       "copilot_cli_global",
			Tool:     "copilot_cli",
			Label:    "GitHub Copilot CLI",
			Scope:    ScopeGlobal,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/.copilot/mcp-config.json",
			Category: CategoryCLI,
		},
		{
			ID:       "copilot_cli_project",
			Tool:     "copilot_cli",
			Label:    "GitHub Copilot CLI",
			Scope:    ScopeProject,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".copilot/mcp-config.json",
			Category: CategoryCLI,
		},
		{
			ID:       "antigravity_global",
			Tool:     "antigravity",
			Label:    "Antigravity",
			Scope:    ScopeGlobal,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/.gemini/antigravity/mcp_config.json",
			Category: CategoryEditor,
		},
		{
			ID:       "antigravity_project",
			Tool:     "antigravity",
			Label:    "Antigravity",
			Scope:    ScopeProject,
			Dialect:  DialectBridge,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".antigravity/mcp_config.json",
			Category: CategoryEditor,
		},
		{
			ID:       "codex_global",
			Tool:     "codex",
			Label:    "Codex CLI",
			Scope:    ScopeGlobal,
			Dialect:  DialectBridge,
			Format:   FormatTOML,
			RootKey:  "mcp_servers",
			Nested:   true,
			Path:     "~/.codex/config.toml",
			Category: CategoryCLI,
		},
		{
			ID:       "continue_global",
			Tool:     "continue",
			Label:    "Continue",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatYAML,
			RootKey:  "mcpServers",
			Path:     "~/.continue/config.yaml",
			Category: CategoryEditor,
		},
		{
			ID:       "continue_project",
			Tool:     "continue",
			Label:    "Continue",
			Scope:    ScopeProject,
			Dialect:  DialectStandard,
			Format:   FormatYAML,
			RootKey:  "mcpServers",
			Path:     ".continue/config.yaml",
			Category: CategoryEditor,
		},
		{
			ID:       "aider_global",
			Tool:     "aider",
			Label:    "Aider",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatYAML,
			RootKey:  "mcpServers",
			Path:     "~/.aider.conf.yml",
			Category: CategoryCLI,
		},
		{
			ID:       "amp_global",
			Tool:     "amp",
			Label:    "Amp (Sourcegraph)",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/.amp/settings.json",
			Category: CategoryCLI,
		},
		{
			ID:       "cline_vscode_global",
			Tool:     "cline_vscode",
			Label:    "Cline (VS Code)",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/Library/Application Support/Code/User/globalStorage/saoudrizwan.claude-dev/settings/cline_mcp_settings.json",
			Category: CategoryPlugin,
		},
		{
			ID:       "cline_vscode_project",
			Tool:     "cline_vscode",
			Label:    "Cline (VS Code)",
			Scope:    ScopeProject,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".vscode/cline_mcp_settings.json",
			Category: CategoryPlugin,
		},
		{
			ID:       "jetbrains_global",
			Tool:     "jetbrains",
			Label:    "JetBrains (Copilot)",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/.config/github-copilot/intellij/mcp.json",
			Category: CategoryEditor,
		},
		{
			ID:       "kilocode_vscode_global",
			Tool:     "kilocode_vscode",
			Label:    "Kilo Code (VS Code)",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/Library/Application Support/Code/User/globalStorage/kilocode.kilo-code/settings/cline_mcp_settings.json",
			Category: CategoryPlugin,
		},
		{
			ID:       "kilocode_vscode_project",
			Tool:     "kilocode_vscode",
			Label:    "Kilo Code (VS Code)",
			Scope:    ScopeProject,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".kilocode/mcp.json",
			Category: CategoryPlugin,
		},
		{
			ID:       "roo_cline_global",
			Tool:     "roo_cline",
			Label:    "Roo Code / Cline",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/Library/Application Support/Code/User/globalStorage/rooveterinaryinc.roo-cline/settings/cline_mcp_settings.json",
			Category: CategoryPlugin,
		},
		{
			ID:       "roo_cline_project",
			Tool:     "roo_cline",
			Label:    "Roo Code / Cline",
			Scope:    ScopeProject,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".roo/mcp.json",
			Category: CategoryPlugin,
		},
		{
			ID:       "roocode_antigravity_global",
			Tool:     "roocode_antigravity",
			Label:    "Roo Code (Antigravity)",
			Scope:    ScopeGlobal,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     "~/Library/Application Support/Antigravity/User/globalStorage/rooveterinaryinc.roo-cline/settings/cline_mcp_settings.json",
			Category: CategoryPlugin,
		},
		{
			ID:       "roocode_antigravity_project",
			Tool:     "roocode_antigravity",
			Label:    "Roo Code (Antigravity)",
			Scope:    ScopeProject,
			Dialect:  DialectStandard,
			Format:   FormatJSON,
			RootKey:  "mcpServers",
			Path:     ".roo/mcp.json",
			Category: CategoryPlugin,
		},
	})
}
