package defs

// ClaudeHomeDirName is the directory under $HOME where Claude Code reads
// its configuration.
const ClaudeHomeDirName = ".claude"

// File names linked into the Claude config home.
const (
	// SettingsJSON is the Claude Code global settings file.
	SettingsJSON = "settings.json"

	// ClaudeMD is the global Claude Code instructions file.
	ClaudeMD = "CLAUDE.md"

	// StatuslineScript is the status line entry script referenced from
	// settings.json.
	StatuslineScript = "statusline.sh"
)

// Directory names linked into the Claude config home.
const (
	AgentsDir       = "agents"
	CommandsDir     = "commands"
	SkillsDir       = "skills"
	HooksDir        = "hooks"
	OutputStylesDir = "output-styles"
)

// Tool-owned paths under the Claude config home.
const (
	// ToolConfigDirName holds dotclaude's own YAML section files.
	ToolConfigDirName = "dotclaude"

	// StatuslineYAML configures the statusline renderer.
	StatuslineYAML = "statusline.yaml"

	// HooksYAML configures the workflow hook pipeline.
	HooksYAML = "hooks.yaml"
)

// SourceDirName is the subtree of the repository that mirrors the Claude
// config home layout. Everything the installer links lives under it.
const SourceDirName = "claude"
