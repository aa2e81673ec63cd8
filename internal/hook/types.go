package hook

import (
	"context"
	"encoding/json"
	"io"
	"time"
)

// DefaultHookTimeout bounds a single hook dispatch, analyzers included.
const DefaultHookTimeout = 30 * time.Second

// EventType represents a Claude Code hook event type.
type EventType string

const (
	// EventPostToolUse is triggered after a tool has been executed. The
	// whole workflow pipeline hangs off this event.
	EventPostToolUse EventType = "PostToolUse"
)

// DecisionBlock is the top-level decision value that makes Claude act on
// the hook's reason instead of continuing silently.
const DecisionBlock = "block"

// Tool names the pipeline reacts to.
const (
	ToolTodoWrite      = "TodoWrite"
	ToolBash           = "Bash"
	ToolTask           = "Task"
	ToolMCPDiagnostics = "mcp__vscode-mcp__get_diagnostics"
)

// CodeReviewerAgent is the subagent_type value identifying a code review
// Task invocation.
const CodeReviewerAgent = "code-reviewer"

// HookInput is the JSON payload received from Claude Code via stdin.
// Fields follow the official Claude Code hooks protocol; only the fields
// the pipeline reads are declared.
type HookInput struct {
	SessionID      string `json:"session_id,omitempty"`
	TranscriptPath string `json:"transcript_path,omitempty"`
	CWD            string `json:"cwd,omitempty"`
	PermissionMode string `json:"permission_mode,omitempty"`
	HookEventName  string `json:"hook_event_name,omitempty"`

	ToolName     string          `json:"tool_name,omitempty"`
	ToolInput    json.RawMessage `json:"tool_input,omitempty"`
	ToolResponse json.RawMessage `json:"tool_response,omitempty"`
	ToolUseID    string          `json:"tool_use_id,omitempty"`
}

// HookSpecificOutput is the hookSpecificOutput field for PostToolUse.
type HookSpecificOutput struct {
	HookEventName     string `json:"hookEventName,omitempty"`
	AdditionalContext string `json:"additionalContext,omitempty"`
	Stage             string `json:"stage,omitempty"`
	CompletedTasks    int    `json:"completedTasks,omitempty"`
	DiagnosticsTool   string `json:"diagnosticsTool,omitempty"`
	SubagentType      string `json:"subagentType,omitempty"`
}

// HookOutput is the JSON payload written to stdout for Claude Code. A
// zero-value output serializes as {} which tells Claude Code to carry on.
type HookOutput struct {
	SystemMessage  string `json:"systemMessage,omitempty"`
	SuppressOutput bool   `json:"suppressOutput,omitempty"`

	// Decision "block" makes Claude act on Reason instead of continuing.
	Decision string `json:"decision,omitempty"`
	Reason   string `json:"reason,omitempty"`

	HookSpecificOutput *HookSpecificOutput `json:"hookSpecificOutput,omitempty"`
}

// IsBlock reports whether the output carries a blocking decision.
func (o *HookOutput) IsBlock() bool {
	return o != nil && o.Decision == DecisionBlock
}

// NewPassOutput creates the empty output that lets Claude continue.
func NewPassOutput() *HookOutput {
	return &HookOutput{}
}

// NewPostToolBlockOutput creates a blocking PostToolUse output carrying a
// next-stage prompt.
func NewPostToolBlockOutput(reason string, specific *HookSpecificOutput) *HookOutput {
	if specific != nil && specific.HookEventName == "" {
		specific.HookEventName = string(EventPostToolUse)
	}
	return &HookOutput{
		Decision:           DecisionBlock,
		Reason:             reason,
		HookSpecificOutput: specific,
	}
}

// Handler processes a specific hook event type.
type Handler interface {
	// Handle processes the hook input and returns output. Returning
	// (nil, nil) means the handler has nothing to say about this input.
	Handle(ctx context.Context, input *HookInput) (*HookOutput, error)

	// EventType returns the event type this handler processes.
	EventType() EventType
}

// Registry manages handler registration and event dispatching.
type Registry interface {
	// Register adds a handler to the registry for its declared event type.
	Register(handler Handler)

	// Dispatch sends an event to all registered handlers for the given
	// event type. Handlers run sequentially; the first blocking output
	// short-circuits the rest.
	Dispatch(ctx context.Context, event EventType, input *HookInput) (*HookOutput, error)

	// Handlers returns all handlers registered for the given event type.
	Handlers(event EventType) []Handler
}

// Protocol handles JSON communication with Claude Code via stdin/stdout.
type Protocol interface {
	// ReadInput reads and parses JSON from the given reader.
	ReadInput(r io.Reader) (*HookInput, error)

	// WriteOutput serializes the output as JSON to the given writer.
	WriteOutput(w io.Writer, output *HookOutput) error
}
