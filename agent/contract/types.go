package contract

// Role tags a conversation message variant.
type Role string

const (
	RoleSystem Role = "system"
	RoleHuman  Role = "human"
	RoleAI     Role = "ai"
)

// Message is one entry in a session's ordered history.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// ToolParam declares one argument of a tool. Arguments travel as text on the
// wire; semantic parsing happens downstream in the tool implementation.
type ToolParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

// ToolSpec is the schema the Planner sees for one callable tool.
type ToolSpec struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      []ToolParam `json:"params"`
}

// ToolRequest is a validated-shape invocation: tool name plus text arguments.
type ToolRequest struct {
	Tool string            `json:"tool"`
	Args map[string]string `json:"args,omitempty"`
}

// ToolCall pairs a request with the provider-assigned call identifier.
type ToolCall struct {
	ID      string      `json:"id,omitempty"`
	Request ToolRequest `json:"request"`
}

// ToolResult carries a tool outcome with the error still typed. The error is
// flattened to text only at the Planner-facing edge, via Text.
type ToolResult struct {
	Tool   string `json:"tool"`
	Output string `json:"output,omitempty"`
	Err    error  `json:"-"`
}

// Text renders the result the way the Planner receives it: the success
// payload, or "Error: <cause>".
func (r ToolResult) Text() string {
	if r.Err != nil {
		return "Error: " + r.Err.Error()
	}
	return r.Output
}

// ToolExchange records one completed step of the current turn: the call the
// Planner made and the text it got back. A zero Call marks a corrective
// exchange (the Planner's previous output could not be parsed).
type ToolExchange struct {
	Call   ToolCall `json:"call"`
	Result string   `json:"result"`
}

// PlannerRequest is everything the Planner needs to decide the next step of
// a turn: the session history, the tool schemas, and the steps taken so far
// this turn.
type PlannerRequest struct {
	Messages []Message      `json:"messages"`
	Tools    []ToolSpec     `json:"tools"`
	Steps    []ToolExchange `json:"steps,omitempty"`
}

// PlannerDecision is either one or more tool calls or a final answer,
// never both.
type PlannerDecision struct {
	FinalAnswer string     `json:"final_answer,omitempty"`
	ToolCalls   []ToolCall `json:"tool_calls,omitempty"`
}
