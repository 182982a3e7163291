package contract

import "context"

// Planner is the external reasoning component. Given the conversation so far
// and the tool schemas, it returns either tool invocations or a final answer.
type Planner interface {
	Plan(ctx context.Context, req PlannerRequest) (PlannerDecision, error)
}

// ToolGateway validates and dispatches tool invocations. Execute never
// panics and never propagates a collaborator failure: every outcome is a
// ToolResult.
type ToolGateway interface {
	Specs() []ToolSpec
	Execute(ctx context.Context, req ToolRequest) ToolResult
}
