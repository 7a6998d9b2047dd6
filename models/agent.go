package models

type AgentRole string

const (
	AgentRoleTutor       AgentRole = "tutor"
	AgentRoleFacilitator AgentRole = "facilitator"
)

// AgentResponse is a single agent intervention. ActionTag is the agent's
// self-classification of the intervention (e.g. HINT, INVITE_QUIET_MEMBER);
// the set is open so new tags can be introduced prompt-side without code changes.
type AgentResponse struct {
	Content   string    `json:"content"`
	AgentRole AgentRole `json:"agent_role"`
	ActionTag string    `json:"action_tag"`
}
