package models

import "time"

// TurnRecord is one handled student turn as written to the audit trail.
// Agent fields are nil when the turn surfaced no agent response
// (a facilitator check that decided no intervention was needed).
type TurnRecord struct {
	Timestamp   time.Time  `json:"timestamp" db:"timestamp"`
	SessionID   string     `json:"session_id" db:"session_id"`
	TaskID      string     `json:"task_id" db:"task_id"`
	TaskName    string     `json:"task_name" db:"task_name"`
	StudentID   string     `json:"student_id" db:"student_id"`
	StudentMsg  string     `json:"student_msg" db:"student_msg"`
	AgentRole   *AgentRole `json:"agent_role" db:"agent_role"`
	AgentAction *string    `json:"agent_action" db:"agent_action"`
	AgentMsg    *string    `json:"agent_msg" db:"agent_msg"`
}

type SolutionRecord struct {
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
	GroupID       string    `json:"group_id" db:"group_id"`
	Configuration string    `json:"configuration" db:"configuration"`
	TaskID        string    `json:"task_id" db:"task_id"`
	SolutionCode  string    `json:"solution_code" db:"solution_code"`
}

type GradeRecord struct {
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	GroupID   string    `json:"group_id" db:"group_id"`
	TaskID    string    `json:"task_id" db:"task_id"`
	Score     int       `json:"score" db:"score"`
	Comments  string    `json:"comments" db:"comments"`
}

type CreateSolutionRequest struct {
	GroupID       string `json:"group_id"`
	Configuration string `json:"configuration"`
	TaskID        string `json:"task_id"`
	SolutionCode  string `json:"solution_code"`
}

type CreateGradeRequest struct {
	GroupID  string `json:"group_id"`
	TaskID   string `json:"task_id"`
	Score    int    `json:"score"`
	Comments string `json:"comments"`
}
