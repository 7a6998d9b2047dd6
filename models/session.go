package models

import "time"

// Session is the metadata of one tutoring session. History and learner
// state live with the session service, which serializes turns per session.
type Session struct {
	ID                 string    `json:"id"`
	GroupID            string    `json:"group_id"`
	Configuration      string    `json:"configuration"`
	TaskID             string    `json:"task_id"`
	TaskName           string    `json:"task_name"`
	Participants       []string  `json:"participants"`
	InterventionPeriod int       `json:"intervention_period"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateSessionRequest struct {
	GroupID            string   `json:"group_id"`
	Configuration      string   `json:"configuration"`
	TaskID             string   `json:"task_id"`
	Participants       []string `json:"participants"`
	InterventionPeriod *int     `json:"intervention_period,omitempty"`
}

type PostMessageRequest struct {
	StudentID string `json:"student_id"`
	Content   string `json:"content"`
}

// TurnResponse is what a handled turn returns to the caller: the recorded
// student message plus the agent response, if one surfaced.
type TurnResponse struct {
	Message  Message        `json:"message"`
	Response *AgentResponse `json:"response"`
}
