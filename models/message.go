package models

import "time"

type Role string

const (
	RoleStudent          Role = "student"
	RoleTutorAgent       Role = "tutor-agent"
	RoleFacilitatorAgent Role = "facilitator-agent"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTutorAgent, RoleFacilitatorAgent:
		return true
	}
	return false
}

type Message struct {
	SenderID   string    `json:"sender_id"`
	SenderRole Role      `json:"sender_role"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
}
