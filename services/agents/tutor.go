// Package agents implements the two pedagogical strategies: a tutor that
// answers individual students and a facilitator that watches the group.
// Both are stateless between calls; everything they adapt to arrives as
// arguments.
package agents

import (
	"context"
	"fmt"

	"github.com/solex2006/astra-social-tutor/llm"
	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/models"
	"github.com/solex2006/astra-social-tutor/services/learnerstate"
)

type Tutor struct {
	llm llm.Client
}

func NewTutor(client llm.Client) *Tutor {
	return &Tutor{llm: client}
}

// Respond produces a Socratic tutoring reply to one student message,
// adapted to the student's current learner profile and the task at hand.
func (t *Tutor) Respond(ctx context.Context, msg models.Message, state *models.LearnerState, taskContext string) (*models.AgentResponse, error) {
	logging.Infof("Starting tutor response for student %s", msg.SenderID)

	learnerSummary := learnerstate.SummarizeStudent(state, msg.SenderID)
	userPrompt := fmt.Sprintf(TUTOR_USER_PROMPT, taskContext, learnerSummary, msg.Content)

	raw, err := t.llm.Generate(ctx, TUTOR_SYSTEM_PROMPT, userPrompt)
	if err != nil {
		logging.Errorf("Failed to generate tutor response for student %s: %v", msg.SenderID, err)
		return nil, fmt.Errorf("failed to generate tutor response: %w", err)
	}

	content, tag := parseActionTag(raw, defaultTutorTag)

	logging.Infof("Tutor responded to student %s with action %s", msg.SenderID, tag)
	return &models.AgentResponse{
		Content:   content,
		AgentRole: models.AgentRoleTutor,
		ActionTag: tag,
	}, nil
}
