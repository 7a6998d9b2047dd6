package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/solex2006/astra-social-tutor/llm"
	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/models"
	"github.com/solex2006/astra-social-tutor/services/learnerstate"

	"github.com/samber/lo"
)

// historyWindow is how much recent conversation the facilitator sees.
const historyWindow = 15

type Facilitator struct {
	llm llm.Client
}

func NewFacilitator(client llm.Client) *Facilitator {
	return &Facilitator{llm: client}
}

// Respond reviews the recent group conversation and either proposes a
// collaboration intervention or classifies the check as NONE. Callers
// decide whether a NONE response is surfaced to the group.
func (f *Facilitator) Respond(ctx context.Context, history []models.Message, state *models.LearnerState, participantIDs []string) (*models.AgentResponse, error) {
	logging.Infof("Starting facilitator check over %d history entries", len(history))

	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	lines := lo.Map(recent, func(m models.Message, _ int) string {
		return fmt.Sprintf("%s (%s): %s", m.SenderID, m.SenderRole, m.Content)
	})
	conversation := strings.Join(lines, "\n")

	groupState := learnerstate.SummarizeGroup(state, participantIDs)
	userPrompt := fmt.Sprintf(FACILITATOR_USER_PROMPT, conversation, groupState)

	raw, err := f.llm.Generate(ctx, FACILITATOR_SYSTEM_PROMPT, userPrompt)
	if err != nil {
		logging.Errorf("Failed to generate facilitator response: %v", err)
		return nil, fmt.Errorf("failed to generate facilitator response: %w", err)
	}

	content, tag := parseActionTag(raw, defaultFacilitatorTag)

	logging.Infof("Facilitator check finished with action %s", tag)
	return &models.AgentResponse{
		Content:   content,
		AgentRole: models.AgentRoleFacilitator,
		ActionTag: tag,
	}, nil
}
