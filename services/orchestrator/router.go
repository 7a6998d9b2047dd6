// Package orchestrator routes each incoming message to the right agent.
// The router owns the routing policy only: learner-state inference lives
// in learnerstate, the pedagogy lives in agents, and persistence is the
// caller's business.
package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/models"
	"github.com/solex2006/astra-social-tutor/services/agents"
	"github.com/solex2006/astra-social-tutor/services/learnerstate"

	"github.com/samber/lo"
)

type Router struct {
	state       *learnerstate.Store
	tutor       *agents.Tutor
	facilitator *agents.Facilitator
}

func NewRouter(state *learnerstate.Store, tutor *agents.Tutor, facilitator *agents.Facilitator) *Router {
	return &Router{
		state:       state,
		tutor:       tutor,
		facilitator: facilitator,
	}
}

type TurnRequest struct {
	Message        models.Message
	History        []models.Message
	State          *models.LearnerState
	ParticipantIDs []string
	TaskContext    string
	// InterventionPeriod is how many student turns pass between facilitator
	// checks; zero or negative disables them.
	InterventionPeriod int
}

// TurnResult carries the outcome of one handled turn. History is a fresh
// slice ending with the incoming message; Response is nil when no agent
// message should be surfaced. On error the extended history and state are
// still returned so the caller can decide whether to adopt or retry.
type TurnResult struct {
	State    *models.LearnerState
	History  []models.Message
	Response *models.AgentResponse
}

// HandleTurn appends the incoming message to the history, refreshes the
// sender's learner profile, and routes the turn: an explicit @tutor
// mention always goes to the tutor, every InterventionPeriod-th student
// turn goes to the facilitator, everything else goes to the tutor.
func (r *Router) HandleTurn(ctx context.Context, req TurnRequest) (TurnResult, error) {
	logging.Infof("Handling turn from %s", req.Message.SenderID)

	history := make([]models.Message, 0, len(req.History)+1)
	history = append(history, req.History...)
	history = append(history, req.Message)

	result := TurnResult{State: req.State, History: history}

	// A failed inference keeps the previous profile; the turn continues.
	r.state.Update(ctx, req.State, req.Message.SenderID, history)

	studentTurns := lo.CountBy(history, func(m models.Message) bool {
		return m.SenderRole == models.RoleStudent
	})

	switch {
	case addressesTutor(req.Message.Content):
		logging.Infof("Routing turn from %s to the tutor (explicitly addressed)", req.Message.SenderID)
		resp, err := r.tutor.Respond(ctx, req.Message, req.State, req.TaskContext)
		if err != nil {
			return result, fmt.Errorf("tutor response failed: %w", err)
		}
		result.Response = resp

	case req.InterventionPeriod > 0 && studentTurns > 0 && studentTurns%req.InterventionPeriod == 0:
		logging.Infof("Routing turn to the facilitator after %d student turns", studentTurns)
		resp, err := r.facilitator.Respond(ctx, history, req.State, req.ParticipantIDs)
		if err != nil {
			return result, fmt.Errorf("facilitator response failed: %w", err)
		}
		if resp.ActionTag == agents.ActionTagNone {
			logging.Infof("Facilitator declined to intervene")
		} else {
			result.Response = resp
		}

	default:
		resp, err := r.tutor.Respond(ctx, req.Message, req.State, req.TaskContext)
		if err != nil {
			return result, fmt.Errorf("tutor response failed: %w", err)
		}
		result.Response = resp
	}

	return result, nil
}

// addressesTutor reports whether a message explicitly calls on the tutor,
// e.g. "@tutor can you check this?". The mention wins over a due
// facilitator check.
func addressesTutor(content string) bool {
	return strings.Contains(content, "@") && strings.Contains(strings.ToLower(content), "tutor")
}
