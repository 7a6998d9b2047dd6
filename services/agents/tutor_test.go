package agents

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solex2006/astra-social-tutor/llm"
	"github.com/solex2006/astra-social-tutor/models"
)

func TestTutorRespond(t *testing.T) {
	var gotSystem, gotUser string
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		gotSystem = systemPrompt
		gotUser = userPrompt
		return "What does your loop print for n=3?\nACTION_TAG: QUESTION", nil
	}

	state := models.NewLearnerState()
	state.Profiles["student_A"] = models.LearnerProfile{
		KnowledgeLevel: models.KnowledgeLow,
		Misconceptions: []string{"range includes n"},
		Affect:         models.AffectConfused,
		Talkativeness:  models.TalkativenessMedium,
	}
	msg := models.Message{
		SenderID:   "student_A",
		SenderRole: models.RoleStudent,
		Content:    "My sum is always off by n.",
		Timestamp:  time.Now(),
	}

	tutor := NewTutor(mock)
	resp, err := tutor.Respond(context.Background(), msg, state, "Write sum_to_n(n).")
	require.NoError(t, err)

	require.Equal(t, "What does your loop print for n=3?", resp.Content)
	require.Equal(t, "QUESTION", resp.ActionTag)
	require.Equal(t, models.AgentRoleTutor, resp.AgentRole)

	require.Equal(t, TUTOR_SYSTEM_PROMPT, gotSystem)
	require.Contains(t, gotUser, "Write sum_to_n(n).")
	require.Contains(t, gotUser, "My sum is always off by n.")
	require.Contains(t, gotUser, "Knowledge level: low.")
	require.Contains(t, gotUser, "range includes n")
}

func TestTutorRespondDefaultsTagToUnknown(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return "Keep going, you are close.", nil
	}

	tutor := NewTutor(mock)
	msg := models.Message{SenderID: "student_B", SenderRole: models.RoleStudent, Content: "ok"}
	resp, err := tutor.Respond(context.Background(), msg, models.NewLearnerState(), "ctx")
	require.NoError(t, err)
	require.Equal(t, "UNKNOWN", resp.ActionTag)
	require.Equal(t, "Keep going, you are close.", resp.Content)
}

func TestTutorRespondUsesDefaultProfileForUnknownStudent(t *testing.T) {
	var gotUser string
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		gotUser = userPrompt
		return "Hello!\nACTION_TAG: ENCOURAGEMENT", nil
	}

	tutor := NewTutor(mock)
	msg := models.Message{SenderID: "newcomer", SenderRole: models.RoleStudent, Content: "hi"}
	_, err := tutor.Respond(context.Background(), msg, models.NewLearnerState(), "ctx")
	require.NoError(t, err)
	require.Contains(t, gotUser, "Knowledge level: medium.")
	require.Contains(t, gotUser, "none noted yet")
}

func TestTutorRespondPropagatesGenerationError(t *testing.T) {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		return "", errors.New("rate limited")
	}

	tutor := NewTutor(mock)
	msg := models.Message{SenderID: "student_A", SenderRole: models.RoleStudent, Content: "help"}
	resp, err := tutor.Respond(context.Background(), msg, models.NewLearnerState(), "ctx")
	require.Error(t, err)
	require.Nil(t, resp)
	require.True(t, strings.Contains(err.Error(), "rate limited"))
}
