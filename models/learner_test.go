package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileDefaultsForUnknownStudent(t *testing.T) {
	state := NewLearnerState()

	got := state.Profile("student_A")
	require.Equal(t, DefaultProfile(), got)

	// Reading must not insert an entry.
	_, exists := state.Profiles["student_A"]
	require.False(t, exists)
}

func TestProfileReturnsStoredValue(t *testing.T) {
	state := NewLearnerState()
	state.Profiles["student_A"] = LearnerProfile{
		KnowledgeLevel: KnowledgeHigh,
		Misconceptions: []string{"off-by-one"},
		Affect:         AffectEngaged,
		Talkativeness:  TalkativenessLow,
	}

	got := state.Profile("student_A")
	require.Equal(t, KnowledgeHigh, got.KnowledgeLevel)
	require.Equal(t, []string{"off-by-one"}, got.Misconceptions)
}

func TestLearnerStateClone(t *testing.T) {
	state := NewLearnerState()
	state.Profiles["student_A"] = LearnerProfile{
		KnowledgeLevel: KnowledgeLow,
		Misconceptions: []string{"loops start at 1"},
		Affect:         AffectConfused,
		Talkativeness:  TalkativenessMedium,
	}
	state.Semantic["student_A"] = map[string]float64{"loops": 0.4}
	state.Episodic["student_A"] = []string{"asked about range"}

	clone := state.Clone()

	clone.Profiles["student_A"] = LearnerProfile{KnowledgeLevel: KnowledgeHigh}
	clone.Profiles["student_B"] = DefaultProfile()
	clone.Semantic["student_A"]["loops"] = 0.9
	clone.Episodic["student_A"][0] = "changed"

	require.Equal(t, KnowledgeLow, state.Profiles["student_A"].KnowledgeLevel)
	require.Len(t, state.Profiles, 1)
	require.Equal(t, 0.4, state.Semantic["student_A"]["loops"])
	require.Equal(t, "asked about range", state.Episodic["student_A"][0])
}

func TestCloneCopiesMisconceptions(t *testing.T) {
	state := NewLearnerState()
	state.Profiles["student_A"] = LearnerProfile{
		KnowledgeLevel: KnowledgeMedium,
		Misconceptions: []string{"original"},
		Affect:         AffectNeutral,
		Talkativeness:  TalkativenessMedium,
	}

	clone := state.Clone()
	clone.Profiles["student_A"].Misconceptions[0] = "mutated"

	require.Equal(t, "original", state.Profiles["student_A"].Misconceptions[0])
}

func TestEnumValidity(t *testing.T) {
	require.True(t, KnowledgeLow.Valid())
	require.True(t, AffectFrustrated.Valid())
	require.True(t, TalkativenessHigh.Valid())

	require.False(t, KnowledgeLevel("expert").Valid())
	require.False(t, Affect("bored").Valid())
	require.False(t, Talkativeness("chatty").Valid())

	require.True(t, RoleStudent.Valid())
	require.True(t, RoleTutorAgent.Valid())
	require.True(t, RoleFacilitatorAgent.Valid())
	require.False(t, Role("observer").Valid())
}
