// Package learnerstate maintains per-student learner profiles inferred
// from recent messages. The agents adapt their interventions to these
// profiles, so inference failures degrade the tutoring quality but must
// never fail a turn: a failed update leaves the state untouched.
package learnerstate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/solex2006/astra-social-tutor/llm"
	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/models"

	"github.com/samber/lo"
)

// recentMessageWindow is how many of the student's own messages feed
// one profile inference.
const recentMessageWindow = 5

type Store struct {
	llm llm.Client
}

func NewStore(client llm.Client) *Store {
	return &Store{llm: client}
}

// UpdateResult reports what a profile update did. Updated is false when
// the update was skipped; Err carries the reason when the skip was caused
// by a failure rather than by policy. Profile is the profile in effect
// after the call either way.
type UpdateResult struct {
	Updated bool
	Profile models.LearnerProfile
	Err     error
}

// Update infers a fresh profile for studentID from their recent messages
// in history and merges it into state. The merge is tolerant: fields the
// inference omits or fills with unknown values keep their previous value,
// and any generation or parse failure skips the whole update.
func (s *Store) Update(ctx context.Context, state *models.LearnerState, studentID string, history []models.Message) UpdateResult {
	logging.Infof("Starting learner state update for student %s", studentID)

	previous := state.Profile(studentID)

	studentMessages := lo.Filter(history, func(m models.Message, _ int) bool {
		return m.SenderID == studentID
	})
	if len(studentMessages) > recentMessageWindow {
		studentMessages = studentMessages[len(studentMessages)-recentMessageWindow:]
	}

	contents := lo.Map(studentMessages, func(m models.Message, _ int) string {
		return m.Content
	})
	lastText := strings.Join(contents, "\n")
	if lastText == "" {
		lastText = "[no recent messages]"
	}

	systemPrompt := LEARNER_STATE_SYSTEM_PROMPT + fmt.Sprintf(LEARNER_STATE_SCHEMA_SUFFIX, profileSchema())
	userPrompt := fmt.Sprintf(LEARNER_STATE_USER_PROMPT, lastText)

	raw, err := s.llm.Generate(ctx, systemPrompt, userPrompt)
	if err != nil {
		logging.Errorf("Failed to infer learner state for student %s: %v", studentID, err)
		return UpdateResult{Updated: false, Profile: previous, Err: fmt.Errorf("failed to infer learner state: %w", err)}
	}

	var inferred profileInference
	if err := json.Unmarshal([]byte(raw), &inferred); err != nil {
		logging.Errorf("Failed to parse learner state response for student %s: %v", studentID, err)
		return UpdateResult{Updated: false, Profile: previous, Err: fmt.Errorf("failed to parse learner state response: %w", err)}
	}

	fresh := mergeProfile(previous, inferred)
	state.Profiles[studentID] = fresh

	logging.Infof("Successfully updated learner state for student %s", studentID)
	return UpdateResult{Updated: true, Profile: fresh}
}

// mergeProfile folds an inference result into the previous profile.
// Omitted fields and values outside the closed enums keep the previous
// value; a present-but-empty misconception list is a deliberate reset.
func mergeProfile(previous models.LearnerProfile, inferred profileInference) models.LearnerProfile {
	fresh := previous

	if inferred.KnowledgeLevel != nil {
		if v := models.KnowledgeLevel(normalizeEnum(*inferred.KnowledgeLevel)); v.Valid() {
			fresh.KnowledgeLevel = v
		}
	}
	if inferred.Affect != nil {
		if v := models.Affect(normalizeEnum(*inferred.Affect)); v.Valid() {
			fresh.Affect = v
		}
	}
	if inferred.Talkativeness != nil {
		if v := models.Talkativeness(normalizeEnum(*inferred.Talkativeness)); v.Valid() {
			fresh.Talkativeness = v
		}
	}
	if inferred.Misconceptions != nil {
		fresh.Misconceptions = inferred.Misconceptions
	}

	return fresh
}

func normalizeEnum(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
