package learnerstate

import (
	"fmt"
	"strings"

	"github.com/solex2006/astra-social-tutor/models"

	"github.com/samber/lo"
)

// SummarizeStudent renders one student's profile as a sentence the tutor
// prompt can embed. Unseen students summarize as the default profile.
func SummarizeStudent(state *models.LearnerState, studentID string) string {
	p := state.Profile(studentID)

	misconceptions := "none noted yet"
	if len(p.Misconceptions) > 0 {
		misconceptions = strings.Join(p.Misconceptions, "; ")
	}

	return fmt.Sprintf("Knowledge level: %s. Affect: %s. Talkativeness: %s. Key misconceptions: %s.",
		p.KnowledgeLevel, p.Affect, p.Talkativeness, misconceptions)
}

// SummarizeGroup renders one line per participant, in the order given,
// for the facilitator prompt.
func SummarizeGroup(state *models.LearnerState, participantIDs []string) string {
	lines := lo.Map(participantIDs, func(id string, _ int) string {
		p := state.Profile(id)

		misconceptions := "none"
		if len(p.Misconceptions) > 0 {
			misconceptions = strings.Join(p.Misconceptions, "; ")
		}

		return fmt.Sprintf("%s: knowledge=%s, affect=%s, talkativeness=%s, misconceptions=%s",
			id, p.KnowledgeLevel, p.Affect, p.Talkativeness, misconceptions)
	})

	return strings.Join(lines, "\n")
}
