package models

type KnowledgeLevel string

const (
	KnowledgeLow    KnowledgeLevel = "low"
	KnowledgeMedium KnowledgeLevel = "medium"
	KnowledgeHigh   KnowledgeLevel = "high"
)

func (k KnowledgeLevel) Valid() bool {
	switch k {
	case KnowledgeLow, KnowledgeMedium, KnowledgeHigh:
		return true
	}
	return false
}

type Affect string

const (
	AffectNeutral    Affect = "neutral"
	AffectConfused   Affect = "confused"
	AffectFrustrated Affect = "frustrated"
	AffectEngaged    Affect = "engaged"
)

func (a Affect) Valid() bool {
	switch a {
	case AffectNeutral, AffectConfused, AffectFrustrated, AffectEngaged:
		return true
	}
	return false
}

type Talkativeness string

const (
	TalkativenessLow    Talkativeness = "low"
	TalkativenessMedium Talkativeness = "medium"
	TalkativenessHigh   Talkativeness = "high"
)

func (t Talkativeness) Valid() bool {
	switch t {
	case TalkativenessLow, TalkativenessMedium, TalkativenessHigh:
		return true
	}
	return false
}

type LearnerProfile struct {
	KnowledgeLevel KnowledgeLevel `json:"knowledge_level"`
	Misconceptions []string       `json:"misconceptions"`
	Affect         Affect         `json:"affect"`
	Talkativeness  Talkativeness  `json:"talkativeness"`
}

func DefaultProfile() LearnerProfile {
	return LearnerProfile{
		KnowledgeLevel: KnowledgeMedium,
		Misconceptions: []string{},
		Affect:         AffectNeutral,
		Talkativeness:  TalkativenessMedium,
	}
}

// LearnerState holds the per-group adaptive memory. Semantic and Episodic
// are reserved for richer concept/event tracking and are not populated yet;
// Profiles carries the per-student learner profiles the agents adapt to.
type LearnerState struct {
	Semantic map[string]map[string]float64 `json:"semantic"`
	Episodic map[string][]string           `json:"episodic"`
	Profiles map[string]LearnerProfile     `json:"profiles"`
}

func NewLearnerState() *LearnerState {
	return &LearnerState{
		Semantic: make(map[string]map[string]float64),
		Episodic: make(map[string][]string),
		Profiles: make(map[string]LearnerProfile),
	}
}

// Profile returns the stored profile for a student, or the default profile
// when the student has not been observed yet. The state itself is not modified.
func (s *LearnerState) Profile(studentID string) LearnerProfile {
	if p, ok := s.Profiles[studentID]; ok {
		return p
	}
	return DefaultProfile()
}

// Clone returns a deep copy safe to hand to readers while turns keep
// mutating the original.
func (s *LearnerState) Clone() *LearnerState {
	clone := NewLearnerState()

	for k, inner := range s.Semantic {
		m := make(map[string]float64, len(inner))
		for ik, iv := range inner {
			m[ik] = iv
		}
		clone.Semantic[k] = m
	}
	for k, inner := range s.Episodic {
		clone.Episodic[k] = append([]string(nil), inner...)
	}
	for k, p := range s.Profiles {
		p.Misconceptions = append([]string(nil), p.Misconceptions...)
		clone.Profiles[k] = p
	}

	return clone
}
