package agents

import "strings"

const (
	// ActionTagNone marks a facilitator decision that no intervention is
	// needed; the router suppresses responses carrying it.
	ActionTagNone = "NONE"

	defaultTutorTag       = "UNKNOWN"
	defaultFacilitatorTag = ActionTagNone
)

// parseActionTag splits a raw model reply into the message content and
// the self-classification tag. A tag line is any line whose trimmed,
// uppercased form starts with "ACTION_TAG:"; it is removed from the
// content and the last one wins. Replies without a tag line keep their
// full content and get defaultTag.
func parseActionTag(raw, defaultTag string) (string, string) {
	tag := defaultTag

	var kept []string
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), "ACTION_TAG:") {
			parts := strings.SplitN(line, ":", 2)
			tag = strings.ToUpper(strings.TrimSpace(parts[1]))
			continue
		}
		kept = append(kept, line)
	}

	content := strings.TrimSpace(strings.Join(kept, "\n"))
	return content, tag
}
