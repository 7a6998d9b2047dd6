package models

// Task is a programming exercise the group works on. Context is the
// framing handed to the tutor agent; Description is shown to students.
type Task struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Context     string `json:"context" yaml:"context"`
	Description string `json:"description" yaml:"description"`
}
