// Package db persists the research audit trail: handled turns, submitted
// solutions and grades. Records are append-only; nothing here is read back
// into the tutoring flow.
package db

import (
	"github.com/solex2006/astra-social-tutor/models"
)

type RecordStore interface {
	AppendTurn(record *models.TurnRecord) error
	ListTurns(sessionID string) ([]*models.TurnRecord, error)
	ListAllTurns() ([]*models.TurnRecord, error)
	AppendSolution(record *models.SolutionRecord) error
	ListSolutions() ([]*models.SolutionRecord, error)
	AppendGrade(record *models.GradeRecord) error
	ListGrades() ([]*models.GradeRecord, error)
	Close() error
}
