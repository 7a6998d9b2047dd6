package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/solex2006/astra-social-tutor/db"
	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/models"
)

// ExportService renders the audit trail as CSV for analysis outside the
// system.
type ExportService struct {
	records db.RecordStore
}

func NewExportService(records db.RecordStore) *ExportService {
	return &ExportService{records: records}
}

func (s *ExportService) ExportTurnsCSV(w io.Writer) error {
	logging.Infof("Starting turns export")

	turns, err := s.records.ListAllTurns()
	if err != nil {
		logging.Errorf("Failed to load turns for export: %v", err)
		return fmt.Errorf("failed to load turns: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "session_id", "task_id", "task_name", "student_id", "student_msg", "agent_role", "agent_action", "agent_msg"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, t := range turns {
		row := []string{
			t.Timestamp.Format(time.RFC3339),
			t.SessionID,
			t.TaskID,
			t.TaskName,
			t.StudentID,
			t.StudentMsg,
			derefRole(t.AgentRole),
			deref(t.AgentAction),
			deref(t.AgentMsg),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	logging.Infof("Successfully exported %d turns", len(turns))
	return nil
}

func (s *ExportService) ExportSolutionsCSV(w io.Writer) error {
	logging.Infof("Starting solutions export")

	solutions, err := s.records.ListSolutions()
	if err != nil {
		logging.Errorf("Failed to load solutions for export: %v", err)
		return fmt.Errorf("failed to load solutions: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "group_id", "configuration", "task_id", "solution_code"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range solutions {
		row := []string{
			rec.Timestamp.Format(time.RFC3339),
			rec.GroupID,
			rec.Configuration,
			rec.TaskID,
			rec.SolutionCode,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	logging.Infof("Successfully exported %d solutions", len(solutions))
	return nil
}

func (s *ExportService) ExportGradesCSV(w io.Writer) error {
	logging.Infof("Starting grades export")

	grades, err := s.records.ListGrades()
	if err != nil {
		logging.Errorf("Failed to load grades for export: %v", err)
		return fmt.Errorf("failed to load grades: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "group_id", "task_id", "score", "comments"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range grades {
		row := []string{
			rec.Timestamp.Format(time.RFC3339),
			rec.GroupID,
			rec.TaskID,
			strconv.Itoa(rec.Score),
			rec.Comments,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}

	logging.Infof("Successfully exported %d grades", len(grades))
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefRole(r *models.AgentRole) string {
	if r == nil {
		return ""
	}
	return string(*r)
}
