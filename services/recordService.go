package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/solex2006/astra-social-tutor/db"
	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/models"
)

// RecordService exposes the audit trail: submitted solutions, grades and
// the per-session turn logs.
type RecordService struct {
	records db.RecordStore
	now     func() time.Time
}

func NewRecordService(records db.RecordStore) *RecordService {
	return &RecordService{records: records, now: time.Now}
}

func (s *RecordService) SubmitSolution(req *models.CreateSolutionRequest) (*models.SolutionRecord, error) {
	logging.Infof("Starting solution submission for group %s", req.GroupID)

	if strings.TrimSpace(req.GroupID) == "" {
		return nil, fmt.Errorf("group id is required")
	}
	if strings.TrimSpace(req.TaskID) == "" {
		return nil, fmt.Errorf("task id is required")
	}
	if strings.TrimSpace(req.SolutionCode) == "" {
		return nil, fmt.Errorf("solution code is required")
	}

	record := &models.SolutionRecord{
		Timestamp:     s.now(),
		GroupID:       req.GroupID,
		Configuration: req.Configuration,
		TaskID:        req.TaskID,
		SolutionCode:  req.SolutionCode,
	}

	if err := s.records.AppendSolution(record); err != nil {
		logging.Errorf("Failed to record solution for group %s: %v", req.GroupID, err)
		return nil, fmt.Errorf("failed to record solution: %w", err)
	}

	logging.Infof("Successfully recorded solution for group %s", req.GroupID)
	return record, nil
}

func (s *RecordService) ListSolutions() ([]*models.SolutionRecord, error) {
	solutions, err := s.records.ListSolutions()
	if err != nil {
		logging.Errorf("Failed to list solutions: %v", err)
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}
	return solutions, nil
}

func (s *RecordService) SubmitGrade(req *models.CreateGradeRequest) (*models.GradeRecord, error) {
	logging.Infof("Starting grade submission for group %s", req.GroupID)

	if strings.TrimSpace(req.GroupID) == "" {
		return nil, fmt.Errorf("group id is required")
	}
	if strings.TrimSpace(req.TaskID) == "" {
		return nil, fmt.Errorf("task id is required")
	}

	record := &models.GradeRecord{
		Timestamp: s.now(),
		GroupID:   req.GroupID,
		TaskID:    req.TaskID,
		Score:     req.Score,
		Comments:  req.Comments,
	}

	if err := s.records.AppendGrade(record); err != nil {
		logging.Errorf("Failed to record grade for group %s: %v", req.GroupID, err)
		return nil, fmt.Errorf("failed to record grade: %w", err)
	}

	logging.Infof("Successfully recorded grade for group %s", req.GroupID)
	return record, nil
}

func (s *RecordService) ListGrades() ([]*models.GradeRecord, error) {
	grades, err := s.records.ListGrades()
	if err != nil {
		logging.Errorf("Failed to list grades: %v", err)
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	return grades, nil
}

func (s *RecordService) ListTurns(sessionID string) ([]*models.TurnRecord, error) {
	turns, err := s.records.ListTurns(sessionID)
	if err != nil {
		logging.Errorf("Failed to list turns for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	return turns, nil
}

func (s *RecordService) ListAllTurns() ([]*models.TurnRecord, error) {
	turns, err := s.records.ListAllTurns()
	if err != nil {
		logging.Errorf("Failed to list turns: %v", err)
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	return turns, nil
}
