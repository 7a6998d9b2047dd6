package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solex2006/astra-social-tutor/models"
)

func TestSubmitSolution(t *testing.T) {
	store := newTestRecordStore(t)
	svc := NewRecordService(store)
	svc.now = fixedClock(time.Date(2025, 5, 12, 10, 0, 0, 0, time.UTC))

	record, err := svc.SubmitSolution(&models.CreateSolutionRequest{
		GroupID:       "group-1",
		Configuration: "tutor+facilitator",
		TaskID:        "sum-to-n",
		SolutionCode:  "def sum_to_n(n):\n    return n * (n + 1) // 2\n",
	})
	require.NoError(t, err)
	require.False(t, record.Timestamp.IsZero())

	solutions, err := svc.ListSolutions()
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, "group-1", solutions[0].GroupID)
	require.Contains(t, solutions[0].SolutionCode, "n * (n + 1) // 2")
}

func TestSubmitSolutionValidation(t *testing.T) {
	svc := NewRecordService(newTestRecordStore(t))

	_, err := svc.SubmitSolution(&models.CreateSolutionRequest{TaskID: "sum-to-n", SolutionCode: "x"})
	require.ErrorContains(t, err, "group id is required")

	_, err = svc.SubmitSolution(&models.CreateSolutionRequest{GroupID: "g", SolutionCode: "x"})
	require.ErrorContains(t, err, "task id is required")

	_, err = svc.SubmitSolution(&models.CreateSolutionRequest{GroupID: "g", TaskID: "sum-to-n"})
	require.ErrorContains(t, err, "solution code is required")
}

func TestSubmitGrade(t *testing.T) {
	store := newTestRecordStore(t)
	svc := NewRecordService(store)
	svc.now = fixedClock(time.Date(2025, 5, 12, 10, 0, 0, 0, time.UTC))

	_, err := svc.SubmitGrade(&models.CreateGradeRequest{
		GroupID:  "group-1",
		TaskID:   "sum-to-n",
		Score:    4,
		Comments: "Correct, though no reasoning shown.",
	})
	require.NoError(t, err)

	grades, err := svc.ListGrades()
	require.NoError(t, err)
	require.Len(t, grades, 1)
	require.Equal(t, 4, grades[0].Score)
	require.Equal(t, "Correct, though no reasoning shown.", grades[0].Comments)
}

func TestSubmitGradeValidation(t *testing.T) {
	svc := NewRecordService(newTestRecordStore(t))

	_, err := svc.SubmitGrade(&models.CreateGradeRequest{TaskID: "sum-to-n"})
	require.ErrorContains(t, err, "group id is required")

	_, err = svc.SubmitGrade(&models.CreateGradeRequest{GroupID: "g"})
	require.ErrorContains(t, err, "task id is required")
}

func TestRecordServiceListTurns(t *testing.T) {
	store := newTestRecordStore(t)
	svc := NewRecordService(store)

	require.NoError(t, store.AppendTurn(&models.TurnRecord{SessionID: "s1", StudentID: "student_A", StudentMsg: "one"}))
	require.NoError(t, store.AppendTurn(&models.TurnRecord{SessionID: "s2", StudentID: "student_B", StudentMsg: "two"}))

	turns, err := svc.ListTurns("s1")
	require.NoError(t, err)
	require.Len(t, turns, 1)
	require.Equal(t, "one", turns[0].StudentMsg)

	all, err := svc.ListAllTurns()
	require.NoError(t, err)
	require.Len(t, all, 2)
}
