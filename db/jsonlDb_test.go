package db

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/solex2006/astra-social-tutor/models"
)

func TestJSONLRecordStoreTurns(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONLRecordStore(dir)
	require.NoError(t, err)

	role := models.AgentRoleFacilitator
	action := "SUMMARISE"
	reply := "Could someone recap the plan so far?"
	require.NoError(t, store.AppendTurn(&models.TurnRecord{
		Timestamp:   time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC),
		SessionID:   "session-1",
		TaskID:      "sum-to-n",
		StudentID:   "student_A",
		StudentMsg:  "hello",
		AgentRole:   &role,
		AgentAction: &action,
		AgentMsg:    &reply,
	}))
	require.NoError(t, store.AppendTurn(&models.TurnRecord{
		SessionID:  "session-1",
		StudentID:  "student_B",
		StudentMsg: "hi",
	}))

	turns, err := store.ListTurns("session-1")
	require.NoError(t, err)
	require.Len(t, turns, 2)

	require.Equal(t, "student_A", turns[0].StudentID)
	require.NotNil(t, turns[0].AgentRole)
	require.Equal(t, models.AgentRoleFacilitator, *turns[0].AgentRole)
	require.Equal(t, "SUMMARISE", *turns[0].AgentAction)
	require.True(t, turns[0].Timestamp.Equal(time.Date(2025, 5, 12, 9, 0, 0, 0, time.UTC)))

	require.Nil(t, turns[1].AgentRole)
	require.Nil(t, turns[1].AgentAction)
	require.Nil(t, turns[1].AgentMsg)

	// Each session logs to its own file.
	_, err = os.Stat(filepath.Join(dir, "sessions", "session-1.jsonl"))
	require.NoError(t, err)
}

func TestJSONLRecordStoreMissingFilesReadEmpty(t *testing.T) {
	store, err := NewJSONLRecordStore(t.TempDir())
	require.NoError(t, err)

	turns, err := store.ListTurns("nope")
	require.NoError(t, err)
	require.Empty(t, turns)

	all, err := store.ListAllTurns()
	require.NoError(t, err)
	require.Empty(t, all)

	solutions, err := store.ListSolutions()
	require.NoError(t, err)
	require.Empty(t, solutions)

	grades, err := store.ListGrades()
	require.NoError(t, err)
	require.Empty(t, grades)
}

func TestJSONLRecordStoreSkipsCorruptLines(t *testing.T) {
	dir := t.TempDir()
	store, err := NewJSONLRecordStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.AppendTurn(&models.TurnRecord{SessionID: "s", StudentMsg: "good one"}))

	path := filepath.Join(dir, "sessions", "s.jsonl")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{truncated\n\n   \n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, store.AppendTurn(&models.TurnRecord{SessionID: "s", StudentMsg: "good two"}))

	turns, err := store.ListTurns("s")
	require.NoError(t, err)
	require.Len(t, turns, 2)
	require.Equal(t, "good one", turns[0].StudentMsg)
	require.Equal(t, "good two", turns[1].StudentMsg)
}

func TestJSONLRecordStoreListAllTurns(t *testing.T) {
	store, err := NewJSONLRecordStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.AppendTurn(&models.TurnRecord{SessionID: "b-session", StudentMsg: "from b"}))
	require.NoError(t, store.AppendTurn(&models.TurnRecord{SessionID: "a-session", StudentMsg: "from a"}))
	require.NoError(t, store.AppendTurn(&models.TurnRecord{SessionID: "b-session", StudentMsg: "from b again"}))

	all, err := store.ListAllTurns()
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Files are read in name order, rows in append order within a file.
	require.Equal(t, "from a", all[0].StudentMsg)
	require.Equal(t, "from b", all[1].StudentMsg)
	require.Equal(t, "from b again", all[2].StudentMsg)
}

func TestJSONLRecordStoreSolutionsAndGrades(t *testing.T) {
	store, err := NewJSONLRecordStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.AppendSolution(&models.SolutionRecord{
		GroupID:      "g1",
		TaskID:       "sum-to-n",
		SolutionCode: "def sum_to_n(n): ...",
	}))
	require.NoError(t, store.AppendGrade(&models.GradeRecord{
		GroupID: "g1",
		TaskID:  "sum-to-n",
		Score:   3,
	}))

	solutions, err := store.ListSolutions()
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, "def sum_to_n(n): ...", solutions[0].SolutionCode)

	grades, err := store.ListGrades()
	require.NoError(t, err)
	require.Len(t, grades, 1)
	require.Equal(t, 3, grades[0].Score)
}
