package db

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/solex2006/astra-social-tutor/models"
)

// JSONLRecordStore writes records as one JSON object per line. Turns go
// to sessions/<session_id>.jsonl under the base directory, solutions and
// grades to a single file each. Readers skip blank and malformed lines so
// a truncated write never poisons a whole file.
type JSONLRecordStore struct {
	dir string
	mu  sync.Mutex
}

func NewJSONLRecordStore(dir string) (*JSONLRecordStore, error) {
	if err := os.MkdirAll(filepath.Join(dir, "sessions"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create record directory: %w", err)
	}
	return &JSONLRecordStore{dir: dir}, nil
}

func (s *JSONLRecordStore) AppendTurn(record *models.TurnRecord) error {
	return s.appendLine(s.sessionFile(record.SessionID), record)
}

func (s *JSONLRecordStore) ListTurns(sessionID string) ([]*models.TurnRecord, error) {
	return readLines[models.TurnRecord](s.sessionFile(sessionID))
}

func (s *JSONLRecordStore) ListAllTurns() ([]*models.TurnRecord, error) {
	sessionsDir := filepath.Join(s.dir, "sessions")

	entries, err := os.ReadDir(sessionsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read sessions directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".jsonl") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	var turns []*models.TurnRecord
	for _, name := range names {
		records, err := readLines[models.TurnRecord](filepath.Join(sessionsDir, name))
		if err != nil {
			return nil, err
		}
		turns = append(turns, records...)
	}
	return turns, nil
}

func (s *JSONLRecordStore) AppendSolution(record *models.SolutionRecord) error {
	return s.appendLine(filepath.Join(s.dir, "solutions.jsonl"), record)
}

func (s *JSONLRecordStore) ListSolutions() ([]*models.SolutionRecord, error) {
	return readLines[models.SolutionRecord](filepath.Join(s.dir, "solutions.jsonl"))
}

func (s *JSONLRecordStore) AppendGrade(record *models.GradeRecord) error {
	return s.appendLine(filepath.Join(s.dir, "grades.jsonl"), record)
}

func (s *JSONLRecordStore) ListGrades() ([]*models.GradeRecord, error) {
	return readLines[models.GradeRecord](filepath.Join(s.dir, "grades.jsonl"))
}

func (s *JSONLRecordStore) Close() error {
	return nil
}

func (s *JSONLRecordStore) sessionFile(sessionID string) string {
	return filepath.Join(s.dir, "sessions", sessionID+".jsonl")
}

func (s *JSONLRecordStore) appendLine(path string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

func readLines[T any](path string) ([]*T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open record file: %w", err)
	}
	defer f.Close()

	var records []*T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record := new(T)
		if err := json.Unmarshal([]byte(line), record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}
	return records, nil
}
