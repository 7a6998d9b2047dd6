package db

import (
	"database/sql"
	"fmt"

	"github.com/solex2006/astra-social-tutor/models"

	_ "github.com/lib/pq"
)

type PostgresRecordStore struct {
	db *sql.DB
}

func NewPostgresRecordStore(databaseURL string) (*PostgresRecordStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresRecordStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (r *PostgresRecordStore) initSchema() error {
	statements := []string{
		`CREATE SCHEMA IF NOT EXISTS astra`,
		`CREATE TABLE IF NOT EXISTS astra.turns (
			id SERIAL PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			session_id TEXT NOT NULL,
			task_id TEXT NOT NULL,
			task_name TEXT NOT NULL,
			student_id TEXT NOT NULL,
			student_msg TEXT NOT NULL,
			agent_role TEXT,
			agent_action TEXT,
			agent_msg TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS astra.solutions (
			id SERIAL PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			group_id TEXT NOT NULL,
			configuration TEXT NOT NULL,
			task_id TEXT NOT NULL,
			solution_code TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS astra.grades (
			id SERIAL PRIMARY KEY,
			timestamp TIMESTAMPTZ NOT NULL,
			group_id TEXT NOT NULL,
			task_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			comments TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresRecordStore) AppendTurn(record *models.TurnRecord) error {
	query := `
		INSERT INTO astra.turns (timestamp, session_id, task_id, task_name, student_id, student_msg, agent_role, agent_action, agent_msg)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query, record.Timestamp, record.SessionID, record.TaskID, record.TaskName,
		record.StudentID, record.StudentMsg, record.AgentRole, record.AgentAction, record.AgentMsg)
	if err != nil {
		return fmt.Errorf("failed to insert turn record: %w", err)
	}

	return nil
}

func (r *PostgresRecordStore) ListTurns(sessionID string) ([]*models.TurnRecord, error) {
	query := `
		SELECT timestamp, session_id, task_id, task_name, student_id, student_msg, agent_role, agent_action, agent_msg
		FROM astra.turns
		WHERE session_id = $1
		ORDER BY id ASC`

	rows, err := r.db.Query(query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query turn records: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

func (r *PostgresRecordStore) ListAllTurns() ([]*models.TurnRecord, error) {
	query := `
		SELECT timestamp, session_id, task_id, task_name, student_id, student_msg, agent_role, agent_action, agent_msg
		FROM astra.turns
		ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query turn records: %w", err)
	}
	defer rows.Close()

	return scanTurns(rows)
}

func scanTurns(rows *sql.Rows) ([]*models.TurnRecord, error) {
	var turns []*models.TurnRecord
	for rows.Next() {
		record := &models.TurnRecord{}
		err := rows.Scan(&record.Timestamp, &record.SessionID, &record.TaskID, &record.TaskName,
			&record.StudentID, &record.StudentMsg, &record.AgentRole, &record.AgentAction, &record.AgentMsg)
		if err != nil {
			return nil, fmt.Errorf("failed to scan turn record: %w", err)
		}
		turns = append(turns, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over turn records: %w", err)
	}

	return turns, nil
}

func (r *PostgresRecordStore) AppendSolution(record *models.SolutionRecord) error {
	query := `
		INSERT INTO astra.solutions (timestamp, group_id, configuration, task_id, solution_code)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, record.Timestamp, record.GroupID, record.Configuration, record.TaskID, record.SolutionCode)
	if err != nil {
		return fmt.Errorf("failed to insert solution record: %w", err)
	}

	return nil
}

func (r *PostgresRecordStore) ListSolutions() ([]*models.SolutionRecord, error) {
	query := `
		SELECT timestamp, group_id, configuration, task_id, solution_code
		FROM astra.solutions
		ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query solution records: %w", err)
	}
	defer rows.Close()

	var solutions []*models.SolutionRecord
	for rows.Next() {
		record := &models.SolutionRecord{}
		err := rows.Scan(&record.Timestamp, &record.GroupID, &record.Configuration, &record.TaskID, &record.SolutionCode)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solution record: %w", err)
		}
		solutions = append(solutions, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over solution records: %w", err)
	}

	return solutions, nil
}

func (r *PostgresRecordStore) AppendGrade(record *models.GradeRecord) error {
	query := `
		INSERT INTO astra.grades (timestamp, group_id, task_id, score, comments)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query, record.Timestamp, record.GroupID, record.TaskID, record.Score, record.Comments)
	if err != nil {
		return fmt.Errorf("failed to insert grade record: %w", err)
	}

	return nil
}

func (r *PostgresRecordStore) ListGrades() ([]*models.GradeRecord, error) {
	query := `
		SELECT timestamp, group_id, task_id, score, comments
		FROM astra.grades
		ORDER BY id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query grade records: %w", err)
	}
	defer rows.Close()

	var grades []*models.GradeRecord
	for rows.Next() {
		record := &models.GradeRecord{}
		err := rows.Scan(&record.Timestamp, &record.GroupID, &record.TaskID, &record.Score, &record.Comments)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade record: %w", err)
		}
		grades = append(grades, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over grade records: %w", err)
	}

	return grades, nil
}

func (r *PostgresRecordStore) Close() error {
	return r.db.Close()
}
