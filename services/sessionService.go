package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/solex2006/astra-social-tutor/db"
	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/models"
	"github.com/solex2006/astra-social-tutor/services/orchestrator"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("session not found")

	// ErrTurnFailed marks agent failures during a turn, as opposed to
	// invalid requests. The session stays unchanged; the turn can be
	// retried as a whole.
	ErrTurnFailed = errors.New("failed to handle turn")
)

var defaultParticipants = []string{"student_A", "student_B"}

// session is the runtime state of one tutoring session. Its mutex
// serializes turns: the router assumes one turn at a time per session.
type session struct {
	mu      sync.Mutex
	info    models.Session
	task    models.Task
	history []models.Message
	state   *models.LearnerState
}

type SessionService struct {
	router  *orchestrator.Router
	tasks   *TaskService
	records db.RecordStore

	mu       sync.RWMutex
	sessions map[string]*session

	defaultPeriod int
	now           func() time.Time
}

func NewSessionService(router *orchestrator.Router, tasks *TaskService, records db.RecordStore, defaultPeriod int) *SessionService {
	return &SessionService{
		router:        router,
		tasks:         tasks,
		records:       records,
		sessions:      make(map[string]*session),
		defaultPeriod: defaultPeriod,
		now:           time.Now,
	}
}

func (s *SessionService) CreateSession(req *models.CreateSessionRequest) (*models.Session, error) {
	logging.Infof("Starting session creation for task %s", req.TaskID)

	task, err := s.tasks.GetTaskByID(req.TaskID)
	if err != nil {
		logging.Errorf("Session creation failed: %v", err)
		return nil, err
	}

	participants := req.Participants
	if len(participants) == 0 {
		participants = defaultParticipants
	}
	for _, id := range participants {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("participant ids cannot be blank")
		}
	}

	period := s.defaultPeriod
	if req.InterventionPeriod != nil {
		period = *req.InterventionPeriod
	}
	if period < 0 {
		return nil, fmt.Errorf("intervention period cannot be negative")
	}

	id := uuid.NewString()
	groupID := req.GroupID
	if groupID == "" {
		groupID = id
	}

	info := models.Session{
		ID:                 id,
		GroupID:            groupID,
		Configuration:      req.Configuration,
		TaskID:             task.ID,
		TaskName:           task.Name,
		Participants:       append([]string(nil), participants...),
		InterventionPeriod: period,
		CreatedAt:          s.now(),
	}

	s.mu.Lock()
	s.sessions[id] = &session{
		info:    info,
		task:    *task,
		history: []models.Message{},
		state:   models.NewLearnerState(),
	}
	s.mu.Unlock()

	logging.Infof("Successfully created session %s", id)
	out := info
	out.Participants = append([]string(nil), info.Participants...)
	return &out, nil
}

func (s *SessionService) GetSession(id string) (*models.Session, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	out := sess.info
	out.Participants = append([]string(nil), sess.info.Participants...)
	return &out, nil
}

func (s *SessionService) ListSessions() []*models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]*models.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out := sess.info
		out.Participants = append([]string(nil), sess.info.Participants...)
		sessions = append(sessions, &out)
	}

	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})
	return sessions
}

func (s *SessionService) GetHistory(id string) ([]models.Message, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	history := make([]models.Message, len(sess.history))
	copy(history, sess.history)
	return history, nil
}

func (s *SessionService) GetState(id string) (*models.LearnerState, error) {
	sess, err := s.get(id)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.state.Clone(), nil
}

// PostMessage runs one student turn through the router. On success the
// session adopts the extended history (plus the agent reply, when one
// surfaced) and the turn is appended to the audit trail. On failure the
// session is left exactly as it was, so the caller can retry the whole
// turn.
func (s *SessionService) PostMessage(ctx context.Context, sessionID, studentID, content string) (*models.TurnResponse, error) {
	logging.Infof("Starting turn for session %s from student %s", sessionID, studentID)

	if strings.TrimSpace(studentID) == "" {
		return nil, fmt.Errorf("student id is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("message content is required")
	}

	sess, err := s.get(sessionID)
	if err != nil {
		logging.Errorf("Turn rejected: %v", err)
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	msg := models.Message{
		SenderID:   studentID,
		SenderRole: models.RoleStudent,
		Content:    content,
		Timestamp:  s.now(),
	}

	result, err := s.router.HandleTurn(ctx, orchestrator.TurnRequest{
		Message:            msg,
		History:            sess.history,
		State:              sess.state,
		ParticipantIDs:     sess.info.Participants,
		TaskContext:        sess.task.Context,
		InterventionPeriod: sess.info.InterventionPeriod,
	})
	if err != nil {
		logging.Errorf("Turn failed for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: %w", ErrTurnFailed, err)
	}

	sess.history = result.History
	sess.state = result.State

	if result.Response != nil {
		sess.history = append(sess.history, agentMessage(result.Response, s.now()))
	}

	s.recordTurn(sess, msg, result.Response)

	logging.Infof("Successfully handled turn for session %s", sessionID)
	return &models.TurnResponse{Message: msg, Response: result.Response}, nil
}

func (s *SessionService) get(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	return sess, nil
}

func agentMessage(resp *models.AgentResponse, ts time.Time) models.Message {
	senderID := "tutor"
	role := models.RoleTutorAgent
	if resp.AgentRole == models.AgentRoleFacilitator {
		senderID = "facilitator"
		role = models.RoleFacilitatorAgent
	}

	return models.Message{
		SenderID:   senderID,
		SenderRole: role,
		Content:    resp.Content,
		Timestamp:  ts,
	}
}

// recordTurn appends the turn to the audit trail. Audit writes are
// best-effort: a failed write is logged and never fails the turn.
func (s *SessionService) recordTurn(sess *session, msg models.Message, resp *models.AgentResponse) {
	record := &models.TurnRecord{
		Timestamp:  msg.Timestamp,
		SessionID:  sess.info.ID,
		TaskID:     sess.info.TaskID,
		TaskName:   sess.info.TaskName,
		StudentID:  msg.SenderID,
		StudentMsg: msg.Content,
	}

	if resp != nil {
		role := resp.AgentRole
		action := resp.ActionTag
		content := resp.Content
		record.AgentRole = &role
		record.AgentAction = &action
		record.AgentMsg = &content
	}

	if err := s.records.AppendTurn(record); err != nil {
		logging.Errorf("Failed to record turn for session %s: %v", sess.info.ID, err)
	}
}
