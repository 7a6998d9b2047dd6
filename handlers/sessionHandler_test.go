package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/solex2006/astra-social-tutor/db"
	"github.com/solex2006/astra-social-tutor/llm"
	"github.com/solex2006/astra-social-tutor/models"
	"github.com/solex2006/astra-social-tutor/services"
	"github.com/solex2006/astra-social-tutor/services/agents"
	"github.com/solex2006/astra-social-tutor/services/learnerstate"
	"github.com/solex2006/astra-social-tutor/services/orchestrator"
)

// scriptedLLM answers the prompt flavours a turn can issue, keyed off the
// system prompt.
type scriptedLLM struct {
	inferenceReply   string
	tutorReply       string
	tutorErr         error
	facilitatorReply string
}

func newScriptedLLM() *scriptedLLM {
	return &scriptedLLM{
		inferenceReply:   `{"affect": "engaged"}`,
		tutorReply:       "What does sum_to_n(1) return?\nACTION_TAG: QUESTION",
		facilitatorReply: "No intervention needed.\nACTION_TAG: NONE",
	}
}

func (s *scriptedLLM) client() *llm.MockClient {
	mock := llm.NewMockClient()
	mock.GenerateFunc = func(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
		switch {
		case strings.Contains(systemPrompt, "analysing a student's recent messages"):
			return s.inferenceReply, nil
		case strings.Contains(systemPrompt, "patient programming tutor"):
			return s.tutorReply, s.tutorErr
		default:
			return s.facilitatorReply, nil
		}
	}
	return mock
}

type testAPI struct {
	router *mux.Router
	store  *db.JSONLRecordStore
}

func newTestAPI(t *testing.T, script *scriptedLLM) *testAPI {
	t.Helper()

	store, err := db.NewJSONLRecordStore(t.TempDir())
	require.NoError(t, err)

	client := script.client()
	turnRouter := orchestrator.NewRouter(
		learnerstate.NewStore(client),
		agents.NewTutor(client),
		agents.NewFacilitator(client),
	)

	tasks := services.NewTaskService()
	sessions := services.NewSessionService(turnRouter, tasks, store, 4)

	router := mux.NewRouter()
	NewSessionHandler(sessions).RegisterRoutes(router)
	NewTaskHandler(tasks).RegisterRoutes(router)
	NewRecordHandler(services.NewRecordService(store)).RegisterRoutes(router)
	NewExportHandler(services.NewExportService(store)).RegisterRoutes(router)

	return &testAPI{router: router, store: store}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) createSession(t *testing.T, req *models.CreateSessionRequest) *models.Session {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/sessions", req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var session models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	return &session
}

func TestCreateSessionEndpoint(t *testing.T) {
	api := newTestAPI(t, newScriptedLLM())

	session := api.createSession(t, &models.CreateSessionRequest{TaskID: "sum-to-n"})
	require.NotEmpty(t, session.ID)
	require.Equal(t, session.ID, session.GroupID)
	require.Equal(t, []string{"student_A", "student_B"}, session.Participants)
	require.Equal(t, 4, session.InterventionPeriod)
	require.Equal(t, "Task 1: Sum numbers from 1 to n", session.TaskName)
}

func TestCreateSessionEndpointRejectsInvalidPayloads(t *testing.T) {
	api := newTestAPI(t, newScriptedLLM())

	req := httptest.NewRequest(http.MethodPost, "/sessions", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Invalid JSON payload", body["error"])

	rec = api.do(t, http.MethodPost, "/sessions", &models.CreateSessionRequest{TaskID: "missing"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSessionEndpoint(t *testing.T) {
	api := newTestAPI(t, newScriptedLLM())
	session := api.createSession(t, &models.CreateSessionRequest{TaskID: "factorial-debug"})

	rec := api.do(t, http.MethodGet, "/sessions/"+session.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = api.do(t, http.MethodGet, "/sessions/missing", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSessionsEndpoint(t *testing.T) {
	api := newTestAPI(t, newScriptedLLM())
	api.createSession(t, &models.CreateSessionRequest{TaskID: "sum-to-n"})
	api.createSession(t, &models.CreateSessionRequest{TaskID: "factorial-debug"})

	rec := api.do(t, http.MethodGet, "/sessions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var sessions []*models.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sessions))
	require.Len(t, sessions, 2)
}

func TestPostMessageEndpoint(t *testing.T) {
	api := newTestAPI(t, newScriptedLLM())
	session := api.createSession(t, &models.CreateSessionRequest{TaskID: "sum-to-n"})

	rec := api.do(t, http.MethodPost, "/sessions/"+session.ID+"/messages", &models.PostMessageRequest{
		StudentID: "student_A",
		Content:   "Where do I start?",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var turn models.TurnResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &turn))
	require.Equal(t, "student_A", turn.Message.SenderID)
	require.NotNil(t, turn.Response)
	require.Equal(t, models.AgentRoleTutor, turn.Response.AgentRole)
	require.Equal(t, "QUESTION", turn.Response.ActionTag)

	rec = api.do(t, http.MethodGet, "/sessions/"+session.ID+"/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var history []models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history, 2)
	require.Equal(t, models.RoleTutorAgent, history[1].SenderRole)

	rec = api.do(t, http.MethodGet, "/sessions/"+session.ID+"/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var state models.LearnerState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.Equal(t, models.AffectEngaged, state.Profiles["student_A"].Affect)
}

func TestPostMessageEndpointErrors(t *testing.T) {
	script := newScriptedLLM()
	api := newTestAPI(t, script)
	session := api.createSession(t, &models.CreateSessionRequest{TaskID: "sum-to-n"})

	rec := api.do(t, http.MethodPost, "/sessions/missing/messages", &models.PostMessageRequest{
		StudentID: "student_A",
		Content:   "hello",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPost, "/sessions/"+session.ID+"/messages", &models.PostMessageRequest{
		StudentID: "student_A",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	script.tutorErr = errors.New("model unavailable")
	rec = api.do(t, http.MethodPost, "/sessions/"+session.ID+"/messages", &models.PostMessageRequest{
		StudentID: "student_A",
		Content:   "hello",
	})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	// The failed turn left no trace in the history.
	rec = api.do(t, http.MethodGet, "/sessions/"+session.ID+"/history", nil)
	var history []models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Empty(t, history)
}
