package main

import (
	"fmt"

	"github.com/solex2006/astra-social-tutor/config"
	"github.com/solex2006/astra-social-tutor/db"
	"github.com/solex2006/astra-social-tutor/llm/factory"
	"github.com/solex2006/astra-social-tutor/logging"
	"github.com/solex2006/astra-social-tutor/services"
	"github.com/solex2006/astra-social-tutor/services/agents"
	"github.com/solex2006/astra-social-tutor/services/learnerstate"
	"github.com/solex2006/astra-social-tutor/services/orchestrator"
)

type app struct {
	cfg      *config.Config
	records  db.RecordStore
	tasks    *services.TaskService
	sessions *services.SessionService
	audit    *services.RecordService
	export   *services.ExportService
}

// wireApp builds the full service graph from the environment.
func wireApp() (*app, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logging.Init(cfg.Env)

	client, err := factory.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	records, err := newRecordStore(cfg)
	if err != nil {
		return nil, err
	}

	tasks, err := newTaskService(cfg)
	if err != nil {
		records.Close()
		return nil, err
	}

	store := learnerstate.NewStore(client)
	router := orchestrator.NewRouter(store, agents.NewTutor(client), agents.NewFacilitator(client))

	return &app{
		cfg:      cfg,
		records:  records,
		tasks:    tasks,
		sessions: services.NewSessionService(router, tasks, records, cfg.InterventionPeriod),
		audit:    services.NewRecordService(records),
		export:   services.NewExportService(records),
	}, nil
}

func (a *app) Close() {
	if err := a.records.Close(); err != nil {
		logging.Errorf("Failed to close record store: %v", err)
	}
	logging.Sync()
}

// wireRecords builds only the record store; reading the audit trail
// must not require LLM credentials.
func wireRecords() (db.RecordStore, error) {
	cfg := config.Load()
	logging.Init(cfg.Env)
	return newRecordStore(cfg)
}

func newRecordStore(cfg *config.Config) (db.RecordStore, error) {
	switch cfg.RecordBackend {
	case "postgres":
		records, err := db.NewPostgresRecordStore(cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize record database: %w", err)
		}
		return records, nil
	default:
		records, err := db.NewJSONLRecordStore(cfg.LogDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize record log: %w", err)
		}
		return records, nil
	}
}

func newTaskService(cfg *config.Config) (*services.TaskService, error) {
	if cfg.TasksFile == "" {
		return services.NewTaskService(), nil
	}
	return services.NewTaskServiceFromFile(cfg.TasksFile)
}
