package service

import (
	"time"

	"github.com/Arun225295196/SIT725/internal/projects/domain"
)

// Events emitted to every listener after a successful store operation.
const (
	EventProjectAccessed      = "projectAccessed"
	EventProjectCreated       = "projectCreated"
	EventProjectUpdated       = "projectUpdated"
	EventProjectDeleted       = "projectDeleted"
	EventCategoryAccessed     = "categoryAccessed"
	EventStatsAccessed        = "statsAccessed"
	EventProjectSyncRequested = "projectSyncRequested"
)

// Broadcaster fans a named event out to all connected listeners.
type Broadcaster interface {
	Broadcast(event string, data any)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, any) {}

type ProjectAccessed struct {
	ProjectID    int64     `json:"projectId"`
	ProjectTitle string    `json:"projectTitle"`
	Timestamp    time.Time `json:"timestamp"`
}

type ProjectCreated struct {
	Project   domain.Project `json:"project"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
}

type ProjectUpdated struct {
	Project    domain.Project `json:"project"`
	OldProject domain.Project `json:"oldProject"`
	Message    string         `json:"message"`
	Timestamp  time.Time      `json:"timestamp"`
}

type ProjectDeleted struct {
	ProjectID    int64     `json:"projectId"`
	ProjectTitle string    `json:"projectTitle"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
}

type CategoryAccessed struct {
	Category     string    `json:"category"`
	ProjectCount int       `json:"projectCount"`
	Timestamp    time.Time `json:"timestamp"`
}

type StatsAccessed struct {
	Stats     domain.Stats `json:"stats"`
	Timestamp time.Time    `json:"timestamp"`
}

type SyncRequested struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
