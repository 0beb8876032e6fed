package realtime

import (
	"encoding/json"
	"time"
)

// Outbound event names.
const (
	EventWelcome              = "welcome"
	EventUserCount            = "userCount"
	EventUserJoined           = "userJoined"
	EventUserLeft             = "userLeft"
	EventNewProject           = "newProject"
	EventProjectCreateConfirm = "projectCreateConfirm"
	EventProjectRemoved       = "projectRemoved"
	EventProjectChanged       = "projectChanged"
	EventChatMessage          = "chatMessage"
	EventUserTyping           = "userTyping"
	EventProjectViewed        = "projectViewed"
	EventProjectSyncRequested = "projectSyncRequested"
)

// Inbound event names sent by clients.
const (
	InProjectCreated     = "projectCreated"
	InProjectDeleted     = "projectDeleted"
	InProjectUpdated     = "projectUpdated"
	InChatMessage        = "chatMessage"
	InTyping             = "typing"
	InViewProject        = "viewProject"
	InRequestProjectSync = "requestProjectSync"
)

const (
	defaultUsername      = "Anonymous"
	welcomeMessage       = "Welcome to SIT725 MVC Real-time Project Manager!"
	joinedMessage        = "A new user joined the project manager"
	leftMessage          = "A user left the project manager"
	createConfirmMessage = "Project broadcasted to all users"
	syncRequestedMessage = "Project sync requested - reload projects"
)

// Message is one frame on the wire: {"event": name, "data": payload}.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Welcome struct {
	Message   string    `json:"message"`
	SocketID  string    `json:"socketId"`
	Timestamp time.Time `json:"timestamp"`
}

// Presence is the payload of userJoined and userLeft.
type Presence struct {
	Message   string    `json:"message"`
	UserCount int       `json:"userCount"`
	Timestamp time.Time `json:"timestamp"`
}

type NewProject struct {
	Project     json.RawMessage `json:"project"`
	CreatedBy   string          `json:"createdBy"`
	UpdateCount int64           `json:"updateCount"`
	Timestamp   time.Time       `json:"timestamp"`
}

type ProjectChanged struct {
	Project     json.RawMessage `json:"project"`
	UpdatedBy   string          `json:"updatedBy"`
	UpdateCount int64           `json:"updateCount"`
	Timestamp   time.Time       `json:"timestamp"`
}

type ProjectRemoved struct {
	ProjectID   json.RawMessage `json:"projectId"`
	DeletedBy   string          `json:"deletedBy"`
	UpdateCount int64           `json:"updateCount"`
	Timestamp   time.Time       `json:"timestamp"`
}

type ProjectViewed struct {
	ProjectID json.RawMessage `json:"projectId"`
	ViewedBy  string          `json:"viewedBy"`
	Timestamp time.Time       `json:"timestamp"`
}

type ChatMessage struct {
	Message   string    `json:"message"`
	Username  string    `json:"username"`
	SocketID  string    `json:"socketId"`
	Timestamp time.Time `json:"timestamp"`
}

type UserTyping struct {
	Username string `json:"username"`
	IsTyping bool   `json:"isTyping"`
}

// Notice is a plain message with a timestamp (projectCreateConfirm, projectSyncRequested).
type Notice struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// inbound payload shapes
type (
	projectRef struct {
		ProjectID json.RawMessage `json:"projectId"`
	}
	chatIn struct {
		Message  string `json:"message"`
		Username string `json:"username"`
	}
	typingIn struct {
		Username string `json:"username"`
		IsTyping bool   `json:"isTyping"`
	}
)
