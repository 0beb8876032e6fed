package realtime

import (
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// minSendBuffer leaves room for the userCount and welcome frames queued
// before a transport starts draining.
const minSendBuffer = 2

type Options struct {
	// SendBuffer bounds each client's outbound queue. Frames that do not
	// fit are dropped for that client.
	SendBuffer int
	// ChatRate and ChatBurst limit inbound chatMessage and typing frames
	// per client. ChatRate <= 0 disables the limit.
	ChatRate  float64
	ChatBurst int
}

// Hub tracks connected listeners and fans events out to them. It keeps no
// history: a listener only sees events emitted while it is connected.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool

	opts        Options
	updateCount atomic.Int64
	dropped     atomic.Int64
	now         func() time.Time
	log         *slog.Logger
}

func NewHub(opts Options) *Hub {
	if opts.SendBuffer < minSendBuffer {
		opts.SendBuffer = minSendBuffer
	}
	if opts.ChatBurst < 1 {
		opts.ChatBurst = 1
	}
	return &Hub{
		clients: make(map[string]*Client),
		opts:    opts,
		now:     time.Now,
		log:     slog.Default().With("component", "realtime"),
	}
}

// Connect registers a new listener and announces it. After Close it
// returns a client whose queue is already closed.
func (h *Hub) Connect() *Client {
	limit := rate.Inf
	if h.opts.ChatRate > 0 {
		limit = rate.Limit(h.opts.ChatRate)
	}
	c := newClient(h.opts.SendBuffer, limit, h.opts.ChatBurst)

	h.mu.Lock()
	if h.closed {
		close(c.send)
		h.mu.Unlock()
		return c
	}
	h.clients[c.id] = c
	count := len(h.clients)
	h.mu.Unlock()

	h.log.Info("client connected", "socket_id", c.id, "clients", count)

	h.Broadcast(EventUserCount, count)
	h.send(c, EventWelcome, Welcome{
		Message:   welcomeMessage,
		SocketID:  c.id,
		Timestamp: h.timestamp(),
	})
	h.broadcastExcept(c.id, EventUserJoined, Presence{
		Message:   joinedMessage,
		UserCount: count,
		Timestamp: h.timestamp(),
	})
	return c
}

// Disconnect removes c and tells the remaining listeners. Calling it more
// than once for the same client is a no-op.
func (h *Hub) Disconnect(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c.id)
	close(c.send)
	count := len(h.clients)
	h.mu.Unlock()

	h.log.Info("client disconnected", "socket_id", c.id, "clients", count)

	h.Broadcast(EventUserCount, count)
	h.broadcastExcept(c.id, EventUserLeft, Presence{
		Message:   leftMessage,
		UserCount: count,
		Timestamp: h.timestamp(),
	})
}

// Close disconnects every client without announcements and refuses new
// ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, c := range h.clients {
		delete(h.clients, id)
		close(c.send)
	}
}

// Count returns the number of connected listeners.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// UpdateCount is the number of project events relayed between clients.
func (h *Hub) UpdateCount() int64 { return h.updateCount.Load() }

// Dropped is the number of frames discarded because a client queue was full.
func (h *Hub) Dropped() int64 { return h.dropped.Load() }

// Broadcast sends event to every connected listener.
func (h *Hub) Broadcast(event string, data any) {
	h.broadcastExcept("", event, data)
}

func (h *Hub) broadcastExcept(skipID, event string, data any) {
	msg, ok := h.encode(event, data)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, c := range h.clients {
		if id == skipID {
			continue
		}
		h.enqueue(c, msg)
	}
}

func (h *Hub) send(c *Client, event string, data any) {
	msg, ok := h.encode(event, data)
	if !ok {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if _, ok := h.clients[c.id]; ok {
		h.enqueue(c, msg)
	}
}

// enqueue must be called with h.mu held. It never blocks.
func (h *Hub) enqueue(c *Client, msg Message) {
	select {
	case c.send <- msg:
	default:
		h.dropped.Add(1)
		h.log.Debug("dropping frame for slow client", "socket_id", c.id, "event", msg.Event)
	}
}

func (h *Hub) encode(event string, data any) (Message, bool) {
	raw, err := json.Marshal(data)
	if err != nil {
		h.log.Error("failed to encode event", "event", event, "error", err)
		return Message{}, false
	}
	return Message{Event: event, Data: raw}, true
}

// Handle dispatches one inbound frame from c. Unknown events and
// malformed payloads are ignored.
func (h *Hub) Handle(c *Client, frame []byte) {
	var in Message
	if err := json.Unmarshal(frame, &in); err != nil {
		h.log.Debug("ignoring malformed frame", "socket_id", c.id, "error", err)
		return
	}

	switch in.Event {
	case InProjectCreated:
		n := h.updateCount.Add(1)
		h.broadcastExcept(c.id, EventNewProject, NewProject{
			Project:     orNull(in.Data),
			CreatedBy:   c.id,
			UpdateCount: n,
			Timestamp:   h.timestamp(),
		})
		h.send(c, EventProjectCreateConfirm, Notice{
			Message:   createConfirmMessage,
			Timestamp: h.timestamp(),
		})

	case InProjectDeleted:
		var ref projectRef
		_ = json.Unmarshal(in.Data, &ref)
		n := h.updateCount.Add(1)
		h.broadcastExcept(c.id, EventProjectRemoved, ProjectRemoved{
			ProjectID:   orNull(ref.ProjectID),
			DeletedBy:   c.id,
			UpdateCount: n,
			Timestamp:   h.timestamp(),
		})

	case InProjectUpdated:
		n := h.updateCount.Add(1)
		h.broadcastExcept(c.id, EventProjectChanged, ProjectChanged{
			Project:     orNull(in.Data),
			UpdatedBy:   c.id,
			UpdateCount: n,
			Timestamp:   h.timestamp(),
		})

	case InChatMessage:
		if !c.limiter.Allow() {
			return
		}
		var chat chatIn
		_ = json.Unmarshal(in.Data, &chat)
		h.Broadcast(EventChatMessage, ChatMessage{
			Message:   chat.Message,
			Username:  username(chat.Username),
			SocketID:  c.id,
			Timestamp: h.timestamp(),
		})

	case InTyping:
		if !c.limiter.Allow() {
			return
		}
		var typing typingIn
		_ = json.Unmarshal(in.Data, &typing)
		h.broadcastExcept(c.id, EventUserTyping, UserTyping{
			Username: username(typing.Username),
			IsTyping: typing.IsTyping,
		})

	case InViewProject:
		var ref projectRef
		_ = json.Unmarshal(in.Data, &ref)
		h.broadcastExcept(c.id, EventProjectViewed, ProjectViewed{
			ProjectID: orNull(ref.ProjectID),
			ViewedBy:  c.id,
			Timestamp: h.timestamp(),
		})

	case InRequestProjectSync:
		h.send(c, EventProjectSyncRequested, Notice{
			Message:   syncRequestedMessage,
			Timestamp: h.timestamp(),
		})

	default:
		h.log.Debug("ignoring unknown event", "socket_id", c.id, "event", in.Event)
	}
}

func (h *Hub) timestamp() time.Time {
	return h.now().UTC()
}

func username(name string) string {
	if strings.TrimSpace(name) == "" {
		return defaultUsername
	}
	return name
}

func orNull(raw json.RawMessage) json.RawMessage {
	if len(raw) == 0 {
		return json.RawMessage("null")
	}
	return raw
}
