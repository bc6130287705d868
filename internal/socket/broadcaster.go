package socket

// Broadcaster pushes portal events into project rooms. It satisfies the
// service layer's broadcaster interface.
type Broadcaster struct {
	hub *Hub
}

// NewBroadcaster creates a broadcaster backed by the hub
func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

// BroadcastProjectStatus notifies subscribers that a project's delivery
// state changed
func (b *Broadcaster) BroadcastProjectStatus(projectID string, payload map[string]interface{}) {
	b.hub.SendToRoom(ProjectRoom(projectID), MessageProjectStatusChanged, payload)
}

// BroadcastProjectMessage delivers a new portal message to subscribers
func (b *Broadcaster) BroadcastProjectMessage(projectID string, payload map[string]interface{}) {
	b.hub.SendToRoom(ProjectRoom(projectID), MessageProjectMessage, payload)
}

// BroadcastTimelineEntry notifies subscribers of a new timeline entry
func (b *Broadcaster) BroadcastTimelineEntry(projectID string, payload map[string]interface{}) {
	b.hub.SendToRoom(ProjectRoom(projectID), MessageTimelineEntryAdded, payload)
}
