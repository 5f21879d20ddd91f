package session

// EventType defines the type of event
type EventType string

const (
	EventAnalysisCompleted EventType = "analysis_completed"
	EventViewChanged       EventType = "view_changed"
	EventHighlightChanged  EventType = "highlight_changed"
	EventTick              EventType = "tick"
	EventLayoutStopped     EventType = "layout_stopped"
	EventCleared           EventType = "cleared"
)

// Event represents something that happened in a session
type Event struct {
	Type      EventType   `json:"type"`
	SessionID string      `json:"session_id"`
	Payload   interface{} `json:"payload,omitempty"`
}

// AnalysisSummary is the payload of EventAnalysisCompleted
type AnalysisSummary struct {
	Nodes        int      `json:"nodes"`
	Edges        int      `json:"edges"`
	Cliques      int      `json:"cliques"`
	FailedStages []string `json:"failed_stages,omitempty"`
}

// TickInfo is the payload of EventTick
type TickInfo struct {
	Tick  int     `json:"tick"`
	Alpha float64 `json:"alpha"`
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.subscribers = append(eb.subscribers, ch)
}

// Unsubscribe removes a subscriber
func (eb *EventBus) Unsubscribe(ch chan<- Event) {
	for i, sub := range eb.subscribers {
		if sub == ch {
			eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers without blocking
func (eb *EventBus) Publish(event Event) {
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}
