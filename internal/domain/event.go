package domain

// EventType - тип события от дочерних компонентов
type EventType string

const (
	EventTextChanged   EventType = "text_changed"
	EventDraw          EventType = "draw"
	EventClear         EventType = "clear"
	EventStartSelected EventType = "start_selected"
	EventEndSelected   EventType = "end_selected"
	EventFindRoute     EventType = "find_route"
	EventReset         EventType = "reset"
)

// Event - событие, которое контроллер сворачивает в новое состояние.
// Value несёт сырое значение для событий ввода и пусто для кнопок.
type Event struct {
	Type  EventType `json:"type"`
	Value string    `json:"value,omitempty"`
}

func TextChanged(text string) Event { return Event{Type: EventTextChanged, Value: text} }
func Draw() Event                   { return Event{Type: EventDraw} }
func Clear() Event                  { return Event{Type: EventClear} }
func StartSelected(key string) Event {
	return Event{Type: EventStartSelected, Value: key}
}
func EndSelected(key string) Event { return Event{Type: EventEndSelected, Value: key} }
func FindRoute() Event             { return Event{Type: EventFindRoute} }
func Reset() Event                 { return Event{Type: EventReset} }
