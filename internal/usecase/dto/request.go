package dto

import "github.com/campus-maps/internal/domain"

// LineMapperEventRequest - событие line mapper в JSON API
type LineMapperEventRequest struct {
	Type  string `json:"type" validate:"required,oneof=text_changed draw clear"`
	Value string `json:"value" validate:"max=1048576"`
}

// CampusPathsEventRequest - событие campus path finder в JSON API
type CampusPathsEventRequest struct {
	Type  string `json:"type" validate:"required,oneof=start_selected end_selected find_route reset"`
	Value string `json:"value" validate:"max=256"`
}

func (r LineMapperEventRequest) ToEvent() domain.Event {
	return domain.Event{Type: domain.EventType(r.Type), Value: r.Value}
}

func (r CampusPathsEventRequest) ToEvent() domain.Event {
	return domain.Event{Type: domain.EventType(r.Type), Value: r.Value}
}

// LineMapperForm - форма страницы /lines
type LineMapperForm struct {
	Edges  string `form:"edges" validate:"max=1048576"`
	Action string `form:"action" validate:"required,oneof=draw clear"`
}

// CampusPathsForm - форма страницы /campus
type CampusPathsForm struct {
	Start  string `form:"start" validate:"max=256"`
	End    string `form:"end" validate:"max=256"`
	Action string `form:"action" validate:"required,oneof=find reset"`
}
