package dto

import "github.com/campus-maps/internal/domain"

// LineMapperResponse - состояние после события и, возможно, уведомление
type LineMapperResponse struct {
	State  domain.LineMapperState `json:"state"`
	Notice *domain.Notice         `json:"notice,omitempty"`
}

// CampusPathsResponse - состояние после события и, возможно, уведомление
type CampusPathsResponse struct {
	State  domain.CampusPathsState `json:"state"`
	Notice *domain.Notice          `json:"notice,omitempty"`
}
