// Package view builds immutable render snapshots of controller state for the
// map pages. Snapshots hold only what the templates draw.
package view

import (
	"github.com/campus-maps/internal/config"
	"github.com/campus-maps/internal/domain"
	"github.com/campus-maps/internal/pkg/utils"
)

// BuildingOption - пункт выпадающего списка
type BuildingOption struct {
	Key      string
	Name     string
	Selected bool
}

// CanvasLine - отрезок на абстрактном SVG холсте
type CanvasLine struct {
	X1, Y1, X2, Y2 float64
	Color          string
}

// GeoLine - отрезок на карте Leaflet
type GeoLine struct {
	From  utils.LatLng `json:"from"`
	To    utils.LatLng `json:"to"`
	Color string       `json:"color"`
}

// LineMapperPage - снимок страницы line mapper
type LineMapperPage struct {
	Title   string
	Text    string
	Lines   []CanvasLine
	Skipped int
	Width   int
	Height  int
	Notice  string
}

// CampusPathsPage - снимок страницы campus path finder
type CampusPathsPage struct {
	Title         string
	Sentinel      string
	Start         []BuildingOption
	End           []BuildingOption
	StartUnset    bool
	EndUnset      bool
	TotalDistance string
	Route         string
	Lines         []GeoLine
	Center        utils.LatLng
	Zoom          int
	Notice        string
}

// NewLineMapperPage draws every drawable segment in order; segments with
// non-finite coordinates are counted in Skipped.
func NewLineMapperPage(state domain.LineMapperState, notice *domain.Notice, cfg config.LinesConfig) LineMapperPage {
	page := LineMapperPage{
		Title:  "Line Mapper!",
		Text:   state.Text,
		Lines:  make([]CanvasLine, 0, len(state.Segments)),
		Width:  cfg.CanvasWidth,
		Height: cfg.CanvasHeight,
		Notice: noticeText(notice),
	}
	for _, s := range state.Segments {
		if !s.Drawable() {
			page.Skipped++
			continue
		}
		page.Lines = append(page.Lines, CanvasLine{X1: s.X1, Y1: s.Y1, X2: s.X2, Y2: s.Y2, Color: s.Color})
	}
	return page
}

// NewCampusPathsPage converts campus-map coordinates to lat/lng for Leaflet.
// Lines whose converted endpoints are not valid lat/lng are left off the map.
func NewCampusPathsPage(state domain.CampusPathsState, notice *domain.Notice, cfg config.MapConfig) CampusPathsPage {
	page := CampusPathsPage{
		Title:         "Campus Path Finder",
		Sentinel:      domain.NoBuilding,
		Start:         options(state.Buildings, state.Start),
		End:           options(state.Buildings, state.End),
		StartUnset:    state.Start == domain.NoBuilding,
		EndUnset:      state.End == domain.NoBuilding,
		TotalDistance: utils.FormatCost(state.TotalDistance),
		Lines:         make([]GeoLine, 0, len(state.Segments)),
		Center:        utils.LatLng{Lat: cfg.CenterLat, Lng: cfg.CenterLon},
		Zoom:          cfg.Zoom,
		Notice:        noticeText(notice),
	}
	if state.Phase == domain.PhasePopulated {
		page.Route = routeCaption(state)
	}
	for _, s := range state.Segments {
		if !s.Drawable() {
			continue
		}
		from := utils.CampusToLatLng(s.X1, s.Y1)
		to := utils.CampusToLatLng(s.X2, s.Y2)
		if !utils.ValidateCoordinates(from.Lat, from.Lng) || !utils.ValidateCoordinates(to.Lat, to.Lng) {
			continue
		}
		page.Lines = append(page.Lines, GeoLine{From: from, To: to, Color: s.Color})
	}
	return page
}

// routeCaption - "откуда - куда" по именам зданий; пусто, если имя неизвестно
func routeCaption(state domain.CampusPathsState) string {
	start, end := state.BuildingName(state.Start), state.BuildingName(state.End)
	if start == "" || end == "" {
		return ""
	}
	return start + " to " + end
}

func options(buildings []domain.Building, selected string) []BuildingOption {
	opts := make([]BuildingOption, 0, len(buildings))
	for _, b := range buildings {
		opts = append(opts, BuildingOption{Key: b.Key, Name: b.Name, Selected: b.Key == selected})
	}
	return opts
}

func noticeText(notice *domain.Notice) string {
	if notice == nil {
		return ""
	}
	return notice.Message
}
