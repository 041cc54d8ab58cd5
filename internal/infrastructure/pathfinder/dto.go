package pathfinder

import "github.com/campus-maps/internal/domain"

// pointDTO - точка в ответе /findPath
type pointDTO struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

type segmentDTO struct {
	Cost  *float64  `json:"cost" validate:"required"`
	Start *pointDTO `json:"start" validate:"required"`
	End   *pointDTO `json:"end" validate:"required"`
}

// pathDTO - ответ /findPath: {cost, start, path: [{cost, start, end}]}
type pathDTO struct {
	Cost  *float64      `json:"cost" validate:"required"`
	Start *pointDTO     `json:"start" validate:"omitempty"`
	Path  []*segmentDTO `json:"path" validate:"required,dive,required"`
}

func (p pointDTO) toDomain() domain.Point {
	return domain.Point{X: *p.X, Y: *p.Y}
}

func (p *pathDTO) toDomain() *domain.Path {
	path := &domain.Path{
		Cost:     *p.Cost,
		Segments: make([]domain.PathSegment, 0, len(p.Path)),
	}
	if p.Start != nil {
		path.Start = p.Start.toDomain()
	}
	for _, s := range p.Path {
		path.Segments = append(path.Segments, domain.PathSegment{
			Cost:  *s.Cost,
			Start: s.Start.toDomain(),
			End:   s.End.toDomain(),
		})
	}
	return path
}
