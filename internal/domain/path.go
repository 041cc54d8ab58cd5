package domain

// PathColor - цвет, которым рисуется найденный маршрут
const PathColor = "purple"

// NoBuilding is the sentinel selection meaning "no building chosen".
const NoBuilding = ""

// Building - здание кампуса: короткий ключ и отображаемое имя
type Building struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Point - точка в координатах карты кампуса
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PathSegment - участок маршрута со своей стоимостью
type PathSegment struct {
	Cost  float64 `json:"cost"`
	Start Point   `json:"start"`
	End   Point   `json:"end"`
}

// Path - кратчайший путь, как его вернул сервер.
// Cost берётся с сервера как есть и не пересчитывается.
type Path struct {
	Cost     float64       `json:"cost"`
	Start    Point         `json:"start"`
	Segments []PathSegment `json:"path"`
}

// DrawableSegments converts every path segment into a segment of the given color.
func (p *Path) DrawableSegments(color string) []Segment {
	segments := make([]Segment, 0, len(p.Segments))
	for _, s := range p.Segments {
		segments = append(segments, Segment{
			X1:    s.Start.X,
			Y1:    s.Start.Y,
			X2:    s.End.X,
			Y2:    s.End.Y,
			Color: color,
		})
	}
	return segments
}
