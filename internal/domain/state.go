package domain

// Phase - логическое состояние контроллера
type Phase string

const (
	// PhaseEmpty - нет отрезков: начальное состояние и после сброса
	PhaseEmpty Phase = "empty"
	// PhasePending - идёт trigger; наружу не отдаётся и не сохраняется
	PhasePending Phase = "pending"
	// PhasePopulated - последний trigger завершился успешно
	PhasePopulated Phase = "populated"
)

// LineMapperState - состояние приложения line mapper
type LineMapperState struct {
	Phase    Phase     `json:"phase"`
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// NewLineMapperState returns the initial Empty state.
func NewLineMapperState() LineMapperState {
	return LineMapperState{
		Phase:    PhaseEmpty,
		Segments: []Segment{},
	}
}

// CampusPathsState - состояние приложения campus path finder
type CampusPathsState struct {
	Phase         Phase      `json:"phase"`
	Buildings     []Building `json:"buildings"`
	Start         string     `json:"start"`
	End           string     `json:"end"`
	Segments      []Segment  `json:"segments"`
	TotalDistance float64    `json:"total_distance"`
}

// NewCampusPathsState returns the initial Empty state with the given building list.
func NewCampusPathsState(buildings []Building) CampusPathsState {
	if buildings == nil {
		buildings = []Building{}
	}
	return CampusPathsState{
		Phase:     PhaseEmpty,
		Buildings: buildings,
		Start:     NoBuilding,
		End:       NoBuilding,
		Segments:  []Segment{},
	}
}

// BuildingName returns the display name for key, or "" when unknown.
func (s CampusPathsState) BuildingName(key string) string {
	for _, b := range s.Buildings {
		if b.Key == key {
			return b.Name
		}
	}
	return ""
}

// Notice - сообщение пользователю (блокирующий alert в UI)
type Notice struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
