package models

// PatternInfo is an authored pattern as sent to the client
type PatternInfo struct {
	ID             string        `json:"id"`
	Category       string        `json:"category"`
	HeightInFloors float64       `json:"height_in_floors"`
	Entry          [2]float64    `json:"entry"`
	Exit           [2]float64    `json:"exit"`
	Elements       []ElementInfo `json:"elements"`
}

// ElementInfo flattens one pattern element
type ElementInfo struct {
	Type     string  `json:"type"` // platform, ladder, portal_in, heart, coin
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    int     `json:"width,omitempty"`
	Height   int     `json:"height,omitempty"`
	PortalID string  `json:"portal_id,omitempty"`
}

// PatternList wraps the array of patterns
type PatternList struct {
	Patterns []PatternInfo `json:"patterns"`
}
