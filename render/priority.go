package render

// Priority orders render passes; lower values draw first
type Priority int

const (
	PriorityTerrain Priority = iota
	PriorityHighlight
	PriorityEntities
	PriorityParticles
	PriorityCrosshair
	PriorityHUD
	PriorityOverlay
)
