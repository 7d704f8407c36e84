package parameter

// Physics body archetypes
const (
	BodyRadius = 20.0
	BodyColor  = "#3498db"

	PinRadius = 8.0
	PinColor  = "#95a5a6"
)

// Circuit archetypes
const (
	ResistorSize  = 40.0
	ResistorColor = "#e67e22"

	BatterySize  = 40.0
	BatteryColor = "#27ae60"

	WireColor = "#f1c40f"
)
