package scene

func vel(v float64) *float64 { return &v }

// Builtin returns the levels shipped with the binary, physics first
func Builtin() []Level {
	return []Level{
		{
			Name: "drop",
			Mode: "physics",
			Bodies: []Body{
				{X: 200, Y: 100},
				{X: 400, Y: 200, Mass: 2},
				{X: 600, Y: 50},
			},
		},
		{
			Name:   "pins",
			Mode:   "physics",
			Bodies: pinField(),
		},
		{
			Name: "collide",
			Mode: "physics",
			Bodies: []Body{
				{X: 250, Y: 300, VX: vel(120), VY: vel(0)},
				{X: 550, Y: 300, VX: vel(-120), VY: vel(0)},
				{X: 400, Y: 120, Mass: 3, VX: vel(0)},
			},
		},
		{
			Name: "series",
			Mode: "circuit",
			Elements: []Element{
				{Type: "battery", X: 150, Y: 300, Value: 9},
				{Type: "resistor", X: 400, Y: 150, Value: 100},
				{Type: "resistor", X: 650, Y: 300, Value: 200},
			},
			Wires: []Wire{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}},
		},
		{
			Name: "single",
			Mode: "circuit",
			Elements: []Element{
				{Type: "battery", X: 200, Y: 300, Value: 12},
				{Type: "resistor", X: 600, Y: 300, Value: 400},
			},
			Wires: []Wire{{From: 0, To: 1}, {From: 1, To: 0}},
		},
	}
}

// pinField lays out staggered rows of pins under two falling bodies
func pinField() []Body {
	bodies := []Body{
		{X: 390, Y: 40, VX: vel(0)},
		{X: 430, Y: 0, VX: vel(15)},
	}
	for row := 0; row < 4; row++ {
		offset := float64(row%2) * 50
		for col := 0; col < 7; col++ {
			bodies = append(bodies, Body{
				X:       130 + offset + float64(col)*100,
				Y:       180 + float64(row)*80,
				Variant: "pin",
			})
		}
	}
	return bodies
}
