package testcases

var discreteCases = []TestCase{
	{
		Name:   "below_threshold",
		Series: []int{10, 20, 30, 40, 49},
		Width:  9,
		Height: 14,
	},
	{
		Name:   "above_threshold",
		Series: []int{50, 60, 100, 75},
		Width:  7,
		Height: 14,
	},
	{
		Name:   "mixed",
		Series: []int{0, 25, 50, 75, 100, 50, 0},
		Query:  "upper=60",
		Width:  13,
		Height: 14,
	},
	{
		Name:   "wide_bars",
		Series: []int{10, 90, 30},
		Query:  "width=4&height=20",
		Width:  11,
		Height: 20,
	},
	{
		Name:   "custom_colors",
		Series: []int{10, 90},
		Query:  "below-color=blue&above-color=green",
		Width:  3,
		Height: 14,
	},
	{
		Name:   "ramp",
		Series: seq(0, 100, 5),
		Width:  41,
		Height: 14,
	},
}

var impulseCases = []TestCase{
	{
		Name:   "basic",
		Series: []int{10, 50, 90, 30},
		Query:  "type=impulse",
		Width:  7,
		Height: 14,
	},
	{
		Name:   "negative",
		Series: []int{-50, -10, 0, 10, 50},
		Query:  "type=impulse&limits=-50,50",
		Width:  9,
		Height: 14,
	},
	{
		Name:   "tall",
		Series: seq(0, 100, 10),
		Query:  "type=impulse&height=30&width=3",
		Width:  32,
		Height: 30,
	},
}
