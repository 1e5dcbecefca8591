package testcases

var smoothCases = []TestCase{
	{
		Name:   "first_minimum",
		Series: []int{5, 2, 2, 5},
		Query:  "type=smooth&min-m=true",
		Width:  10,
		Height: 20,
	},
	{
		Name:   "markers",
		Series: []int{20, 80, 40, 100, 10, 60},
		Query:  "type=smooth&min-m=true&max-m=true&last-m=true",
		Width:  14,
		Height: 20,
	},
	{
		Name:   "single",
		Series: []int{42},
		Query:  "type=smooth&last-m=true",
		Width:  4,
		Height: 20,
	},
	{
		Name:   "step",
		Series: []int{0, 100, 0, 100},
		Query:  "type=smooth&step=5&height=30",
		Width:  19,
		Height: 30,
	},
	{
		Name:   "marker_colors",
		Series: []int{30, 70, 50},
		Query:  "type=smooth&min-m=true&max-m=true&last-m=true&min-color=navy&max-color=orange&last-color=purple",
		Width:  8,
		Height: 20,
	},
}

var limitsCases = []TestCase{
	{
		Name:   "degenerate_discrete",
		Series: []int{50, 50, 50},
		Query:  "limits=50,50",
		Width:  5,
		Height: 14,
	},
	{
		Name:   "degenerate_impulse",
		Series: []int{50, 50},
		Query:  "type=impulse&limits=50,50",
		Width:  3,
		Height: 14,
	},
	{
		Name:   "degenerate_smooth",
		Series: []int{50, 50},
		Query:  "type=smooth&limits=50,50",
		Width:  6,
		Height: 20,
	},
	{
		Name:   "inverted",
		Series: []int{10, 20},
		Query:  "limits=50,10",
		Width:  3,
		Height: 14,
	},
}

var errorCases = []TestCase{
	{
		Name:   "cross",
		Query:  "type=error",
		Width:  40,
		Height: 15,
	},
}
