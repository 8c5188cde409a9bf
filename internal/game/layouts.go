package game

import "github.com/vovakirdan/tui-chomp/internal/registry"

// Layout is a compiled-in maze variant. Rows use the legend documented
// on Maze and must be rectangular.
type Layout struct {
	ID    string
	Title string
	Rows  []string
}

// Built-in maze variants. Each registers as its own playable ID so the
// menu, CLI, and scoreboard can iterate them uniformly.
var layouts = []Layout{
	{
		ID:    "chomp",
		Title: "Chomp",
		Rows: []string{
			"#########################",
			"#..........###.........G#",
			"#.####.###.#.#.###.####.#",
			"#o#  #.#         #.#  #o#",
			"#.####.#.#######.#.####.#",
			"#......#..P   G..#......#",
			"#.####.#.#######.#.####.#",
			"#o#  #.#         #.#  #o#",
			"#.####.###.#.#.###.####.#",
			"#G.........###.........G#",
			"#########################",
		},
	},
	{
		ID:    "chomp-gauntlet",
		Title: "Chomp: Gauntlet",
		Rows: []string{
			"###############################",
			"#o............................#",
			"#.#########.#######.#########.#",
			"#..........................G..#",
			"#.#########.#######.#########.#",
			"#..P..........................#",
			"#.#########.#######.#########.#",
			"#..........G..................#",
			"#.#########.#######.#########.#",
			"#............................o#",
			"###############################",
		},
	},
	{
		ID:    "chomp-arena",
		Title: "Chomp: Arena",
		Rows: []string{
			"#####################",
			"#o.......G.........o#",
			"#.##.##.#####.##.##.#",
			"#...................#",
			"#.##.#.........#.##.#",
			"#....#....P....#....#",
			"#.##.#.........#.##.#",
			"#...................#",
			"#.##.##.#####.##.##.#",
			"#oG...............Go#",
			"#####################",
		},
	},
}

func init() {
	for _, l := range layouts {
		layout := l
		registry.Register(layout.ID, func() registry.Game {
			return New(layout)
		})
	}
}

// Layouts returns the built-in maze variants.
func Layouts() []Layout {
	return layouts
}

// LayoutByID returns the built-in layout with the given ID.
func LayoutByID(id string) (Layout, bool) {
	for _, l := range layouts {
		if l.ID == id {
			return l, true
		}
	}
	return Layout{}, false
}
