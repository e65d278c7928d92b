package tui

import "github.com/gdamore/tcell/v3"

type Theme struct {
	Name     string
	bg       tcell.Color
	fg       tcell.Color
	red      tcell.Color
	green    tcell.Color
	yellow   tcell.Color
	blue     tcell.Color
	purple   tcell.Color
	aqua     tcell.Color
	orange   tcell.Color
	gray     tcell.Color
	darkGray tcell.Color
	headerBg tcell.Color
	headerFg tcell.Color
	footerBg tcell.Color
	footerFg tcell.Color
	sizeFg   tcell.Color
	buttonBg tcell.Color
	buttonFg tcell.Color
	modalBg  tcell.Color
	modalFg  tcell.Color
}

var themes = map[string]Theme{
	"gruvbox-dark": {
		Name:     "Gruvbox Dark",
		bg:       tcell.NewRGBColor(40, 40, 40),
		fg:       tcell.NewRGBColor(235, 219, 178),
		red:      tcell.NewRGBColor(204, 36, 29),
		green:    tcell.NewRGBColor(152, 151, 26),
		yellow:   tcell.NewRGBColor(215, 153, 33),
		blue:     tcell.NewRGBColor(69, 133, 136),
		purple:   tcell.NewRGBColor(177, 98, 134),
		aqua:     tcell.NewRGBColor(104, 157, 106),
		orange:   tcell.NewRGBColor(214, 93, 14),
		gray:     tcell.NewRGBColor(146, 131, 116),
		darkGray: tcell.NewRGBColor(60, 56, 54),
		headerBg: tcell.NewRGBColor(214, 93, 14),
		headerFg: tcell.NewRGBColor(60, 56, 54),
		footerBg: tcell.NewRGBColor(60, 56, 54),
		footerFg: tcell.NewRGBColor(235, 219, 178),
		sizeFg:   tcell.NewRGBColor(215, 153, 33),
		buttonBg: tcell.NewRGBColor(214, 93, 14),
		buttonFg: tcell.NewRGBColor(60, 56, 54),
		modalBg:  tcell.NewRGBColor(40, 40, 40),
		modalFg:  tcell.NewRGBColor(235, 219, 178),
	},
	"nord": {
		Name:     "Nord",
		bg:       tcell.NewRGBColor(46, 52, 64),
		fg:       tcell.NewRGBColor(216, 222, 233),
		red:      tcell.NewRGBColor(191, 97, 106),
		green:    tcell.NewRGBColor(163, 190, 140),
		yellow:   tcell.NewRGBColor(235, 203, 139),
		blue:     tcell.NewRGBColor(136, 192, 208),
		purple:   tcell.NewRGBColor(129, 161, 193),
		aqua:     tcell.NewRGBColor(143, 188, 187),
		orange:   tcell.NewRGBColor(191, 97, 106),
		gray:     tcell.NewRGBColor(59, 66, 82),
		darkGray: tcell.NewRGBColor(67, 76, 94),
		headerBg: tcell.NewRGBColor(129, 161, 193),
		headerFg: tcell.NewRGBColor(46, 52, 64),
		footerBg: tcell.NewRGBColor(67, 76, 94),
		footerFg: tcell.NewRGBColor(216, 222, 233),
		sizeFg:   tcell.NewRGBColor(235, 203, 139),
		buttonBg: tcell.NewRGBColor(129, 161, 193),
		buttonFg: tcell.NewRGBColor(46, 52, 64),
		modalBg:  tcell.NewRGBColor(46, 52, 64),
		modalFg:  tcell.NewRGBColor(216, 222, 233),
	},
}

func getThemeNames() []string {
	var names []string
	for n := range themes {
		names = append(names, n)
	}
	return names
}
