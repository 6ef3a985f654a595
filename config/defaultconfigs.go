package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		DrawWinningBackground:    true,
		FullWidthLetters:         false,
		Colors: ConfigColors{
			BoardColor:        24,
			BoardColorAlt:     25,
			FirstColor:        196,
			SecondColor:       226,
			LineColor:         17,
			CursorColorFG:     2,
			CursorColorBG:     28,
			LastPlayedColorBG: 31,
			WinningColorBG:    34,
		},
		Symbols: ConfigSymbols{
			FirstToken:  '●',
			SecondToken: '●',
			EmptySlot:   '○',
			Cursor:      '○',
			DropMarker:  '▼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			DefaultWidth:  7,
			DefaultHeight: 6,
		},
	}
}
