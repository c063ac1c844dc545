package icons

// displayRunes gives text front ends something to draw for a glyph
// handle. Coverage is intentionally partial; anything unlisted renders
// as the generic block.
var displayRunes = map[string]rune{
	"TERMINAL":      '>',
	"HOME":          '⌂',
	"ARROW_BACK":    '←',
	"ARROW_FORWARD": '→',
	"ARROW_UPWARD":  '↑',
	"ARROW_DOWNWARD": '↓',
	"REFRESH":       '↻',
	"PLAY_ARROW":    '▶',
	"STOP":          '■',
	"PAUSE":         '‖',
	"FOLDER":        '📁',
	"FOLDER_OPEN":   '📂',
	"COMPUTER":      '🖥',
	"MEMORY":        '▤',
	"STORAGE":       '▥',
	"CODE":          '⌨',
	"BUILD":         '🔨',
	"WIFI":          '📶',
	"WIFI_OFF":      '⊘',
	"BLUETOOTH":     'ᛒ',
	"VPN_KEY":       '🔑',
	"SETTINGS":      '⚙',
	"TIMER":         '⏱',
	"MUSIC_NOTE":    '♪',
	"SEARCH":        '🔍',
	"EDIT":          '✎',
	"DELETE":        '✕',
	"ADD":           '+',
	"REMOVE":        '-',
	"LOCK":          '🔒',
	"LOCK_OPEN":     '🔓',
	"KEY":           '🔑',
	"CHECK":         '✓',
	"CHECK_CIRCLE":  '◉',
	"WARNING":       '⚠',
	"ERROR":         '✗',
	"INFO":          'ℹ',
	"HELP":          '?',
	"TOGGLE_ON":     '●',
	"TOGGLE_OFF":    '○',
	"STAR":          '★',
	"LOCAL_OFFER":   '◈',
}

func runeFor(name string) rune {
	if r, ok := displayRunes[name]; ok {
		return r
	}
	return '▣'
}
