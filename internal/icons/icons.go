package icons

import (
	"strings"

	"go.uber.org/zap"

	"github.com/averill/deckd/internal/logging"
)

// DefaultStyle is used when an icon spec carries no "style:" prefix.
const DefaultStyle = "filled"

// defaultName is the fallback glyph for unrecognized names and styles.
const defaultName = "TERMINAL"

// Glyph is a handle to a renderable icon: a style-qualified canonical
// name plus a display rune for text front ends. The artwork behind the
// handle belongs to the render runtime, not to this package.
type Glyph struct {
	Style string
	Name  string
	Rune  rune
}

// Resolve maps an icon spec of the form "style:name" or bare "name" to a
// glyph handle. The empty spec resolves to nothing (ok=false); any other
// spec always yields a glyph, degrading to the style's default when the
// name is unrecognized and to filled's default when the style itself is
// unrecognized.
func Resolve(spec string) (Glyph, bool) {
	if spec == "" {
		return Glyph{}, false
	}

	style := DefaultStyle
	name := spec
	if idx := strings.Index(spec, ":"); idx >= 0 {
		style = spec[:idx]
		name = spec[idx+1:]
	}

	catalog, ok := styleCatalogs[style]
	if !ok {
		logging.Warn("Unknown icon style, using filled:terminal",
			zap.String("style", style),
			zap.String("spec", spec),
		)
		return Glyph{Style: DefaultStyle, Name: defaultName, Rune: runeFor(defaultName)}, true
	}

	// Constant-style lookup: names are case-insensitive.
	constName := strings.ToUpper(name)
	if alias, ok := aliases[constName]; ok {
		constName = alias
	}

	if !catalog[constName] {
		logging.Warn("Unknown icon name, using default glyph",
			zap.String("style", style),
			zap.String("name", constName),
		)
		constName = defaultName
	}

	return Glyph{Style: style, Name: constName, Rune: runeFor(constName)}, true
}

// Default returns the fixed fallback glyph for a style. Unrecognized
// styles yield the filled default.
func Default(style string) Glyph {
	if _, ok := styleCatalogs[style]; !ok {
		style = DefaultStyle
	}
	return Glyph{Style: style, Name: defaultName, Rune: runeFor(defaultName)}
}

// aliases maps convenience names to canonical glyph identifiers. These
// mappings are load-bearing: "TAG" must resolve to the offer/label glyph,
// not a literal tag glyph.
var aliases = map[string]string{
	"HARD_DRIVE": "STORAGE",
	"CPU":        "MEMORY",
	"COPY":       "CONTENT_COPY",
	"CUT":        "CONTENT_CUT",
	"PASTE":      "CONTENT_PASTE",
	"TAG":        "LOCAL_OFFER",
	"DOCKER":     "COMPUTER",
	"GIT":        "CODE",
	"GITHUB":     "CODE",
	"GITLAB":     "CODE",
	"JENKINS":    "BUILD",
	"AWS":        "COMPUTER",
	"KUBERNETES": "COMPUTER",
}

// styleCatalogs lists the canonical names known per style. The filled
// catalog is the widest; the other styles cover a smaller set, matching
// the glyphs the render runtime actually ships.
var styleCatalogs = map[string]map[string]bool{
	"filled":   filledNames,
	"outlined": outlinedNames,
	"sharp":    sharpNames,
	"two_tone": twoToneNames,
}

var filledNames = nameSet(
	// Navigation & control
	"TERMINAL", "HOME", "ARROW_BACK", "ARROW_FORWARD", "ARROW_UPWARD",
	"ARROW_DOWNWARD", "REFRESH", "PLAY_ARROW", "STOP", "PAUSE",
	"FAST_FORWARD", "FAST_REWIND", "SKIP_NEXT", "SKIP_PREVIOUS",
	// Files & folders
	"FOLDER", "FOLDER_OPEN", "FOLDER_SHARED", "FILE_COPY", "DESCRIPTION",
	"ARTICLE", "NOTE", "NOTES",
	// System & hardware
	"COMPUTER", "LAPTOP", "PHONE", "TABLET", "MEMORY", "STORAGE",
	"MONITOR", "KEYBOARD", "MOUSE",
	// Development
	"CODE", "BUILD", "BUG_REPORT", "INTEGRATION_INSTRUCTIONS", "API",
	"WEB", "DEVELOPER_MODE",
	// Network
	"NETWORK_CHECK", "WIFI", "WIFI_OFF", "BLUETOOTH", "HTTP", "HTTPS",
	"VPN_KEY", "ROUTER", "DNS",
	// Configuration
	"SETTINGS", "TUNE", "PALETTE", "BUILD_CIRCLE", "SETTINGS_APPLICATIONS",
	// Time
	"SCHEDULE", "ACCESS_TIME", "TIMER", "ALARM", "EVENT", "TODAY",
	"DATE_RANGE",
	// Media
	"MUSIC_NOTE", "LIBRARY_MUSIC", "VIDEO_LIBRARY", "MOVIE", "PHOTO",
	"PHOTO_LIBRARY", "CAMERA", "VIDEOCAM",
	// Utilities
	"SEARCH", "EDIT", "DELETE", "ADD", "REMOVE", "SAVE", "DOWNLOAD",
	"UPLOAD", "SHARE", "CONTENT_COPY", "CONTENT_CUT", "CONTENT_PASTE",
	// Security
	"LOCK", "LOCK_OPEN", "KEY", "SECURITY", "SHIELD", "FINGERPRINT",
	// Status
	"CHECK", "CHECK_CIRCLE", "WARNING", "ERROR", "INFO", "HELP",
	"NOTIFICATIONS", "TOGGLE_ON", "TOGGLE_OFF",
	// Workspace
	"DASHBOARD", "INBOX", "ARCHIVE", "BOOKMARK", "FAVORITE", "STAR",
	"LABEL", "LOCAL_OFFER",
)

var outlinedNames = nameSet(
	"TERMINAL", "HOME", "ARROW_BACK", "ARROW_FORWARD", "ARROW_UPWARD",
	"ARROW_DOWNWARD", "REFRESH",
	"FOLDER", "FOLDER_OPEN", "DESCRIPTION",
	"COMPUTER", "LAPTOP", "MEMORY", "STORAGE",
	"SETTINGS",
	"CODE", "BUILD",
)

var sharpNames = nameSet(
	"TERMINAL", "HOME", "ARROW_BACK", "ARROW_FORWARD", "ARROW_UPWARD",
	"ARROW_DOWNWARD",
	"FOLDER", "FOLDER_OPEN",
	"SETTINGS",
)

var twoToneNames = nameSet(
	"TERMINAL", "HOME", "ARROW_BACK", "ARROW_FORWARD", "ARROW_UPWARD",
	"ARROW_DOWNWARD",
	"FOLDER", "FOLDER_OPEN",
	"SETTINGS",
)

func nameSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
