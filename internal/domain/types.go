package domain

import "strings"

type SessionID string
type JournalEntryID string

// Path is what the seeker wants out of the exchange.
type Path string

const (
	PathFindHelp      Path = "find_help"      // Default
	PathSeekPurpose   Path = "seek_purpose"   // Meaning and direction
	PathReflectWithin Path = "reflect_within" // Introspection
	PathDiscoverPeace Path = "discover_peace" // Calm and acceptance
)

// Paths lists every path in the order they are offered to the seeker.
var Paths = []Path{
	PathFindHelp,
	PathSeekPurpose,
	PathReflectWithin,
	PathDiscoverPeace,
}

// Label returns the human label shown to the seeker, e.g. "Seek Purpose".
func (p Path) Label() string {
	switch p {
	case PathSeekPurpose:
		return "Seek Purpose"
	case PathReflectWithin:
		return "Reflect Within"
	case PathDiscoverPeace:
		return "Discover Peace"
	default:
		return "Find Help"
	}
}

// ParsePath accepts wire values, labels and a few short aliases.
// Anything else falls back to PathFindHelp.
func ParsePath(s string) Path {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)

	switch norm {
	case "seek_purpose", "purpose":
		return PathSeekPurpose
	case "reflect_within", "reflect":
		return PathReflectWithin
	case "discover_peace", "peace":
		return PathDiscoverPeace
	case "find_help", "help":
		fallthrough
	default:
		return PathFindHelp
	}
}
