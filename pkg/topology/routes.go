package topology

import "strings"

// Shorthand route aliases as riders type them. Canonical ids are the
// published route codes.
var routeAliases = map[string]string{
	"bnsf":  "BNSF",
	"hc":    "HC",
	"mdn":   "MD-N",
	"md-n":  "MD-N",
	"mdw":   "MD-W",
	"md-w":  "MD-W",
	"me":    "ME",
	"ncs":   "NCS",
	"ri":    "RI",
	"sws":   "SWS",
	"upn":   "UP-N",
	"up-n":  "UP-N",
	"upnw":  "UP-NW",
	"up-nw": "UP-NW",
	"upw":   "UP-W",
	"up-w":  "UP-W",
}

// NormalizeRouteID resolves a shorthand alias to its canonical route id.
// Unrecognised input is uppercased and passed through, so already
// canonical ids survive unchanged.
func NormalizeRouteID(input string) string {
	input = strings.TrimSpace(input)
	if canonical, exists := routeAliases[strings.ToLower(input)]; exists {
		return canonical
	}

	return strings.ToUpper(input)
}
