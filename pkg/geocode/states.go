package geocode

import "strings"

// usStateNames maps lowercased full state names to USPS codes. DC and the
// populated territories are included because posts reference them.
var usStateNames = map[string]string{
	"alabama":              "AL",
	"alaska":               "AK",
	"arizona":              "AZ",
	"arkansas":             "AR",
	"california":           "CA",
	"colorado":             "CO",
	"connecticut":          "CT",
	"delaware":             "DE",
	"district of columbia": "DC",
	"florida":              "FL",
	"georgia":              "GA",
	"hawaii":               "HI",
	"idaho":                "ID",
	"illinois":             "IL",
	"indiana":              "IN",
	"iowa":                 "IA",
	"kansas":               "KS",
	"kentucky":             "KY",
	"louisiana":            "LA",
	"maine":                "ME",
	"maryland":             "MD",
	"massachusetts":        "MA",
	"michigan":             "MI",
	"minnesota":            "MN",
	"mississippi":          "MS",
	"missouri":             "MO",
	"montana":              "MT",
	"nebraska":             "NE",
	"nevada":               "NV",
	"new hampshire":        "NH",
	"new jersey":           "NJ",
	"new mexico":           "NM",
	"new york":             "NY",
	"north carolina":       "NC",
	"north dakota":         "ND",
	"ohio":                 "OH",
	"oklahoma":             "OK",
	"oregon":               "OR",
	"pennsylvania":         "PA",
	"puerto rico":          "PR",
	"rhode island":         "RI",
	"south carolina":       "SC",
	"south dakota":         "SD",
	"tennessee":            "TN",
	"texas":                "TX",
	"utah":                 "UT",
	"vermont":              "VT",
	"virginia":             "VA",
	"washington":           "WA",
	"west virginia":        "WV",
	"wisconsin":            "WI",
	"wyoming":              "WY",
}

var usStateCodes = func() map[string]struct{} {
	codes := make(map[string]struct{}, len(usStateNames))
	for _, code := range usStateNames {
		codes[code] = struct{}{}
	}
	return codes
}()

// NormalizeState resolves a state value to its USPS code, accepting either a
// two-letter code or a full state name in any casing. Returns ("", false) for
// anything else.
func NormalizeState(state string) (string, bool) {
	trimmed := strings.TrimSpace(state)
	if len(trimmed) == 2 {
		code := strings.ToUpper(trimmed)
		if _, ok := usStateCodes[code]; ok {
			return code, true
		}
		return "", false
	}
	if code, ok := usStateNames[strings.ToLower(trimmed)]; ok {
		return code, true
	}
	return "", false
}
