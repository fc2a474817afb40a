package dataset

import (
	"strconv"
	"strings"
	"time"
)

var agoUnits = map[string]float64{
	"billion":  1e9,
	"million":  1e6,
	"thousand": 1e3,
}

// ParseEpoch converts an authored date to fractional years of the common
// era. It understands ISO calendar dates ("2024-01-15"), bare or suffixed
// years ("1990", "1957 CE", "500 BCE") and relative ages ("13.8 billion
// years ago"). Relative ages are measured back from year zero; at those
// scales the offset to the present is noise. Anything else reports false.
func ParseEpoch(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		days := 365.0
		if isLeap(t.Year()) {
			days = 366
		}
		return float64(t.Year()) + float64(t.YearDay()-1)/days, true
	}

	fields := strings.Fields(strings.ToLower(s))
	switch {
	case len(fields) == 1:
		return parseNumber(fields[0])
	case len(fields) == 2 && fields[1] == "ce", len(fields) == 2 && fields[1] == "ad":
		return parseNumber(fields[0])
	case len(fields) == 2 && fields[1] == "bce", len(fields) == 2 && fields[1] == "bc":
		v, ok := parseNumber(fields[0])
		return -v, ok
	case len(fields) == 3 && fields[1] == "years" && fields[2] == "ago":
		v, ok := parseNumber(fields[0])
		return -v, ok
	case len(fields) == 4 && fields[2] == "years" && fields[3] == "ago":
		unit, known := agoUnits[fields[1]]
		if !known {
			return 0, false
		}
		v, ok := parseNumber(fields[0])
		return -v * unit, ok
	}
	return 0, false
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
