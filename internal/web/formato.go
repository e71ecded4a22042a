package web

import "time"

var layoutsData = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseData(s string) (time.Time, bool) {
	for _, l := range layoutsData {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Data formata datas da API como dd/mm/aaaa.
func Data(s string) string {
	t, ok := parseData(s)
	if !ok {
		if s == "" {
			return "-"
		}
		return s
	}
	return t.Format("02/01/2006")
}

// DataISO devolve aaaa-mm-dd para inputs type=date.
func DataISO(s string) string {
	t, ok := parseData(s)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02")
}
