package store

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var picsumPattern = regexp.MustCompile(`https://picsum\.photos/id/(\d+)/(\d+)/(\d+)`)

// ProxyImageURL rewrites a picsum.photos image URL into the local proxy path
// /proxy/picsum/<id>/<width>/<height>. Any other value is returned unchanged.
func ProxyImageURL(raw string) string {
	if raw == "" {
		return raw
	}
	m := picsumPattern.FindStringSubmatch(raw)
	if m == nil {
		return raw
	}
	return fmt.Sprintf("/proxy/picsum/%s/%s/%s", m[1], m[2], m[3])
}

// Forms without a zone are read as local time, date-only as UTC.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// numericID reports the integer value of a decimal ID.
func numericID(id string) (int64, bool) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
