package plan

import (
	"encoding/json"
	"strings"
	"time"
)

// stampLayouts are the timestamp layouts the scheduling backend has been
// seen to emit. They are tried in order.
var stampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Stamp is a planned timestamp as delivered on the wire. Unparsable or
// missing values decode to the zero time rather than failing the whole
// payload; downstream duration math treats zero stamps as invalid
// intervals with defined fallbacks.
type Stamp struct {
	time.Time
}

// At wraps a time.Time in a Stamp.
func At(t time.Time) Stamp {
	return Stamp{Time: t}
}

func (s *Stamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	raw = strings.TrimSpace(raw)
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			s.Time = t
			return nil
		}
	}

	s.Time = time.Time{}
	return nil
}

func (s Stamp) MarshalJSON() ([]byte, error) {
	if s.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(s.Format("2006-01-02 15:04:05"))
}
