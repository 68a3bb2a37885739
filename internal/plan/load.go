package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Meng-Best/task-planning-system-sub001/internal/hashutil"
)

// Load decodes a schedule snapshot from r.
func Load(r io.Reader) (Payload, error) {
	var p Payload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Payload{}, fmt.Errorf("decoding schedule payload: %w", err)
	}
	return p, nil
}

// LoadFile reads and decodes a schedule snapshot from a JSON file.
func LoadFile(path string) (Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Payload{}, fmt.Errorf("opening schedule payload: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// ConfirmationCodes returns the distinct order and task codes present in
// the task plan, in first-seen order. The confirmation collaborator
// marks these codes as committed; this layer only supplies the list.
func (p Payload) ConfirmationCodes() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, t := range p.Tasks {
		for _, code := range []string{t.OrderCode, t.Code} {
			if code != "" && !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	return codes
}

// Fingerprint returns a deterministic short ID for the snapshot, derived
// from task IDs and planned spans. Callers that memoize derived views
// can key them by this value.
func (p Payload) Fingerprint() string {
	var b strings.Builder
	for _, t := range p.Tasks {
		b.WriteString(t.ID)
		b.WriteByte('\x00')
		b.WriteString(t.Start.Format("2006-01-02 15:04:05"))
		b.WriteByte('\x00')
		b.WriteString(t.End.Format("2006-01-02 15:04:05"))
		b.WriteByte('\n')
	}
	return hashutil.ShortID(b.String())
}
