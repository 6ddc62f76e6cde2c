// Package mood defines the fixed set of moods an entry can carry.
package mood

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// All is the filter id that matches every entry.
const All = "all"

// ErrUnknownMood is returned when an id or alias does not name a mood.
var ErrUnknownMood = errors.New("mood: unknown mood")

// Mood is embedded by value in entries. The JSON shape is part of the
// persisted record and must not change.
type Mood struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

var (
	Happy   = Mood{ID: "happy", Label: "Happy", Emoji: "😊"}
	Sad     = Mood{ID: "sad", Label: "Sad", Emoji: "😢"}
	Angry   = Mood{ID: "angry", Label: "Angry", Emoji: "😠"}
	Calm    = Mood{ID: "calm", Label: "Calm", Emoji: "😌"}
	Anxious = Mood{ID: "anxious", Label: "Anxious", Emoji: "😰"}
)

// DefaultMoods returns the moods in selector order.
func DefaultMoods() []Mood {
	return []Mood{Happy, Sad, Angry, Calm, Anxious}
}

// IDs lists the mood ids in selector order.
func IDs() []string {
	moods := DefaultMoods()
	ids := make([]string, 0, len(moods))
	for _, m := range moods {
		ids = append(ids, m.ID)
	}
	return ids
}

// ForAlias resolves an id, a label, or a 1-based selector key to a Mood.
func ForAlias(alias string) (Mood, error) {
	a := strings.ToLower(strings.TrimSpace(alias))
	moods := DefaultMoods()
	if n, err := strconv.Atoi(a); err == nil {
		if n >= 1 && n <= len(moods) {
			return moods[n-1], nil
		}
		return Mood{}, fmt.Errorf("%w: %q", ErrUnknownMood, alias)
	}
	for _, m := range moods {
		if a == m.ID || a == strings.ToLower(m.Label) || a == m.Emoji {
			return m, nil
		}
	}
	return Mood{}, fmt.Errorf("%w: %q", ErrUnknownMood, alias)
}

// ParseFilter validates a filter id. The empty string and "all" both mean
// no filtering and normalize to All.
func ParseFilter(id string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" || id == All {
		return All, nil
	}
	m, err := ForAlias(id)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// IsZero reports whether m is the absent mood.
func (m Mood) IsZero() bool {
	return m.ID == ""
}

func (m Mood) String() string {
	if m.IsZero() {
		return ""
	}
	return m.Emoji + " " + m.Label
}
