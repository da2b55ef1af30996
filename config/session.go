package config

import "fmt"

// Difficulty is the skill level chosen when starting a new game
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	default:
		return "Hard"
	}
}

const (
	NumEpisodes         = 4
	NumLevelsPerEpisode = 8
)

// SessionID identifies a running game: episode, level and difficulty.
// Episode and level are zero based.
type SessionID struct {
	Episode    int        `json:"episode"`
	Level      int        `json:"level"`
	Difficulty Difficulty `json:"difficulty"`
}

// LongString is used as menu title, e.g. "Episode 1, Level 3, Medium".
func (s SessionID) LongString() string {
	return fmt.Sprintf("Episode %d, Level %d, %s", s.Episode+1, s.Level+1, s.Difficulty)
}

// ShortString is used to prefill save names, e.g. "Ep 1, Lv 3, Medium".
func (s SessionID) ShortString() string {
	return fmt.Sprintf("Ep %d, Lv %d, %s", s.Episode+1, s.Level+1, s.Difficulty)
}

// IsRegisteredVersionOnly reports whether the session needs episodes 2-4.
func (s SessionID) IsRegisteredVersionOnly() bool {
	return s.Episode > 0
}

// LevelFile is the TMX file of the session's level in the data directory.
func (s SessionID) LevelFile() string {
	return fmt.Sprintf("levels/E%dL%d.tmx", s.Episode+1, s.Level+1)
}

// NextLevel returns the session for the following level of the episode.
// ok is false after the last level.
func (s SessionID) NextLevel() (next SessionID, ok bool) {
	if s.Level+1 >= NumLevelsPerEpisode {
		return s, false
	}
	s.Level++
	return s, true
}
