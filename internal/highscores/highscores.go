package highscores

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/samber/lo"
	"github.com/shvbsle/crashyplane/internal/log"
)

const (
	MaxEntries = 10
	FileName   = "highscores.json"
)

type Entry struct {
	Score  int       `json:"score"`
	Date   time.Time `json:"date"`
	Player string    `json:"player"`
	ID     int64     `json:"id"`
}

// Table is the persisted leaderboard, best score first. A Table without a
// path lives in memory only.
type Table struct {
	mu      sync.Mutex
	path    string
	Entries []Entry `json:"entries"`
}

// Path returns the XDG data location of the leaderboard.
func Path() (string, error) {
	path, err := xdg.DataFile(filepath.Join("crashyplane", FileName))
	if err != nil {
		return "", fmt.Errorf("could not get high scores path: %w", err)
	}
	return path, nil
}

func New(path string) *Table {
	return &Table{path: path, Entries: []Entry{}}
}

// Load reads the leaderboard at path. A missing file is an empty table; a
// corrupted one is reset with a warning.
func Load(path string) (*Table, error) {
	t := New(path)
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return t, nil
		}
		return nil, fmt.Errorf("could not read high scores: %w", err)
	}

	if err := json.Unmarshal(data, t); err != nil {
		log.G().Warn("corrupted high scores file, resetting", "path", path, "error", err)
		t.Entries = []Entry{}
		return t, nil
	}
	t.sort()
	if len(t.Entries) > MaxEntries {
		t.Entries = t.Entries[:MaxEntries]
	}
	return t, nil
}

func (t *Table) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.save()
}

func (t *Table) save() error {
	if t.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(t.path), 0755); err != nil {
		return fmt.Errorf("could not create high scores directory: %w", err)
	}
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(t.path, data, 0644)
}

func (t *Table) sort() {
	sort.SliceStable(t.Entries, func(i, j int) bool {
		return t.Entries[i].Score > t.Entries[j].Score
	})
}

// Add inserts e and reports whether it made the table.
func (t *Table) Add(e Entry) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.add(e)
	return ok
}

func (t *Table) add(e Entry) (int, bool) {
	if e.ID == 0 {
		e.ID = time.Now().UnixNano()
	}
	for t.hasID(e.ID) {
		e.ID++
	}

	t.Entries = append(t.Entries, e)
	t.sort()

	_, idx, _ := lo.FindIndexOf(t.Entries, func(entry Entry) bool {
		return entry.ID == e.ID
	})
	rank := idx + 1
	if len(t.Entries) > MaxEntries {
		t.Entries = t.Entries[:MaxEntries]
	}
	if rank > MaxEntries {
		return 0, false
	}
	return rank, true
}

func (t *Table) hasID(id int64) bool {
	return lo.ContainsBy(t.Entries, func(entry Entry) bool {
		return entry.ID == id
	})
}

// IsHighScore reports whether score would make the table.
func (t *Table) IsHighScore(score int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.Entries) < MaxEntries {
		return true
	}
	return score > t.Entries[MaxEntries-1].Score
}

// Top returns up to n entries, best first.
func (t *Table) Top(n int) []Entry {
	t.mu.Lock()
	defer t.mu.Unlock()

	if n > len(t.Entries) {
		n = len(t.Entries)
	}
	return append([]Entry(nil), t.Entries[:n]...)
}

// Best returns the highest recorded score, or 0 for an empty table.
func (t *Table) Best() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.Entries) == 0 {
		return 0
	}
	return t.Entries[0].Score
}

// Record adds a finished game and persists the table. It returns the rank the
// score reached, or 0 when it did not make the table. Zero scores are not kept.
func (t *Table) Record(score int) int {
	if score <= 0 {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	rank, ok := t.add(Entry{Score: score, Date: time.Now(), Player: playerID()})
	if !ok {
		return 0
	}
	if err := t.save(); err != nil {
		log.G().Warn("could not save high scores", "path", t.path, "error", err)
	}
	return rank
}

func playerID() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "player"
	}
	return hostname
}
