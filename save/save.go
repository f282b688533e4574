// Package save stores player progress between sessions in the platform's
// per-user data directory.
package save

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/automoto/overworld/config"
	"github.com/automoto/overworld/sim"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

const progressKey = "progress"

// Progress is what gets written to disk.
type Progress struct {
	Level    string   `json:"level"`
	Health   int      `json:"health"`
	Magic    int      `json:"magic"`
	Equipped string   `json:"equipped"`
	Items    []string `json:"items"`
	Bombs    int      `json:"bombs"`
	Arrows   int      `json:"arrows"`
	Defeated int      `json:"defeated"`
}

type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

type Store struct {
	items  itemStore
	logger *log.Logger
}

// Open prepares the data directory for appName.
func Open(appName string, logger *log.Logger) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open save data: %w", err)
	}
	return newStore(m, logger), nil
}

func newStore(items itemStore, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{items: items, logger: logger}
}

// Load returns the saved progress, or nil when nothing was saved yet. A
// store that cannot be read is treated as empty.
func (s *Store) Load() (*Progress, error) {
	data, err := s.items.LoadItem(progressKey)
	if err != nil {
		s.logger.Warn("could not load progress", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse saved progress: %w", err)
	}
	return &p, nil
}

func (s *Store) Save(p *Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}
	if err := s.items.SaveItem(progressKey, data); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	s.logger.Debug("progress saved", "level", p.Level, "defeated", p.Defeated)
	return nil
}

// Has reports whether any progress is stored.
func (s *Store) Has() bool {
	data, err := s.items.LoadItem(progressKey)
	return err == nil && len(data) > 0
}

// Clear forgets the saved progress.
func (s *Store) Clear() error {
	if err := s.items.SaveItem(progressKey, nil); err != nil {
		return fmt.Errorf("clear progress: %w", err)
	}
	return nil
}

// Capture records the player's inventory on level.
func Capture(s *sim.Simulation, level string, defeated int) *Progress {
	inv := s.Inventory()
	items := make([]string, len(inv.Owned))
	for i, item := range inv.Owned {
		items[i] = item.String()
	}
	return &Progress{
		Level:    level,
		Health:   inv.Health,
		Magic:    inv.Magic,
		Equipped: inv.Equipped.String(),
		Items:    items,
		Bombs:    inv.Bombs,
		Arrows:   inv.Arrows,
		Defeated: defeated,
	}
}

// Restore hands saved items and vitals back to the player. Unknown item
// names are dropped.
func Restore(s *sim.Simulation, p *Progress) {
	if p == nil {
		return
	}
	owned := make([]config.Item, 0, len(p.Items))
	for _, name := range p.Items {
		if item := config.ParseItem(name); item != config.ItemNone {
			owned = append(owned, item)
		}
	}
	s.SetInventory(sim.Inventory{
		Health:   p.Health,
		Magic:    p.Magic,
		Equipped: config.ParseItem(p.Equipped),
		Owned:    owned,
		Bombs:    p.Bombs,
		Arrows:   p.Arrows,
	})
}
