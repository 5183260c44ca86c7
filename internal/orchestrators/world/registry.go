// Package world implements the world item registry: the owner of all
// pickable objects in the shared world. It enforces a per-type
// population cap for natural resources and schedules respawns after
// removals so the population heals without unbounded growth.
package world

import (
	"context"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/emberhollow/realmd/internal/entities"
	"github.com/emberhollow/realmd/internal/errors"
	"github.com/emberhollow/realmd/internal/protocol"
	"github.com/emberhollow/realmd/internal/tuning"
)

//go:generate mockgen -destination=mock/mock_scheduler.go -package=worldmock github.com/emberhollow/realmd/internal/orchestrators/world Scheduler,Notifier

// Scheduler abstracts delayed execution so respawn timers can be fired
// deterministically in tests instead of waiting wall-clock time.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// Notifier fans a world change out to every connected session.
type Notifier interface {
	Broadcast(event string, payload any)
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// NewTimerScheduler returns a Scheduler backed by time.AfterFunc.
func NewTimerScheduler() Scheduler {
	return timerScheduler{}
}

// item wraps a world item with registry-private bookkeeping.
type item struct {
	entities.WorldItem
	// natural marks items that count against the per-type cap.
	// Player-dropped items are outside the self-healing population:
	// they neither consume cap nor trigger respawns when picked up.
	natural bool
}

// RemovedItem is the result of a successful removal.
type RemovedItem struct {
	Item entities.WorldItem
	// Natural tells the caller whether a respawn should be scheduled.
	Natural bool
}

// Registry owns the set of live world items. All access goes through
// its mutex: respawn timers fire outside the request path and must not
// race a concurrent pickup of the same id.
type Registry struct {
	mu           sync.Mutex
	items        map[int64]*item
	naturalCount map[entities.ItemType]int
	nextID       int64

	cfg       tuning.World
	scheduler Scheduler
	notifier  Notifier
	rng       *rand.Rand
}

// Config holds the dependencies for the world registry
type Config struct {
	Tuning    tuning.World
	Scheduler Scheduler
	Notifier  Notifier
	// Seed fixes the random position sequence; zero means time-seeded.
	Seed int64
}

// Validate ensures all required dependencies are provided
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Scheduler == nil {
		vb.RequiredField("Scheduler")
	}
	if cfg.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if len(cfg.Tuning.ItemTypes) == 0 {
		vb.RequiredField("Tuning.ItemTypes")
	}
	if cfg.Tuning.MaxItemsPerType <= 0 {
		vb.InvalidField("Tuning.MaxItemsPerType", "must be positive")
	}

	return vb.Build()
}

// New creates a new world registry
func New(cfg *Config) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Registry{
		items:        make(map[int64]*item),
		naturalCount: make(map[entities.ItemType]int),
		cfg:          cfg.Tuning,
		scheduler:    cfg.Scheduler,
		notifier:     cfg.Notifier,
		rng:          rand.New(rand.NewSource(seed)), // #nosec G404 // gameplay positions, not crypto
	}, nil
}

// Populate fills the world to the per-type cap at process start.
func (r *Registry) Populate(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, itemType := range r.cfg.ItemTypes {
		for i := 0; i < r.cfg.MaxItemsPerType; i++ {
			r.spawnNaturalLocked(itemType)
		}
	}

	slog.InfoContext(ctx, "initial world populated",
		"item_count", len(r.items),
		"types", len(r.cfg.ItemTypes))
}

// Items returns a snapshot of the live world items, ordered by id.
func (r *Registry) Items() []entities.WorldItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.WorldItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it.WorldItem)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a live item by id.
func (r *Registry) Get(id int64) (entities.WorldItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return entities.WorldItem{}, errors.NotFoundf("world item %d not found", id)
	}
	return it.WorldItem, nil
}

// Remove deletes a live item. The caller owns the follow-up: pickups of
// natural items must schedule a respawn to keep the population healing.
func (r *Registry) Remove(id int64) (*RemovedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	it, ok := r.items[id]
	if !ok {
		return nil, errors.NotFoundf("world item %d not found", id)
	}

	delete(r.items, id)
	if it.natural {
		r.naturalCount[it.Type]--
	}

	return &RemovedItem{Item: it.WorldItem, Natural: it.natural}, nil
}

// ScheduleRespawn arranges for one natural item of the type to appear
// after the configured delay. Respawns belong to item types, not
// sessions: a disconnect never cancels them.
func (r *Registry) ScheduleRespawn(itemType entities.ItemType) {
	r.scheduler.AfterFunc(r.cfg.RespawnDelay(), func() {
		r.respawn(itemType)
	})
}

func (r *Registry) respawn(itemType entities.ItemType) {
	r.mu.Lock()
	spawned := r.spawnNaturalLocked(itemType)
	r.mu.Unlock()

	if spawned == nil {
		return
	}

	slog.Info("respawned world item", "type", itemType, "item_id", spawned.ID)
	r.notifier.Broadcast(protocol.EventItemSpawned, *spawned)
}

// SpawnAt materializes a player-dropped item at the given position.
// The caller announces it; the registry only records it.
func (r *Registry) SpawnAt(itemType entities.ItemType, pos entities.Position) entities.WorldItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	it := &item{
		WorldItem: entities.WorldItem{ID: r.nextID, Type: itemType, Position: pos},
		natural:   false,
	}
	r.items[it.ID] = it
	return it.WorldItem
}

// LiveCount returns the number of live items of the type, natural and
// dropped alike.
func (r *Registry) LiveCount(itemType entities.ItemType) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, it := range r.items {
		if it.Type == itemType {
			n++
		}
	}
	return n
}

// NaturalCount returns how many cap-counted items of the type are live.
func (r *Registry) NaturalCount(itemType entities.ItemType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.naturalCount[itemType]
}

func (r *Registry) spawnNaturalLocked(itemType entities.ItemType) *entities.WorldItem {
	if r.naturalCount[itemType] >= r.cfg.MaxItemsPerType {
		// A respawn is only scheduled after a removal, so reaching the
		// cap here means a duplicate schedule; drop it.
		slog.Warn("respawn skipped, type at cap", "type", itemType)
		return nil
	}

	r.nextID++
	it := &item{
		WorldItem: entities.WorldItem{
			ID:       r.nextID,
			Type:     itemType,
			Position: r.randomPositionLocked(),
		},
		natural: true,
	}
	r.items[it.ID] = it
	r.naturalCount[itemType]++
	return &it.WorldItem
}

func (r *Registry) randomPositionLocked() entities.Position {
	b := r.cfg.Bounds
	return entities.Position{
		X: b.MinX + r.rng.Float64()*(b.MaxX-b.MinX),
		Y: r.cfg.ItemY,
		Z: b.MinZ + r.rng.Float64()*(b.MaxZ-b.MinZ),
	}
}
