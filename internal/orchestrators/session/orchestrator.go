// Package session implements the session orchestrator: the single
// authoritative owner of the in-memory player table. It binds transport
// connections to loaded characters, routes client events to the
// movement engine, world registry, and inventory, and fans resulting
// state changes out to other sessions.
package session

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/emberhollow/realmd/internal/engine"
	"github.com/emberhollow/realmd/internal/entities"
	"github.com/emberhollow/realmd/internal/errors"
	"github.com/emberhollow/realmd/internal/protocol"
	characterrepo "github.com/emberhollow/realmd/internal/repositories/character"
	inventoryrepo "github.com/emberhollow/realmd/internal/repositories/inventory"
)

// User-visible notices for recoverable inventory errors.
const (
	msgTooFar        = "Too far away to pick up."
	msgInventoryFull = "Inventory is full."
	msgSaveFailed    = "Warning: could not save inventory."
)

// playerEntry wraps a player with persistence bookkeeping. invSeq is
// bumped on every inventory mutation; persistedSeq records the newest
// snapshot durably written. A disconnect flush only writes when the two
// differ, so an in-flight save and the flush never double-write the
// same snapshot.
type playerEntry struct {
	player *entities.Player

	invSeq       uint64
	persistedSeq atomic.Uint64
	persistMu    sync.Mutex
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	InventoryRepo inventoryrepo.Repository
	Engine        engine.Engine
	World         WorldRegistry
	Notifier      Notifier
	PickupRadius  float64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.World == nil {
		vb.RequiredField("World")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.PickupRadius <= 0 {
		vb.InvalidField("PickupRadius", "must be positive")
	}

	return vb.Build()
}

// Orchestrator owns the player table. All player and inventory
// mutation happens under its mutex; repositories are only reached from
// goroutines that work on snapshots.
type Orchestrator struct {
	characterRepo characterrepo.Repository
	inventoryRepo inventoryrepo.Repository
	engine        engine.Engine
	world         WorldRegistry
	notifier      Notifier
	pickupRadius  float64

	mu          sync.Mutex
	players     map[string]*playerEntry
	byCharacter map[string]string
}

// New creates a new session orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		inventoryRepo: cfg.InventoryRepo,
		engine:        cfg.Engine,
		world:         cfg.World,
		notifier:      cfg.Notifier,
		pickupRadius:  cfg.PickupRadius,
		players:       make(map[string]*playerEntry),
		byCharacter:   make(map[string]string),
	}, nil
}

// Connect binds a transport connection to a loaded character. The
// ownership check is fatal on failure: the handler closes the
// connection without creating any state. At most one live session per
// character id: a second connection for an active character is
// rejected and the first session stays.
func (o *Orchestrator) Connect(ctx context.Context, input *ConnectInput) (*ConnectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("sessionID", input.SessionID, vb)
	errors.ValidateRequired("userID", input.UserID, vb)
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	owned, err := o.characterRepo.BelongsToUser(ctx, characterrepo.BelongsToUserInput{
		CharacterID: input.CharacterID,
		UserID:      input.UserID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify character ownership")
	}
	if !owned.OK {
		return nil, errors.PermissionDeniedf("character %s does not belong to user %s",
			input.CharacterID, input.UserID)
	}

	// Character and inventory load in parallel; both must succeed
	// before any session state exists.
	var (
		wg        sync.WaitGroup
		character *entities.Character
		slots     entities.Inventory
		charErr   error
		invErr    error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
		if err != nil {
			charErr = err
			return
		}
		character = out.Character
	}()
	go func() {
		defer wg.Done()
		out, err := o.inventoryRepo.Get(ctx, inventoryrepo.GetInput{CharacterID: input.CharacterID})
		if err != nil {
			invErr = err
			return
		}
		slots = out.Slots
	}()
	wg.Wait()

	if charErr != nil {
		return nil, errors.Wrap(charErr, "failed to load character")
	}
	if invErr != nil {
		return nil, errors.Wrap(invErr, "failed to load inventory")
	}

	player := entities.NewPlayer(input.SessionID, character, slots)

	o.mu.Lock()
	if existing, ok := o.byCharacter[input.CharacterID]; ok {
		o.mu.Unlock()
		return nil, errors.AlreadyExistsf("character %s already connected as session %s",
			input.CharacterID, existing).
			WithMeta("character_id", input.CharacterID)
	}
	o.players[input.SessionID] = &playerEntry{player: player}
	o.byCharacter[input.CharacterID] = input.SessionID

	currentState := make([]entities.PublicState, 0, len(o.players))
	for _, entry := range o.players {
		currentState = append(currentState, entry.player.PublicState())
	}
	o.mu.Unlock()

	slog.InfoContext(ctx, "player connected",
		"session_id", input.SessionID,
		"character_id", input.CharacterID,
		"user_id", input.UserID)

	o.notifier.Unicast(input.SessionID, protocol.EventCurrentState, currentState)
	o.notifier.Unicast(input.SessionID, protocol.EventWorldItems, o.world.Items())
	o.notifier.BroadcastExcept(input.SessionID, protocol.EventNewPlayer, player.PublicState())

	return &ConnectOutput{Player: player.PublicState()}, nil
}

// Disconnect removes the session and flushes its durable projection.
// Persistence is best-effort: failures are logged, never retried, and
// not surfaced to the already-gone client.
func (o *Orchestrator) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	entry, ok := o.players[input.SessionID]
	if !ok {
		o.mu.Unlock()
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	delete(o.players, input.SessionID)
	delete(o.byCharacter, entry.player.CharacterID)

	characterID := entry.player.CharacterID
	state := entry.player.CharacterState()
	snapshot := entry.player.Inventory.Clone()
	seq := entry.invSeq
	o.mu.Unlock()

	slog.InfoContext(ctx, "player disconnected",
		"session_id", input.SessionID,
		"character_id", characterID)

	// The snapshot was read above, at disconnect time; the write
	// itself must not block other sessions' events.
	flushCtx := context.WithoutCancel(ctx)
	go func() {
		if _, err := o.characterRepo.UpdateState(flushCtx, characterrepo.UpdateStateInput{
			CharacterID: characterID,
			State:       state,
		}); err != nil {
			slog.ErrorContext(flushCtx, "failed to save character state",
				"character_id", characterID,
				"error", err.Error())
		}
		o.saveInventorySnapshot(flushCtx, entry, characterID, snapshot, seq, "")
	}()

	o.notifier.Broadcast(protocol.EventPlayerDisconnected, input.SessionID)

	return &DisconnectOutput{}, nil
}

// Move validates a claimed movement. Accepted claims are committed and
// echoed to other sessions; rejected ones leave the player untouched
// and send a correction to the originator only.
func (o *Orchestrator) Move(ctx context.Context, input *MoveInput) (*MoveOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	entry, ok := o.players[input.SessionID]
	if !ok {
		o.mu.Unlock()
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	player := entry.player

	verdict, err := o.engine.ValidateMovement(ctx, &engine.ValidateMovementInput{
		LastValidated: player.LastValidated,
		Claimed:       input.Position,
	})
	if err != nil {
		o.mu.Unlock()
		return nil, errors.Wrap(err, "failed to validate movement")
	}

	if !verdict.Accepted {
		correction := protocol.CorrectionPayload{
			X: verdict.Correction.X,
			Y: verdict.Correction.Y,
			Z: verdict.Correction.Z,
		}
		o.mu.Unlock()

		slog.DebugContext(ctx, "movement rejected",
			"session_id", input.SessionID,
			"distance_sq", verdict.DistanceSq)
		o.notifier.Unicast(input.SessionID, protocol.EventCorrection, correction)
		return &MoveOutput{Accepted: false}, nil
	}

	player.Position = input.Position
	player.Rotation = input.Rotation
	player.Animation = input.Animation
	player.LastValidated = input.Position
	state := player.PublicState()
	o.mu.Unlock()

	o.notifier.BroadcastExcept(input.SessionID, protocol.EventPlayerMoved, state)
	return &MoveOutput{Accepted: true}, nil
}

// Pickup moves one unit of a world item into the session's inventory.
// A vanished item is a lost race, not an error: the pickup is silently
// dropped. TooFar and a full inventory are user-visible rejections that
// leave the world item untouched.
func (o *Orchestrator) Pickup(ctx context.Context, input *PickupInput) (*PickupOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	entry, ok := o.players[input.SessionID]
	if !ok {
		o.mu.Unlock()
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	player := entry.player

	item, err := o.world.Get(input.ItemID)
	if err != nil {
		o.mu.Unlock()
		if errors.IsNotFound(err) {
			slog.DebugContext(ctx, "pickup raced, item already gone",
				"session_id", input.SessionID,
				"item_id", input.ItemID)
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to look up world item")
	}

	if player.Position.PlanarDistance(item.Position) > o.pickupRadius {
		o.mu.Unlock()
		o.notifier.Unicast(input.SessionID, protocol.EventInfoMessage,
			protocol.InfoMessagePayload{Message: msgTooFar})
		return nil, errors.InvalidArgumentf("item %d out of pickup range", input.ItemID)
	}

	slotIndex, err := player.Inventory.AddOne(item.Type)
	if err != nil {
		o.mu.Unlock()
		if errors.IsResourceExhausted(err) {
			o.notifier.Unicast(input.SessionID, protocol.EventInfoMessage,
				protocol.InfoMessagePayload{Message: msgInventoryFull})
		}
		return nil, err
	}

	removed, err := o.world.Remove(input.ItemID)
	if err != nil {
		// Undo the slot write; the item vanished between Get and Remove.
		if _, undoErr := player.Inventory.RemoveOne(slotIndex); undoErr != nil {
			slog.ErrorContext(ctx, "failed to roll back pickup",
				"session_id", input.SessionID,
				"error", undoErr.Error())
		}
		o.mu.Unlock()
		slog.WarnContext(ctx, "world item vanished during pickup",
			"item_id", input.ItemID,
			"error", err.Error())
		return nil, nil
	}

	if removed.Natural {
		o.world.ScheduleRespawn(removed.Item.Type)
	}

	entry.invSeq++
	seq := entry.invSeq
	characterID := player.CharacterID
	snapshot := player.Inventory.Clone()
	o.mu.Unlock()

	o.notifier.Broadcast(protocol.EventItemPickedUp, input.ItemID)
	o.notifier.Unicast(input.SessionID, protocol.EventInventoryUpdate, snapshot)
	o.persistAsync(ctx, entry, characterID, snapshot, seq, input.SessionID)

	return &PickupOutput{SlotIndex: slotIndex}, nil
}

// Drop removes one unit from a slot and materializes it in the world at
// the player's feet.
func (o *Orchestrator) Drop(ctx context.Context, input *DropInput) (*DropOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	entry, ok := o.players[input.SessionID]
	if !ok {
		o.mu.Unlock()
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	player := entry.player

	itemType, err := player.Inventory.RemoveOne(input.SlotIndex)
	if err != nil {
		o.mu.Unlock()
		return nil, err
	}

	item := o.world.SpawnAt(itemType, player.Position)

	entry.invSeq++
	seq := entry.invSeq
	characterID := player.CharacterID
	snapshot := player.Inventory.Clone()
	o.mu.Unlock()

	o.notifier.Broadcast(protocol.EventItemSpawned, item)
	o.notifier.Unicast(input.SessionID, protocol.EventInventoryUpdate, snapshot)
	o.persistAsync(ctx, entry, characterID, snapshot, seq, input.SessionID)

	return &DropOutput{Item: item}, nil
}

// MoveItem relocates, merges, or swaps stacks between two slots. The
// result is private: only the owner is notified.
func (o *Orchestrator) MoveItem(ctx context.Context, input *MoveItemInput) (*MoveItemOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	entry, ok := o.players[input.SessionID]
	if !ok {
		o.mu.Unlock()
		return nil, errors.NotFoundf("session %s not found", input.SessionID)
	}
	player := entry.player

	if err := player.Inventory.MoveOrStack(input.FromIndex, input.ToIndex); err != nil {
		o.mu.Unlock()
		return nil, err
	}

	entry.invSeq++
	seq := entry.invSeq
	characterID := player.CharacterID
	snapshot := player.Inventory.Clone()
	o.mu.Unlock()

	o.notifier.Unicast(input.SessionID, protocol.EventInventoryUpdate, snapshot)
	o.persistAsync(ctx, entry, characterID, snapshot, seq, input.SessionID)

	return &MoveItemOutput{}, nil
}

// ConnectedCount returns the number of live sessions.
func (o *Orchestrator) ConnectedCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.players)
}

func (o *Orchestrator) persistAsync(
	ctx context.Context,
	entry *playerEntry,
	characterID string,
	snapshot entities.Inventory,
	seq uint64,
	sessionID string,
) {
	persistCtx := context.WithoutCancel(ctx)
	go o.saveInventorySnapshot(persistCtx, entry, characterID, snapshot, seq, sessionID)
}

// saveInventorySnapshot writes one inventory snapshot. Saves for a
// character are serialized, and a snapshot older than the newest
// durable one is skipped, which keeps a disconnect flush from
// re-writing what an in-flight save already covered.
func (o *Orchestrator) saveInventorySnapshot(
	ctx context.Context,
	entry *playerEntry,
	characterID string,
	snapshot entities.Inventory,
	seq uint64,
	sessionID string,
) {
	entry.persistMu.Lock()
	defer entry.persistMu.Unlock()

	if seq <= entry.persistedSeq.Load() {
		return
	}

	if _, err := o.inventoryRepo.Save(ctx, inventoryrepo.SaveInput{
		CharacterID: characterID,
		Slots:       snapshot,
	}); err != nil {
		// In-memory state stays authoritative until the next
		// successful write or process restart.
		slog.ErrorContext(ctx, "failed to save inventory",
			"character_id", characterID,
			"error", err.Error())
		if sessionID != "" {
			o.notifier.Unicast(sessionID, protocol.EventInfoMessage,
				protocol.InfoMessagePayload{Message: msgSaveFailed})
		}
		return
	}

	entry.persistedSeq.Store(seq)
}
