// Package ws is the websocket transport: it authenticates handshakes,
// frames events, and forwards client intents to the session core. It
// holds no game state of its own.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/emberhollow/realmd/internal/errors"
	"github.com/emberhollow/realmd/internal/orchestrators/session"
	"github.com/emberhollow/realmd/internal/pkg/idgen"
	"github.com/emberhollow/realmd/internal/protocol"
	userrepo "github.com/emberhollow/realmd/internal/repositories/user"
)

//go:generate mockgen -destination=mock/mock_service.go -package=wsmock github.com/emberhollow/realmd/internal/handlers/ws SessionService

// SessionService is the slice of the session orchestrator the transport
// drives.
type SessionService interface {
	Connect(ctx context.Context, input *session.ConnectInput) (*session.ConnectOutput, error)
	Disconnect(ctx context.Context, input *session.DisconnectInput) (*session.DisconnectOutput, error)
	Move(ctx context.Context, input *session.MoveInput) (*session.MoveOutput, error)
	Pickup(ctx context.Context, input *session.PickupInput) (*session.PickupOutput, error)
	Drop(ctx context.Context, input *session.DropInput) (*session.DropOutput, error)
	MoveItem(ctx context.Context, input *session.MoveItemInput) (*session.MoveItemOutput, error)
}

// Config holds the dependencies for the websocket handler
type Config struct {
	Sessions    SessionService
	Verifier    TokenVerifier
	UserRepo    userrepo.Repository
	Hub         *Hub
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Sessions == nil {
		vb.RequiredField("Sessions")
	}
	if c.Verifier == nil {
		vb.RequiredField("Verifier")
	}
	if c.UserRepo == nil {
		vb.RequiredField("UserRepo")
	}
	if c.Hub == nil {
		vb.RequiredField("Hub")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Handler upgrades authenticated requests and runs one read loop per
// connection.
type Handler struct {
	sessions SessionService
	verifier TokenVerifier
	userRepo userrepo.Repository
	hub      *Hub
	idGen    idgen.Generator
	upgrader websocket.Upgrader
}

// New creates a new websocket handler
func New(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		sessions: cfg.Sessions,
		verifier: cfg.Verifier,
		userRepo: cfg.UserRepo,
		hub:      cfg.Hub,
		idGen:    cfg.IDGenerator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}, nil
}

// ServeHTTP authenticates the handshake, binds the connection to a
// character, and pumps client events until the connection drops.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	characterID := r.URL.Query().Get("characterId")

	userID, err := h.verifier.Verify(token)
	if err != nil {
		slog.Debug("handshake rejected", "error", err.Error())
		http.Error(w, "invalid token", errors.GetCode(err).HTTPStatus())
		return
	}
	if characterID == "" {
		http.Error(w, "characterId is required", http.StatusBadRequest)
		return
	}

	// A valid signature is not enough: the account may have been
	// deleted since the token was issued.
	if _, err := h.userRepo.Get(r.Context(), userrepo.GetInput{ID: userID}); err != nil {
		if errors.IsNotFound(err) {
			http.Error(w, "unknown user", http.StatusUnauthorized)
			return
		}
		slog.Error("user lookup failed", "user_id", userID, "error", err.Error())
		http.Error(w, "user lookup failed", http.StatusInternalServerError)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	// The session outlives the request context once the connection is
	// hijacked.
	ctx := context.Background()
	sessionID := h.idGen.Generate()

	// Registered before Connect so the join events reach this session.
	h.hub.Register(sessionID, conn)

	if _, err := h.sessions.Connect(ctx, &session.ConnectInput{
		SessionID:   sessionID,
		UserID:      userID,
		CharacterID: characterID,
	}); err != nil {
		h.hub.Unregister(sessionID)
		slog.Warn("connect rejected",
			"session_id", sessionID,
			"character_id", characterID,
			"error", err.Error())
		h.closeWithReason(conn, errors.GetMessage(err))
		return
	}

	h.readLoop(ctx, conn, sessionID)

	h.hub.Unregister(sessionID)
	if _, err := h.sessions.Disconnect(ctx, &session.DisconnectInput{SessionID: sessionID}); err != nil {
		slog.Error("disconnect failed", "session_id", sessionID, "error", err.Error())
	}
}

func (h *Handler) readLoop(ctx context.Context, conn *websocket.Conn, sessionID string) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Debug("connection dropped", "session_id", sessionID, "error", err.Error())
			}
			return
		}

		var envelope protocol.ClientEnvelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			slog.Debug("malformed envelope", "session_id", sessionID, "error", err.Error())
			continue
		}

		if err := h.dispatch(ctx, sessionID, envelope); err != nil {
			// Recoverable rejections were already answered with a
			// correction or notice; nothing more to send here.
			slog.Debug("event rejected",
				"session_id", sessionID,
				"event", envelope.Type,
				"error", err.Error())
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, sessionID string, envelope protocol.ClientEnvelope) error {
	switch envelope.Type {
	case protocol.EventPlayerMovement:
		var p protocol.MovementPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed movement payload")
		}
		_, err := h.sessions.Move(ctx, &session.MoveInput{
			SessionID: sessionID,
			Position:  p.Position(),
			Rotation:  p.Rotation,
			Animation: p.Animation,
		})
		return err

	case protocol.EventPickupItem:
		var p protocol.PickupItemPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed pickup payload")
		}
		_, err := h.sessions.Pickup(ctx, &session.PickupInput{SessionID: sessionID, ItemID: p.ItemID})
		return err

	case protocol.EventDropItem:
		var p protocol.DropItemPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed drop payload")
		}
		_, err := h.sessions.Drop(ctx, &session.DropInput{SessionID: sessionID, SlotIndex: p.SlotIndex})
		return err

	case protocol.EventMoveItem:
		var p protocol.MoveItemPayload
		if err := json.Unmarshal(envelope.Payload, &p); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed move payload")
		}
		_, err := h.sessions.MoveItem(ctx, &session.MoveItemInput{
			SessionID: sessionID,
			FromIndex: p.FromIndex,
			ToIndex:   p.ToIndex,
		})
		return err

	default:
		return errors.InvalidArgumentf("unknown event type %q", envelope.Type)
	}
}

func (h *Handler) closeWithReason(conn *websocket.Conn, reason string) {
	msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteMessage(websocket.CloseMessage, msg)
}
