package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/endri-fradomos/local-api/internal/infrastructure/config"
)

// ReplyWriter is the outbound half of a relay connection. Satisfied by
// *websocket.Conn.
type ReplyWriter interface {
	WriteJSON(v interface{}) error
}

// CommandMessage is the inbound relay payload. Raw fields keep the original
// JSON tokens so string and numeric forms are both accepted.
type CommandMessage struct {
	Device    string          `json:"device"`
	Action    json.RawMessage `json:"action"`
	CircuitID json.RawMessage `json:"circuitId"`
	Index     json.RawMessage `json:"index"`
	RoomID    json.RawMessage `json:"roomId"`
}

// PublishedInfo echoes what was forwarded to the broker
type PublishedInfo struct {
	Topic  string `json:"topic"`
	Action string `json:"action"`
}

type errorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// lightReply always carries roomId, null when the client omitted it
type lightReply struct {
	OK        bool          `json:"ok"`
	Published PublishedInfo `json:"published"`
	RoomID    interface{}   `json:"roomId"`
}

// genericReply omits roomId entirely
type genericReply struct {
	OK        bool          `json:"ok"`
	Published PublishedInfo `json:"published"`
}

// InterfaceRelayService forwards device commands from a persistent client
// connection onto the MQTT broker
type InterfaceRelayService interface {
	HandleInbound(w ReplyWriter, userID uint, raw []byte)
}

// RelayService validates inbound commands, derives the broker topic and
// publishes the action. Failures are reported inline on the same connection;
// the connection is never closed by the relay.
type RelayService struct {
	Config *config.Config
	Broker InterfaceMQTTClientService
	Authz  InterfaceAuthorizationService
	Rooms  InterfaceRoomService
	Redis  InterfaceRedisService
}

// NewRelayService creates a new relay service
func NewRelayService(cfg *config.Config, broker InterfaceMQTTClientService, authz InterfaceAuthorizationService, rooms InterfaceRoomService, redisService InterfaceRedisService) InterfaceRelayService {
	return &RelayService{
		Config: cfg,
		Broker: broker,
		Authz:  authz,
		Rooms:  rooms,
		Redis:  redisService,
	}
}

// HandleInbound processes one message from a relay connection
func (s *RelayService) HandleInbound(w ReplyWriter, userID uint, raw []byte) {
	var msg CommandMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.reply(w, errorReply{OK: false, Error: `Invalid JSON. Expected: {"device":"...","action":"..."}`})
		return
	}

	if msg.Device == "" || msg.Action == nil {
		s.reply(w, errorReply{OK: false, Error: `Missing "device" or "action"`})
		return
	}

	action := rawToString(msg.Action)

	if msg.Device == "light" {
		s.handleLight(w, userID, &msg, action)
		return
	}

	// Fallback for other devices
	topic := s.Config.MQTTTopicNamespace + "/" + msg.Device + "/set"
	if err := s.publish(topic, action); err != nil {
		s.reply(w, errorReply{OK: false, Error: fmt.Sprintf("MQTT publish failed: %v", err)})
		return
	}
	log.Printf("[relay] published %s => %s", topic, action)
	s.reply(w, genericReply{OK: true, Published: PublishedInfo{Topic: topic, Action: action}})
}

// handleLight publishes a light command using the configurable topic template
func (s *RelayService) handleLight(w ReplyWriter, userID uint, msg *CommandMessage, action string) {
	circuitID := rawToString(msg.CircuitID)
	index := rawToString(msg.Index)

	if msg.CircuitID == nil || circuitID == "" || circuitID == "null" ||
		msg.Index == nil || index == "" || index == "null" || !isScalar(msg.Index) {
		s.reply(w, errorReply{OK: false, Error: `Missing "circuitId" or "index" for light`})
		return
	}

	var roomID interface{}
	if msg.RoomID != nil {
		if err := json.Unmarshal(msg.RoomID, &roomID); err != nil {
			roomID = nil
		}
	}

	// When the client names a room, gate the command on the caller's current
	// visibility into that room.
	if id, ok := roomIDAsUint(roomID); ok {
		allowed, err := s.roomVisible(id, userID)
		if err != nil {
			s.reply(w, errorReply{OK: false, Error: "Room check failed: " + err.Error()})
			return
		}
		if !allowed {
			s.reply(w, errorReply{OK: false, Error: "Not authorized for this room"})
			return
		}
	}

	topic := strings.ReplaceAll(s.Config.LightTopicTemplate, "{circuitId}", circuitID)
	topic = strings.ReplaceAll(topic, "{index}", index)

	if err := s.publish(topic, action); err != nil {
		s.reply(w, errorReply{OK: false, Error: fmt.Sprintf("MQTT publish failed: %v", err)})
		return
	}

	if roomID != nil {
		log.Printf("[relay] published %s => %s (room: %v)", topic, action, roomID)
	} else {
		log.Printf("[relay] published %s => %s", topic, action)
	}
	s.reply(w, lightReply{OK: true, Published: PublishedInfo{Topic: topic, Action: action}, RoomID: roomID})
}

// roomVisible checks whether the user may currently see the room
func (s *RelayService) roomVisible(roomID, userID uint) (bool, error) {
	room, err := s.Rooms.GetRoomByID(roomID)
	if err != nil {
		return false, err
	}

	role, err := s.Authz.ResolveHomeAccess(room.HomeID, userID)
	if err != nil {
		return false, err
	}
	if role == RoleAdmin {
		return true, nil
	}
	if role == RoleNone {
		return false, nil
	}

	names, err := s.Authz.VisibleRooms(room.HomeID, userID, time.Now())
	if err != nil {
		return false, err
	}
	for _, name := range names {
		if name == room.Name {
			return true, nil
		}
	}
	return false, nil
}

// publish forwards to the broker and records the last command, best effort
func (s *RelayService) publish(topic, action string) error {
	if err := s.Broker.Publish(topic, action); err != nil {
		return err
	}
	if s.Redis != nil {
		if err := s.Redis.RecordLastCommand(topic, action); err != nil {
			log.Printf("[relay] failed to record last command for %s: %v", topic, err)
		}
	}
	return nil
}

// reply writes a reply on the connection; write errors only get logged since
// the peer may already be gone
func (s *RelayService) reply(w ReplyWriter, v interface{}) {
	if err := w.WriteJSON(v); err != nil {
		log.Printf("[relay] failed to write reply: %v", err)
	}
}

// rawToString coerces a JSON token to its string payload: quoted strings are
// unquoted, everything else keeps its literal text (numbers, booleans,
// objects), matching loose string coercion of the inbound payload
func rawToString(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return strings.TrimSpace(string(raw))
}

// isScalar reports whether a JSON token is a string or number
func isScalar(raw json.RawMessage) bool {
	var str string
	if json.Unmarshal(raw, &str) == nil {
		return true
	}
	var num float64
	return json.Unmarshal(raw, &num) == nil
}

// roomIDAsUint extracts a usable room identifier from the echoed roomId value
func roomIDAsUint(roomID interface{}) (uint, bool) {
	switch v := roomID.(type) {
	case float64:
		if v > 0 && v == float64(uint(v)) {
			return uint(v), true
		}
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil && n > 0 {
			return uint(n), true
		}
	}
	return 0, false
}
