package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/endri-fradomos/local-api/internal/domain/models"
	"github.com/endri-fradomos/local-api/internal/infrastructure/config"
	"github.com/endri-fradomos/local-api/internal/infrastructure/database"
)

type fakeBroker struct {
	connected bool
	published []PublishedInfo
	failWith  error
}

func (f *fakeBroker) Connect() error    { return nil }
func (f *fakeBroker) Disconnect()       {}
func (f *fakeBroker) IsConnected() bool { return f.connected }
func (f *fakeBroker) Publish(topic, payload string) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.published = append(f.published, PublishedInfo{Topic: topic, Action: payload})
	return nil
}

type fakeWriter struct {
	replies []interface{}
}

func (f *fakeWriter) WriteJSON(v interface{}) error {
	f.replies = append(f.replies, v)
	return nil
}

func (f *fakeWriter) lastError(t *testing.T) string {
	t.Helper()
	if len(f.replies) == 0 {
		t.Fatal("expected a reply")
	}
	reply, ok := f.replies[len(f.replies)-1].(errorReply)
	if !ok {
		t.Fatalf("expected an error reply, got %T", f.replies[len(f.replies)-1])
	}
	return reply.Error
}

func relayConfig() *config.Config {
	return &config.Config{
		MQTTTopicNamespace: "fradomos",
		LightTopicTemplate: "fradomos/light/{circuitId}/{index}/set",
	}
}

func newRelayFixture() (*fakeBroker, *fakeWriter, InterfaceRelayService) {
	broker := &fakeBroker{connected: true}
	writer := &fakeWriter{}
	svc := NewRelayService(relayConfig(), broker, nil, nil, nil)
	return broker, writer, svc
}

func TestRelayRejectsInvalidJSON(t *testing.T) {
	_, writer, svc := newRelayFixture()

	svc.HandleInbound(writer, 1, []byte("{not json"))

	want := `Invalid JSON. Expected: {"device":"...","action":"..."}`
	if got := writer.lastError(t); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRelayRejectsMissingFields(t *testing.T) {
	_, writer, svc := newRelayFixture()

	svc.HandleInbound(writer, 1, []byte(`{"device":"light"}`))

	want := `Missing "device" or "action"`
	if got := writer.lastError(t); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRelayLightRequiresCircuitAndIndex(t *testing.T) {
	_, writer, svc := newRelayFixture()

	svc.HandleInbound(writer, 1, []byte(`{"device":"light","action":"on","circuitId":"A1"}`))

	want := `Missing "circuitId" or "index" for light`
	if got := writer.lastError(t); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRelayLightPublishesTemplatedTopic(t *testing.T) {
	broker, writer, svc := newRelayFixture()

	svc.HandleInbound(writer, 1, []byte(`{"device":"light","action":"on","circuitId":"A1","index":2}`))

	if len(broker.published) != 1 {
		t.Fatalf("expected one publish, got %d", len(broker.published))
	}
	if broker.published[0].Topic != "fradomos/light/A1/2/set" {
		t.Errorf("unexpected topic %s", broker.published[0].Topic)
	}
	if broker.published[0].Action != "on" {
		t.Errorf("unexpected action %s", broker.published[0].Action)
	}

	reply, ok := writer.replies[0].(lightReply)
	if !ok {
		t.Fatalf("expected a light reply, got %T", writer.replies[0])
	}
	if !reply.OK {
		t.Error("expected ok reply")
	}
	// roomId is echoed as null when the client omitted it
	if reply.RoomID != nil {
		t.Errorf("expected null roomId, got %v", reply.RoomID)
	}

	data, err := json.Marshal(reply)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"roomId":null`) {
		t.Errorf("expected roomId:null on the wire, got %s", data)
	}
}

func TestRelayGenericDevicePublishes(t *testing.T) {
	broker, writer, svc := newRelayFixture()

	svc.HandleInbound(writer, 1, []byte(`{"device":"thermostat","action":"22.5"}`))

	if len(broker.published) != 1 {
		t.Fatalf("expected one publish, got %d", len(broker.published))
	}
	if broker.published[0].Topic != "fradomos/thermostat/set" {
		t.Errorf("unexpected topic %s", broker.published[0].Topic)
	}

	reply, ok := writer.replies[0].(genericReply)
	if !ok {
		t.Fatalf("expected a generic reply, got %T", writer.replies[0])
	}
	if !reply.OK {
		t.Error("expected ok reply")
	}

	// generic replies never carry roomId
	data, err := json.Marshal(reply)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(data), "roomId") {
		t.Errorf("expected no roomId field, got %s", data)
	}
}

func TestRelayPublishFailureReportedInline(t *testing.T) {
	broker, writer, svc := newRelayFixture()
	broker.failWith = errors.New("not connected to broker")

	svc.HandleInbound(writer, 1, []byte(`{"device":"light","action":"on","circuitId":"A1","index":"0"}`))

	got := writer.lastError(t)
	if !strings.HasPrefix(got, "MQTT publish failed: ") {
		t.Errorf("unexpected error %q", got)
	}
}

func TestRelayRoomGateDeniesStranger(t *testing.T) {
	db := openTestDB(t, allModels()...)
	caps := database.ProbeCapabilities(db)
	authz := NewAuthorizationService(db, caps)
	rooms := NewRoomService(db, nil)

	owner := seedUser(t, db, "owner", "owner@fradomos.al")
	stranger := seedUser(t, db, "stranger", "stranger@fradomos.al")
	home := seedHome(t, db, "Main House", owner.ID)
	room := &models.Room{HomeID: home.ID, Name: "Living Room"}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}

	broker := &fakeBroker{connected: true}
	writer := &fakeWriter{}
	svc := NewRelayService(relayConfig(), broker, authz, rooms, nil)

	payload := []byte(`{"device":"light","action":"on","circuitId":"A1","index":0,"roomId":` +
		jsonUint(room.ID) + `}`)

	// Stranger is denied
	svc.HandleInbound(writer, stranger.ID, payload)
	if got := writer.lastError(t); got != "Not authorized for this room" {
		t.Errorf("expected authorization denial, got %q", got)
	}
	if len(broker.published) != 0 {
		t.Errorf("expected no publish for denied command, got %d", len(broker.published))
	}

	// Owner passes
	svc.HandleInbound(writer, owner.ID, payload)
	reply, ok := writer.replies[len(writer.replies)-1].(lightReply)
	if !ok {
		t.Fatalf("expected a light reply, got %T", writer.replies[len(writer.replies)-1])
	}
	if !reply.OK {
		t.Error("expected ok reply for owner")
	}
	if len(broker.published) != 1 {
		t.Errorf("expected one publish for owner, got %d", len(broker.published))
	}
}

func jsonUint(v uint) string {
	data, _ := json.Marshal(v)
	return string(data)
}
