package services

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// InterfaceMQTTClientService is the process-wide broker handle. It is
// initialized once at startup and torn down at shutdown; connection-state
// transitions are observability events only and never queue publishes.
type InterfaceMQTTClientService interface {
	Connect() error
	Disconnect()
	IsConnected() bool
	Publish(topic, payload string) error
}

// MQTTClientService wraps the paho client
type MQTTClientService struct {
	Config         *config.Config
	Client         mqtt.Client
	connected      bool
	connectedMutex sync.RWMutex
}

// NewMQTTClientService creates and configures the MQTT client
func NewMQTTClientService(cfg *config.Config) InterfaceMQTTClientService {
	service := &MQTTClientService{
		Config: cfg,
	}
	service.setupClient()
	return service
}

// setupClient configures the paho client options
func (s *MQTTClientService) setupClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// Unique client ID so multiple instances of the service do not kick each
	// other off the broker
	opts.SetClientID(fmt.Sprintf("%s-%s-%d", s.Config.MQTTClientID, uuid.New().String()[:8], time.Now().UnixNano()))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)
	opts.SetCleanSession(true)
	opts.SetOrderMatters(true)

	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}

	if strings.HasPrefix(s.Config.MQTTBrokerURL, "ssl://") || strings.HasPrefix(s.Config.MQTTBrokerURL, "tls://") || s.Config.MQTTSSLEnabled {
		log.Println("[MQTT] using TLS connection")
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		if s.Config.MQTTCACertPath != "" {
			log.Printf("[MQTT] CA certificate: %s", s.Config.MQTTCACertPath)
		}
		opts.SetTLSConfig(tlsConfig)
	}

	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Printf("[MQTT] connection lost: %v", err)
		s.connectedMutex.Lock()
		s.connected = false
		s.connectedMutex.Unlock()
	})

	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Printf("[MQTT] connected to %s", s.Config.MQTTBrokerURL)
		s.connectedMutex.Lock()
		s.connected = true
		s.connectedMutex.Unlock()
	})

	opts.SetReconnectingHandler(func(client mqtt.Client, opts *mqtt.ClientOptions) {
		log.Println("[MQTT] reconnecting...")
	})

	s.Client = mqtt.NewClient(opts)
}

// Connect connects to the MQTT broker
func (s *MQTTClientService) Connect() error {
	log.Printf("[MQTT] connecting to %s...", s.Config.MQTTBrokerURL)

	token := s.Client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return errors.New("MQTT connect timed out")
	}
	if err := token.Error(); err != nil {
		return err
	}
	return nil
}

// Disconnect closes the broker connection
func (s *MQTTClientService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
		log.Println("[MQTT] disconnected")
	}
}

// IsConnected reports whether the broker connection is up
func (s *MQTTClientService) IsConnected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.connected && s.Client.IsConnected()
}

// Publish forwards a payload to a topic. When the broker is disconnected the
// attempt fails immediately; nothing is buffered or retried.
func (s *MQTTClientService) Publish(topic, payload string) error {
	if !s.IsConnected() {
		return errors.New("MQTT broker not connected")
	}

	token := s.Client.Publish(topic, byte(s.Config.MQTTQoS), s.Config.MQTTRetained, payload)
	if !token.WaitTimeout(5 * time.Second) {
		return errors.New("MQTT publish timed out")
	}
	if err := token.Error(); err != nil {
		return err
	}
	return nil
}
