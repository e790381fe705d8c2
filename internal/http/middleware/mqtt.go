package middleware

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/Noor-Digital-LLC/minaret/internal/model"
)

var (
	mqttClient mqtt.Client
	brokerURL  = "tcp://0.0.0.0:1883" // Default MQTT broker URL
)

var messagePubHandler mqtt.MessageHandler = func(client mqtt.Client, msg mqtt.Message) {
	log.Debug().Str("topic", msg.Topic()).Msg("received mqtt message")
}

var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Warn().Err(err).Msg("MQTT connection lost")
}

// Initialize MQTT client
func CreateMQTTClient(clientName string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientName)
	opts.SetDefaultPublishHandler(messagePubHandler)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	mqttClient = mqtt.NewClient(opts)
	if token := mqttClient.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}

	return mqttClient, nil
}

// SetBrokerURL allows configuration of the MQTT broker URL
func SetBrokerURL(url string) {
	brokerURL = url
}

// DisplayPublisher pushes arbitrated display states to the boards. It
// implements board.Sink; boards that prefer polling ignore the topic.
type DisplayPublisher struct {
	client mqtt.Client
	topic  string
}

func NewDisplayPublisher(client mqtt.Client, topic string) *DisplayPublisher {
	return &DisplayPublisher{client: client, topic: topic}
}

func (p *DisplayPublisher) Publish(state model.DisplayState) {
	payload, err := json.Marshal(state)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal display state")
		return
	}

	// retained, so a board powering on mid-day receives the current state
	token := p.client.Publish(p.topic, 1, true, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", p.topic).Msg("failed to publish display state")
		return
	}
	log.Debug().Str("overlay", string(state.Overlay)).Msg("display state published")
}
