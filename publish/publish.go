// Package publish sends clock readings to an MQTT broker.
package publish

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/ajanata/drivers/ds3231"
)

const DefaultTopic = "rtc/ds3231/time"

var ErrTimeout = errors.New("publish: timed out waiting for broker")

// Client is the subset of mqtt.Client used here.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

type Publisher struct {
	client  Client
	topic   string
	timeout time.Duration
}

// New returns a Publisher writing to topic, or DefaultTopic when topic is empty.
func New(client Client, topic string) *Publisher {
	if topic == "" {
		topic = DefaultTopic
	}
	return &Publisher{
		client:  client,
		topic:   topic,
		timeout: 5 * time.Second,
	}
}

// Dial connects a paho client to broker, e.g. "tcp://localhost:1883".
func Dial(broker, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	token.Wait()
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("publish: connecting to %s: %w", broker, err)
	}
	return client, nil
}

// Publish sends the reading as HH:MM:SS DD/MM/YY with QoS 0, not retained.
func (p *Publisher) Publish(f ds3231.Fields) error {
	token := p.client.Publish(p.topic, 0, false, f.String())
	if !token.WaitTimeout(p.timeout) {
		return ErrTimeout
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish: %s: %w", p.topic, err)
	}
	return nil
}
