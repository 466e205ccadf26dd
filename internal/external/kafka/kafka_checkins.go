package gamify

import (
	"context"
	"fmt"
	"os"

	"github.com/segmentio/kafka-go"
)

type KafkaCheckin struct {
	reader *kafka.Reader
}

func GetNewReader(topic string) (reader *KafkaCheckin, err error) {
	// config
	kafkaurl := os.Getenv("KAFKA_CHECKIN_URL")
	if kafkaurl == "" {
		return nil, fmt.Errorf("env KAFKA_CHECKIN_URL is not set")
	}
	kafkaport := os.Getenv("KAFKA_CHECKIN_PORT")
	if kafkaport == "" {
		return nil, fmt.Errorf("env KAFKA_CHECKIN_PORT is not set")
	}

	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{kafkaurl + ":" + kafkaport},
		Topic:   topic,
		GroupID: "checkins_gamify",
	}
	return &KafkaCheckin{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaCheckin) GetNewMessage(ctx context.Context) (checkinJson string, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return "", err
	}
	return string(msg.Value), nil
}

func (k *KafkaCheckin) CloseReader() {
	k.reader.Close()
}
