package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	msgs []kafkaGo.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	w.msgs = append(w.msgs, msgs...)

	return w.err
}

func (w *recordingWriter) Close() error { return nil }

type completed struct {
	SessionID string `json:"session_id"`
	Role      string `json:"role"`
}

func TestSendMessages(t *testing.T) {
	writer := &recordingWriter{}
	client := &kafkaClientImpl{topic: "staywise.events", writer: writer}

	err := client.SendMessages(context.Background(), Message{Key: "s1", Value: completed{SessionID: "s1", Role: "OWNER"}})
	require.NoError(t, err)
	require.Len(t, writer.msgs, 1)

	var value completed
	require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &value))
	assert.Equal(t, "s1", string(writer.msgs[0].Key))
	assert.Equal(t, completed{SessionID: "s1", Role: "OWNER"}, value)
}

func TestSendMessages_Errors(t *testing.T) {
	t.Run("unencodable value", func(t *testing.T) {
		writer := &recordingWriter{}
		client := &kafkaClientImpl{topic: "staywise.events", writer: writer}

		err := client.SendMessages(context.Background(), Message{Key: "k", Value: make(chan int)})

		assert.Error(t, err)
		assert.Empty(t, writer.msgs)
	})

	t.Run("broker failure", func(t *testing.T) {
		client := &kafkaClientImpl{topic: "staywise.events", writer: &recordingWriter{err: errors.New("broker down")}}

		err := client.SendMessages(context.Background(), Message{Key: "k", Value: "v"})

		assert.ErrorContains(t, err, "broker down")
	})
}

func TestLogWriter(t *testing.T) {
	client := &kafkaClientImpl{topic: "staywise.events", writer: logWriter{}}

	assert.NoError(t, client.SendMessages(context.Background(), Message{Key: "k", Value: map[string]string{"a": "b"}}))
	assert.NoError(t, client.Close())
}
