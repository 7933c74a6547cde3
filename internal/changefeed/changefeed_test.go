package changefeed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingBroadcaster struct {
	topics []string
}

func (r *recordingBroadcaster) Broadcast(topic string) {
	r.topics = append(r.topics, topic)
}

func TestLocalTableChanged(t *testing.T) {
	t.Parallel()

	b := &recordingBroadcaster{}
	feed := Local{B: b}

	feed.TableChanged("events")
	feed.TableChanged("bookings")

	assert.Equal(t, []string{"events", "bookings"}, b.topics)
}
