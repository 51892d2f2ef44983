package wakeevent

import (
	"testing"

	"github.com/zeebo/assert"
)

func TestEventPostBeforeWait(t *testing.T) {
	var e Event
	// Post with nobody waiting yet must bank a token rather than lose it.
	e.Post()
	e.Wait()
}

func TestEventWaitThenPost(t *testing.T) {
	var e Event
	ch := make(chan bool, 1)
	go func() {
		e.Wait()
		ch <- true
	}()
	e.Post()
	assert.That(t, <-ch)
}

func TestEventManyTokens(t *testing.T) {
	var e Event
	const n = 100
	for i := 0; i < n; i++ {
		e.Post()
	}
	for i := 0; i < n; i++ {
		e.Wait()
	}
}
