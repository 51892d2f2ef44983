package rwmutex

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/zeebo/assert"
)

func TestRWMutexMultipleReaders(t *testing.T) {
	var l RWMutex
	l.RLock()
	l.RLock()
	l.RUnlock()
	l.RUnlock()
}

func TestRWMutexExclusiveExcludesReaders(t *testing.T) {
	var l RWMutex
	l.Lock()

	done := make(chan struct{})
	go func() {
		l.RLock()
		l.RUnlock()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("reader acquired lock while writer held it")
	case <-time.After(20 * time.Millisecond):
	}

	l.Unlock()
	<-done
}

// TestRWMutexWritePreferring is the scenario the sign-bit encoding exists
// for: a writer that arrives while a reader holds the lock must block any
// later reader from jumping ahead of it.
func TestRWMutexWritePreferring(t *testing.T) {
	var l RWMutex
	l.RLock()

	writerDone := make(chan struct{})
	go func() {
		l.Lock()
		l.Unlock()
		close(writerDone)
	}()

	time.Sleep(10 * time.Millisecond) // give the writer time to become pending

	lateReaderDone := make(chan struct{})
	go func() {
		l.RLock()
		l.RUnlock()
		close(lateReaderDone)
	}()

	select {
	case <-lateReaderDone:
		t.Fatal("late reader acquired lock ahead of pending writer")
	case <-time.After(20 * time.Millisecond):
	}

	l.RUnlock() // release the original reader; writer should now proceed
	<-writerDone
	<-lateReaderDone
}

func TestRWMutexRace(t *testing.T) {
	var l RWMutex
	var counter int64

	const readers = 8
	const writers = 2
	const iterations = 200

	stop := make(chan struct{})
	var readerWg sync.WaitGroup
	readerWg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer readerWg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				l.RLock()
				_ = atomic.LoadInt64(&counter)
				l.RUnlock()
			}
		}()
	}

	var writerWg sync.WaitGroup
	writerWg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer writerWg.Done()
			for j := 0; j < iterations; j++ {
				l.Lock()
				atomic.AddInt64(&counter, 1)
				l.Unlock()
			}
		}()
	}

	writerWg.Wait()
	close(stop)
	readerWg.Wait()

	assert.Equal(t, atomic.LoadInt64(&counter), int64(writers*iterations))
}
