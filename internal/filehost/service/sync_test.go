package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anthanhphan/go-file-board/internal/filehost/domain"
	"github.com/anthanhphan/go-file-board/internal/filehost/port"
	"github.com/anthanhphan/go-file-board/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T) *SyncService {
	t.Helper()
	notice := NewNotice(nil)
	hub := NewHub(&sequentialIDs{}, 1024)
	t.Cleanup(func() {
		hub.Close()
		notice.Close()
	})
	return NewSyncService(notice, hub)
}

func openPeer(t *testing.T, board *SyncService) (port.Session, *recordingPeer) {
	t.Helper()
	peer := newRecordingPeer()
	sess, err := board.Open(peer)
	require.NoError(t, err)
	peer.waitFor(t, 1)
	return sess, peer
}

func TestSync_InitCarriesCurrentNotice(t *testing.T) {
	board := newTestBoard(t)
	board.Publish("hello")

	_, peer := openPeer(t, board)
	msgs := peer.messages()
	assert.Equal(t, domain.MessageInit, msgs[0].Type)
	assert.Equal(t, "hello", content(msgs[0]))
}

func TestSync_UpdateExcludesSender(t *testing.T) {
	board := newTestBoard(t)
	a, peerA := openPeer(t, board)
	_, peerB := openPeer(t, board)

	a.Handle(context.Background(), []byte(`{"type":"update","content":"X"}`))

	msgs := peerB.waitFor(t, 2)
	require.Len(t, msgs, 2)
	assert.Equal(t, domain.MessageUpdate, msgs[1].Type)
	assert.Equal(t, "X", content(msgs[1]))

	time.Sleep(50 * time.Millisecond)
	assert.Len(t, peerA.messages(), 1)
	assert.Len(t, peerB.messages(), 2)
	assert.Equal(t, "X", board.Current())
}

func TestSync_ResetReachesEveryone(t *testing.T) {
	board := newTestBoard(t)
	board.Publish("something")

	_, peerA := openPeer(t, board)
	b, peerB := openPeer(t, board)

	b.Handle(context.Background(), []byte(`{"type":"reset"}`))

	for _, p := range []*recordingPeer{peerA, peerB} {
		msgs := p.waitFor(t, 2)
		assert.Equal(t, domain.MessageUpdate, msgs[1].Type)
		require.NotNil(t, msgs[1].Content)
		assert.Equal(t, "", *msgs[1].Content)
	}
	assert.Equal(t, "", board.Current())
}

func TestSync_PublishReachesEveryone(t *testing.T) {
	board := newTestBoard(t)
	_, peerA := openPeer(t, board)
	_, peerB := openPeer(t, board)

	board.Publish("from http")

	for _, p := range []*recordingPeer{peerA, peerB} {
		msgs := p.waitFor(t, 2)
		assert.Equal(t, "from http", content(msgs[1]))
	}
}

func TestSync_MalformedFramesIgnored(t *testing.T) {
	board := newTestBoard(t)
	board.Publish("stable")

	a, peerA := openPeer(t, board)
	_, peerB := openPeer(t, board)

	frames := []string{
		`not json`,
		`{"type":"update"}`,
		`{"type":"shout","content":"x"}`,
		`{"content":"no type"}`,
		`[]`,
	}
	for _, f := range frames {
		a.Handle(context.Background(), []byte(f))
	}

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, "stable", board.Current())
	assert.Len(t, peerA.messages(), 1)
	assert.Len(t, peerB.messages(), 1)
	assert.Equal(t, 2, board.hub.Count())
	assert.False(t, peerA.isClosed())
}

func TestSync_CloseDeregisters(t *testing.T) {
	board := newTestBoard(t)
	a, peerA := openPeer(t, board)
	_, peerB := openPeer(t, board)

	a.Close()
	a.Close()
	assert.True(t, peerA.isClosed())
	assert.Equal(t, 1, board.hub.Count())

	board.Publish("after close")
	peerB.waitFor(t, 2)
	assert.Len(t, peerA.messages(), 1)
}

func TestSync_SingleSenderOrderPreserved(t *testing.T) {
	board := newTestBoard(t)
	a, _ := openPeer(t, board)
	_, peerB := openPeer(t, board)

	const total = 200
	for i := 0; i < total; i++ {
		a.Handle(context.Background(), []byte(fmt.Sprintf(`{"type":"update","content":"%d"}`, i)))
	}

	msgs := peerB.waitFor(t, total+1)
	for i := 0; i < total; i++ {
		assert.Equal(t, fmt.Sprintf("%d", i), content(msgs[i+1]))
	}
}

func TestSync_ConcurrentUpdatesConverge(t *testing.T) {
	board := newTestBoard(t)
	a, peerA := openPeer(t, board)
	b, peerB := openPeer(t, board)
	_, observer := openPeer(t, board)

	const perSender = 100
	var wg sync.WaitGroup
	for _, s := range []struct {
		sess port.Session
		tag  string
	}{{a, "a"}, {b, "b"}} {
		wg.Add(1)
		go func(sess port.Session, tag string) {
			defer wg.Done()
			for i := 0; i < perSender; i++ {
				sess.Handle(context.Background(), []byte(fmt.Sprintf(`{"type":"update","content":"%s%d"}`, tag, i)))
			}
		}(s.sess, s.tag)
	}
	wg.Wait()

	msgs := observer.waitFor(t, 2*perSender+1)
	last := content(msgs[len(msgs)-1])
	assert.Equal(t, board.Current(), last, "observer's last update must match stored notice")

	// Each sender sees exactly the other's updates.
	assert.Len(t, peerA.waitFor(t, perSender+1), perSender+1)
	assert.Len(t, peerB.waitFor(t, perSender+1), perSender+1)
}

// slowIDs delays every ID, like a remote clock that is slow to answer.
type slowIDs struct {
	sequentialIDs
	delay time.Duration
}

func (s *slowIDs) Next() (int64, error) {
	time.Sleep(s.delay)
	return s.sequentialIDs.Next()
}

func TestSync_SlowIDDoesNotDelayPublish(t *testing.T) {
	notice := NewNotice(nil)
	hub := NewHub(&slowIDs{delay: 400 * time.Millisecond}, 64)
	t.Cleanup(func() {
		hub.Close()
		notice.Close()
	})
	board := NewSyncService(notice, hub)

	opened := make(chan error, 1)
	peer := newRecordingPeer()
	go func() {
		_, err := board.Open(peer)
		opened <- err
	}()
	time.Sleep(50 * time.Millisecond)

	start := time.Now()
	board.Publish("x")
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	require.NoError(t, <-opened)
	msgs := peer.waitFor(t, 1)
	assert.Equal(t, domain.MessageInit, msgs[0].Type)
	assert.Equal(t, "x", content(msgs[0]))
}

type steppableClock struct {
	ms atomic.Int64
}

func (c *steppableClock) Now() int64 {
	return c.ms.Load()
}

func TestSync_OpenSurvivesClockStepBack(t *testing.T) {
	clock := &steppableClock{}
	clock.ms.Store(idgen.Epoch + 10_000)
	ids, err := idgen.NewGenerator(1, clock)
	require.NoError(t, err)

	notice := NewNotice(nil)
	hub := NewHub(ids, 64)
	t.Cleanup(func() {
		hub.Close()
		notice.Close()
	})
	board := NewSyncService(notice, hub)

	first, err := board.Open(newRecordingPeer())
	require.NoError(t, err)

	clock.ms.Store(idgen.Epoch + 9_990)
	second, err := board.Open(newRecordingPeer())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, 2, hub.Count())
}
