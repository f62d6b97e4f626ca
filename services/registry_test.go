package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	conn := &fakeConn{id: "c1"}

	registry.Register("alice", conn)

	assert.True(t, registry.IsOnline("alice"))
	assert.Len(t, registry.ConnectionsFor("alice"), 1)
	assert.False(t, registry.IsOnline("bob"))
	assert.Empty(t, registry.ConnectionsFor("bob"))
}

func TestRegistry_MultipleConnectionsPerUser(t *testing.T) {
	registry := NewRegistry()
	phone := &fakeConn{id: "phone"}
	laptop := &fakeConn{id: "laptop"}

	registry.Register("alice", phone)
	registry.Register("alice", laptop)

	assert.Len(t, registry.ConnectionsFor("alice"), 2)

	registry.Unregister("alice", phone)
	conns := registry.ConnectionsFor("alice")
	assert.Len(t, conns, 1)
	assert.Equal(t, "laptop", conns[0].ID())
	assert.True(t, registry.IsOnline("alice"))
}

func TestRegistry_RegisterIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	conn := &fakeConn{id: "c1"}

	registry.Register("alice", conn)
	registry.Register("alice", conn)

	assert.Len(t, registry.ConnectionsFor("alice"), 1)
}

func TestRegistry_UnregisterLastConnectionRemovesUser(t *testing.T) {
	registry := NewRegistry()
	conn := &fakeConn{id: "c1"}

	registry.Register("alice", conn)
	registry.Unregister("alice", conn)

	assert.False(t, registry.IsOnline("alice"))
	assert.Empty(t, registry.ConnectionsFor("alice"))
}

func TestRegistry_UnregisterUnknownIsNoOp(t *testing.T) {
	registry := NewRegistry()

	registry.Unregister("nobody", &fakeConn{id: "c1"})

	assert.False(t, registry.IsOnline("nobody"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			userID := fmt.Sprintf("user-%d", i%5)
			conn := &fakeConn{id: fmt.Sprintf("conn-%d", i)}
			registry.Register(userID, conn)
			registry.ConnectionsFor(userID)
			registry.IsOnline(userID)
			registry.Unregister(userID, conn)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		assert.False(t, registry.IsOnline(fmt.Sprintf("user-%d", i)))
	}
}
