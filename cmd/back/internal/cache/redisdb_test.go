package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMiss(t *testing.T) {
	assert.True(t, IsMiss(redis.Nil))
	assert.True(t, IsMiss(fmt.Errorf("get: %w", redis.Nil)))
	assert.False(t, IsMiss(errors.New("connection refused")))
	assert.False(t, IsMiss(nil))
}

func TestRecordKey(t *testing.T) {
	assert.Equal(t, "record:Hac29kvvQ3vMEu3CzsALtciEwKYULtYuKcifebNFFhrE", RecordKey("Hac29kvvQ3vMEu3CzsALtciEwKYULtYuKcifebNFFhrE"))
}

func TestNewRedisClient_Timeouts(t *testing.T) {
	c := NewRedisClient("localhost:6379", "", 2)
	defer c.Close()

	opts := c.client.Options()
	assert.Equal(t, dialTimeout, opts.DialTimeout)
	assert.Equal(t, readTimeout, opts.ReadTimeout)
	assert.Equal(t, writeTimeout, opts.WriteTimeout)
	assert.Equal(t, 2, opts.DB)
}

func TestGet_SilentServerTimesOut(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	// accept connections and never answer
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			defer conn.Close()
		}
	}()

	c := NewRedisClient(ln.Addr().String(), "", 0)
	defer c.Close()

	start := time.Now()
	_, err = c.Get(context.Background(), RecordKey("x"))
	assert.Error(t, err)
	assert.False(t, IsMiss(err))
	assert.Less(t, time.Since(start), 15*time.Second)
}
