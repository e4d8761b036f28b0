package fifo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuf(size int) *Buf {
	var b Buf
	b.Init(make([]byte, size))
	return &b
}

func TestBuf_PushPopFIFO(t *testing.T) {
	b := newBuf(8)

	for _, c := range []byte("abcdefg") {
		require.True(t, b.Push(c))
	}
	assert.Equal(t, 7, b.Available())

	for _, want := range []byte("abcdefg") {
		assert.Equal(t, want, b.Pop())
	}
	assert.Equal(t, 0, b.Available())
}

func TestBuf_PushFullFails(t *testing.T) {
	b := newBuf(4)

	// usable capacity is size-1
	require.True(t, b.Push('a'))
	require.True(t, b.Push('b'))
	require.True(t, b.Push('c'))
	assert.False(t, b.Push('d'))
	assert.Equal(t, 3, b.Available())

	// contents unchanged by the failed push
	assert.Equal(t, byte('a'), b.Pop())
	assert.Equal(t, byte('b'), b.Pop())
	assert.Equal(t, byte('c'), b.Pop())
}

func TestBuf_PopEmptyReturnsZero(t *testing.T) {
	b := newBuf(4)

	assert.Equal(t, byte(0), b.Pop())
	assert.Equal(t, 0, b.Available())
}

func TestBuf_WrapAround(t *testing.T) {
	b := newBuf(4)

	// drive indices around the ring several times while never holding
	// more than capacity-1 outstanding bytes
	next := byte(0)
	expect := byte(0)
	for i := 0; i < 20; i++ {
		require.True(t, b.Push(next))
		next++
		require.True(t, b.Push(next))
		next++

		assert.Equal(t, expect, b.Pop())
		expect++
		assert.Equal(t, expect, b.Pop())
		expect++
	}
}
