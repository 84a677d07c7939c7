package file

import (
	"bytes"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIDGenerator_Generate(t *testing.T) {
	gen := NewRunIDGenerator()

	first := gen.Generate()
	second := gen.Generate()

	assert.NotEqual(t, first, second)
	_, err := ulid.Parse(first)
	assert.NoError(t, err)
}

func TestRunIDGenerator_SortsWithinMillisecond(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := newRunIDGenerator(func() time.Time { return at }, bytes.NewReader(bytes.Repeat([]byte{0x01}, 256)))

	ids := make([]string, 5)
	for i := range ids {
		ids[i] = gen.Generate()
	}

	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i], "run ids must sort in creation order")
	}

	parsed, err := ulid.Parse(ids[0])
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(at), parsed.Time())
}
