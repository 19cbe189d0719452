package google

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConferenceRequestId_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := newConferenceRequestId()
		assert.Len(t, id, 10)
		for _, c := range id {
			assert.True(t, strings.ContainsRune(conferenceRequestIdAlphabet, c),
				"unexpected character %q in request id %q", c, id)
		}
	}
}

func TestNewConferenceRequestId_FreshPerCall(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		seen[newConferenceRequestId()] = true
	}
	// 36^10 possible ids; collisions here would indicate a broken generator.
	assert.Len(t, seen, 50)
}
