package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertInRange(t *testing.T) {
	assert.True(t, AssertInRange(t, 90, 85, 95))
	assert.True(t, AssertInRange(t, 85, 85, 95))
	assert.True(t, AssertInRange(t, 95, 85, 95))
}

func TestAssertErrorContains(t *testing.T) {
	AssertErrorContains(t, errors.New("invalid amount: amount is required"), "amount is required")
}

func TestSampleDetectRequest(t *testing.T) {
	assert.Equal(t, SampleAmount, string(SampleDetectRequest().Amount))
	assert.Equal(t, "9000", string(SampleDetectRequest("9000").Amount))
	assert.Equal(t, SampleIPAddress, SampleDetectRequest().IPAddress)
}
