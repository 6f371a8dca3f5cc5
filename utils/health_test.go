package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHealthMonitorSamplesBeforeFirstTick(t *testing.T) {
	StartHealthMonitor(nil)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !GetHealthStatus().CheckedAt.IsZero() {
			assert.WithinDuration(t, time.Now(), GetHealthStatus().CheckedAt, 2*time.Second)
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("health snapshot not populated at startup")
}
