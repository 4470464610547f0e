package idgen

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNew_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{13,}_[0-9a-z]{7}$`)

	id := New()
	if !pattern.MatchString(id) {
		t.Errorf("id %q does not match expected format", id)
	}

	// The timestamp portion should be close to now.
	millis, err := strconv.ParseInt(strings.SplitN(id, "_", 2)[0], 10, 64)
	if err != nil {
		t.Fatalf("failed to parse timestamp portion: %v", err)
	}
	now := time.Now().UnixMilli()
	if millis < now-time.Minute.Milliseconds() || millis > now+time.Minute.Milliseconds() {
		t.Errorf("timestamp portion %d too far from now %d", millis, now)
	}
}

func TestNew_Uniqueness(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = struct{}{}
	}
}
