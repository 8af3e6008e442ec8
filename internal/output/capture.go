package output

import (
	"strings"
	"sync"
)

// Capture is a subscriber that records everything published on a broker.
// It is primarily a test aid but also backs the demo binary's per-command
// result accumulator.
type Capture struct {
	mu       sync.Mutex
	results  []string
	text     []string
	resultID SubscriptionID
	textID   SubscriptionID
}

// NewCapture creates a capture attached to both of the broker's channels.
func NewCapture(b *Broker) *Capture {
	c := &Capture{}
	c.resultID = b.SubscribeResult(func(line string) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.results = append(c.results, line)
	})
	c.textID = b.SubscribeText(func(line string) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.text = append(c.text, line)
	})
	return c
}

// Detach removes the capture's subscriptions from the broker.
func (c *Capture) Detach(b *Broker) {
	b.Unsubscribe(c.resultID)
	b.Unsubscribe(c.textID)
}

// Results returns the captured Result-channel fragments in order.
func (c *Capture) Results() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.results))
	copy(out, c.results)
	return out
}

// Text returns the captured Text-channel lines in order.
func (c *Capture) Text() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.text))
	copy(out, c.text)
	return out
}

// Reset clears everything captured so far.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = nil
	c.text = nil
}

// ResultString joins the captured result fragments with newlines.
func (c *Capture) ResultString() string {
	return strings.Join(c.Results(), "\n")
}

// ContainsResult checks whether any captured result fragment contains text.
func (c *Capture) ContainsResult(text string) bool {
	for _, r := range c.Results() {
		if strings.Contains(r, text) {
			return true
		}
	}
	return false
}
