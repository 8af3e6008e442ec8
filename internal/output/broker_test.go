package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBroker_DeliversToSubscribersInOrder(t *testing.T) {
	b := NewBroker()

	var got []string
	b.SubscribeResult(func(line string) { got = append(got, "first:"+line) })
	b.SubscribeResult(func(line string) { got = append(got, "second:"+line) })

	b.Result("5")

	assert.Equal(t, []string{"first:5", "second:5"}, got)
}

func TestBroker_EmptyTextLinesSuppressed(t *testing.T) {
	b := NewBroker()

	var got []string
	b.SubscribeText(func(line string) { got = append(got, line) })

	b.Text("")
	b.Text("warning")
	b.Text("")

	assert.Equal(t, []string{"warning"}, got)
}

func TestBroker_EmptyResultFragmentsDelivered(t *testing.T) {
	// Only the Text channel suppresses empties; an empty result fragment
	// is a legitimate command output.
	b := NewBroker()

	count := 0
	b.SubscribeResult(func(string) { count++ })

	b.Result("")
	assert.Equal(t, 1, count)
}

func TestBroker_Unsubscribe(t *testing.T) {
	b := NewBroker()

	var got []string
	id := b.SubscribeResult(func(line string) { got = append(got, line) })
	b.SubscribeText(func(line string) { got = append(got, "text:"+line) })

	b.Result("kept")
	b.Unsubscribe(id)
	b.Result("dropped")
	b.Text("still here")

	assert.Equal(t, []string{"kept", "text:still here"}, got)
}

func TestBroker_NoSubscribersIsFine(t *testing.T) {
	b := NewBroker()
	assert.NotPanics(t, func() {
		b.Result("into the void")
		b.Text("same")
	})
}

func TestCapture_RecordsAndResets(t *testing.T) {
	b := NewBroker()
	c := NewCapture(b)

	b.Result("one")
	b.Result("two")
	b.Text("diag")

	assert.Equal(t, []string{"one", "two"}, c.Results())
	assert.Equal(t, []string{"diag"}, c.Text())
	assert.Equal(t, "one\ntwo", c.ResultString())
	assert.True(t, c.ContainsResult("two"))

	c.Reset()
	assert.Empty(t, c.Results())
	assert.Empty(t, c.Text())

	c.Detach(b)
	b.Result("after detach")
	assert.Empty(t, c.Results())
}

func TestPrinter_WritesLinesWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), WithPrefix("» "))

	p.Println("hello")
	assert.Equal(t, "» hello\n", buf.String())
}

func TestPrinter_Silent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(WithWriter(&buf), Silent())

	p.Println("hidden")
	assert.Zero(t, buf.Len())
}

func TestPrinter_AsBrokerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	b := NewBroker()
	b.SubscribeResult(NewPrinter(WithWriter(&buf)).Println)

	b.Result("5")
	assert.Equal(t, "5\n", buf.String())
}
