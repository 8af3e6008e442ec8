package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Printer writes published lines to a terminal or any io.Writer. It is the
// standard sink a host subscribes to the broker's channels.
type Printer struct {
	writer io.Writer
	prefix string
	silent bool

	mu sync.Mutex
}

// Option is a functional option for configuring Printer instances.
type Option func(*Printer)

// WithWriter directs output to the given writer instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(p *Printer) {
		if w != nil {
			p.writer = w
		}
	}
}

// WithPrefix prepends a fixed prefix to every printed line.
func WithPrefix(prefix string) Option {
	return func(p *Printer) {
		p.prefix = prefix
	}
}

// Silent suppresses all output. Useful when a host wants capture without
// display.
func Silent() Option {
	return func(p *Printer) {
		p.silent = true
	}
}

// NewPrinter creates a printer writing to os.Stdout unless configured
// otherwise.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{writer: os.Stdout}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Println writes one line. It matches the Subscriber signature so it can be
// passed directly to Broker.SubscribeResult or SubscribeText.
func (p *Printer) Println(line string) {
	if p.silent {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.writer, "%s%s\n", p.prefix, line)
}
