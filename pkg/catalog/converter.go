package catalog

import (
	"errors"
	"sync"
	"time"

	"github.com/engunit/engunit-go/pkg/log"
	"github.com/engunit/engunit-go/pkg/measure"
	"github.com/engunit/engunit-go/pkg/unit"
	"github.com/engunit/engunit-go/pkg/wire"
	"github.com/google/uuid"
)

// Converter reads catalog channels and converts measures, emitting a trace
// event for every operation. It is safe for concurrent use if the logger is.
type Converter struct {
	mu        sync.RWMutex
	catalog   *Catalog
	logger    log.Logger
	sessionID string
}

// NewConverter creates a Converter over cat. A nil catalog still converts
// measures but has no channels. A nil logger disables tracing.
// Each converter gets a fresh session ID.
func NewConverter(cat *Catalog, logger log.Logger) *Converter {
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Converter{
		catalog:   cat,
		logger:    logger,
		sessionID: uuid.NewString(),
	}
}

// SessionID returns the session ID stamped on trace events.
func (c *Converter) SessionID() string {
	return c.sessionID
}

// Catalog returns the current catalog.
func (c *Converter) Catalog() *Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog
}

// SetCatalog replaces the catalog. Reads already in flight finish against
// the previous one.
func (c *Converter) SetCatalog(cat *Catalog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog = cat
}

// Read converts a raw reading of the named channel into its output unit.
func (c *Converter) Read(name string, raw float64) (measure.Measure, error) {
	event := c.event(log.OpRead)
	event.Channel = name

	ch, err := c.Catalog().Channel(name)
	if err != nil {
		c.fail(event, err)
		return nil, err
	}
	event.Domain = ch.Domain()
	event.Input = &log.Quantity{Value: raw, Unit: ch.InputUnit().String()}
	event.Target = ch.OutputUnit().String()

	m, err := ch.Read(raw)
	if err != nil {
		c.fail(event, err)
		return nil, err
	}
	event.Output = log.QuantityOf(m)
	c.logger.Log(event)
	return m, nil
}

// Convert returns m expressed in unit u.
func (c *Converter) Convert(m measure.Measure, u unit.Unit) (measure.Measure, error) {
	event := c.event(log.OpConvert)
	if m != nil {
		event.Domain = m.Domain()
	}
	event.Input = log.QuantityOf(m)
	if u != nil {
		event.Target = u.String()
	}

	out, err := measure.Convert(m, u)
	if err != nil {
		c.fail(event, err)
		return nil, err
	}
	event.Output = log.QuantityOf(out)
	c.logger.Log(event)
	return out, nil
}

// Add returns a + b in a's unit.
func (c *Converter) Add(a, b measure.Measure) (measure.Measure, error) {
	return c.arith(log.OpAdd, measure.Add, a, b)
}

// Sub returns a - b in a's unit.
func (c *Converter) Sub(a, b measure.Measure) (measure.Measure, error) {
	return c.arith(log.OpSub, measure.Sub, a, b)
}

func (c *Converter) arith(op log.Op, f func(a, b measure.Measure) (measure.Measure, error), a, b measure.Measure) (measure.Measure, error) {
	event := c.event(op)
	if a != nil {
		event.Domain = a.Domain()
	}
	event.Input = log.QuantityOf(a)
	event.Operand = log.QuantityOf(b)

	out, err := f(a, b)
	if err != nil {
		c.fail(event, err)
		return nil, err
	}
	event.Output = log.QuantityOf(out)
	c.logger.Log(event)
	return out, nil
}

// Snapshot reads every catalog channel present in raw, in catalog order,
// and returns the results as a wire snapshot. Channels missing from raw are
// skipped; the first failing channel aborts the snapshot.
func (c *Converter) Snapshot(raw map[string]float64) (*wire.Snapshot, error) {
	cat := c.Catalog()
	snap := &wire.Snapshot{Timestamp: time.Now()}
	if cat != nil {
		snap.Source = cat.Name
	}
	for _, name := range cat.Names() {
		v, ok := raw[name]
		if !ok {
			continue
		}
		m, err := c.Read(name, v)
		if err != nil {
			return nil, err
		}
		snap.Readings = append(snap.Readings, wire.FromMeasure(m))
	}
	return snap, nil
}

func (c *Converter) event(op log.Op) log.Event {
	return log.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		Op:        op,
	}
}

func (c *Converter) fail(event log.Event, err error) {
	event.Error = log.NewErrorData(err)
	if errors.Is(err, ErrUnknownChannel) {
		event.Error.Kind = log.ErrorKindUnknownChannel
	}
	c.logger.Log(event)
}
