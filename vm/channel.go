package vm

import "github.com/prateekvishnu/goscript/vm/heap"

// rendezvousState is the four-state handshake a capacity-0 Channel runs
// (§3's Channel entry), ported from the original's RendezvousState enum:
// NotReady (no party waiting), Ready (a receiver got there first and is
// waiting), InPlace(v) (a sender deposited a value for that receiver),
// Closed.
type rendezvousState uint8

const (
	rendezvousNotReady rendezvousState = iota
	rendezvousReady
	rendezvousInPlace
	rendezvousClosed
)

// Channel is a bounded FIFO of a fixed capacity, or — at capacity 0 — a
// rendezvous channel. Scheduling (blocking send/recv as cooperative
// polling loops, yielding to the fiber scheduler on would-block) is done
// by vm/exec's SEND/RECV/SELECT, which yield through vm/sched's fibers;
// Channel itself only exposes the non-blocking
// try_send/try_recv primitives the original channel.rs implements.
type Channel struct {
	heap.RefHeader
	elemKind Kind
	capacity int

	// Bounded state.
	buf           []Value
	sendPos       int
	recvPos       int
	count         int
	boundedClosed bool

	// Rendezvous state (capacity == 0).
	state      rendezvousState
	inPlaceVal Value
}

// NewChannel constructs a channel of the given element kind and
// capacity. Capacity 0 selects the rendezvous representation.
func NewChannel(elemKind Kind, capacity int) *Channel {
	c := &Channel{elemKind: elemKind, capacity: capacity}
	if capacity > 0 {
		c.buf = make([]Value, capacity)
	}
	return c
}

func (c *Channel) Kind() heap.Kind { return heap.KindChannel }

func (c *Channel) Children() []heap.Cell {
	var out []heap.Cell
	if c.isRendezvous() {
		if c.state == rendezvousInPlace && c.inPlaceVal.kind.IsHandle() {
			out = append(out, c.inPlaceVal.handle)
		}
		return out
	}
	for i := 0; i < c.count; i++ {
		v := c.buf[(c.recvPos+i)%len(c.buf)]
		if v.kind.IsHandle() {
			out = append(out, v.handle)
		}
	}
	return out
}

func (c *Channel) CanMakeCycle() bool { return false }
func (c *Channel) BreakCycle()        {}

func (c *Channel) isRendezvous() bool { return c.capacity == 0 }

// ElemKind reports the channel's declared element Kind.
func (c *Channel) ElemKind() Kind { return c.elemKind }

// Cap reports the channel's declared capacity (0 for rendezvous).
func (c *Channel) Cap() int { return c.capacity }

// Len reports the number of buffered-but-unreceived values.
func (c *Channel) Len() int {
	if c.isRendezvous() {
		return 0
	}
	return c.count
}

// ChanResult enumerates the three non-blocking outcomes TrySend/TryRecv
// report, mirrored from async_channel's TrySendError/TryRecvError that
// the original VM builds its channel send/recv on.
type ChanResult uint8

const (
	ChanOK ChanResult = iota
	ChanFull
	ChanEmpty
	ChanClosed
)

// TrySend attempts a non-blocking send. ChanFull means the caller should
// back off and retry (the scheduler's cooperative polling loop); a
// rendezvous channel reports ChanFull both when nobody is waiting and
// when a value is already deposited, matching the original's "Full" for
// both NotReady and InPlace.
func (c *Channel) TrySend(v Value) ChanResult {
	if c.isRendezvous() {
		switch c.state {
		case rendezvousNotReady, rendezvousInPlace:
			return ChanFull
		case rendezvousReady:
			retainValue(v)
			c.state = rendezvousInPlace
			c.inPlaceVal = v
			return ChanOK
		case rendezvousClosed:
			return ChanClosed
		}
	}
	if c.boundedClosed {
		return ChanClosed
	}
	if c.count == len(c.buf) {
		return ChanFull
	}
	retainValue(v)
	c.buf[c.sendPos] = v
	c.sendPos = (c.sendPos + 1) % len(c.buf)
	c.count++
	return ChanOK
}

// TryRecv attempts a non-blocking receive. A rendezvous channel flips
// NotReady to Ready on a miss (announcing the receiver is waiting) and
// reports ChanEmpty either way, same as the original.
func (c *Channel) TryRecv() (Value, ChanResult) {
	if c.isRendezvous() {
		switch c.state {
		case rendezvousNotReady:
			c.state = rendezvousReady
			return Value{}, ChanEmpty
		case rendezvousReady:
			return Value{}, ChanEmpty
		case rendezvousInPlace:
			v := c.inPlaceVal
			c.inPlaceVal = Value{}
			c.state = rendezvousNotReady
			return v, ChanOK
		case rendezvousClosed:
			return Value{}, ChanClosed
		}
	}
	if c.count == 0 {
		if c.boundedClosed {
			return Value{}, ChanClosed
		}
		return Value{}, ChanEmpty
	}
	v := c.buf[c.recvPos]
	c.buf[c.recvPos] = Value{}
	c.recvPos = (c.recvPos + 1) % len(c.buf)
	c.count--
	return v, ChanOK
}

// Close marks the channel closed. A receive against a closed, drained
// channel reports ChanClosed; a send against one always does.
func (c *Channel) Close() {
	if c.isRendezvous() {
		c.state = rendezvousClosed
		return
	}
	c.boundedClosed = true
}

// Closed reports whether Close has been called.
func (c *Channel) Closed() bool {
	if c.isRendezvous() {
		return c.state == rendezvousClosed
	}
	return c.boundedClosed
}

// NewChannelValue wraps a freshly constructed Channel in a Value.
func NewChannelValue(elemKind Kind, capacity int) Value {
	return fromHandle(KindChannel, NewChannel(elemKind, capacity))
}
