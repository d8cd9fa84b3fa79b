package exec

import (
	"github.com/prateekvishnu/goscript/pkg/vmerr"
	"github.com/prateekvishnu/goscript/vm"
	"github.com/prateekvishnu/goscript/vm/frame"
)

// execSend implements SEND: pops the value, then the channel, and loops
// TrySend/Yield until it succeeds or the channel is closed. A nil
// channel blocks forever, matching Go's own "send on a nil channel"
// deadlock.
func (in *Interpreter) execSend(stk *frame.Stack, y Yielder) error {
	val := stk.Pop()
	chV := stk.Pop()

	if chV.Kind() == vm.KindNil {
		for {
			y.Yield()
		}
	}

	ch := chV.Handle().(*vm.Channel)
	for {
		switch ch.TrySend(val) {
		case vm.ChanOK:
			vm.Release(chV)
			return nil
		case vm.ChanClosed:
			vm.Release(val)
			vm.Release(chV)
			return vmerr.ErrChannelClosed
		case vm.ChanFull:
			y.Yield()
		}
	}
}

// execRecv implements RECV/RECV_COMMA_OK: pops the channel, pushes the
// received value (plus, if commaOk, a bool reporting whether it came
// from a live send rather than a closed, drained channel). T0 names the
// channel's element Kind, used to build the zero value a closed receive
// reports. A nil channel blocks forever, matching Go's own semantics.
func (in *Interpreter) execRecv(stk *frame.Stack, y Yielder, elemKind vm.Kind, commaOk bool) error {
	chV := stk.Pop()

	if chV.Kind() == vm.KindNil {
		for {
			y.Yield()
		}
	}

	ch := chV.Handle().(*vm.Channel)
	for {
		v, res := ch.TryRecv()
		switch res {
		case vm.ChanOK:
			stk.Push(v)
			if commaOk {
				stk.Push(vm.Bool(true))
			}
			vm.Release(chV)
			return nil
		case vm.ChanClosed:
			stk.Push(zeroForKind(elemKind))
			if commaOk {
				stk.Push(vm.Bool(false))
			}
			vm.Release(chV)
			return nil
		case vm.ChanEmpty:
			y.Yield()
		}
	}
}

// selectOperand is one SELECT case's already-popped operands, captured
// before any retry loop so a would-block retry never re-touches the
// stack.
type selectOperand struct {
	dir vm.SelectCaseKind
	ch  vm.Value
	val vm.Value // populated only for a SelectSend case
}

// execSelect implements SELECT. Imm indexes FunctionRecord.Selects for
// this call site's case list. Every case's operands are popped up front
// (send cases: value then channel; recv cases: channel only), in
// reverse declaration order to match the general popped-last-pushed
// convention. The call site's rotation counter (State.selectTurn) picks
// which case is tried first on each invocation, for fairness across
// repeated executions of the same select statement.
func (in *Interpreter) execSelect(st *State, stk *frame.Stack, fn *vm.FunctionRecord, ins vm.Instruction, y Yielder) error {
	desc := fn.Selects[ins.Imm]
	n := len(desc.Cases)

	ops := make([]selectOperand, n)
	for i := n - 1; i >= 0; i-- {
		c := desc.Cases[i]
		if c.Dir == vm.SelectSend {
			ops[i] = selectOperand{dir: c.Dir, val: stk.Pop(), ch: stk.Pop()}
		} else {
			ops[i] = selectOperand{dir: c.Dir, ch: stk.Pop()}
		}
	}

	start := 0
	if n > 0 {
		start = st.selectTurn[ins.Imm] % n
		st.selectTurn[ins.Imm] = (start + 1) % n
	}

	// releaseAll drops every operand's reference. consumedIdx/consumedVal
	// names the one exception: a successful send's value was already
	// retained by Channel.TrySend and must not be released a second time.
	releaseAll := func(consumedIdx int, consumedVal bool) {
		for i, op := range ops {
			vm.Release(op.ch)
			if i == consumedIdx && consumedVal {
				continue
			}
			vm.Release(op.val)
		}
	}

	for {
		for off := 0; off < n; off++ {
			i := (start + off) % n
			op := ops[i]
			if op.ch.Kind() == vm.KindNil {
				continue // a nil-channel case is never ready
			}
			ch := op.ch.Handle().(*vm.Channel)

			switch op.dir {
			case vm.SelectSend:
				switch ch.TrySend(op.val) {
				case vm.ChanOK:
					releaseAll(i, true)
					stk.Push(vm.Int(i))
					return nil
				case vm.ChanClosed:
					releaseAll(-1, false)
					return vmerr.ErrChannelClosed
				case vm.ChanFull:
					// try the next case this pass
				}

			case vm.SelectRecv:
				v, res := ch.TryRecv()
				switch res {
				case vm.ChanOK:
					releaseAll(-1, false)
					stk.Push(vm.Int(i))
					stk.Push(v)
					stk.Push(vm.Bool(true))
					return nil
				case vm.ChanClosed:
					releaseAll(-1, false)
					stk.Push(vm.Int(i))
					stk.Push(zeroForKind(ch.ElemKind()))
					stk.Push(vm.Bool(false))
					return nil
				case vm.ChanEmpty:
					// try the next case this pass
				}
			}
		}

		if desc.HasDefault {
			releaseAll(-1, false)
			stk.Push(vm.Int(-1))
			return nil
		}
		y.Yield()
	}
}
