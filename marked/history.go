package marked

// Operation names a boundary operation.
type Operation uint8

const (
	OpAppend Operation = iota + 1
	OpPrepend
	OpInsert
)

func (op Operation) String() string {
	switch op {
	case OpAppend:
		return "append"
	case OpPrepend:
		return "prepend"
	case OpInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Touched reports whether any boundary operation ran since construction or
// the last Clear.
func (t *Text) Touched() bool { return len(t.history) > 0 }

// History returns the recorded operations, oldest first. It holds at most
// Options.HistoryLimit entries.
func (t *Text) History() []Operation {
	return append([]Operation(nil), t.history...)
}

// LastOperation returns the most recent boundary operation.
func (t *Text) LastOperation() (Operation, bool) {
	if len(t.history) == 0 {
		return 0, false
	}
	return t.history[len(t.history)-1], true
}

func (t *Text) record(op Operation) {
	t.history = append(t.history, op)
	if limit := t.opt.HistoryLimit; len(t.history) > limit {
		t.history = t.history[len(t.history)-limit:]
	}
	t.version++
	t.log.Trace("boundary operation", "op", op.String(), "fragments", len(t.fragments), "version", t.version)
}
