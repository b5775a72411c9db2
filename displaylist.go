package canvas

// List is the sealed output of a Recorder: an immutable recorded command
// sequence implementing DisplayList. Replay only reads the list, so one
// List may play back any number of times and against several Renderers
// at once.
type List struct {
	name   string
	bounds Rect
	cmds   []command
}

var _ DisplayList = (*List)(nil)

// Name returns the debug label of the recorder that produced the list.
func (l *List) Name() string { return l.name }

// Bounds returns the viewport rectangle the list was recorded against.
func (l *List) Bounds() Rect { return l.bounds }

// IsEmpty reports whether the list holds no commands.
func (l *List) IsEmpty() bool { return l == nil || len(l.cmds) == 0 }

// Len returns the number of recorded commands.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.cmds)
}

// Replay issues the recorded operations against r in order, stopping at
// the first command whose status is not OK and returning it. Restore
// markers recorded against the recording baseline are rebased onto r's
// entry save count, so the list unwinds only states it pushed itself.
func (l *List) Replay(r Renderer) Status {
	if l.IsEmpty() {
		return StatusDone
	}
	base := r.SaveCount() - 1
	for _, cmd := range l.cmds {
		if st := cmd.apply(r, base); !st.OK() {
			Logger().Warn("canvas: replay stopped",
				"list", l.name, "op", cmd.Type().String(), "status", st.String())
			return st
		}
	}
	return StatusDone
}
