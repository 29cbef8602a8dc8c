package ordered

// state is the lifecycle shared by all join engines. A join starts ready and
// moves to exhausted exactly once: when its termination condition is met or
// when Stop is called. It never goes back.
type state uint8

const (
	ready state = iota
	exhausted
)
