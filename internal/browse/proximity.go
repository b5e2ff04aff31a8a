package browse

// Proximity carries "near the end of the list" reports from a presentation
// client to Controller.Watch. At most one report is pending; further ones
// are dropped until Watch takes it, since LoadMore would ignore them anyway.
type Proximity struct {
	ch chan bool
}

func NewProximity() *Proximity {
	return &Proximity{ch: make(chan bool, 1)}
}

// Report queues a load trigger when near is true. It reports whether the
// trigger was queued.
func (p *Proximity) Report(near bool) bool {
	if !near {
		return false
	}
	select {
	case p.ch <- true:
		return true
	default:
		return false
	}
}

// Signals is the channel Watch reads.
func (p *Proximity) Signals() <-chan bool {
	return p.ch
}
