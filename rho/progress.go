package rho

// progress converts visited node counts into percentages of the BWT length.
// A nil progress ignores visits.
type progress struct {
	total uint64
	last  int
	fn    func(percent int)
}

func newProgress(total uint64, fn func(percent int)) *progress {
	if fn == nil || total == 0 {
		return nil
	}
	return &progress{total: total, last: -1, fn: fn}
}

func (p *progress) visit(nodes uint64) {
	if p == nil {
		return
	}
	percent := int(nodes * 100 / p.total)
	if percent > 100 {
		percent = 100
	}
	if percent > p.last {
		p.last = percent
		p.fn(percent)
	}
}
