package memory

import "sync"

// gate serializa las escrituras hechas fuera de una transacción con RunNumbered/RunReview.
// Los repos que recibe fn dentro de la transacción llevan un gate vacío.
type gate struct {
	mu *sync.Mutex
}

func (g gate) enter() func() {
	if g.mu == nil {
		return func() {}
	}
	g.mu.Lock()
	return g.mu.Unlock
}
