package model

// ChangeRequest is a handle to an asynchronous snapshot diff started by
// DenseEngine.RequestChanges. Abandoning a handle without polling it cancels
// it: the engine's snapshot is not advanced, so a later request or sync still
// reports those changes, diffed against the board as it is then.
type ChangeRequest struct {
	done    chan struct{}
	changes []Change
}

// Done is closed once the diff has been computed.
func (r *ChangeRequest) Done() <-chan struct{} { return r.done }

func (r *ChangeRequest) ready() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// RequestChanges freezes the current board and starts diffing it against the
// snapshot in the background. The board may keep stepping meanwhile. A request
// that is still unpolled counts as abandoned: it is waited for and dropped, and
// its handle never completes.
func (e *DenseEngine) RequestChanges() *ChangeRequest {
	e.discardInflight()

	e.frozen.CopyFrom(e.current)
	req := &ChangeRequest{done: make(chan struct{})}
	e.inflight = req

	frozen, snapshot, compactor := e.frozen, e.snapshot, e.readback
	go func() {
		defer close(req.done)
		req.changes = diffBoards(compactor, frozen, snapshot)
	}()
	return req
}

// PollChanges returns the result of req once it is ready. The first successful
// poll advances the snapshot to the board as it was when the request was made.
// Handles superseded by a newer request, Initialize or ChangedCellsSinceLastSync
// never complete.
func (e *DenseEngine) PollChanges(req *ChangeRequest) ([]Change, bool) {
	if req == nil || req != e.inflight || !req.ready() {
		return nil, false
	}
	e.snapshot.CopyFrom(e.frozen)
	e.inflight = nil
	return req.changes, true
}

// discardInflight waits for an outstanding request to finish so its buffers
// can be reused, then forgets it.
func (e *DenseEngine) discardInflight() {
	if e.inflight == nil {
		return
	}
	<-e.inflight.done
	e.inflight = nil
}
