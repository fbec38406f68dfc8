package updeto

import "context"

// Callback and single-shot channel adapters over the blocking check shapes.
// Every adapter completes exactly once per invocation: callbacks are invoked
// once and never again, channels deliver one element and are then closed.
// Channels are buffered so a caller that abandons the result does not leak
// the worker goroutine; cancellation is communicated through ctx.

// StatusOutcome is the element type of the detailed status channel: either a
// result or an error, never both meaningfully set.
type StatusOutcome struct {
	Result LookupResult
	Err    error
}

// InfoOutcome is the element type of the detailed info channel.
type InfoOutcome struct {
	Info *UpdateInfo
	Err  error
}

// CheckStatusAsync runs CheckStatus on its own goroutine and invokes fn
// exactly once with the result.
func (u *Updeto) CheckStatusAsync(ctx context.Context, fn func(LookupResult)) {
	go func() {
		fn(u.CheckStatus(ctx))
	}()
}

// CheckStatusDetailedAsync runs CheckStatusDetailed on its own goroutine and
// invokes fn exactly once with the result and error.
func (u *Updeto) CheckStatusDetailedAsync(ctx context.Context, fn func(LookupResult, error)) {
	go func() {
		fn(u.CheckStatusDetailed(ctx))
	}()
}

// CheckInfoAsync runs CheckInfo on its own goroutine and invokes fn exactly
// once with the result envelope.
func (u *Updeto) CheckInfoAsync(ctx context.Context, fn func(*UpdateInfo)) {
	go func() {
		fn(u.CheckInfo(ctx))
	}()
}

// CheckInfoDetailedAsync runs CheckInfoDetailed on its own goroutine and
// invokes fn exactly once with the envelope and error.
func (u *Updeto) CheckInfoDetailedAsync(ctx context.Context, fn func(*UpdateInfo, error)) {
	go func() {
		fn(u.CheckInfoDetailed(ctx))
	}()
}

// CheckStatusChan returns a channel that delivers the CheckStatus result
// exactly once and is then closed.
func (u *Updeto) CheckStatusChan(ctx context.Context) <-chan LookupResult {
	ch := make(chan LookupResult, 1)
	go func() {
		defer close(ch)
		ch <- u.CheckStatus(ctx)
	}()
	return ch
}

// CheckStatusDetailedChan returns a channel that delivers one StatusOutcome
// and is then closed.
func (u *Updeto) CheckStatusDetailedChan(ctx context.Context) <-chan StatusOutcome {
	ch := make(chan StatusOutcome, 1)
	go func() {
		defer close(ch)
		result, err := u.CheckStatusDetailed(ctx)
		ch <- StatusOutcome{Result: result, Err: err}
	}()
	return ch
}

// CheckInfoChan returns a channel that delivers the CheckInfo envelope
// exactly once and is then closed.
func (u *Updeto) CheckInfoChan(ctx context.Context) <-chan *UpdateInfo {
	ch := make(chan *UpdateInfo, 1)
	go func() {
		defer close(ch)
		ch <- u.CheckInfo(ctx)
	}()
	return ch
}

// CheckInfoDetailedChan returns a channel that delivers one InfoOutcome and
// is then closed.
func (u *Updeto) CheckInfoDetailedChan(ctx context.Context) <-chan InfoOutcome {
	ch := make(chan InfoOutcome, 1)
	go func() {
		defer close(ch)
		info, err := u.CheckInfoDetailed(ctx)
		ch <- InfoOutcome{Info: info, Err: err}
	}()
	return ch
}
