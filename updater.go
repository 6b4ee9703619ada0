package nerdfont

import (
	"sync"
	"time"
)

// Updater 在文档变化时重新计算装饰
//
// 每次触发都针对完整文本快照从头计算，不做增量更新。节流触发会在
// Config.DebounceDelay 之后执行；新的触发会取消尚未执行的计算，因此只有
// 最新的快照会被交给 apply。
//
// Updater is safe for concurrent use. apply is called with decorations in
// trigger order and must not call Trigger synchronously.
type Updater struct {
	apply func([]Decoration)
	opts  []Option
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	stopped bool

	// applyMu serializes apply calls.
	applyMu sync.Mutex
}

// NewUpdater creates an Updater that passes each recomputed result to apply.
func NewUpdater(apply func([]Decoration), opts ...Option) *Updater {
	options := applyOptions(opts...)
	return &Updater{
		apply: apply,
		opts:  opts,
		delay: options.Config.DebounceDelay,
	}
}

// Trigger schedules a recompute of text. With throttle false the recompute
// runs before Trigger returns; otherwise it runs after the debounce delay
// unless another trigger supersedes it.
func (u *Updater) Trigger(text string, throttle bool) {
	u.mu.Lock()
	if u.stopped {
		u.mu.Unlock()
		return
	}
	u.cancelLocked()
	u.gen++
	gen := u.gen
	if throttle {
		u.timer = time.AfterFunc(u.delay, func() {
			u.run(text, gen)
		})
		u.mu.Unlock()
		return
	}
	u.mu.Unlock()

	u.run(text, gen)
}

// Stop cancels any pending recompute; later triggers are ignored.
func (u *Updater) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.stopped = true
	u.cancelLocked()
}

func (u *Updater) cancelLocked() {
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
}

func (u *Updater) current(gen uint64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return !u.stopped && gen == u.gen
}

func (u *Updater) run(text string, gen uint64) {
	if !u.current(gen) {
		return
	}
	decorations := Decorate(text, u.opts...)

	u.applyMu.Lock()
	defer u.applyMu.Unlock()
	// a newer trigger may have arrived while decorating
	if !u.current(gen) {
		return
	}
	Logger().Debug("decorations recomputed", "count", len(decorations), "generation", gen)
	u.apply(decorations)
}
