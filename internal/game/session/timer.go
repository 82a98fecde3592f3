package session

import (
	"sync"
	"time"
)

// Countdown 每题倒计时。以固定步进递减剩余时间，归零时触发一次
// 到期回调。Pause 停止递减但保留剩余时间，Resume 从剩余时间继续，
// Reset 恢复满时长并重新计时。一个计时周期内到期回调至多触发一次，
// 只有显式 Reset 才会重新武装。
type Countdown struct {
	mu        sync.Mutex
	total     time.Duration
	tick      time.Duration
	remaining time.Duration
	running   bool
	expired   bool
	stopCh    chan struct{}

	onTick   func(remaining time.Duration)
	onExpire func()
}

// NewCountdown 创建倒计时，total 为满时长，tick 为步进
func NewCountdown(total, tick time.Duration) *Countdown {
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return &Countdown{
		total:     total,
		tick:      tick,
		remaining: total,
	}
}

// SetCallbacks 设置步进与到期回调。回调在计时协程上触发，
// 调用方负责把它们转发回自己的调度上下文。
func (c *Countdown) SetCallbacks(onTick func(time.Duration), onExpire func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onTick = onTick
	c.onExpire = onExpire
}

// Remaining 剩余时间
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Total 满时长
func (c *Countdown) Total() time.Duration {
	return c.total
}

// Running 是否正在计时
func (c *Countdown) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Expired 当前周期是否已到期
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

// Start 从当前剩余时间开始计时。已在计时或已到期时不做任何事。
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked()
}

func (c *Countdown) startLocked() {
	if c.running || c.expired || c.remaining <= 0 {
		return
	}
	stop := make(chan struct{})
	c.stopCh = stop
	c.running = true
	go c.run(stop)
}

// Pause 暂停计时，保留剩余时间。协作式取消：已调度但尚未执行的
// 步进在暂停后不会再修改状态。
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

// Resume 从暂停处继续计时，剩余时间不变
func (c *Countdown) Resume() {
	c.Start()
}

// Reset 恢复满时长并重新计时。若此前已到期，同时解除到期标记，
// 支持“同一手牌、重新给 10 秒”的答错重试流程。
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.remaining = c.total
	c.expired = false
	c.startLocked()
}

// Stop 取消计时，不触发回调。剩余时间保留，可被后续 Reset 复用。
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
}

func (c *Countdown) cancelLocked() {
	if c.stopCh != nil {
		close(c.stopCh)
		c.stopCh = nil
	}
	c.running = false
}

// run 计时循环。stop 与 c.stopCh 的比对保证取消后迟到的 tick
// 不会再递减状态。
func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.stopCh != stop {
				c.mu.Unlock()
				return
			}
			c.remaining -= c.tick
			if c.remaining < 0 {
				c.remaining = 0
			}
			rem := c.remaining
			onTick := c.onTick
			var onExpire func()
			if rem == 0 {
				c.expired = true
				c.running = false
				c.stopCh = nil
				onExpire = c.onExpire
			}
			c.mu.Unlock()

			if onTick != nil {
				onTick(rem)
			}
			if rem == 0 {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}
