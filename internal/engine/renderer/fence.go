package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/SettlerNVG/go-terrain/internal/engine/frames"
	"github.com/SettlerNVG/go-terrain/internal/logger"
)

const fenceTimeoutNs = uint64(1e9)

// SignalFence inserts a fence into the command stream after the slot's
// frame has been submitted. An older fence on the slot is released first.
func (r *Renderer) SignalFence(slot *frames.Slot) {
	if slot.Fence != 0 {
		gl.DeleteSync(uintptr(slot.Fence))
	}
	slot.Fence = uint64(gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0))
}

// WaitFence blocks until the GPU has consumed the slot's previous frame.
// A slot that has never been submitted has no fence and is free to write.
func (r *Renderer) WaitFence(slot *frames.Slot) {
	if slot.Fence == 0 {
		return
	}
	for {
		status := gl.ClientWaitSync(uintptr(slot.Fence), gl.SYNC_FLUSH_COMMANDS_BIT, fenceTimeoutNs)
		switch status {
		case gl.ALREADY_SIGNALED, gl.CONDITION_SATISFIED:
			gl.DeleteSync(uintptr(slot.Fence))
			slot.Fence = 0
			return
		case gl.WAIT_FAILED:
			logger.Warn("fence wait failed", zap.Int("slot", slot.Index))
			gl.DeleteSync(uintptr(slot.Fence))
			slot.Fence = 0
			return
		}
		// TIMEOUT_EXPIRED: keep waiting.
	}
}

// ReleaseFences drops any outstanding fences, used during shutdown.
func (r *Renderer) ReleaseFences(ring *frames.Ring) {
	for i := 0; i < frames.SlotCount; i++ {
		slot := ring.Advance()
		if slot.Fence != 0 {
			gl.DeleteSync(uintptr(slot.Fence))
			slot.Fence = 0
		}
	}
}
