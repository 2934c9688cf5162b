package watch

import "sync"

// DefaultHistorySize is the default number of samples retained per metric.
const DefaultHistorySize = 120

// History stores recent metric samples in ring buffers. CPU and memory hold
// percentages for sparkline rendering; the network buffers hold cumulative
// byte counters so throughput can be derived from sample deltas.
type History struct {
	mu     sync.RWMutex
	size   int
	cpu    *ringBuffer
	mem    *ringBuffer
	netIn  *ringBuffer
	netOut *ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker with the specified buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:   size,
		cpu:    newRingBuffer(size),
		mem:    newRingBuffer(size),
		netIn:  newRingBuffer(size),
		netOut: newRingBuffer(size),
	}
}

// PushUsage records one CPU and memory percentage sample.
func (h *History) PushUsage(cpuPercent, memPercent float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cpu.push(cpuPercent)
	h.mem.push(memPercent)
}

// PushNetwork records one sample of the cumulative network counters.
func (h *History) PushNetwork(bytesRecv, bytesSent uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.netIn.push(float64(bytesRecv))
	h.netOut.push(float64(bytesSent))
}

// CPU returns the last count CPU percentages, oldest first. Returns fewer
// values if not enough history is available.
func (h *History) CPU(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.getLast(count)
}

// Memory returns the last count memory percentages, oldest first.
func (h *History) Memory(count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.mem.getLast(count)
}

// NetworkRate derives receive and send throughput in bytes per second from
// the delta of the two most recent counter samples. Needs at least two
// samples; returns zeros until then.
func (h *History) NetworkRate(intervalSec float64) (inPerSec, outPerSec float64) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if intervalSec <= 0 {
		return 0, 0
	}

	in := h.netIn.getLast(2)
	out := h.netOut.getLast(2)
	if len(in) < 2 || len(out) < 2 {
		return 0, 0
	}

	inDelta := in[1] - in[0]
	outDelta := out[1] - out[0]

	// Counter reset or wraparound shows up as a negative delta.
	if inDelta < 0 {
		inDelta = 0
	}
	if outDelta < 0 {
		outDelta = 0
	}

	return inDelta / intervalSec, outDelta / intervalSec
}

// Count returns the number of CPU samples stored.
func (h *History) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cpu.count
}

// Clear removes all stored samples.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cpu = newRingBuffer(h.size)
	h.mem = newRingBuffer(h.size)
	h.netIn = newRingBuffer(h.size)
	h.netOut = newRingBuffer(h.size)
}

// newRingBuffer creates a ring buffer with the specified capacity.
func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value to the ring buffer.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}

	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head points to the next write position, so the most recent value is
	// at head-1 and we want count values ending there.
	start := (r.head - count + r.size) % r.size

	for i := 0; i < count; i++ {
		idx := (start + i) % r.size
		result[i] = r.data[idx]
	}

	return result
}
