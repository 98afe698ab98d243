package monitor

import "sync"

// DefaultHistorySize is the default number of samples retained per metric.
const DefaultHistorySize = 60

// History keeps recent CPU and memory percentages per node in ring buffers
// so the detail view can draw a sparkline. Snapshots only carry the latest
// values, so history exists only for as long as the dashboard runs.
type History struct {
	mu    sync.RWMutex
	size  int
	nodes map[string]*nodeHistory
}

type nodeHistory struct {
	cpu *ringBuffer
	ram *ringBuffer
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

// NewHistory creates a history tracker with the given buffer size.
func NewHistory(size int) *History {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &History{
		size:  size,
		nodes: make(map[string]*nodeHistory),
	}
}

// Push records one sample for a node.
func (h *History) Push(uuid string, cpuPercent, memPercent float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	hist, ok := h.nodes[uuid]
	if !ok {
		hist = &nodeHistory{
			cpu: newRingBuffer(h.size),
			ram: newRingBuffer(h.size),
		}
		h.nodes[uuid] = hist
	}
	hist.cpu.push(cpuPercent)
	hist.ram.push(memPercent)
}

// CPU returns up to count CPU samples for a node, oldest first.
func (h *History) CPU(uuid string, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	hist, ok := h.nodes[uuid]
	if !ok {
		return nil
	}
	return hist.cpu.getLast(count)
}

// RAM returns up to count memory samples for a node, oldest first.
func (h *History) RAM(uuid string, count int) []float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	hist, ok := h.nodes[uuid]
	if !ok {
		return nil
	}
	return hist.ram.getLast(count)
}

// Count returns the number of samples stored for a node.
func (h *History) Count(uuid string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	hist, ok := h.nodes[uuid]
	if !ok {
		return 0
	}
	return hist.cpu.count
}

// Retain drops history for every node not in keep.
func (h *History) Retain(keep []string) {
	wanted := make(map[string]bool, len(keep))
	for _, uuid := range keep {
		wanted[uuid] = true
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for uuid := range h.nodes {
		if !wanted[uuid] {
			delete(h.nodes, uuid)
		}
	}
}

// Clear removes all history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nodes = make(map[string]*nodeHistory)
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order.
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head is the next write position, so the newest value sits at head-1.
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
