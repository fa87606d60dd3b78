// Package tickle implements the interval-based polling contract consumed
// by the presenter pipeline: register/unregister a client, adjust its
// polling interval, and advance every due client once per host-loop pass.
// The manager itself is the only thing in this module allowed to invoke
// a client's Tickle method — everything else only ever registers.
package tickle

// Unknown is the sentinel GetInterval returns for a client that was
// never registered, matching §6.3's 0x80000000 sentinel value.
const Unknown = int32(-0x80000000)

// Client is anything a Manager can advance. Tick is called at most once
// per Manager.Advance pass, and never outside of one.
type Client interface {
	Tick()
}

// record is a tickle client's bookkeeping, matching §4.H's
// {client, interval_ms, last_update_ms, flags} shape. Bit 0 of flags
// marks the record for removal on the next pass.
type record struct {
	client      Client
	intervalMs  int32
	lastUpdate  int64
	destroyFlag bool
}

const destroyBit = 1

// Manager is the tickle manager contract of §6.3. The zero value is
// ready to use.
type Manager struct {
	clients []*record
	index   map[Client]*record
}

// Register adds client with the given polling interval. A client already
// registered is left untouched — re-registering is a no-op, matching
// §4.H. A newly registered client is not ticked on the pass it was
// registered on; it first ticks on the next Advance call.
func (m *Manager) Register(c Client, intervalMs int32) {
	if m.index == nil {
		m.index = map[Client]*record{}
	}
	if _, ok := m.index[c]; ok {
		return
	}
	r := &record{client: c, intervalMs: intervalMs}
	m.index[c] = r
	m.clients = append(m.clients, r)
}

// Unregister marks client for removal on the next Advance pass, rather
// than removing it immediately — this keeps an Advance in progress from
// mutating the slice it is iterating.
func (m *Manager) Unregister(c Client) {
	if r, ok := m.index[c]; ok {
		r.destroyFlag = true
	}
}

// SetInterval changes a registered client's polling interval. Unknown
// clients are ignored.
func (m *Manager) SetInterval(c Client, intervalMs int32) {
	if r, ok := m.index[c]; ok {
		r.intervalMs = intervalMs
	}
}

// GetInterval returns a registered client's polling interval, or Unknown
// if c was never registered.
func (m *Manager) GetInterval(c Client) int32 {
	if r, ok := m.index[c]; ok {
		return r.intervalMs
	}
	return Unknown
}

// Advance runs one tickle pass at the given host time in milliseconds:
// every registered client whose interval has elapsed since its last
// update is ticked exactly once, in registration order, and every
// client marked for removal is then dropped from the manager.
func (m *Manager) Advance(nowMs int64) {
	live := m.clients[:0]
	for _, r := range m.clients {
		if r.destroyFlag {
			delete(m.index, r.client)
			continue
		}
		if nowMs-r.lastUpdate >= int64(r.intervalMs) {
			r.lastUpdate = nowMs
			r.client.Tick()
		}
		live = append(live, r)
	}
	m.clients = live
}
