package frame

import "github.com/1broseidon/popframe/host"

// registry is the process-wide mapping from logical name to record. It
// replaces scanning the host's global window list with an explicit
// structure, which keeps the one-record-per-(name, buffer) invariant
// visible instead of incidental.
//
// Everything runs on the host's event thread, so no locking; callers
// that mutate while iterating must snapshot first (see all).
type registry struct {
	records map[string]*Record
}

func newRegistry() *registry {
	return &registry{records: make(map[string]*Record)}
}

// find returns the record matching name and bound content buffer.
func (g *registry) find(name string, content host.BufferID) (*Record, bool) {
	rec, ok := g.records[name]
	if !ok || rec.content != content {
		return nil, false
	}
	return rec, true
}

// lookup returns the record with the given name regardless of buffer.
func (g *registry) lookup(name string) (*Record, bool) {
	rec, ok := g.records[name]
	return rec, ok
}

func (g *registry) put(rec *Record) {
	g.records[rec.name] = rec
}

// all returns a snapshot of the records so callers can act on them
// without iterating the live map.
func (g *registry) all() []*Record {
	out := make([]*Record, 0, len(g.records))
	for _, rec := range g.records {
		out = append(out, rec)
	}
	return out
}

// anyVisible reports whether at least one record's window is shown.
func (g *registry) anyVisible() bool {
	for _, rec := range g.records {
		if rec.Visible() {
			return true
		}
	}
	return false
}
