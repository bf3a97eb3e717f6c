package onboarding

import "sync"

// flowStore is the in-memory registry of live flows.
type flowStore struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

func newFlowStore() *flowStore {
	return &flowStore{flows: make(map[string]*Flow)}
}

func (s *flowStore) put(f *Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[f.ID] = f
}

func (s *flowStore) get(id string) (*Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.flows[id]
	return f, ok
}

func (s *flowStore) all() []*Flow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Flow, 0, len(s.flows))
	for _, f := range s.flows {
		out = append(out, f)
	}
	return out
}
