package agentrunner

import (
	"context"
	"sync"
)

// StubRunner replays a scripted chunk sequence. Used in tests and for
// local bring-up without the inference service.
type StubRunner struct {
	// Script produces the chunks for one run. A nil Script yields an
	// immediate empty DoneChunk.
	Script func(input *Input) []Chunk
}

// Run streams the scripted chunks.
func (s *StubRunner) Run(ctx context.Context, input *Input) (Stream, error) {
	chunks := []Chunk{&DoneChunk{}}
	if s.Script != nil {
		chunks = s.Script(input)
	}

	st := &stubStream{ch: make(chan Chunk, len(chunks))}
	go func() {
		defer close(st.ch)
		for _, c := range chunks {
			select {
			case st.ch <- c:
			case <-ctx.Done():
				return
			}
		}
	}()
	return st, nil
}

type stubStream struct {
	ch chan Chunk

	mu      sync.Mutex
	merges  []string
	signals []string
}

func (s *stubStream) Chunks() <-chan Chunk { return s.ch }

func (s *stubStream) Merge(text string, _ map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merges = append(s.merges, text)
	return nil
}

func (s *stubStream) Signal(kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signals = append(s.signals, kind)
	return nil
}

func (s *stubStream) Close() error { return nil }

// Merges returns the injected merge texts, for assertions.
func (s *stubStream) Merges() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.merges))
	copy(out, s.merges)
	return out
}
