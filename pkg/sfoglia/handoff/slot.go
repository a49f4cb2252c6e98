package handoff

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// ErrNotFound indicates the slot is absent: never written, already
// consumed, or swept after its TTL expired.
var ErrNotFound = errors.New("handoff slot not found")

// ErrSlotExists indicates an id collision on write. Ids are fresh
// UUIDs, so this only fires on misuse (reusing an id by hand).
var ErrSlotExists = errors.New("handoff slot already exists")

// SlotStore is keyed, write-once read-once storage for handoff
// payloads. Take must be atomic: of any number of concurrent callers
// for the same id, exactly one receives the payload and the rest get
// ErrNotFound.
type SlotStore interface {
	Put(id string, payload []byte) error
	Take(id string) ([]byte, error)
}

// MemoryStore keeps slots in process memory. Sufficient when both
// surfaces live in one process; a detached window running as its own
// process needs the FileStore instead.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	slots map[string]memorySlot
}

type memorySlot struct {
	payload []byte
	written time.Time
}

// NewMemoryStore creates an in-process store. ttl <= 0 uses the
// default.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = constants.DefaultHandoffTTL
	}
	return &MemoryStore{ttl: ttl, slots: make(map[string]memorySlot)}
}

// Put writes a slot; fails if the id is already present. Expired slots
// are swept on every write so an unconsumed handoff cannot accumulate.
func (s *MemoryStore) Put(id string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, slot := range s.slots {
		if now.Sub(slot.written) > s.ttl {
			delete(s.slots, k)
		}
	}

	if _, ok := s.slots[id]; ok {
		return ErrSlotExists
	}
	s.slots[id] = memorySlot{payload: payload, written: now}
	return nil
}

// Take returns and deletes the slot in one step.
func (s *MemoryStore) Take(id string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(s.slots, id)
	if time.Since(slot.written) > s.ttl {
		return nil, ErrNotFound
	}
	return slot.payload, nil
}

// FileStore keeps slots as files in a shared directory, for handoffs
// that cross a process boundary (a detached OS window). Exactly-once
// consumption rides on rename atomicity: Take claims the slot by
// renaming it to a claimant-unique path before reading, so of two
// racing readers only one rename succeeds.
type FileStore struct {
	dir string
	ttl time.Duration
}

// NewFileStore creates a file-backed store rooted at dir, creating it
// if needed. ttl <= 0 uses the default.
func NewFileStore(dir string, ttl time.Duration) (*FileStore, error) {
	if ttl <= 0 {
		ttl = constants.DefaultHandoffTTL
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir, ttl: ttl}, nil
}

// Put writes a slot file with O_EXCL so an id can never be written
// twice, then sweeps expired slot files.
func (s *FileStore) Put(id string, payload []byte) error {
	f, err := os.OpenFile(s.slotPath(id), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		if os.IsExist(err) {
			return ErrSlotExists
		}
		return err
	}
	_, werr := f.Write(payload)
	cerr := f.Close()
	if werr != nil {
		return werr
	}
	if cerr != nil {
		return cerr
	}

	s.sweep()
	return nil
}

// Take claims the slot by rename, reads it, and removes it.
func (s *FileStore) Take(id string) ([]byte, error) {
	claimed := filepath.Join(s.dir, sanitizeID(id)+".claim."+uuid.NewString())
	if err := os.Rename(s.slotPath(id), claimed); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	payload, err := os.ReadFile(claimed)
	os.Remove(claimed)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func (s *FileStore) slotPath(id string) string {
	return filepath.Join(s.dir, sanitizeID(id)+constants.HandoffFileSuffix)
}

func (s *FileStore) sweep() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-s.ttl)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, constants.HandoffFileSuffix) && !strings.Contains(name, ".claim.") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(s.dir, name))
		}
	}
}

// sanitizeID keeps slot filenames flat even if a caller passes a
// hostile id. Generated ids are UUIDs and pass through unchanged.
func sanitizeID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		default:
			return '_'
		}
	}, id)
}
