package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/acollard/mp-register/internal/register"
)

const snapshotFile = "members.json"

// Storage handles persistence of member snapshots and archived pages.
type Storage struct {
	dataDir string
}

// New creates a Storage instance rooted at dataDir, creating it if needed.
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{dataDir: dataDir}, nil
}

// Snapshot is the durable keyed result set: member full name → aggregate.
type Snapshot struct {
	Members   map[string]*register.Member `json:"members"`
	UpdatedAt string                      `json:"updated_at"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{Members: make(map[string]*register.Member)}
}

// Has reports whether a member is already present, letting a restarted run
// skip members processed before the interruption.
func (s *Snapshot) Has(name string) bool {
	_, ok := s.Members[name]
	return ok
}

// Put stores a member aggregate, replacing any previous entry for the name.
func (s *Snapshot) Put(m *register.Member) {
	s.Members[m.Name] = m
}

// SortedMembers returns the members ordered by name for deterministic output.
func (s *Snapshot) SortedMembers() []*register.Member {
	members := make([]*register.Member, 0, len(s.Members))
	for _, m := range s.Members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })
	return members
}

// LoadSnapshot loads the snapshot from disk, returning an empty snapshot
// when none exists yet.
func (s *Storage) LoadSnapshot() (*Snapshot, error) {
	data, err := os.ReadFile(filepath.Join(s.dataDir, snapshotFile))
	if err != nil {
		if os.IsNotExist(err) {
			return NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snapshot.Members == nil {
		snapshot.Members = make(map[string]*register.Member)
	}

	return &snapshot, nil
}

// SaveSnapshot writes the snapshot to disk. Called after each member so a
// mid-run failure loses at most the in-flight member.
func (s *Storage) SaveSnapshot(snapshot *Snapshot) error {
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dataDir, snapshotFile), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}
