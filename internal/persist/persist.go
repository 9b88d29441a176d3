// Package persist synchronizes the entity store with the durable key-value
// store. It is the only component that touches storage: the engine hands it
// collections after every mutation, and at startup it rebuilds the store
// from the three legacy-compatible keys, substituting safe defaults for
// anything missing or malformed.
package persist

import (
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/ideaboard/internal/authz"
	"github.com/gravadigital/ideaboard/internal/board"
	"github.com/gravadigital/ideaboard/internal/domain/participant"
	"github.com/gravadigital/ideaboard/internal/domain/proposal"
	"github.com/gravadigital/ideaboard/internal/logger"
	"github.com/gravadigital/ideaboard/internal/storage"
)

// Storage keys, unchanged from the legacy board so existing stores load.
const (
	KeyProposals    = "ideaboard.ideas"
	KeyParticipants = "ideaboard.users"
	KeySession      = "ideaboard.currentUser"
)

// Synchronizer sits between the entity store and the durable key-value
// store. Loads are defensive and never fail the caller; saves report
// storage errors up so the engine can surface them.
type Synchronizer struct {
	kv  storage.KeyValue
	log *log.Logger
}

// NewSynchronizer creates a synchronizer over the given store.
func NewSynchronizer(kv storage.KeyValue) *Synchronizer {
	return &Synchronizer{
		kv:  kv,
		log: logger.Synchronizer(),
	}
}

// DefaultRoster returns the built-in participants used when the stored
// roster is absent or fails its shape check: two employees, a manager and
// an admin, with stable legacy ids.
func DefaultRoster() []*participant.Participant {
	return []*participant.Participant{
		{ID: "u1", Name: "Aruzhan S.", Role: authz.RoleEmployee, Dept: "Marketing"},
		{ID: "u2", Name: "Yermek T.", Role: authz.RoleEmployee, Dept: "IT"},
		{ID: "u3", Name: "Manager Aibek", Role: authz.RoleManager, Dept: "Operations"},
		{ID: "u4", Name: "Admin Nurzhan", Role: authz.RoleAdmin, Dept: "HQ"},
	}
}

// Load rebuilds the entity store from durable storage. Malformed content is
// logged and replaced by the defined fallback, never surfaced as an error.
func (s *Synchronizer) Load() *board.Store {
	store := board.NewStore()
	store.Proposals = s.loadProposals()
	store.Participants = s.loadParticipants()
	store.SessionID = s.loadSession()
	return store
}

// SaveProposals serializes the proposal collection to its key.
func (s *Synchronizer) SaveProposals(proposals []*proposal.Proposal) error {
	return s.save(KeyProposals, proposals)
}

// SaveParticipants serializes the roster to its key.
func (s *Synchronizer) SaveParticipants(participants []*participant.Participant) error {
	return s.save(KeyParticipants, participants)
}

// SaveSession stores the current-session participant id.
func (s *Synchronizer) SaveSession(participantID string) error {
	return s.save(KeySession, participantID)
}

// ClearSession forgets the current session without touching the data keys.
func (s *Synchronizer) ClearSession() error {
	return s.kv.Delete(KeySession)
}

func (s *Synchronizer) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Put(key, string(data))
}

func (s *Synchronizer) loadProposals() []*proposal.Proposal {
	raw, ok, err := s.kv.Get(KeyProposals)
	if err != nil {
		s.log.Warn("failed to read proposals, starting empty", "error", err)
		return make([]*proposal.Proposal, 0)
	}
	if !ok {
		return make([]*proposal.Proposal, 0)
	}

	var proposals []*proposal.Proposal
	if err := json.Unmarshal([]byte(raw), &proposals); err != nil {
		s.log.Warn("stored proposals are malformed, starting empty", "error", err)
		return make([]*proposal.Proposal, 0)
	}
	if proposals == nil {
		return make([]*proposal.Proposal, 0)
	}
	return proposals
}

func (s *Synchronizer) loadParticipants() []*participant.Participant {
	raw, ok, err := s.kv.Get(KeyParticipants)
	if err != nil {
		s.log.Warn("failed to read roster, using defaults", "error", err)
		return DefaultRoster()
	}
	if !ok {
		return DefaultRoster()
	}

	var participants []*participant.Participant
	if err := json.Unmarshal([]byte(raw), &participants); err != nil {
		s.log.Warn("stored roster is malformed, using defaults", "error", err)
		return DefaultRoster()
	}
	for _, p := range participants {
		if !p.Valid() {
			s.log.Warn("stored roster failed its shape check, using defaults")
			return DefaultRoster()
		}
	}
	if len(participants) == 0 {
		return DefaultRoster()
	}
	return participants
}

// loadSession accepts both historical encodings of the session id, a
// JSON-quoted bare string and an {"id": ...} wrapper, and normalizes to a
// plain id here so nothing deeper ever branches on shape. Unparseable
// non-empty values are kept verbatim, matching the legacy reader.
func (s *Synchronizer) loadSession() string {
	raw, ok, err := s.kv.Get(KeySession)
	if err != nil {
		s.log.Warn("failed to read session, starting logged out", "error", err)
		return ""
	}
	if !ok {
		return ""
	}

	var bare string
	if err := json.Unmarshal([]byte(raw), &bare); err == nil {
		return bare
	}

	var wrapper struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapper); err == nil && wrapper.ID != "" {
		return wrapper.ID
	}

	return raw
}
