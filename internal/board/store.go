package board

import (
	"slices"

	"github.com/gravadigital/ideaboard/internal/domain/participant"
	"github.com/gravadigital/ideaboard/internal/domain/proposal"
)

// Store owns the canonical collections. It is pure data with lookup
// helpers; the Engine is its only writer, projections and analytics read
// fresh copies and never write back.
type Store struct {
	Proposals    []*proposal.Proposal
	Participants []*participant.Participant
	SessionID    string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Proposals:    make([]*proposal.Proposal, 0),
		Participants: make([]*participant.Participant, 0),
	}
}

// FindProposal returns the proposal with the given id, or nil.
func (s *Store) FindProposal(id string) *proposal.Proposal {
	for _, p := range s.Proposals {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// FindParticipant returns the participant with the given id, or nil.
func (s *Store) FindParticipant(id string) *participant.Participant {
	for _, p := range s.Participants {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// PrependProposal inserts a proposal at the head of the collection, so the
// stored order is newest-first like the legacy board kept it.
func (s *Store) PrependProposal(p *proposal.Proposal) {
	s.Proposals = append([]*proposal.Proposal{p}, s.Proposals...)
}

// AddParticipant appends a participant to the roster.
func (s *Store) AddParticipant(p *participant.Participant) {
	s.Participants = append(s.Participants, p)
}

// RemoveProposal deletes the proposal with the given id and reports
// whether it was present.
func (s *Store) RemoveProposal(id string) bool {
	n := len(s.Proposals)
	s.Proposals = slices.DeleteFunc(s.Proposals, func(p *proposal.Proposal) bool {
		return p.ID == id
	})
	return len(s.Proposals) != n
}
