package board

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/gravadigital/ideaboard/internal/authz"
	"github.com/gravadigital/ideaboard/internal/domain/participant"
	"github.com/gravadigital/ideaboard/internal/domain/proposal"
	"github.com/gravadigital/ideaboard/internal/logger"
)

// Persister commits collections to the durable store after a mutation.
// The persist package provides the real implementation.
type Persister interface {
	SaveProposals(proposals []*proposal.Proposal) error
	SaveParticipants(participants []*participant.Participant) error
	SaveSession(participantID string) error
	ClearSession() error
}

// Direction is the vote direction: up casts an upvote, down retracts one.
type Direction int

const (
	Up Direction = iota + 1
	Down
)

// Engine is the sole authority for state change. Every operation checks the
// acting participant's capabilities, applies the mutation to the store, and
// persists the affected collection. A mutex serializes mutations so callers
// sharing one engine across goroutines get last-writer-wins rather than
// interleaved writes.
type Engine struct {
	mu    sync.Mutex
	store *Store
	sync  Persister
	log   *log.Logger
}

// NewEngine creates an engine over a loaded store.
func NewEngine(store *Store, persister Persister) *Engine {
	return &Engine{
		store: store,
		sync:  persister,
		log:   logger.Engine(),
	}
}

// Register creates a participant with the given role and optional
// department. It does not log the new participant in; session selection is
// a separate concern.
func (e *Engine) Register(name, role, dept string) (*participant.Participant, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "is required"}
	}

	p := participant.New(name, role, dept)
	e.store.AddParticipant(p)
	if err := e.sync.SaveParticipants(e.store.Participants); err != nil {
		return nil, err
	}

	e.log.Info("participant registered", "id", p.ID, "role", p.Role)
	return p, nil
}

// SubmitProposal creates a proposal in the initial workflow state and
// prepends it to the collection.
func (e *Engine) SubmitProposal(actorID, title, desc string, category proposal.Category) (*proposal.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor, err := e.actor(actorID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor.Role, authz.CapabilitySubmit) {
		return nil, &PermissionError{Role: actor.Role, Action: "submit proposals"}
	}

	title = strings.TrimSpace(title)
	desc = strings.TrimSpace(desc)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "is required"}
	}
	if desc == "" {
		return nil, &ValidationError{Field: "description", Reason: "is required"}
	}

	p := proposal.New(actor, title, desc, category)
	e.store.PrependProposal(p)
	if err := e.sync.SaveProposals(e.store.Proposals); err != nil {
		return nil, err
	}

	e.log.Info("proposal submitted", "id", p.ID, "author", actor.ID, "category", category)
	return p, nil
}

// Vote casts or retracts an upvote. Voting up when already counted, or down
// when never counted, is a no-op that returns the unchanged proposal.
func (e *Engine) Vote(proposalID, actorID string, dir Direction) (*proposal.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor, err := e.actor(actorID)
	if err != nil {
		return nil, err
	}
	p := e.store.FindProposal(proposalID)
	if p == nil {
		return nil, &NotFoundError{Entity: "proposal", ID: proposalID}
	}
	if !authz.Can(actor.Role, authz.CapabilityVote) {
		return nil, &PermissionError{Role: actor.Role, Action: "vote"}
	}

	has := p.HasVoter(actor.ID)
	if (dir == Up && has) || (dir == Down && !has) {
		return p, nil
	}

	if dir == Up {
		p.AddVoter(actor.ID)
	} else {
		p.RemoveVoter(actor.ID)
	}
	if err := e.sync.SaveProposals(e.store.Proposals); err != nil {
		return nil, err
	}

	e.log.Debug("vote applied", "proposal", p.ID, "voter", actor.ID, "votes", p.Votes)
	return p, nil
}

// Comment appends a comment to the proposal. Text that trims to empty is a
// no-op returning the unchanged proposal.
func (e *Engine) Comment(proposalID, actorID, text string) (*proposal.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor, err := e.actor(actorID)
	if err != nil {
		return nil, err
	}
	p := e.store.FindProposal(proposalID)
	if p == nil {
		return nil, &NotFoundError{Entity: "proposal", ID: proposalID}
	}
	if !authz.Can(actor.Role, authz.CapabilityComment) {
		return nil, &PermissionError{Role: actor.Role, Action: "comment"}
	}

	if strings.TrimSpace(text) == "" {
		return p, nil
	}

	p.AddComment(proposal.NewComment(actor, text))
	if err := e.sync.SaveProposals(e.store.Proposals); err != nil {
		return nil, err
	}

	e.log.Debug("comment added", "proposal", p.ID, "author", actor.ID)
	return p, nil
}

// ChangeStatus sets the workflow state. Any known status is reachable from
// any other; moderation is trusted to override the nominal flow.
func (e *Engine) ChangeStatus(proposalID, actorID string, status proposal.Status) (*proposal.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor, err := e.actor(actorID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor.Role, authz.CapabilityModerate) {
		return nil, &PermissionError{Role: actor.Role, Action: "change status"}
	}
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Reason: "is not a known workflow state"}
	}
	p := e.store.FindProposal(proposalID)
	if p == nil {
		return nil, &NotFoundError{Entity: "proposal", ID: proposalID}
	}

	p.Status = status
	if err := e.sync.SaveProposals(e.store.Proposals); err != nil {
		return nil, err
	}

	e.log.Info("status changed", "proposal", p.ID, "status", status, "by", actor.ID)
	return p, nil
}

// ConvertToProject moves the proposal into the in_project state and attaches
// a project owned by the acting participant. First conversion wins: a
// proposal that already carries a project is returned unchanged.
func (e *Engine) ConvertToProject(proposalID, actorID, projectName string) (*proposal.Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor, err := e.actor(actorID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor.Role, authz.CapabilityConvert) {
		return nil, &PermissionError{Role: actor.Role, Action: "convert to project"}
	}
	if strings.TrimSpace(projectName) == "" {
		return nil, &ValidationError{Field: "project name", Reason: "is required"}
	}
	p := e.store.FindProposal(proposalID)
	if p == nil {
		return nil, &NotFoundError{Entity: "proposal", ID: proposalID}
	}

	if p.HasProject() {
		return p, nil
	}

	p.Status = proposal.StatusInProject
	p.Project = proposal.NewProject(projectName, actor.ID)
	if err := e.sync.SaveProposals(e.store.Proposals); err != nil {
		return nil, err
	}

	e.log.Info("proposal converted", "proposal", p.ID, "project", p.Project.ID, "owner", actor.ID)
	return p, nil
}

// DeleteProposal removes the proposal entirely. Reserved for the top
// privilege tier.
func (e *Engine) DeleteProposal(proposalID, actorID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	actor, err := e.actor(actorID)
	if err != nil {
		return err
	}
	if !authz.IsTopTier(actor.Role) {
		return &PermissionError{Role: actor.Role, Action: "delete proposals"}
	}
	if !e.store.RemoveProposal(proposalID) {
		return &NotFoundError{Entity: "proposal", ID: proposalID}
	}
	if err := e.sync.SaveProposals(e.store.Proposals); err != nil {
		return err
	}

	e.log.Info("proposal deleted", "proposal", proposalID, "by", actor.ID)
	return nil
}

// Login selects the current-session participant.
func (e *Engine) Login(participantID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store.FindParticipant(participantID) == nil {
		return &NotFoundError{Entity: "participant", ID: participantID}
	}
	e.store.SessionID = participantID
	return e.sync.SaveSession(participantID)
}

// Logout clears the current session without touching the data it protects.
func (e *Engine) Logout() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.store.SessionID = ""
	return e.sync.ClearSession()
}

// CurrentParticipant resolves the session id against the roster, or nil
// when nobody is logged in.
func (e *Engine) CurrentParticipant() *participant.Participant {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store.SessionID == "" {
		return nil
	}
	return e.store.FindParticipant(e.store.SessionID)
}

// Proposals returns a fresh slice of the proposal collection for read-only
// use by projections and analytics.
func (e *Engine) Proposals() []*proposal.Proposal {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*proposal.Proposal, len(e.store.Proposals))
	copy(out, e.store.Proposals)
	return out
}

// Participants returns a fresh slice of the roster.
func (e *Engine) Participants() []*participant.Participant {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*participant.Participant, len(e.store.Participants))
	copy(out, e.store.Participants)
	return out
}

func (e *Engine) actor(id string) (*participant.Participant, error) {
	p := e.store.FindParticipant(id)
	if p == nil {
		return nil, &NotFoundError{Entity: "participant", ID: id}
	}
	return p, nil
}
