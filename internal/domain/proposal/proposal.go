package proposal

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/gravadigital/ideaboard/internal/domain/common"
	"github.com/gravadigital/ideaboard/internal/domain/participant"
)

// Proposal is a submitted idea moving through the review workflow.
// Author name and department are denormalized at submission time so cards
// keep rendering the same byline even if the roster changes later.
type Proposal struct {
	ID         string        `json:"id"`
	AuthorID   string        `json:"authorId"`
	AuthorName string        `json:"authorName"`
	Dept       string        `json:"dept,omitempty"`
	Title      string        `json:"title"`
	Desc       string        `json:"desc"`
	Category   Category      `json:"category"`
	Status     Status        `json:"status"`
	Votes      int           `json:"votes"`
	VoterIDs   []string      `json:"voterIds"`
	Comments   []Comment     `json:"comments"`
	CreatedAt  common.Millis `json:"createdAt"`
	Project    *Project      `json:"project,omitempty"`
}

// Comment is an immutable, append-only note on a proposal.
type Comment struct {
	ID        string        `json:"id"`
	UserID    string        `json:"userId"`
	UserName  string        `json:"userName"`
	Text      string        `json:"text"`
	CreatedAt common.Millis `json:"createdAt"`
}

// Project is attached to a proposal exactly once, when an authorized
// participant converts it out of the review workflow.
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	OwnerID   string        `json:"ownerId"`
	CreatedAt common.Millis `json:"createdAt"`
}

// New creates a proposal in the initial workflow state, authored by the
// given participant. Title and description arrive pre-trimmed by the engine.
func New(author *participant.Participant, title, desc string, category Category) *Proposal {
	return &Proposal{
		ID:         uuid.NewString(),
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Dept:       author.Dept,
		Title:      title,
		Desc:       desc,
		Category:   category,
		Status:     StatusProposed,
		Votes:      0,
		VoterIDs:   make([]string, 0),
		Comments:   make([]Comment, 0),
		CreatedAt:  common.Now(),
	}
}

// NewComment creates a comment with a fresh id and trimmed text.
func NewComment(author *participant.Participant, text string) Comment {
	return Comment{
		ID:        uuid.NewString(),
		UserID:    author.ID,
		UserName:  author.Name,
		Text:      strings.TrimSpace(text),
		CreatedAt: common.Now(),
	}
}

// NewProject creates the project record attached on conversion.
func NewProject(name, ownerID string) *Project {
	return &Project{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		OwnerID:   ownerID,
		CreatedAt: common.Now(),
	}
}

// HasVoter reports whether the participant already upvoted this proposal.
func (p *Proposal) HasVoter(participantID string) bool {
	return slices.Contains(p.VoterIDs, participantID)
}

// AddVoter records an upvote. The vote counter is always recomputed from
// the voter set, so the two can never drift apart.
func (p *Proposal) AddVoter(participantID string) {
	if p.HasVoter(participantID) {
		return
	}
	p.VoterIDs = append(p.VoterIDs, participantID)
	p.Votes = len(p.VoterIDs)
}

// RemoveVoter retracts an upvote, if present.
func (p *Proposal) RemoveVoter(participantID string) {
	p.VoterIDs = slices.DeleteFunc(p.VoterIDs, func(id string) bool {
		return id == participantID
	})
	p.Votes = len(p.VoterIDs)
}

// AddComment appends a comment, preserving insertion order.
func (p *Proposal) AddComment(c Comment) {
	p.Comments = append(p.Comments, c)
}

// CommentCount returns the number of comments on the proposal.
func (p *Proposal) CommentCount() int {
	return len(p.Comments)
}

// HasProject reports whether the proposal was already converted.
func (p *Proposal) HasProject() bool {
	return p.Project != nil
}
