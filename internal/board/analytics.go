package board

import (
	"github.com/gravadigital/ideaboard/internal/domain/proposal"
)

// Summary holds the aggregate numbers rendered on the analytics tab. Both
// histograms carry every known key, zero-filled, so empty bars need no
// special-casing downstream.
type Summary struct {
	TotalProposals int
	TotalVotes     int
	ProjectCount   int
	Top            *proposal.Proposal
	ByStatus       map[proposal.Status]int
	ByCategory     map[proposal.Category]int
}

// Summarize computes the summary over the full proposal collection. The top
// proposal is the highest-voted one, ties broken by first occurrence in
// collection order; it is nil over an empty collection.
func Summarize(proposals []*proposal.Proposal) Summary {
	s := Summary{
		TotalProposals: len(proposals),
		ByStatus:       make(map[proposal.Status]int, len(proposal.AllStatuses())),
		ByCategory:     make(map[proposal.Category]int, len(proposal.AllCategories())),
	}
	for _, status := range proposal.AllStatuses() {
		s.ByStatus[status] = 0
	}
	for _, category := range proposal.AllCategories() {
		s.ByCategory[category] = 0
	}

	for _, p := range proposals {
		s.TotalVotes += p.Votes
		if p.HasProject() {
			s.ProjectCount++
		}
		s.ByStatus[p.Status]++
		s.ByCategory[p.Category]++
		if s.Top == nil || p.Votes > s.Top.Votes {
			s.Top = p
		}
	}
	return s
}

// ParticipantStats are the profile-tab numbers for one participant.
type ParticipantStats struct {
	Authored         int
	VotesReceived    int
	CommentsReceived int
}

// StatsFor computes profile statistics over the proposals authored by the
// given participant.
func StatsFor(proposals []*proposal.Proposal, participantID string) ParticipantStats {
	var stats ParticipantStats
	for _, p := range proposals {
		if p.AuthorID != participantID {
			continue
		}
		stats.Authored++
		stats.VotesReceived += p.Votes
		stats.CommentsReceived += p.CommentCount()
	}
	return stats
}
