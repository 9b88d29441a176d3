package board

import (
	"sort"
	"strings"

	"github.com/gravadigital/ideaboard/internal/domain/proposal"
)

// SortMode orders a projected proposal list.
type SortMode string

const (
	// SortTop orders by votes, newest first among ties.
	SortTop SortMode = "top"
	// SortNew orders by creation time, newest first.
	SortNew SortMode = "new"
	// SortActive orders by comment count.
	SortActive SortMode = "active"
)

// FilterAll matches every category or status.
const FilterAll = "all"

// Query is a view specification: free-text search, category and status
// filters, and a sort mode. Zero values mean "no filter" and SortTop.
type Query struct {
	Text     string
	Category string
	Status   string
	Sort     SortMode
}

// Project applies the query to a snapshot of proposals and returns a fresh
// ordered slice. The source is never mutated, so repeated and concurrent
// reads are safe. Filters compose before the sort.
func Project(proposals []*proposal.Proposal, q Query) []*proposal.Proposal {
	out := make([]*proposal.Proposal, 0, len(proposals))

	text := strings.ToLower(strings.TrimSpace(q.Text))
	for _, p := range proposals {
		if text != "" && !matchesText(p, text) {
			continue
		}
		if q.Category != "" && q.Category != FilterAll && string(p.Category) != q.Category {
			continue
		}
		if q.Status != "" && q.Status != FilterAll && string(p.Status) != q.Status {
			continue
		}
		out = append(out, p)
	}

	switch q.Sort {
	case SortNew:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case SortActive:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CommentCount() > out[j].CommentCount()
		})
	default: // SortTop
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Votes != out[j].Votes {
				return out[i].Votes > out[j].Votes
			}
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// Projects returns the proposals that were converted into tracked projects,
// in collection order.
func Projects(proposals []*proposal.Proposal) []*proposal.Proposal {
	out := make([]*proposal.Proposal, 0)
	for _, p := range proposals {
		if p.HasProject() {
			out = append(out, p)
		}
	}
	return out
}

// ByAuthor returns the proposals authored by the given participant, in
// collection order.
func ByAuthor(proposals []*proposal.Proposal, participantID string) []*proposal.Proposal {
	out := make([]*proposal.Proposal, 0)
	for _, p := range proposals {
		if p.AuthorID == participantID {
			out = append(out, p)
		}
	}
	return out
}

func matchesText(p *proposal.Proposal, text string) bool {
	return strings.Contains(strings.ToLower(p.Title), text) ||
		strings.Contains(strings.ToLower(p.Desc), text) ||
		strings.Contains(strings.ToLower(string(p.Category)), text) ||
		strings.Contains(strings.ToLower(p.Dept), text)
}
