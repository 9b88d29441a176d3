package persist

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/ideaboard/internal/authz"
	"github.com/gravadigital/ideaboard/internal/board"
	"github.com/gravadigital/ideaboard/internal/domain/proposal"
	"github.com/gravadigital/ideaboard/internal/storage/memory"
)

func TestLoadEmptyStore(t *testing.T) {
	sync := NewSynchronizer(memory.NewStore())
	store := sync.Load()

	assert.Empty(t, store.Proposals)
	assert.Equal(t, "", store.SessionID)

	// Missing roster falls back to the built-in default participants.
	require.Equal(t, 4, len(store.Participants))
	roles := make(map[string]int)
	for _, p := range store.Participants {
		roles[p.Role]++
	}
	assert.Equal(t, 2, roles[authz.RoleEmployee])
	assert.Equal(t, 1, roles[authz.RoleManager])
	assert.Equal(t, 1, roles[authz.RoleAdmin])
}

func TestLoadMalformedValues(t *testing.T) {
	kv := memory.NewStore()
	require.NoError(t, kv.Put(KeyProposals, "{not json"))
	require.NoError(t, kv.Put(KeyParticipants, "42"))

	store := NewSynchronizer(kv).Load()
	assert.Empty(t, store.Proposals)
	assert.Equal(t, 4, len(store.Participants))
}

func TestLoadRosterShapeCheck(t *testing.T) {
	kv := memory.NewStore()
	// Parses fine, but one record is missing its string id.
	require.NoError(t, kv.Put(KeyParticipants, `[{"id":"u1","name":"A","role":"employee"},{"name":"B","role":"admin"}]`))

	store := NewSynchronizer(kv).Load()
	assert.Equal(t, 4, len(store.Participants))
	assert.Equal(t, "u1", store.Participants[0].ID)
}

func TestLoadSessionShapes(t *testing.T) {
	cases := []struct {
		name   string
		stored string
		want   string
	}{
		{"bare json string", `"u2"`, "u2"},
		{"wrapper record", `{"id":"u3"}`, "u3"},
		{"raw legacy value", "u4", "u4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := memory.NewStore()
			require.NoError(t, kv.Put(KeySession, tc.stored))

			store := NewSynchronizer(kv).Load()
			assert.Equal(t, tc.want, store.SessionID)
		})
	}
}

func TestSessionRoundTrip(t *testing.T) {
	kv := memory.NewStore()
	sync := NewSynchronizer(kv)

	require.NoError(t, sync.SaveSession("u2"))
	assert.Equal(t, "u2", sync.Load().SessionID)

	require.NoError(t, sync.ClearSession())
	assert.Equal(t, "", sync.Load().SessionID)

	// Clearing the session leaves the data keys alone.
	_, ok, err := kv.Get(KeySession)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProposalsSurviveReload(t *testing.T) {
	kv := memory.NewStore()
	sync := NewSynchronizer(kv)
	engine := board.NewEngine(sync.Load(), sync)

	p, err := engine.SubmitProposal("u1", "Faster onboarding", "Reduce ramp time", proposal.CategoryProcess)
	require.NoError(t, err)
	_, err = engine.Vote(p.ID, "u3", board.Up)
	require.NoError(t, err)
	_, err = engine.Comment(p.ID, "u2", "good one")
	require.NoError(t, err)

	// A second synchronizer over the same store sees the same state,
	// including the epoch-millis timestamps.
	reloaded := NewSynchronizer(kv).Load()
	require.Equal(t, 1, len(reloaded.Proposals))
	got := reloaded.Proposals[0]
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, 1, got.Votes)
	assert.Equal(t, []string{"u3"}, got.VoterIDs)
	require.Equal(t, 1, got.CommentCount())
	assert.Equal(t, "good one", got.Comments[0].Text)
	assert.Equal(t, p.CreatedAt.UnixMilli(), got.CreatedAt.UnixMilli())

	// The stored form is the legacy JSON shape.
	raw, ok, err := kv.Get(KeyProposals)
	require.NoError(t, err)
	require.True(t, ok)
	var generic []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &generic))
	assert.Contains(t, generic[0], "authorId")
	assert.Contains(t, generic[0], "voterIds")
	assert.Contains(t, generic[0], "createdAt")
}

func TestEndToEndRegisterSubmitVote(t *testing.T) {
	sync := NewSynchronizer(memory.NewStore())
	engine := board.NewEngine(sync.Load(), sync)

	aigerim, err := engine.Register("Aigerim", authz.RoleEmployee, "")
	require.NoError(t, err)

	p, err := engine.SubmitProposal(aigerim.ID, "Faster onboarding", "Reduce ramp time", "Process Improvement")
	require.NoError(t, err)
	assert.Equal(t, proposal.StatusProposed, p.Status)
	assert.Equal(t, 0, p.Votes)
	assert.Empty(t, p.Comments)

	p, err = engine.Vote(p.ID, aigerim.ID, board.Up)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Votes)
	assert.Contains(t, p.VoterIDs, aigerim.ID)

	p, err = engine.Vote(p.ID, aigerim.ID, board.Up)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Votes)
}
