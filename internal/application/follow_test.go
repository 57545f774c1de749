package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radenmas/socialite-api/pkg/apperr"
)

func TestFollowAndUnfollow(t *testing.T) {
	svc, _, followers, _ := newTestService(t)
	ann := register(t, svc, "ann", "ann@x.com", "secret1")
	bob := register(t, svc, "bob", "bob@x.com", "secret2")

	view, err := svc.Follow(context.Background(), ann.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, view.ID)
	assert.True(t, followers.edges[[2]string{ann.ID, bob.ID}])

	_, err = svc.Unfollow(context.Background(), ann.ID, "bob")
	require.NoError(t, err)
	assert.False(t, followers.edges[[2]string{ann.ID, bob.ID}])
}

func TestFollowUnknownTarget(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ann := register(t, svc, "ann", "ann@x.com", "secret1")

	_, err := svc.Follow(context.Background(), ann.ID, "ghost")
	e := apperr.As(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.NotFound, e.Kind)
}

func TestFollowSelfRejected(t *testing.T) {
	svc, _, followers, _ := newTestService(t)
	ann := register(t, svc, "ann", "ann@x.com", "secret1")

	_, err := svc.Follow(context.Background(), ann.ID, "ann")
	e := apperr.As(err)
	require.NotNil(t, e)
	assert.Equal(t, apperr.BadRequest, e.Kind)
	assert.Empty(t, followers.edges)
}
