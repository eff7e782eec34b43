package group

import (
	"context"
	"testing"

	"github.com/gatherhub/event-manager/internal/errdef"
	"github.com/gatherhub/event-manager/pkg/model"
	"github.com/gatherhub/event-manager/pkg/storage"
	"github.com/stretchr/testify/require"
)

func TestServiceFind(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewRepository(storage.NewInMemoryTable("group_id", "")))
	group := model.Group{GroupID: "g1", Name: "Hikers", Description: "Weekend hikes"}
	require.NoError(t, service.Save(ctx, group))

	found, err := service.Find(ctx, "g1")

	require.NoError(t, err)
	require.Equal(t, group, found)
}

func TestServiceFindNotFound(t *testing.T) {
	service := NewService(NewRepository(storage.NewInMemoryTable("group_id", "")))

	_, err := service.Find(context.Background(), "missing")

	require.True(t, errdef.IsNotFound(err))
}

func TestServiceList(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewRepository(storage.NewInMemoryTable("group_id", "")))
	require.NoError(t, service.Save(ctx, model.Group{GroupID: "g1", Name: "Hikers"}))
	require.NoError(t, service.Save(ctx, model.Group{GroupID: "g2", Name: "Readers"}))

	groups, err := service.List(ctx)

	require.NoError(t, err)
	require.Len(t, groups, 2)
}

func TestServiceSaveOverwrites(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewRepository(storage.NewInMemoryTable("group_id", "")))
	require.NoError(t, service.Save(ctx, model.Group{GroupID: "g1", Name: "Hikers"}))
	require.NoError(t, service.Save(ctx, model.Group{GroupID: "g1", Name: "Night Hikers"}))

	group, err := service.Find(ctx, "g1")

	require.NoError(t, err)
	require.Equal(t, "Night Hikers", group.Name)
}
