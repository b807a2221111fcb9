package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/gum/internal/config"
	"github.com/Faultbox/gum/internal/engine/camera"
	"github.com/Faultbox/gum/pkg/cmdlist"
	"github.com/Faultbox/gum/pkg/gu"
	"github.com/Faultbox/gum/pkg/gum"
	"github.com/Faultbox/gum/pkg/math"
)

func TestCubeVertices(t *testing.T) {
	vertices := cubeVertices()
	assert.Equal(t, 24, cubeVertexType.Layout().Stride)
	assert.Len(t, vertices, cubeVertexCount*24)
	assert.Equal(t, 36, cubeVertexCount)
}

func TestDrawFrame(t *testing.T) {
	scene := config.Default().Scene
	list := cmdlist.New()
	ctx := gum.New(list)

	require.NoError(t, drawFrame(ctx, nil, scene, 16.0/9.0, 0, cubeVertices()))

	cmds, err := list.Commands()
	require.NoError(t, err)

	// Every space was reloaded, so all four upload before the draw.
	require.Len(t, cmds, 5)
	for i, mode := range gu.Modes {
		assert.Equal(t, cmdlist.OpSetMatrix, cmds[i].Op)
		assert.Equal(t, mode, cmds[i].Mode)
	}
	draw := cmds[4]
	assert.Equal(t, cmdlist.OpDrawArray, draw.Op)
	assert.Equal(t, gu.Triangles, draw.Prim)
	assert.Equal(t, cubeVertexType, draw.VType)
	assert.Equal(t, cubeVertexCount, draw.Count)
	assert.Nil(t, draw.Indices)

	proj, err := math.Perspective(scene.FovY, 16.0/9.0, scene.Near, scene.Far)
	require.NoError(t, err)
	assert.Equal(t, proj, cmds[0].Matrix)
	assert.Equal(t, math.Identity(), cmds[1].Matrix)
	assert.Equal(t, math.Translate(0, 0, -scene.Distance), cmds[2].Matrix)
	assert.Equal(t, math.Identity(), cmds[3].Matrix)
}

func TestDrawFrameSpins(t *testing.T) {
	scene := config.Default().Scene
	list := cmdlist.New()
	ctx := gum.New(list)
	vertices := cubeVertices()

	require.NoError(t, drawFrame(ctx, nil, scene, 1, 0, vertices))
	list.Reset()
	require.NoError(t, drawFrame(ctx, nil, scene, 1, 90, vertices))

	cmds, err := list.Commands()
	require.NoError(t, err)
	model := cmds[2].Matrix

	r := rotation(scene, 90)
	want := math.Translate(0, 0, -scene.Distance).
		Mul(math.RotateX(r.X)).
		Mul(math.RotateY(r.Y)).
		Mul(math.RotateZ(r.Z))
	assert.True(t, model.ApproxEqual(want, 1e-5), "model matrix %v, want %v", model, want)

	// The translation survives the rotation.
	assert.InDelta(t, -scene.Distance, model[14], 1e-6)
}

func TestDrawFrameRejectsFlatAspect(t *testing.T) {
	list := cmdlist.New()
	ctx := gum.New(list)

	err := drawFrame(ctx, nil, config.Default().Scene, 0, 0, cubeVertices())
	assert.ErrorIs(t, err, gum.ErrDomain)
	assert.Zero(t, list.Draws())
}

func TestDrawFrameWithCamera(t *testing.T) {
	scene := config.Default().Scene
	list := cmdlist.New()
	ctx := gum.New(list)

	cam := camera.NewOrbitCamera(math.Vec3{Z: -scene.Distance}, scene.Distance)
	cam.Rotate(10, 0)
	require.NoError(t, drawFrame(ctx, cam, scene, 1, 0, cubeVertices()))

	cmds, err := list.Commands()
	require.NoError(t, err)
	require.Len(t, cmds, 5)
	assert.Equal(t, gu.View, cmds[1].Mode)
	assert.True(t, cmds[1].Matrix.ApproxEqual(cam.ViewMatrix(), 1e-5))
	assert.Equal(t, cmdlist.OpDrawArray, cmds[4].Op)
}
