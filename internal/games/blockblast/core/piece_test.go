package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blockblast/internal/games/blockblast/core"
)

func TestStandardCatalog(t *testing.T) {
	cat := core.StandardCatalog()
	require.Equal(t, 26, cat.Len())

	assert.Equal(t, "O1", cat.Smallest().ID)
	assert.Equal(t, 1, cat.Smallest().Size())

	for _, p := range cat.Pieces() {
		assert.Greater(t, p.Size(), 0, p.ID)
	}

	wantGroups := map[core.ShapeGroup]int{
		core.GroupMono:      1,
		core.GroupDomino:    2,
		core.GroupTromino:   6,
		core.GroupTetromino: 8,
		core.GroupPentomino: 6,
		core.GroupLarge:     3,
	}
	for g, n := range wantGroups {
		assert.Len(t, cat.Group(g), n, g.String())
	}
}

func TestPieceGeometry(t *testing.T) {
	cat := core.StandardCatalog()

	testCases := []struct {
		id     string
		size   int
		height int
		width  int
	}{
		{"O1", 1, 1, 1},
		{"I5V", 5, 5, 1},
		{"T4", 4, 2, 3},
		{"V5C", 5, 3, 3},
		{"O9", 9, 3, 3},
	}

	for _, tc := range testCases {
		p, ok := cat.Lookup(tc.id)
		require.True(t, ok, tc.id)
		if p.Size() != tc.size || p.Height() != tc.height || p.Width() != tc.width {
			t.Errorf("%s: size/height/width = %d/%d/%d, want %d/%d/%d",
				tc.id, p.Size(), p.Height(), p.Width(), tc.size, tc.height, tc.width)
		}
	}

	tee, _ := cat.Lookup("T4")
	assert.Equal(t, "###\n.#.", tee.String())
}

func TestNewCatalogRejectsBadPieces(t *testing.T) {
	_, err := core.NewCatalog(nil)
	assert.Error(t, err)

	_, err = core.NewCatalog([]core.Piece{core.NewPiece("blank", core.GroupMono, core.ColorRed, "..")})
	assert.Error(t, err)

	dup := core.NewPiece("X", core.GroupMono, core.ColorRed, "#")
	_, err = core.NewCatalog([]core.Piece{dup, dup})
	assert.Error(t, err)
}

func TestParseShapeGroup(t *testing.T) {
	for _, g := range core.AllShapeGroups() {
		parsed, err := core.ParseShapeGroup(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, parsed)
	}
	_, err := core.ParseShapeGroup("heptomino")
	assert.Error(t, err)
}
