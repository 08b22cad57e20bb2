package grammar

import (
	"testing"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchSegmentBegin(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOk   bool
		wantKind model.BundleKind
	}{
		{
			name:     "avatar_bundle",
			line:     "Bundle Name: prefab-id-v1_avtr_8a2b.vrca",
			wantOk:   true,
			wantKind: model.KindAvatar,
		},
		{
			name:     "world_bundle",
			line:     "Bundle Name: scene-standalonewindows64-vrcw_1f.vrcw",
			wantOk:   true,
			wantKind: model.KindWorld,
		},
		{
			name:   "prefix_without_token_pair",
			line:   "Bundle Name: somethingelse.unity3d",
			wantOk: false,
		},
		{
			name:   "avatar_token_alone_is_not_enough",
			line:   "Bundle Name: avtr_only.unity3d",
			wantOk: false,
		},
		{
			name:   "unrelated_line",
			line:   "Refreshing native plugins compatible for Editor",
			wantOk: false,
		},
		{
			name:     "surrounding_whitespace",
			line:     "   Bundle Name: prefab-id-v1_avtr_8a2b.vrca   ",
			wantOk:   true,
			wantKind: model.KindAvatar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			begin, ok := MatchSegmentBegin(tt.line)
			assert.Equal(t, tt.wantOk, ok)
			if tt.wantOk {
				assert.Equal(t, tt.wantKind, begin.Kind)
				assert.NotEmpty(t, begin.BundleName)
			}
		})
	}
}

func TestMatchCompressedSize(t *testing.T) {
	size, ok := MatchCompressedSize("Compressed Size: 4.85 mb")
	require.True(t, ok)
	assert.Equal(t, 4.85, size.Magnitude())
	assert.Equal(t, model.UnitMB, size.Unit())

	_, ok = MatchCompressedSize("Compressed Size: not a size")
	assert.False(t, ok)

	_, ok = MatchCompressedSize("Total Size: 4.85 mb")
	assert.False(t, ok)
}

func TestMatchCategoryRecord(t *testing.T) {
	entry, ok := MatchCategoryRecord("Shaders           12.3 mb     4.5% ")
	require.True(t, ok)
	assert.Equal(t, "Shaders", entry.Name)
	assert.Equal(t, 12.3, entry.Size.Magnitude())
	assert.Equal(t, model.UnitMB, entry.Size.Unit())
	assert.Equal(t, 4.5, entry.Percent)

	// Percent is optional for category rows.
	entry, ok = MatchCategoryRecord("Meshes   3.0 mb")
	require.True(t, ok)
	assert.Equal(t, "Meshes", entry.Name)
	assert.Equal(t, 0.0, entry.Percent)

	// Multi-word names stay intact.
	entry, ok = MatchCategoryRecord("Complete build size   4.2 mb")
	require.True(t, ok)
	assert.Equal(t, "Complete build size", entry.Name)

	_, ok = MatchCategoryRecord(FileMarker)
	assert.False(t, ok)

	_, ok = MatchCategoryRecord("")
	assert.False(t, ok)
}

func TestMatchFileRecord(t *testing.T) {
	entry, ok := MatchFileRecord("   512.0 kb  2.1% Assets/Foo.png")
	require.True(t, ok)
	assert.Equal(t, "Assets/Foo.png", entry.Name)
	assert.Equal(t, 512.0, entry.Size.Magnitude())
	assert.Equal(t, model.UnitKB, entry.Size.Unit())
	assert.Equal(t, 2.1, entry.Percent)

	// Paths with spaces are captured greedily.
	entry, ok = MatchFileRecord(" 0.7 kb  0.0% Assets/My Textures/skin base.png")
	require.True(t, ok)
	assert.Equal(t, "Assets/My Textures/skin base.png", entry.Name)

	// Percent is required for file rows.
	_, ok = MatchFileRecord("512.0 kb Assets/Foo.png")
	assert.False(t, ok)

	_, ok = MatchFileRecord(Terminator)
	assert.False(t, ok)
}

func TestMarkers(t *testing.T) {
	assert.True(t, IsCategoryMarker("  "+CategoryMarker))
	assert.True(t, IsFileMarker(FileMarker+"  "))
	assert.True(t, IsTerminator(Terminator))
	assert.False(t, IsTerminator("----"))
	assert.False(t, IsCategoryMarker(FileMarker))
}
