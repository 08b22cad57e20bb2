package parser

import (
	"strings"
	"testing"

	"github.com/awtera/vrcbuild/internal/core/model"
	"github.com/awtera/vrcbuild/internal/data/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseText(t *testing.T, text string) (*model.Report, error) {
	t.Helper()
	return NewSegmentParser("test.log").Parse(NewCursor(strings.NewReader(text)))
}

func TestParseCompleteAvatarSegment(t *testing.T) {
	log := strings.Join([]string{
		"Bundle Name: prefab-id-v1_avtr_8a2b.vrca",
		"some unrelated noise",
		"Compressed Size: 4.85 mb",
		grammar.CategoryMarker,
		"Textures           8.0 mb     66.1%",
		"Meshes             2.1 mb     17.3%",
		"Complete build size   12.1 mb",
		grammar.FileMarker,
		" 512.0 kb  2.1% Assets/Foo.png",
		" 256.0 kb  1.0% Assets/Bar.fbx",
		grammar.Terminator,
	}, "\n")

	report, err := parseText(t, log)
	require.NoError(t, err)

	assert.Equal(t, "prefab-id-v1_avtr_8a2b.vrca", report.Name)
	assert.Equal(t, model.KindAvatar, report.Kind)
	assert.Equal(t, 4.85, report.CompressedSize.Magnitude())
	assert.Equal(t, 12.1, report.UncompressedSize.Magnitude())

	require.Len(t, report.Categories, 3)
	assert.Equal(t, "Textures", report.Categories[0].Name)
	assert.Equal(t, 0, report.Categories[0].OriginalIndex)
	assert.Equal(t, 1, report.Categories[1].OriginalIndex)
	// The synthetic total row stays in the category list.
	assert.Equal(t, "Complete build size", report.Categories[2].Name)

	require.Len(t, report.Files, 2)
	assert.Equal(t, "Assets/Foo.png", report.Files[0].Name)
	assert.Equal(t, 2.1, report.Files[0].Percent)
	assert.Equal(t, 1, report.Files[1].OriginalIndex)
}

func TestParseSectionsInEitherOrder(t *testing.T) {
	log := strings.Join([]string{
		"Bundle Name: scene-standalonewindows64-vrcw_1f.vrcw",
		"Compressed Size: 20.0 mb",
		grammar.FileMarker,
		" 512.0 kb  2.1% Assets/Foo.png",
		grammar.CategoryMarker,
		"Textures           8.0 mb     66.1%",
		grammar.Terminator,
	}, "\n")

	report, err := parseText(t, log)
	require.NoError(t, err)
	assert.Equal(t, model.KindWorld, report.Kind)
	assert.Len(t, report.Files, 1)
	assert.Len(t, report.Categories, 1)
}

func TestParseRejectsMissingFileSection(t *testing.T) {
	log := strings.Join([]string{
		"Bundle Name: prefab-id-v1_avtr_8a2b.vrca",
		"Compressed Size: 4.85 mb",
		grammar.CategoryMarker,
		"Textures           8.0 mb     66.1%",
		grammar.Terminator,
	}, "\n")

	report, err := parseText(t, log)
	assert.Nil(t, report)
	require.ErrorIs(t, err, ErrIncompleteSegment)
}

func TestParseRejectsTerminatorBeforeCompressedSize(t *testing.T) {
	log := strings.Join([]string{
		"Bundle Name: prefab-id-v1_avtr_8a2b.vrca",
		grammar.Terminator,
		"Compressed Size: 4.85 mb",
	}, "\n")

	_, err := parseText(t, log)
	require.ErrorIs(t, err, ErrIncompleteSegment)
}

func TestParseRejectsEndOfInput(t *testing.T) {
	log := strings.Join([]string{
		"Bundle Name: prefab-id-v1_avtr_8a2b.vrca",
		"Compressed Size: 4.85 mb",
	}, "\n")

	_, err := parseText(t, log)
	require.ErrorIs(t, err, ErrIncompleteSegment)
}

// A malformed record ends its section sub-read early; the rows captured
// before it stand and the segment as a whole still succeeds.
func TestParseBadCategoryRecordEndsOnlyThatSection(t *testing.T) {
	log := strings.Join([]string{
		"Bundle Name: prefab-id-v1_avtr_8a2b.vrca",
		"Compressed Size: 4.85 mb",
		grammar.CategoryMarker,
		"Textures           8.0 mb     66.1%",
		"this line is not a category record",
		grammar.FileMarker,
		" 512.0 kb  2.1% Assets/Foo.png",
		grammar.Terminator,
	}, "\n")

	report, err := parseText(t, log)
	require.NoError(t, err)
	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Textures", report.Categories[0].Name)
	require.Len(t, report.Files, 1)
	// The synthetic total row was never seen, so the header size stays zero.
	assert.Equal(t, 0.0, report.UncompressedSize.Bytes())
}

func TestParseBadFileRecordEndsOnlyThatSection(t *testing.T) {
	log := strings.Join([]string{
		"Bundle Name: prefab-id-v1_avtr_8a2b.vrca",
		"Compressed Size: 4.85 mb",
		grammar.CategoryMarker,
		"Textures           8.0 mb     66.1%",
		grammar.FileMarker,
		" 512.0 kb  2.1% Assets/Foo.png",
		"garbage row",
		grammar.Terminator,
	}, "\n")

	report, err := parseText(t, log)
	require.NoError(t, err)
	require.Len(t, report.Files, 1)
}

func TestCursorPushback(t *testing.T) {
	cur := NewCursor(strings.NewReader("one\ntwo\n"))

	require.True(t, cur.Next())
	assert.Equal(t, "one", cur.Line())
	assert.Equal(t, 1, cur.LineNo())

	cur.Unread()
	require.True(t, cur.Next())
	assert.Equal(t, "one", cur.Line())

	require.True(t, cur.Next())
	assert.Equal(t, "two", cur.Line())
	require.False(t, cur.Next())
	assert.NoError(t, cur.Err())
}
