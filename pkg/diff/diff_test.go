package diff

import (
	"os"
	"testing"

	"dngen/pkg/test"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeSnapshot(t *testing.T) {
	fs := afero.NewMemMapFs()
	test.SetupSampleProject(t, fs)
	test.CreateTestFile(t, fs, test.SampleProjectRoot+"/.git/HEAD", "ref: refs/heads/main\n")
	test.CreateTestFile(t, fs, test.SampleProjectRoot+"/bin/Debug/Shop.dll", "binary")

	snap, err := TakeSnapshot(fs, test.SampleProjectRoot)
	require.NoError(t, err)

	assert.Equal(t, []string{"Models/Order.cs", "Shop.csproj"}, snap.Paths())
	assert.Contains(t, snap["Models/Order.cs"].Content, "public class Order")
}

func TestTakeSnapshot_MissingRoot(t *testing.T) {
	_, err := TakeSnapshot(afero.NewMemMapFs(), "/does/not/exist")
	assert.Error(t, err)
}

func TestTakeSnapshot_LargeFilesAreTruncated(t *testing.T) {
	fs := afero.NewMemMapFs()
	big := make([]byte, maxSnapshotFileSize+1)
	require.NoError(t, afero.WriteFile(fs, "/root/big.bin", big, 0644))

	snap, err := TakeSnapshot(fs, "/root")
	require.NoError(t, err)
	assert.True(t, snap["big.bin"].Truncated)
	assert.Empty(t, snap["big.bin"].Content)
	assert.Equal(t, int64(maxSnapshotFileSize+1), snap["big.bin"].Size)
	assert.Len(t, snap["big.bin"].Sum, 64)
}

func TestCompare_LargeFileModified(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/root/big.bin", make([]byte, maxSnapshotFileSize+1), 0644))

	before, err := TakeSnapshot(fs, "/root")
	require.NoError(t, err)

	f, err := fs.OpenFile("/root/big.bin", os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("changed")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	after, err := TakeSnapshot(fs, "/root")
	require.NoError(t, err)

	changes := Compare(before, after)
	require.Len(t, changes, 1)
	assert.Equal(t, ChangeModified, changes[0].Kind)
	assert.True(t, changes[0].TooLarge)
	assert.Equal(t, "=> modified big.bin\n   (too large to diff)", Report(changes))
}

func TestCompare_LargeFileSameSizeDifferentContent(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := make([]byte, maxSnapshotFileSize+1)
	require.NoError(t, afero.WriteFile(fs, "/root/big.bin", content, 0644))

	before, err := TakeSnapshot(fs, "/root")
	require.NoError(t, err)

	content[0] = 'x'
	require.NoError(t, afero.WriteFile(fs, "/root/big.bin", content, 0644))

	after, err := TakeSnapshot(fs, "/root")
	require.NoError(t, err)

	changes := Compare(before, after)
	require.Len(t, changes, 1)
	assert.True(t, changes[0].TooLarge)
}

func TestCompare_LargeFileUnchanged(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/root/big.bin", make([]byte, maxSnapshotFileSize+1), 0644))

	before, err := TakeSnapshot(fs, "/root")
	require.NoError(t, err)
	after, err := TakeSnapshot(fs, "/root")
	require.NoError(t, err)

	assert.Empty(t, Compare(before, after))
}

func TestCompare(t *testing.T) {
	before := Snapshot{
		"Order.cs":  {Content: "public class Order {}\n"},
		"Legacy.cs": {Content: "old\n"},
		"Stable.cs": {Content: "same\n"},
	}
	after := Snapshot{
		"Order.cs":      {Content: "public class Order { int Id; }\n"},
		"Stable.cs":     {Content: "same\n"},
		"OrderLine.cs":  {Content: "public class OrderLine\n{\n}\n"},
		"IOrderLine.cs": {Content: "public interface IOrderLine {}"},
	}

	changes := Compare(before, after)
	require.Len(t, changes, 4)

	assert.Equal(t, Change{Path: "IOrderLine.cs", Kind: ChangeCreated, After: "public interface IOrderLine {}"}, changes[0])
	assert.Equal(t, "Legacy.cs", changes[1].Path)
	assert.Equal(t, ChangeDeleted, changes[1].Kind)
	assert.Equal(t, "Order.cs", changes[2].Path)
	assert.Equal(t, ChangeModified, changes[2].Kind)
	assert.Equal(t, "OrderLine.cs", changes[3].Path)
	assert.Equal(t, ChangeCreated, changes[3].Kind)
}

func TestCompare_NoChanges(t *testing.T) {
	snap := Snapshot{"a.cs": {Content: "a"}}
	assert.Empty(t, Compare(snap, snap))
	assert.Equal(t, "No files changed.", Report(nil))
}

func TestReport(t *testing.T) {
	changes := []Change{
		{Path: "OrderLine.cs", Kind: ChangeCreated, After: "public class OrderLine\n{\n}\n"},
		{Path: "Order.cs", Kind: ChangeModified, Before: "class Order {}", After: "class Order { int Id; }"},
	}

	report := Report(changes)
	assert.Contains(t, report, "=> created OrderLine.cs\n   3 lines\n")
	assert.Contains(t, report, "=> modified Order.cs\n   --- diff ---\n")
	assert.Contains(t, report, "int Id;")
	assert.Contains(t, report, "--- end diff ---")
}

func setNoColor(t *testing.T, noColor bool) {
	prev := color.NoColor
	color.NoColor = noColor
	t.Cleanup(func() { color.NoColor = prev })
}

func TestChange_DetailsWithoutColor(t *testing.T) {
	setNoColor(t, true)

	c := Change{Path: "Order.cs", Kind: ChangeModified, Before: "class Order {}", After: "class Order { int Id; }"}
	details := c.Details()
	require.Len(t, details, 3)
	assert.NotContains(t, details[1], "\x1b[")
	assert.Contains(t, details[1], "{+")
	assert.Contains(t, details[1], "int Id;")
}

func TestChange_DetailsWithColor(t *testing.T) {
	setNoColor(t, false)

	c := Change{Path: "Order.cs", Kind: ChangeModified, Before: "old", After: "new"}
	details := c.Details()
	require.Len(t, details, 3)
	assert.Contains(t, details[1], "\x1b[")
}

func TestPlainDiffText(t *testing.T) {
	diffs := []diffmatchpatch.Diff{
		{Type: diffmatchpatch.DiffEqual, Text: "public "},
		{Type: diffmatchpatch.DiffDelete, Text: "class"},
		{Type: diffmatchpatch.DiffInsert, Text: "enum"},
		{Type: diffmatchpatch.DiffEqual, Text: " Color"},
	}
	assert.Equal(t, "public [-class-]{+enum+} Color", plainDiffText(diffs))
}

func TestLineCount(t *testing.T) {
	assert.Equal(t, 0, lineCount(""))
	assert.Equal(t, 1, lineCount("one"))
	assert.Equal(t, 1, lineCount("one\n"))
	assert.Equal(t, 2, lineCount("one\ntwo"))
}
