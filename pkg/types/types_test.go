package types

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderState_AscendClampsAtRoot(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "home", "user", "pastes")
	s := NewFolderState(base + string(filepath.Separator))

	assert.True(t, s.AtRoot(), "trailing separator must not break root comparison")
	s.Ascend()
	assert.Equal(t, base, s.Current)

	require.NoError(t, s.Descend("snippets"))
	require.NoError(t, s.Descend("go"))
	assert.Equal(t, filepath.Join(base, "snippets", "go"), s.Current)

	s.Ascend()
	s.Ascend()
	s.Ascend()
	assert.Equal(t, base, s.Current)
}

func TestFolderState_DescendRejectsEscapes(t *testing.T) {
	s := NewFolderState("/pastes")
	for _, name := range []string{"", ".", "..", "a/b", "../etc"} {
		assert.Error(t, s.Descend(name), "name %q", name)
	}
	assert.Equal(t, "/pastes", s.Current)

	_, err := s.Path("../secret")
	assert.Error(t, err)
	p, err := s.Path("hello.py")
	require.NoError(t, err)
	assert.Equal(t, "/pastes/hello.py", p)
}

func TestWithin(t *testing.T) {
	assert.True(t, Within("/a", "/a"))
	assert.True(t, Within("/a", "/a/b"))
	assert.True(t, Within("/a", "/a/..b"))
	assert.False(t, Within("/a", "/"))
	assert.False(t, Within("/a", "/ab"))
}

func TestPickerResult(t *testing.T) {
	r := PickerResult{ExitCode: ExitConfirm, Output: "X hello\nX other\n"}
	assert.Equal(t, "X hello", r.FirstLine())
	assert.False(t, r.Cancelled())

	_, forced := r.ForcedAction()
	assert.False(t, forced)

	cases := map[int]DeliveryAction{
		ExitCopyOnly:  CopyOnly,
		ExitTypeOnly:  TypeOnly,
		ExitCopyPaste: CopyThenPasteThenRestore,
	}
	for code, want := range cases {
		got, ok := PickerResult{ExitCode: code}.ForcedAction()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	n, ok := PickerResult{ExitCode: 10}.Recent()
	assert.True(t, ok)
	assert.Equal(t, 1, n)
	n, ok = PickerResult{ExitCode: 19}.Recent()
	assert.True(t, ok)
	assert.Equal(t, 10, n)
	_, ok = PickerResult{ExitCode: 20}.Recent()
	assert.False(t, ok)

	assert.True(t, PickerResult{ExitCode: ExitCancel}.Cancelled())
}

func TestDeliveryActionString(t *testing.T) {
	assert.Equal(t, "type", TypeOnly.String())
	assert.Equal(t, "copy", CopyOnly.String())
	assert.Equal(t, "paste", CopyThenPasteThenRestore.String())
	assert.Equal(t, "DeliveryAction(9)", DeliveryAction(9).String())
}
