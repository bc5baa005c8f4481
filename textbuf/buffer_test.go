package textbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glitchkit/textbuf"
)

// TestNew_RoundTrip: tokenizing then joining must reproduce the input
// byte for byte, including separator runs and affix punctuation.
func TestNew_RoundTrip(t *testing.T) {
	cases := []string{
		"",
		"hello",
		"Hello, world!",
		"  leading and trailing  ",
		"tabs\tand\nnewlines mixed   with  runs",
		"unicode: héllo wörld — ありがとう",
	}
	for _, text := range cases {
		buf := textbuf.New(text)
		assert.Equal(t, text, buf.String(), "round trip of %q", text)
	}
}

func TestNew_SegmentKinds(t *testing.T) {
	buf := textbuf.New("one  two\tthree")
	segs := buf.Segments()
	require.Len(t, segs, 5)

	assert.Equal(t, textbuf.Word, segs[0].Kind())
	assert.Equal(t, "one", segs[0].Text())
	assert.Equal(t, textbuf.Separator, segs[1].Kind())
	assert.Equal(t, "  ", segs[1].Text())
	assert.Equal(t, textbuf.Word, segs[2].Kind())
	assert.Equal(t, textbuf.Separator, segs[3].Kind())
	assert.Equal(t, "\t", segs[3].Text())
	assert.Equal(t, "three", segs[4].Text())
}

func TestBuffer_WordCountAndLookup(t *testing.T) {
	buf := textbuf.New("  alpha beta  gamma ")
	require.Equal(t, 3, buf.WordCount())

	seg, ok := buf.WordSegment(0)
	require.True(t, ok)
	assert.Equal(t, "alpha", seg.Text())

	seg, ok = buf.WordSegment(2)
	require.True(t, ok)
	assert.Equal(t, "gamma", seg.Text())

	_, ok = buf.WordSegment(3)
	assert.False(t, ok)
	_, ok = buf.WordSegment(-1)
	assert.False(t, ok)
}

func TestBuffer_SpansCoverEveryRune(t *testing.T) {
	text := "héllo  wörld!"
	buf := textbuf.New(text)
	spans := buf.Spans()
	require.NotEmpty(t, spans)

	// Spans must tile the rune axis and the byte axis without gaps.
	assert.Equal(t, 0, spans[0].CharStart)
	assert.Equal(t, 0, spans[0].ByteStart)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].CharEnd, spans[i].CharStart)
		assert.Equal(t, spans[i-1].ByteEnd, spans[i].ByteStart)
	}
	last := spans[len(spans)-1]
	assert.Equal(t, buf.Len(), last.CharEnd)
	assert.Equal(t, len(text), last.ByteEnd)
}

func TestBuffer_ReindexAfterEdit(t *testing.T) {
	buf := textbuf.New("aa bb")
	require.NoError(t, buf.ReplaceWord(0, "wider"))

	// Accessors must observe the new geometry without an explicit
	// Reindex call.
	assert.Equal(t, "wider bb", buf.String())
	assert.Equal(t, len("wider bb"), buf.Len())

	spans := buf.Spans()
	require.Len(t, spans, 3)
	assert.Equal(t, 5, spans[0].CharEnd)
}

func TestBuffer_EmptyInput(t *testing.T) {
	buf := textbuf.New("")
	assert.Zero(t, buf.WordCount())
	assert.Zero(t, buf.Len())
	assert.Empty(t, buf.Segments())
	assert.Equal(t, "", buf.String())
}
