package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func currentTick(tw Typewriter) TypewriterTickMsg {
	return TypewriterTickMsg{ID: tw.id, tag: tw.tag}
}

func TestTypewriterRevealsOneRunePerTick(t *testing.T) {
	t.Parallel()

	tw := NewTypewriter(time.Millisecond)
	tw, cmd := tw.Start("héllo")
	require.NotNil(t, cmd)
	require.Empty(t, tw.Revealed())
	require.False(t, tw.Done())

	var prefixes []string
	for !tw.Done() {
		tw, _ = tw.Update(currentTick(tw))
		prefixes = append(prefixes, tw.Revealed())
	}

	require.Equal(t, []string{"h", "hé", "hél", "héll", "héllo"}, prefixes)
	require.False(t, tw.Running())
}

func TestTypewriterCompletionIsSticky(t *testing.T) {
	t.Parallel()

	tw, _ := NewTypewriter(time.Millisecond).Start("ab")
	tw, _ = tw.Update(currentTick(tw))
	tw, cmd := tw.Update(currentTick(tw))
	require.Nil(t, cmd)
	require.True(t, tw.Done())

	for i := 0; i < 3; i++ {
		tw, cmd = tw.Update(currentTick(tw))
		require.Nil(t, cmd)
		require.True(t, tw.Done())
		require.Equal(t, "ab", tw.Revealed())
	}
}

func TestTypewriterRestartDropsStaleTicks(t *testing.T) {
	t.Parallel()

	tw, _ := NewTypewriter(time.Millisecond).Start("first story")
	tw, _ = tw.Update(currentTick(tw))
	tw, _ = tw.Update(currentTick(tw))
	stale := currentTick(tw)

	tw, cmd := tw.Start("second")
	require.NotNil(t, cmd)
	require.Empty(t, tw.Revealed())
	require.Equal(t, "second", tw.Text())

	tw, cmd = tw.Update(stale)
	require.Nil(t, cmd)
	require.Empty(t, tw.Revealed())

	tw, _ = tw.Update(currentTick(tw))
	require.Equal(t, "s", tw.Revealed())
}

func TestTypewriterStopHaltsReveal(t *testing.T) {
	t.Parallel()

	tw, _ := NewTypewriter(time.Millisecond).Start("abc")
	tw, _ = tw.Update(currentTick(tw))
	pending := currentTick(tw)

	tw = tw.Stop()
	tw, cmd := tw.Update(pending)
	require.Nil(t, cmd)
	require.Equal(t, "a", tw.Revealed())
	require.False(t, tw.Running())
}

func TestTypewriterIgnoresOtherInstances(t *testing.T) {
	t.Parallel()

	a, _ := NewTypewriter(time.Millisecond).Start("abc")
	b, _ := NewTypewriter(time.Millisecond).Start("xyz")

	a, _ = a.Update(currentTick(b))
	require.Empty(t, a.Revealed())
}

func TestTypewriterFinish(t *testing.T) {
	t.Parallel()

	tw, _ := NewTypewriter(time.Millisecond).Start("done already")
	tw = tw.Finish()
	require.True(t, tw.Done())
	require.Equal(t, "done already", tw.Revealed())
}

func TestTypewriterEmptyText(t *testing.T) {
	t.Parallel()

	tw, cmd := NewTypewriter(0).Start("")
	require.Nil(t, cmd)
	require.True(t, tw.Done())
	require.Equal(t, DefaultTypewriterInterval, tw.Interval())
}

func TestReveal(t *testing.T) {
	t.Parallel()

	t.Run("yields every prefix", func(t *testing.T) {
		t.Parallel()

		text := "Once, ひかり."
		var got []string
		for prefix := range Reveal(text) {
			got = append(got, prefix)
		}

		require.Len(t, got, len([]rune(text)))
		for i, prefix := range got {
			require.Len(t, []rune(prefix), i+1)
			require.True(t, strings.HasPrefix(text, prefix))
		}
		require.Equal(t, text, got[len(got)-1])
	})

	t.Run("stops when the consumer breaks", func(t *testing.T) {
		t.Parallel()

		count := 0
		for range Reveal("abcdef") {
			count++
			if count == 2 {
				break
			}
		}
		require.Equal(t, 2, count)
	})

	t.Run("empty text yields nothing", func(t *testing.T) {
		t.Parallel()

		for range Reveal("") {
			t.Fatal("unexpected prefix")
		}
	})
}
