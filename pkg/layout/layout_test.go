package layout_test

import (
	"testing"

	"github.com/Astemirdum/bookshelf/pkg/layout"
	"github.com/stretchr/testify/require"
)

func TestConfig_ForceRTL(t *testing.T) {
	t.Parallel()
	cfg := layout.New(layout.LTR)

	var got []layout.Direction
	cancel := cfg.Subscribe(func(d layout.Direction) {
		got = append(got, d)
	})

	cfg.ForceRTL(true)
	require.True(t, cfg.IsRTL())
	cfg.ForceRTL(true)
	cfg.ForceRTL(false)
	require.Equal(t, layout.LTR, cfg.Direction())
	require.Equal(t, []layout.Direction{layout.RTL, layout.LTR}, got)

	cancel()
	cancel()
	cfg.ForceRTL(true)
	require.Len(t, got, 2)
}

func TestConfig_SharedAcrossHolders(t *testing.T) {
	a, b := layout.Shared(), layout.Shared()
	t.Cleanup(func() { a.ForceRTL(false) })

	a.ForceRTL(true)
	require.True(t, b.IsRTL())
}

func TestDirection_Align(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		dir  layout.Direction
		in   string
		cols int
		want string
	}{
		{name: "ltr untouched", dir: layout.LTR, in: "abc", cols: 6, want: "abc"},
		{name: "rtl padded", dir: layout.RTL, in: "abc", cols: 6, want: "   abc"},
		{name: "rtl too wide", dir: layout.RTL, in: "abcdefg", cols: 6, want: "abcdefg"},
		{name: "rtl no width", dir: layout.RTL, in: "abc", cols: 0, want: "abc"},
		{name: "rtl wide runes", dir: layout.RTL, in: "本", cols: 4, want: "  本"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.dir.Align(tt.in, tt.cols))
		})
	}
}

func TestDisplayWidth(t *testing.T) {
	t.Parallel()
	require.Equal(t, 5, layout.DisplayWidth("hello"))
	require.Equal(t, 4, layout.DisplayWidth("日本"))
	require.Equal(t, 5, layout.DisplayWidth("كتاب "))
}
