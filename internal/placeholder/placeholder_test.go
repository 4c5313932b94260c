package placeholder

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 24, []string{""}},
		{"single word", "Gmail", 24, []string{"Gmail"}},
		{"fits on one line", "short title", 24, []string{"short title"}},
		{"wraps on word boundary", "a reasonably long title here", 12, []string{"a reasonably", "long title", "here"}},
		{"long word kept whole", "supercalifragilistic", 5, []string{"supercalifragilistic"}},
		{"collapses whitespace", "a  \t b", 24, []string{"a b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Wrap(tc.text, tc.width))
		})
	}
}

func TestNewAndRender(t *testing.T) {
	t.Parallel()

	d, err := New(1280, 800)
	require.NoError(t, err)

	data, err := d.Render("Mi Portal de Marcadores Favoritos")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestNewDefaultsDimensions(t *testing.T) {
	t.Parallel()

	d, err := New(0, 0)
	require.NoError(t, err)

	data, err := d.Render("x")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 1280, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestRenderNilDrawer(t *testing.T) {
	t.Parallel()

	var d *Drawer
	_, err := d.Render("anything")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestRenderEmptyText(t *testing.T) {
	t.Parallel()

	d, err := New(320, 200)
	require.NoError(t, err)

	data, err := d.Render("")
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
}
