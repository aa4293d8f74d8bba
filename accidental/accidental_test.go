package accidental

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"#", 1},
		{"♯", 1},
		{"b", -1},
		{"♭", -1},
		{"𝄪", 2},
		{"𝄫", -2},
		{"♯♯", 2},
		{"𝄪♯", 3},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := Sum(c.in)
			assert.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	_, err := Sum("x")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, ""},
		{1, "♯"},
		{-1, "♭"},
		{2, "𝄪"},
		{-2, "𝄫"},
		{3, "𝄪♯"},
		{-3, "𝄫♭"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, String(c.in))
		})
	}
}
