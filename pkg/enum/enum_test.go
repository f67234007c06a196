package enum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("create a enum of string", func(t *testing.T) {
		type EnumString string

		bar := NewNamed(EnumString("bar"), "Bar")
		require.Equal(t, bar, EnumString("bar"))

		v, err := ToEnum[EnumString]("Bar")
		require.NoError(t, err)
		require.Equal(t, v, bar)

		_, err = ToEnum[EnumString]("bar")
		require.Error(t, err)

		require.Equal(t, ToString(bar), "Bar")
		require.Equal(t, ToString(EnumString("foo")), "")
		require.True(t, IsValid(bar))
		require.False(t, IsValid(EnumString("foo")))
	})

	t.Run("create a enum of int", func(t *testing.T) {
		type EnumInt int

		bar := NewNamed(EnumInt(100), "Bar")
		require.Equal(t, bar, EnumInt(100))

		v, err := ToEnum[EnumInt]("Bar")
		require.NoError(t, err)
		require.Equal(t, v, bar)

		_, err = ToEnum[EnumInt]("bar")
		require.Error(t, err)

		require.Equal(t, ToString(bar), "Bar")
		require.Equal(t, ToString(EnumInt(200)), "")
	})

	t.Run("name defaults to the value", func(t *testing.T) {
		type Status string

		pending := New(Status("pending"))

		v, err := ToEnum[Status]("pending")
		require.NoError(t, err)
		require.Equal(t, pending, v)
	})

	t.Run("unknown enum type", func(t *testing.T) {
		type Unregistered string

		_, err := ToEnum[Unregistered]("x")
		require.Error(t, err)
		require.False(t, IsValid(Unregistered("x")))
	})
}
