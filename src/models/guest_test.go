package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuestApplyToken(t *testing.T) {
	t.Run("TestTokenIsMD5OfIP", func(t *testing.T) {
		guest := Guest{IP: "127.0.0.1"}
		guest.ApplyToken()
		assert.Equal(t, "f528764d624db129b32c21fbca0cb8d6", guest.Token)
	})

	t.Run("TestTokenIsIdempotent", func(t *testing.T) {
		guest := Guest{IP: "10.0.0.7"}
		guest.ApplyToken()
		first := guest.Token

		guest.ApplyToken()
		assert.Equal(t, first, guest.Token)
		assert.Len(t, guest.Token, 32)
	})

	t.Run("TestDifferentIPsDifferentTokens", func(t *testing.T) {
		a := Guest{IP: "10.0.0.1"}
		b := Guest{IP: "10.0.0.2"}
		a.ApplyToken()
		b.ApplyToken()
		assert.NotEqual(t, a.Token, b.Token)
	})
}
