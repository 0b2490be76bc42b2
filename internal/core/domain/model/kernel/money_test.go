package kernel_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse valid decimal amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"10.00", "10.00"},
			{"5.35", "5.35"},
			{"0", "0.00"},
			{"0.1", "0.10"},
			{"1234.567", "1234.57"},
		}

		for _, tc := range testCases {
			money, err := kernel.NewMoneyFromString(tc.input)
			require.NoError(t, err, "input %q", tc.input)
			assert.Equal(t, tc.expected, money.String())
		}
	})

	t.Run("should reject malformed amounts", func(t *testing.T) {
		for _, input := range []string{"", "abc", "10.0.0", "10,00"} {
			_, err := kernel.NewMoneyFromString(input)
			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("should multiply by integer quantity exactly", func(t *testing.T) {
		price := kernel.MustMoney("10.00")

		total := price.Mul(2)

		assert.Equal(t, "20.00", total.String())
	})

	t.Run("should add amounts exactly", func(t *testing.T) {
		total := kernel.MustMoney("20.00").Add(kernel.MustMoney("5.00"))

		assert.Equal(t, "25.00", total.String())
	})

	t.Run("should not accumulate floating point drift", func(t *testing.T) {
		price := kernel.MustMoney("0.10")

		total := kernel.ZeroMoney()
		for range 100 {
			total = total.Add(price)
		}

		assert.True(t, total.IsEqual(kernel.MustMoney("10.00")))
	})

	t.Run("sum is independent of addend order", func(t *testing.T) {
		a := kernel.MustMoney("19.99")
		b := kernel.MustMoney("0.01")
		c := kernel.MustMoney("5.00")

		assert.True(t, a.Add(b).Add(c).IsEqual(c.Add(b).Add(a)))
	})
}

func TestMoney_Predicates(t *testing.T) {
	t.Run("zero value is zero amount and not positive", func(t *testing.T) {
		var money kernel.Money

		assert.False(t, money.IsPositive())
		assert.True(t, money.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("IsPositive", func(t *testing.T) {
		assert.True(t, kernel.MustMoney("0.01").IsPositive())
		assert.False(t, kernel.MustMoney("0").IsPositive())
		assert.False(t, kernel.MustMoney("-1.00").IsPositive())
	})

	t.Run("IsEqual ignores representation", func(t *testing.T) {
		assert.True(t, kernel.MustMoney("10.0").IsEqual(kernel.MustMoney("10.00")))
	})
}

func TestMustMoney(t *testing.T) {
	t.Run("should panic on malformed literal", func(t *testing.T) {
		assert.Panics(t, func() {
			kernel.MustMoney("not-a-number")
		})
	})
}
