package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPercent(t *testing.T) {
	cases := []struct {
		amount, percent, want string
	}{
		{"200.00", "5", "10.00"},
		{"100.00", "5", "5.00"},
		{"33.33", "10", "3.33"},   // 3.333 rounds down
		{"33.35", "10", "3.34"},   // 3.335 rounds half up
		{"155.00", "0", "0.00"},
		{"10.00", "100", "10.00"},
	}
	for _, tc := range cases {
		got := RequireFromString(tc.amount).ApplyPercent(RequirePercentFromString(tc.percent))
		assert.Equal(t, tc.want, got.StringFixed(2), "%s%% of %s", tc.percent, tc.amount)
	}
}

func TestMulQty(t *testing.T) {
	assert.Equal(t, "31.00", RequireFromString("15.50").MulQty(2).StringFixed(2))
	assert.Equal(t, "0.00", RequireFromString("9.99").MulQty(0).StringFixed(2))
	assert.Equal(t, "-46.50", RequireFromString("15.50").MulQty(-3).StringFixed(2))
}

func TestJSONAlwaysTwoDecimals(t *testing.T) {
	b, err := json.Marshal(FromInt(380))
	require.NoError(t, err)
	assert.Equal(t, `"380.00"`, string(b))

	b, err = json.Marshal(RequireFromString("10.5"))
	require.NoError(t, err)
	assert.Equal(t, `"10.50"`, string(b))

	b, err = json.Marshal(RequirePercentFromString("5"))
	require.NoError(t, err)
	assert.Equal(t, `"5.00"`, string(b))
}

func TestUnmarshalAcceptsStringAndNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"12.34"`), &m))
	assert.True(t, m.Equal(RequireFromString("12.34")))

	require.NoError(t, json.Unmarshal([]byte(`12.34`), &m))
	assert.True(t, m.Equal(RequireFromString("12.34")))
}

func TestPercentInRange(t *testing.T) {
	assert.True(t, PercentFromInt(0).InRange())
	assert.True(t, PercentFromInt(100).InRange())
	assert.True(t, RequirePercentFromString("12.5").InRange())
	assert.False(t, PercentFromInt(101).InRange())
	assert.False(t, RequirePercentFromString("-0.01").InRange())
}

func TestSumOfLineDiscountsMatchesIdentity(t *testing.T) {
	// Three odd-valued lines at 7.5%: the invoice identity
	// subtotal − Σ line discounts == Σ line finals must hold exactly.
	percent := RequirePercentFromString("7.5")
	lines := []Money{
		RequireFromString("33.33"),
		RequireFromString("19.99"),
		RequireFromString("0.01"),
	}
	subtotal, discount, finals := Zero(), Zero(), Zero()
	for _, l := range lines {
		d := l.ApplyPercent(percent)
		subtotal = subtotal.Add(l)
		discount = discount.Add(d)
		finals = finals.Add(l.Sub(d))
	}
	assert.True(t, subtotal.Sub(discount).Equal(finals))
}
