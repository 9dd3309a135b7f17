package parse

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	p := Tag("abc")

	tests := map[string]struct {
		input string
		want  Result[string]
	}{
		"matches prefix":      {"abcde", Ok("abc", 3)},
		"matches exactly":     {"abc", Ok("abc", 3)},
		"no match mid-string": {"deabc", Expected[string]("abc")},
		"partial prefix":      {"ab", Expected[string]("abc")},
		"empty input":         {"", Expected[string]("abc")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, p(test.input))
		})
	}

	assert.Equal(t, Expected[string]("bcd"), Tag("bcd")("abcde"))
}

func TestRegex(t *testing.T) {
	p := Regex(`ab+c?`)

	assert.Equal(t, Ok("abbc", 4), p("abbcd"))
	assert.Equal(t, Expected[string](`ab+c?`), p(" ab"))
	assert.Equal(t, Expected[string](`ab+c?`), p("xxabbc"))
}

func TestRegexAlternationIsAnchored(t *testing.T) {
	p := Regex(`x|ab`)

	assert.Equal(t, Ok("ab", 2), p("abx"))
	assert.Equal(t, Expected[string](`x|ab`), p("zab"))
}

func TestRegexCountsBytes(t *testing.T) {
	assert.Equal(t, Ok("héé", 5), Regex(`h[é]+`)("héé!"))
}

func TestRegexInvalidUTF8(t *testing.T) {
	assert.Equal(t, Ok("\xff", 1), Regex(`.`)("\xffa"))
	assert.Equal(t, OkExpecting([]string{"\xff", "a"}, 2, []string{"."}), Many1(Regex(`.`))("\xffa"))

	r := Many1(Regex(`[^,]`))("a\xfe\xff,")
	values, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "\xfe", "\xff"}, values)
	assert.Equal(t, 3, r.Consumed())
}

func TestRegexLongInputIsLinear(t *testing.T) {
	input := strings.Repeat("a", 1<<20) + "b"

	start := time.Now()
	r := Many1(Regex(`a`))(input)
	elapsed := time.Since(start)

	require.True(t, r.IsOk())
	assert.Equal(t, 1<<20, r.Consumed())
	assert.Less(t, elapsed, 10*time.Second)
}

func BenchmarkMany1Regex(b *testing.B) {
	input := strings.Repeat("ab", 1<<14)
	p := Many1(Regex(`a|b`))
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		p(input)
	}
}

func TestRegexPanicsOnBadPattern(t *testing.T) {
	assert.Panics(t, func() { Regex(`(`) })
}

func TestEOF(t *testing.T) {
	assert.Equal(t, Ok(struct{}{}, 0), EOF(""))
	assert.Equal(t, Expected[struct{}]("EOF"), EOF("x"))
}

func TestUint(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Result[uint64]
	}{
		"positive":           {"3420abc", Ok[uint64](3420, 4)},
		"stops before e":     {"321e10", Ok[uint64](321, 3)},
		"stops before dot":   {"321.10", Ok[uint64](321, 3)},
		"zero":               {"0", Ok[uint64](0, 1)},
		"zero then letter":   {"0x", Ok[uint64](0, 1)},
		"negative":           {"-5", Expected[uint64]("nonnegative integer")},
		"leading zero":       {"0123", Expected[uint64]("nonnegative integer")},
		"leading whitespace": {" 123", Expected[uint64]("nonnegative integer")},
		"max":                {"18446744073709551615", Ok[uint64](18446744073709551615, 20)},
		"overflow":           {"18446744073709551616", Expected[uint64]("nonnegative integer")},
		"non ascii digits":   {"٣", Expected[uint64]("nonnegative integer")},
		"empty input":        {"", Expected[uint64]("nonnegative integer")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, Uint(test.input))
		})
	}
}

func TestInt(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Result[int64]
	}{
		"positive":           {"3420abc", Ok[int64](3420, 4)},
		"stops before e":     {"321e10", Ok[int64](321, 3)},
		"stops before dot":   {"321.10", Ok[int64](321, 3)},
		"negative":           {"-5", Ok[int64](-5, 2)},
		"negative zero":      {"-0", Ok[int64](0, 2)},
		"zero":               {"0", Ok[int64](0, 1)},
		"leading zero":       {"0123", Expected[int64]("integer")},
		"negative leading 0": {"-01", Expected[int64]("integer")},
		"double zero":        {"00", Expected[int64]("integer")},
		"lone minus":         {"-", Expected[int64]("integer")},
		"leading whitespace": {" 123", Expected[int64]("integer")},
		"min":                {"-9223372036854775808", Ok[int64](-9223372036854775808, 20)},
		"overflow":           {"9223372036854775808", Expected[int64]("integer")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, Int(test.input))
		})
	}
}

func TestHex(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Result[uint64]
	}{
		"positive":           {"3420abcdefn", Ok[uint64](0x3420abcdef, 10)},
		"upper case":         {"FF", Ok[uint64](0xff, 2)},
		"stops before dot":   {"321.10", Ok[uint64](0x321, 3)},
		"zero":               {"0", Ok[uint64](0, 1)},
		"negative":           {"-5", Expected[uint64]("nonnegative hexadecimal")},
		"leading zero":       {"0123", Expected[uint64]("nonnegative hexadecimal")},
		"zero then hex":      {"0a", Expected[uint64]("nonnegative hexadecimal")},
		"leading whitespace": {" 123", Expected[uint64]("nonnegative hexadecimal")},
		"overflow":           {"10000000000000000", Expected[uint64]("nonnegative hexadecimal")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, Hex(test.input))
		})
	}
}

func TestSignedHex(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Result[int64]
	}{
		"positive":           {"3420abcdefn", Ok[int64](0x3420abcdef, 10)},
		"stops before dot":   {"321.10", Ok[int64](0x321, 3)},
		"negative":           {"-5", Ok[int64](-0x5, 2)},
		"negative letters":   {"-ff", Ok[int64](-0xff, 3)},
		"zero":               {"0", Ok[int64](0, 1)},
		"leading zero":       {"0123", Expected[int64]("hexadecimal")},
		"leading whitespace": {" 123", Expected[int64]("hexadecimal")},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, SignedHex(test.input))
		})
	}
}
