package vm

import (
	"fmt"
	"testing"
)

func TestSext(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		x    Word
		n    uint8
		want Word
	}{
		{"5-bit positive", 0x000f, 5, 0x000f},
		{"5-bit negative", 0x001f, 5, 0xffff},
		{"9-bit negative one", 0x01ff, 9, 0xffff},
		{"9-bit positive", 0x00ff, 9, 0x00ff},
		{"11-bit negative", 0x07ff, 11, 0xffff},
		{"6-bit zero", 0x0000, 6, 0x0000},
		{"high bits already set don't confuse masking", 0xffff, 5, 0xffff},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.x.Sext(c.n); got != c.want {
				t.Errorf("Sext(%s, %d) = %s, want %s", c.x, c.n, got, c.want)
			}
		})
	}
}

func TestSextMatchesSignedInterpretation(t *testing.T) {
	t.Parallel()

	for n := uint8(1); n <= 16; n++ {
		n := n

		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			for x := 0; x < 1<<n; x++ {
				low := Word(x).Zext(n)
				got := int16(low.Sext(n))

				signBit := Word(1) << (n - 1)

				var want int16
				if n == 16 {
					want = int16(low)
				} else if low&signBit != 0 {
					want = int16(low) - int16(uint16(1)<<n)
				} else {
					want = int16(low)
				}

				if got != want {
					t.Fatalf("Sext(%#04x, %d) = %d, want %d", uint16(low), n, got, want)
				}
			}
		})
	}
}

func TestZext(t *testing.T) {
	t.Parallel()

	if got := Word(0xffff).Zext(5); got != 0x001f {
		t.Errorf("Zext(0xffff, 5) = %s, want 0x001f", got)
	}
}

func TestConditionAny(t *testing.T) {
	t.Parallel()

	if !ConditionZero.Any(ConditionZero | ConditionNegative) {
		t.Error("ConditionZero should match a mask containing it")
	}

	if ConditionPositive.Any(ConditionZero | ConditionNegative) {
		t.Error("ConditionPositive should not match a mask without it")
	}

	if ConditionPositive.Any(0) {
		t.Error("no flag should match the empty mask")
	}
}
