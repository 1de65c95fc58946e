package vm

import "testing"

func TestNewStartsInDocumentedState(t *testing.T) {
	t.Parallel()

	machine := New()

	if machine.REG[PC] != UserSpaceAddr {
		t.Errorf("PC = %s, want %s", machine.REG[PC], UserSpaceAddr)
	}

	if Condition(machine.REG[COND]) != ConditionZero {
		t.Errorf("COND = %s, want ZRO", Condition(machine.REG[COND]))
	}

	if !machine.Running {
		t.Error("Running should be true at start")
	}

	for r := R0; r < NumGPR; r++ {
		if machine.REG[r] != 0 {
			t.Errorf("%s = %s, want 0", r, machine.REG[r])
		}
	}
}

func TestWithOrigin(t *testing.T) {
	t.Parallel()

	machine := New(WithOrigin(0x4000))

	if machine.REG[PC] != 0x4000 {
		t.Errorf("PC = %s, want 0x4000", machine.REG[PC])
	}
}

func TestUpdateFlags(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		v    Word
		want Condition
	}{
		{"zero", 0x0000, ConditionZero},
		{"positive", 0x0001, ConditionPositive},
		{"max positive", 0x7fff, ConditionPositive},
		{"negative", 0x8000, ConditionNegative},
		{"all ones", 0xffff, ConditionNegative},
	}

	for _, c := range cases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			machine := New()
			machine.REG[R0] = c.v
			machine.UpdateFlags(R0)

			if got := Condition(machine.REG[COND]); got != c.want {
				t.Errorf("UpdateFlags(%s): COND = %s, want %s", c.v, got, c.want)
			}
		})
	}
}
