package compliant

import (
	"bytes"
	"testing"

	"solid-example/solid/dip/violation"

	"github.com/stretchr/testify/assert"
)

// recordingDevice shows the switch works with any Switchable, not just the shipped ones.
type recordingDevice struct {
	calls []string
}

func (d *recordingDevice) Activate()   { d.calls = append(d.calls, "on") }
func (d *recordingDevice) Deactivate() { d.calls = append(d.calls, "off") }

func TestElectricPowerSwitchDevices(t *testing.T) {
	testCases := []struct {
		name   string
		device func(*bytes.Buffer) Switchable
		want   string
	}{
		{
			name:   "bulb",
			device: func(b *bytes.Buffer) Switchable { return NewLightBulb(b) },
			want:   "LightBulb: Turned ON\nLightBulb: Turned OFF\nLightBulb: Turned ON\n",
		},
		{
			name:   "fan",
			device: func(b *bytes.Buffer) Switchable { return NewFan(b) },
			want:   "Fan: Turned ON\nFan: Turned OFF\nFan: Turned ON\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			s := NewElectricPowerSwitch(tc.device(&out))

			s.Press()
			assert.True(t, s.IsOn())
			s.Press()
			assert.False(t, s.IsOn())
			s.Press()
			assert.True(t, s.IsOn())

			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestElectricPowerSwitchAcceptsAnySwitchable(t *testing.T) {
	device := &recordingDevice{}
	s := NewElectricPowerSwitch(device)
	for i := 0; i < 4; i++ {
		s.Press()
	}
	assert.Equal(t, []string{"on", "off", "on", "off"}, device.calls)
	assert.False(t, s.IsOn())
}

func TestBulbOutputMatchesHardwiredSwitch(t *testing.T) {
	var hardwired, injected bytes.Buffer
	old := violation.NewElectricPowerSwitch(&hardwired)
	s := NewElectricPowerSwitch(NewLightBulb(&injected))

	for i := 0; i < 3; i++ {
		old.Press()
		s.Press()
		assert.Equal(t, old.IsOn(), s.IsOn())
	}
	assert.Equal(t, hardwired.String(), injected.String())
}
