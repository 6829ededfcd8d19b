package input

import "testing"

func TestSpaceConfirmIsEdgeTriggered(t *testing.T) {
	r := NewActionReader()
	dev := newFakeDevice()
	dev.keys[KeySpace] = true

	if got := r.Poll(dev, nil); len(got) != 1 || got[0] != ActionConfirm {
		t.Fatalf("expected confirm, got %v", got)
	}
	if got := r.Poll(dev, nil); len(got) != 0 {
		t.Fatalf("expected held space not to repeat, got %v", got)
	}
	dev.release()
	r.Poll(dev, nil)
	dev.keys[KeySpace] = true
	if got := r.Poll(dev, nil); len(got) != 1 {
		t.Fatalf("expected confirm after release, got %v", got)
	}
}

func TestMappedFaceButtons(t *testing.T) {
	table := DefaultMappings()
	sony := NewController("DS4 (Vendor: 054c Product: 09cc)", table)
	dragon := NewController("Pad (Vendor: 0079 Product: 0006)", table)

	cases := []struct {
		c    *Controller
		held []Button
		want Action
	}{
		{sony, []Button{ButtonA}, ActionConfirm},
		{sony, []Button{ButtonX}, ActionMenu},
		{dragon, []Button{ButtonX}, ActionConfirm},
		{dragon, []Button{ButtonY}, ActionMenu},
		{dragon, []Button{ButtonX, ButtonA}, ActionTriangle},
	}
	for i, c := range cases {
		r := NewActionReader()
		dev := newFakeDevice()
		for _, b := range c.held {
			dev.buttons[int(b)] = true
		}
		got := r.Poll(dev, c.c)
		if len(got) != 1 || got[0] != c.want {
			t.Fatalf("case %d: expected [%s], got %v", i, c.want, got)
		}
		if again := r.Poll(dev, c.c); len(again) != 0 {
			t.Fatalf("case %d: expected no repeat while held, got %v", i, again)
		}
	}
}

func TestUnknownControllerButtonsIgnored(t *testing.T) {
	r := NewActionReader()
	dev := newFakeDevice()
	dev.buttons[int(ButtonA)] = true
	dev.buttons[int(ButtonL1)] = true

	c := NewController("Xbox 360 Controller (XInput STANDARD GAMEPAD)", DefaultMappings())
	if c.Known {
		t.Fatal("expected controller to be unknown")
	}
	if got := r.Poll(dev, c); len(got) != 0 {
		t.Fatalf("expected no actions, got %v", got)
	}
}

func TestShoulderPassThrough(t *testing.T) {
	r := NewActionReader()
	dev := newFakeDevice()
	dev.buttons[int(ButtonR2)] = true

	c := NewController("x (Vendor: 054c)", DefaultMappings())
	if got := r.Poll(dev, c); len(got) != 1 || got[0] != ActionR2 {
		t.Fatalf("expected r2, got %v", got)
	}
}
