package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Type: EventQuit}, true},
		{
			"resize",
			&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 800, Data2: 600},
			Event{Type: EventWindowResize, Width: 800, Height: 600},
			true,
		},
		{
			"escape",
			&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}},
			Event{Type: EventKeyDown, Key: sdl.K_ESCAPE},
			true,
		},
		{"key up ignored", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_a}}, Event{}, false},
		{"window moved ignored", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MOVED}, Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.event)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResized(t *testing.T) {
	in := New()
	if _, _, ok := in.Resized(); ok {
		t.Error("expected no resize before any events")
	}

	in.events = append(in.events,
		Event{Type: EventWindowResize, Width: 640, Height: 480},
		Event{Type: EventKeyDown, Key: sdl.K_SPACE},
		Event{Type: EventWindowResize, Width: 1024, Height: 768},
	)
	w, h, ok := in.Resized()
	if !ok || w != 1024 || h != 768 {
		t.Errorf("Resized() = %d, %d, %v; want 1024, 768, true", w, h, ok)
	}
}
