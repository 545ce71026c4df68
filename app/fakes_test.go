package app

import (
	"fmt"
	"testing"

	"laios/core"
	"laios/vulkan"
)

// journal records acquisitions and releases across all fakes, in order.
type journal struct {
	entries []string
	live    int
}

func (j *journal) acquire(what string) {
	j.live++
	j.entries = append(j.entries, "create "+what)
}

func (j *journal) release(what string) {
	j.live--
	j.entries = append(j.entries, "destroy "+what)
}

func (j *journal) note(s string) {
	j.entries = append(j.entries, s)
}

type fakePlatform struct {
	j         *journal
	createErr error
	script    *scriptedEvents
	extra     []string
	config    core.WindowConfig
}

func (p *fakePlatform) CreateWindow(config core.WindowConfig) (core.Surface, core.EventSource, error) {
	if p.createErr != nil {
		return nil, nil, p.createErr
	}
	p.config = config
	p.j.acquire("window")
	return &fakeSurface{j: p.j, config: config, extra: p.extra}, p.script, nil
}

type fakeSurface struct {
	j         *journal
	config    core.WindowConfig
	extra     []string
	destroyed int
}

func (s *fakeSurface) Size() (int, int) { return s.config.Width, s.config.Height }
func (s *fakeSurface) Title() string    { return s.config.Title }

func (s *fakeSurface) RequiredInstanceExtensions() []string {
	return append([]string{vulkan.SurfaceExtension, vulkan.PlatformSurfaceExtension}, s.extra...)
}

func (s *fakeSurface) Destroy() {
	s.destroyed++
	s.j.release("window")
}

// scriptedEvents hands out a fixed sequence and fails the test if the loop
// asks for more.
type scriptedEvents struct {
	t      *testing.T
	j      *journal
	events []core.Event
	served int
}

func (s *scriptedEvents) WaitEvent() core.Event {
	if s.served >= len(s.events) {
		s.t.Fatalf("event loop asked for event %d of %d", s.served+1, len(s.events))
	}
	e := s.events[s.served]
	s.served++
	if s.j != nil {
		s.j.note(fmt.Sprintf("event %d", s.served))
	}
	return e
}

type fakeAPI struct {
	j         *journal
	layers    []string
	createErr error
	created   []vulkan.InstanceCreateInfo
	destroyed int
	next      vulkan.InstanceHandle
}

func newFakeAPI(j *journal) *fakeAPI {
	return &fakeAPI{
		j:      j,
		layers: []string{"VK_LAYER_LUNARG_standard_validation"},
	}
}

func (f *fakeAPI) InstanceLayers() ([]string, error) { return f.layers, nil }

func (f *fakeAPI) InstanceExtensions() ([]string, error) {
	return []string{vulkan.SurfaceExtension, vulkan.PlatformSurfaceExtension}, nil
}

func (f *fakeAPI) CreateInstance(info vulkan.InstanceCreateInfo) (vulkan.InstanceHandle, error) {
	f.created = append(f.created, info)
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.j.acquire("instance")
	f.next++
	return f.next, nil
}

func (f *fakeAPI) DestroyInstance(vulkan.InstanceHandle) {
	f.destroyed++
	f.j.release("instance")
}
