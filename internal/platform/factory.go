package platform

import (
	"runtime"
	"sync"
)

type platformBuilder func() Platform

var (
	registry     = make(map[string]platformBuilder)
	registryLock sync.RWMutex
)

func Register(osName string, builder platformBuilder) {
	registryLock.Lock()
	defer registryLock.Unlock()
	registry[osName] = builder
}

var (
	current     Platform
	currentOnce sync.Once
)

func Current() Platform {
	currentOnce.Do(func() {
		current = newPlatform()
	})
	return current
}

func newPlatform() Platform {
	registryLock.RLock()
	defer registryLock.RUnlock()

	if builder, ok := registry[runtime.GOOS]; ok {
		return builder()
	}

	return &unsupportedPlatform{name: runtime.GOOS}
}

type unsupportedPlatform struct {
	name string
}

func (p *unsupportedPlatform) Name() string        { return p.name }
func (p *unsupportedPlatform) IsSupported() bool   { return false }
func (p *unsupportedPlatform) Theme() ThemeService { return &unsupportedTheme{} }

type unsupportedTheme struct{}

func (s *unsupportedTheme) Detect() Theme { return ThemeLight }

func SetPlatform(p Platform) {
	currentOnce.Do(func() {})
	current = p
}

func ResetPlatform() {
	currentOnce = sync.Once{}
	current = nil
}
