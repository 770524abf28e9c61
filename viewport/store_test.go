package viewport

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wthomas48/smart-deals-iq-sub002/hostenv"
)

func TestStoreSetNotifies(t *testing.T) {
	store := NewStore(Dimensions{Width: 375, Height: 812}, hostenv.Flags{IOS: true})

	var got []Info
	cancel := store.Subscribe(func(info Info) {
		got = append(got, info)
	})
	defer cancel()

	store.Set(Dimensions{Width: 800, Height: 600})
	store.Set(Dimensions{Width: 1280, Height: 800})

	require.Len(t, got, 2, "one notification per Set")
	assert.Equal(t, 800.0, got[0].Width)
	assert.Equal(t, 1280.0, got[1].Width, "later write supersedes the earlier one")
	assert.Equal(t, Dimensions{Width: 1280, Height: 800}, store.Dimensions())
}

func TestStoreNoDeduplication(t *testing.T) {
	store := NewStore(Dimensions{Width: 800, Height: 600}, hostenv.Flags{})

	count := 0
	cancel := store.Subscribe(func(Info) { count++ })
	defer cancel()

	// The same pair three times is three events; suppression is the host
	// layer's business, not the store's.
	store.Set(Dimensions{Width: 800, Height: 600})
	store.Set(Dimensions{Width: 800, Height: 600})
	store.Set(Dimensions{Width: 800, Height: 600})

	assert.Equal(t, 3, count)
}

func TestStoreSubscriptionOrder(t *testing.T) {
	store := NewStore(Dimensions{}, hostenv.Flags{})

	var calls []string
	c1 := store.Subscribe(func(Info) { calls = append(calls, "first") })
	c2 := store.Subscribe(func(Info) { calls = append(calls, "second") })
	c3 := store.Subscribe(func(Info) { calls = append(calls, "third") })
	defer c1()
	defer c2()
	defer c3()

	store.Set(Dimensions{Width: 100, Height: 100})

	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestStoreCancel(t *testing.T) {
	store := NewStore(Dimensions{}, hostenv.Flags{})

	count := 0
	cancel := store.Subscribe(func(Info) { count++ })

	store.Set(Dimensions{Width: 100, Height: 100})
	require.Equal(t, 1, count)

	cancel()
	store.Set(Dimensions{Width: 200, Height: 200})
	assert.Equal(t, 1, count, "no notifications after cancel")

	// Idempotent: a second call is a no-op, not a panic or a double delete.
	cancel()
	store.Set(Dimensions{Width: 300, Height: 300})
	assert.Equal(t, 1, count)
}

func TestStoreCancelDuringNotify(t *testing.T) {
	store := NewStore(Dimensions{}, hostenv.Flags{})

	secondCalls := 0
	var cancelSecond func()

	c1 := store.Subscribe(func(Info) {
		if cancelSecond != nil {
			cancelSecond()
			cancelSecond = nil
		}
	})
	defer c1()
	cancelSecond = store.Subscribe(func(Info) { secondCalls++ })

	// The first subscriber cancels the second before its turn comes;
	// the second sees nothing, in this pass or later ones.
	store.Set(Dimensions{Width: 100, Height: 100})
	store.Set(Dimensions{Width: 200, Height: 200})

	assert.Equal(t, 0, secondCalls)
}

func TestStoreSetHostFlags(t *testing.T) {
	store := NewStore(Dimensions{Width: 390, Height: 844}, hostenv.Flags{IOS: true})
	require.Equal(t, PlatformIOS, store.Info().Platform)

	var got []Info
	cancel := store.Subscribe(func(info Info) { got = append(got, info) })
	defer cancel()

	store.SetHostFlags(hostenv.Flags{IOS: true, DesktopShell: true})

	require.Len(t, got, 1, "flag changes notify like dimension changes")
	assert.Equal(t, PlatformDesktop, got[0].Platform)
	assert.True(t, got[0].IsDesktop)
	assert.Equal(t, hostenv.Flags{IOS: true, DesktopShell: true}, store.HostFlags())
}

func TestStoreCanonicalizes(t *testing.T) {
	store := NewStore(Dimensions{Width: -10, Height: math.NaN()}, hostenv.Flags{})
	assert.Equal(t, Dimensions{}, store.Dimensions(), "initial pair is clamped")

	var got Info
	cancel := store.Subscribe(func(info Info) { got = info })
	defer cancel()

	store.Set(Dimensions{Width: math.Inf(1), Height: 500})

	assert.Equal(t, Dimensions{Width: 0, Height: 500}, store.Dimensions())
	assert.Equal(t, 0.0, got.Width, "subscribers see the clamped pair")
	assert.Equal(t, DevicePhone, got.Device)
}

func TestStoreInfoRecomputes(t *testing.T) {
	store := NewStore(Dimensions{Width: 375, Height: 812}, hostenv.Flags{IOS: true})

	before := store.Info()
	assert.Equal(t, DevicePhone, before.Device)
	assert.True(t, before.IsMobileSize)

	store.Set(Dimensions{Width: 1920, Height: 1080})

	after := store.Info()
	assert.Equal(t, DeviceDesktop, after.Device)
	assert.True(t, after.IsLargeDesktop)
	assert.True(t, after.IsLandscape)
}

func TestStoreConcurrentReads(t *testing.T) {
	store := NewStore(Dimensions{Width: 800, Height: 600}, hostenv.Flags{Web: true})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = store.Info()
				_ = store.Dimensions()
			}
		}()
	}
	for i := 0; i < 100; i++ {
		store.Set(Dimensions{Width: float64(600 + i), Height: 600})
	}
	wg.Wait()

	assert.Equal(t, Dimensions{Width: 699, Height: 600}, store.Dimensions())
}
