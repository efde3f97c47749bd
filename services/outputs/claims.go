package outputs

import (
	"strconv"
	"sync"

	"onjucode-go/errcode"
	"onjucode-go/platform"
)

// pinRegistry hands each GPIO to at most one owner.
type pinRegistry struct {
	mu   sync.Mutex
	pins platform.PinFactory
	used map[int]string
}

func newPinRegistry(pins platform.PinFactory) *pinRegistry {
	return &pinRegistry{pins: pins, used: map[int]string{}}
}

func (r *pinRegistry) ClaimPin(owner string, n int) (platform.GPIOPin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pins.ByNumber(n)
	if !ok {
		return nil, &errcode.E{C: errcode.UnknownPin, Op: "outputs.ClaimPin",
			Msg: owner + ": GPIO" + strconv.Itoa(n)}
	}
	if prev, inUse := r.used[n]; inUse {
		return nil, &errcode.E{C: errcode.PinInUse, Op: "outputs.ClaimPin",
			Msg: owner + ": GPIO" + strconv.Itoa(n) + " held by " + prev}
	}
	r.used[n] = owner
	return p, nil
}

func (r *pinRegistry) Owner(n int) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.used[n]
	return o, ok
}
