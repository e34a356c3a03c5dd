package dashboard

import (
	"sync"

	"github.com/dmitrijs2005/linkdash/internal/client/models"
)

// Draft is a form kept between attempts. It is reset only after the action
// using it succeeds.
type Draft[T any] struct {
	mu sync.Mutex
	v  T
}

func (d *Draft[T]) Get() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.v
}

func (d *Draft[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.v = v
}

// Update applies fn to the draft in place.
func (d *Draft[T]) Update(fn func(*T)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn(&d.v)
}

func (d *Draft[T]) Reset() {
	var zero T
	d.Set(zero)
}

type UserDraft struct {
	Username string
	Email    string
	Password string
	Role     models.Role
}

type WorkerDraft struct {
	Username string
	Email    string
	Password string
}

type CampaignDraft = models.CampaignRequest

type LinkDraft = models.TrackingLinkRequest
