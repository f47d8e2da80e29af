package cache

import (
	"sync"

	"github.com/veloria/warranty-portal/internal/metrics"
	"github.com/veloria/warranty-portal/internal/repository"
)

// CaseCache is a read-through cache over claim and return rows, keyed by id.
// Entries are copied on the way in and out so callers can't mutate shared state.
type CaseCache struct {
	mu      sync.RWMutex
	claims  map[string]*repository.Claim
	returns map[string]*repository.Return
}

func NewCaseCache() *CaseCache {
	return &CaseCache{
		claims:  make(map[string]*repository.Claim),
		returns: make(map[string]*repository.Return),
	}
}

func (c *CaseCache) GetClaim(id string) (*repository.Claim, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	claim, found := c.claims[id]
	if !found {
		return nil, false
	}
	claimCopy := *claim
	return &claimCopy, true
}

func (c *CaseCache) SetClaim(claim *repository.Claim) {
	c.mu.Lock()
	defer c.mu.Unlock()
	claimCopy := *claim
	c.claims[claim.ID] = &claimCopy
	c.updateGauge()
}

func (c *CaseCache) GetReturn(id string) (*repository.Return, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret, found := c.returns[id]
	if !found {
		return nil, false
	}
	retCopy := *ret
	return &retCopy, true
}

func (c *CaseCache) SetReturn(ret *repository.Return) {
	c.mu.Lock()
	defer c.mu.Unlock()
	retCopy := *ret
	c.returns[ret.ID] = &retCopy
	c.updateGauge()
}

func (c *CaseCache) updateGauge() {
	metrics.CaseCacheItems.Set(float64(len(c.claims) + len(c.returns)))
}
