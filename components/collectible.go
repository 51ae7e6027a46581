package components

import (
	"github.com/yohamta/donburi"
)

// CollectibleData marks a gem. Value is what it adds to the score.
type CollectibleData struct {
	Value int
}

var Collectible = donburi.NewComponentType[CollectibleData]()

// CollectibleRegistryData counts the gems of a level instance so nothing
// has to scan the world to know how many are left.
type CollectibleRegistryData struct {
	Total     int
	Remaining int
	Score     int
}

// Register records a newly spawned gem.
func (r *CollectibleRegistryData) Register() {
	r.Total++
	r.Remaining++
}

// Collect records a picked gem. It reports false if every gem was
// already accounted for.
func (r *CollectibleRegistryData) Collect(value int) bool {
	if r.Remaining <= 0 {
		return false
	}
	r.Remaining--
	r.Score += value
	return true
}

var CollectibleRegistry = donburi.NewComponentType[CollectibleRegistryData]()
