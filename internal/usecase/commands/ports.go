package commands

import "time"

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type PropertySnapshot struct {
	ID             string
	Name           string
	BasePriceMinor int64
	Negotiable     bool
}

type RoomSnapshot struct {
	ID             string
	PropertyID     string
	Name           string
	BasePriceMinor int64
}

type OverrideSnapshot struct {
	PropertyID   string
	Rate         float64
	ValidFrom    *time.Time
	ValidTo      *time.Time
	CampaignName *string
}

type PackageSnapshot struct {
	ID              string
	Name            string
	ServiceIDs      []string
	DiscountPercent float64
}
