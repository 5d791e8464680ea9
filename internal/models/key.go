package models

import "fmt"

// Group keys partition the operation universe into reconciliation buckets.
// A B2B key pins down a (project, category, contractor) triple; a retail key
// pools every walk-in operation of a (project, category) pair into one box.

// RetailKey builds the group key for a retail (walk-in) settlement box.
func RetailKey(projectID, categoryID string) string {
	return fmt.Sprintf("retail_%s_%s", projectID, categoryID)
}

// B2BKey builds the group key for a contracted B2B deal history.
func B2BKey(projectID, categoryID, contractorID string) string {
	return fmt.Sprintf("deal_%s_%s_%s", projectID, categoryID, contractorID)
}

// DealID builds the stable id of the ordinal-th deal within a group history.
// Ordinals are 1-based.
func DealID(key string, ordinal int) string {
	return fmt.Sprintf("deal_%s_%d", key, ordinal)
}
