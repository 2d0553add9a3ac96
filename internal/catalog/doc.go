// Package catalog holds the trip's reference data: itinerary days and stops,
// flights, lodging, the packing template and the informational guides.
//
// The default trip is embedded from trip.yaml. A replacement file can be
// supplied through the `catalog_path` config key; it is validated the same
// way and unknown fields are rejected.
//
// Nothing in the application writes to a Trip after it is loaded.
package catalog
