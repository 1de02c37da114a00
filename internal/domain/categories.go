package domain

// TravelMode is the public map's category filter key. Each mode maps to
// the hazard types relevant to that way of moving through the area.
type TravelMode string

const (
	ModeWalking TravelMode = "walking"
	ModeCycling TravelMode = "cycling"
	ModeCar     TravelMode = "car"
	ModeTaxi    TravelMode = "taxi"
)

var travelModeTypes = map[TravelMode][]HazardType{
	ModeWalking: {HazardCrime, HazardLoadShedding, HazardPothole, HazardDumping},
	ModeCycling: {HazardPothole, HazardDumping, HazardCrime, HazardLoadShedding},
	ModeCar:     {HazardDumping, HazardLoadShedding, HazardCrime},
	ModeTaxi:    {HazardCrime, HazardLoadShedding},
}

// AllowedTypes returns the hazard-type set for a travel mode. An unknown
// or empty mode allows every type.
func AllowedTypes(mode TravelMode) map[HazardType]bool {
	types, ok := travelModeTypes[mode]
	if !ok {
		types = HazardTypes()
	}
	allowed := make(map[HazardType]bool, len(types))
	for _, t := range types {
		allowed[t] = true
	}
	return allowed
}
