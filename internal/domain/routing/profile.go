package routing

import "fmt"

// Profile selects the routing mode used to compute an isochrone.
type Profile string

const (
	ProfileDrivingCar      Profile = "driving-car"
	ProfileDrivingHGV      Profile = "driving-hgv"
	ProfileCyclingRegular  Profile = "cycling-regular"
	ProfileCyclingRoad     Profile = "cycling-road"
	ProfileCyclingMountain Profile = "cycling-mountain"
	ProfileCyclingElectric Profile = "cycling-electric"
	ProfileFootWalking     Profile = "foot-walking"
	ProfileFootHiking      Profile = "foot-hiking"
	ProfileWheelchair      Profile = "wheelchair"
)

// Category groups profiles that share option rules.
type Category string

const (
	CategoryDriving    Category = "driving"
	CategoryCycling    Category = "cycling"
	CategoryFoot       Category = "foot"
	CategoryWheelchair Category = "wheelchair"
)

// IsValid returns true if the profile is recognized.
func (p Profile) IsValid() bool {
	switch p {
	case ProfileDrivingCar, ProfileDrivingHGV,
		ProfileCyclingRegular, ProfileCyclingRoad, ProfileCyclingMountain, ProfileCyclingElectric,
		ProfileFootWalking, ProfileFootHiking,
		ProfileWheelchair:
		return true
	}
	return false
}

// Category returns the profile family. It returns an empty category for unknown profiles.
func (p Profile) Category() Category {
	switch p {
	case ProfileDrivingCar, ProfileDrivingHGV:
		return CategoryDriving
	case ProfileCyclingRegular, ProfileCyclingRoad, ProfileCyclingMountain, ProfileCyclingElectric:
		return CategoryCycling
	case ProfileFootWalking, ProfileFootHiking:
		return CategoryFoot
	case ProfileWheelchair:
		return CategoryWheelchair
	}
	return ""
}

// String returns the string representation of the profile.
func (p Profile) String() string {
	return string(p)
}

// ParseProfile converts a string to a Profile, returning an error if invalid.
func ParseProfile(s string) (Profile, error) {
	p := Profile(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid routing profile: %s", s)
	}
	return p, nil
}
