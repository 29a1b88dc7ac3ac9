package domain

import "fmt"

// ResourceType tags which collection a resource id belongs to
type ResourceType string

const (
	ResourceHomestay ResourceType = "homestay"
	ResourceGuide    ResourceType = "guide"
)

// ParseResourceType validates a raw string against the known resource types
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case ResourceHomestay:
		return ResourceHomestay, nil
	case ResourceGuide:
		return ResourceGuide, nil
	default:
		return "", fmt.Errorf("unknown resource type %q", s)
	}
}

// ResourceRef identifies a bookable resource: a homestay unit or a guide
// calendar. The pair (Type, ID) is the unit of overlap scoping — conflicts
// are only ever checked among bookings of the same ResourceRef.
type ResourceRef struct {
	Type ResourceType
	ID   int64
}

// Validate checks that the reference is well-formed
func (r ResourceRef) Validate() error {
	if _, err := ParseResourceType(string(r.Type)); err != nil {
		return err
	}
	if r.ID <= 0 {
		return fmt.Errorf("resource id must be positive, got %d", r.ID)
	}
	return nil
}

// String returns a compact representation like "homestay/42"
func (r ResourceRef) String() string {
	return fmt.Sprintf("%s/%d", r.Type, r.ID)
}
