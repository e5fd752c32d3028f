package hotel

import (
	"time"

	"github.com/google/uuid"
)

type City struct {
	id        uuid.UUID
	name      string
	slug      string
	country   string
	createdAt time.Time
}

func ReconstructCity(id uuid.UUID, name, slug, country string, createdAt time.Time) *City {
	return &City{
		id:        id,
		name:      name,
		slug:      slug,
		country:   country,
		createdAt: createdAt,
	}
}

func (c *City) ID() uuid.UUID        { return c.id }
func (c *City) Name() string         { return c.name }
func (c *City) Slug() string         { return c.slug }
func (c *City) Country() string      { return c.country }
func (c *City) CreatedAt() time.Time { return c.createdAt }

type Amenity struct {
	id   uuid.UUID
	name string
	icon string
}

func ReconstructAmenity(id uuid.UUID, name, icon string) *Amenity {
	return &Amenity{id: id, name: name, icon: icon}
}

func (a *Amenity) ID() uuid.UUID { return a.id }
func (a *Amenity) Name() string  { return a.name }
func (a *Amenity) Icon() string  { return a.icon }
