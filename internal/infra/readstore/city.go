package readstore

import (
	"context"

	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/usecase/queries"
)

type CityReadStore struct {
	db db.DBTX
}

func NewCityReadStore(database db.DBTX) *CityReadStore {
	return &CityReadStore{db: database}
}

func (r *CityReadStore) ListAll(ctx context.Context) ([]*queries.CityView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, slug, country FROM cities ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cities", err)
	}
	defer rows.Close()

	var result []*queries.CityView
	for rows.Next() {
		var c queries.CityView
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Country); err != nil {
			return nil, infra.WrapRepoErr("failed to scan city row", err)
		}
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read city rows", err)
	}
	return result, nil
}

type AmenityReadStore struct {
	db db.DBTX
}

func NewAmenityReadStore(database db.DBTX) *AmenityReadStore {
	return &AmenityReadStore{db: database}
}

func (r *AmenityReadStore) ListAll(ctx context.Context) ([]*queries.AmenityView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, icon FROM amenities ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list amenities", err)
	}
	defer rows.Close()

	var result []*queries.AmenityView
	for rows.Next() {
		var a queries.AmenityView
		if err := rows.Scan(&a.ID, &a.Name, &a.Icon); err != nil {
			return nil, infra.WrapRepoErr("failed to scan amenity row", err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read amenity rows", err)
	}
	return result, nil
}
