// Marinestats - Marine Species Occurrence Statistics Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marinestats

package models

import "errors"

// ErrUnknownField is returned when a query names an attribute that is not
// part of the occurrence record.
var ErrUnknownField = errors.New("unknown occurrence field")

// Occurrence is a single marine species observation.
//
// Records are written once by the seeder and never updated. Fields that were
// empty in the source file are nil.
type Occurrence struct {
	// RecordID is assigned by the store (row number or document id).
	RecordID string `json:"-" bson:"-"`

	ID                       *string `json:"id,omitempty" bson:"id,omitempty"`
	InstitutionCode          *string `json:"institutionCode,omitempty" bson:"institutionCode,omitempty"`
	CollectionCode           *string `json:"collectionCode,omitempty" bson:"collectionCode,omitempty"`
	BasisOfRecord            *string `json:"basisOfRecord,omitempty" bson:"basisOfRecord,omitempty"`
	OccurrenceID             *string `json:"occurrenceID,omitempty" bson:"occurrenceID,omitempty"`
	CatalogNumber            *string `json:"catalogNumber,omitempty" bson:"catalogNumber,omitempty"`
	IndividualCount          *string `json:"individualCount,omitempty" bson:"individualCount,omitempty" validate:"omitempty,numeric"`
	Sex                      *string `json:"sex,omitempty" bson:"sex,omitempty"`
	LifeStage                *string `json:"lifeStage,omitempty" bson:"lifeStage,omitempty"`
	OccurrenceStatus         *string `json:"occurrenceStatus,omitempty" bson:"occurrenceStatus,omitempty"`
	EventDate                *string `json:"eventDate,omitempty" bson:"eventDate,omitempty"`
	EventTime                *string `json:"eventTime,omitempty" bson:"eventTime,omitempty"`
	Habitat                  *string `json:"habitat,omitempty" bson:"habitat,omitempty"`
	SamplingProtocol         *string `json:"samplingProtocol,omitempty" bson:"samplingProtocol,omitempty"`
	WaterBody                *string `json:"waterBody,omitempty" bson:"waterBody,omitempty"`
	Country                  *string `json:"country,omitempty" bson:"country,omitempty"`
	Locality                 *string `json:"locality,omitempty" bson:"locality,omitempty"`
	MinimumDepthInMeters     *string `json:"minimumDepthInMeters,omitempty" bson:"minimumDepthInMeters,omitempty"`
	MaximumDepthInMeters     *string `json:"maximumDepthInMeters,omitempty" bson:"maximumDepthInMeters,omitempty"`
	DecimalLatitude          *string `json:"decimalLatitude,omitempty" bson:"decimalLatitude,omitempty" validate:"omitempty,latitude"`
	DecimalLongitude         *string `json:"decimalLongitude,omitempty" bson:"decimalLongitude,omitempty" validate:"omitempty,longitude"`
	IdentificationQualifier  *string `json:"identificationQualifier,omitempty" bson:"identificationQualifier,omitempty"`
	TypeStatus               *string `json:"typeStatus,omitempty" bson:"typeStatus,omitempty"`
	IdentifiedBy             *string `json:"identifiedBy,omitempty" bson:"identifiedBy,omitempty"`
	DateIdentified           *string `json:"dateIdentified,omitempty" bson:"dateIdentified,omitempty"`
	IdentificationReferences *string `json:"identificationReferences,omitempty" bson:"identificationReferences,omitempty"`
	ScientificNameID         *string `json:"scientificNameID,omitempty" bson:"scientificNameID,omitempty"`
	ScientificName           *string `json:"scientificName,omitempty" bson:"scientificName,omitempty"`
	VernacularName           *string `json:"vernacularName,omitempty" bson:"vernacularName,omitempty"`
	ImageLinks               *string `json:"image_links,omitempty" bson:"image_links,omitempty"`
}

// OccurrenceFields lists the stored attribute names in storage order.
// The names double as JSON and BSON keys.
var OccurrenceFields = []string{
	"id",
	"institutionCode",
	"collectionCode",
	"basisOfRecord",
	"occurrenceID",
	"catalogNumber",
	"individualCount",
	"sex",
	"lifeStage",
	"occurrenceStatus",
	"eventDate",
	"eventTime",
	"habitat",
	"samplingProtocol",
	"waterBody",
	"country",
	"locality",
	"minimumDepthInMeters",
	"maximumDepthInMeters",
	"decimalLatitude",
	"decimalLongitude",
	"identificationQualifier",
	"typeStatus",
	"identifiedBy",
	"dateIdentified",
	"identificationReferences",
	"scientificNameID",
	"scientificName",
	"vernacularName",
	"image_links",
}

// fieldIndex maps a field name to its position in OccurrenceFields.
var fieldIndex = func() map[string]int {
	m := make(map[string]int, len(OccurrenceFields))
	for i, name := range OccurrenceFields {
		m[name] = i
	}
	return m
}()

// IsOccurrenceField reports whether name is a stored attribute.
func IsOccurrenceField(name string) bool {
	_, ok := fieldIndex[name]
	return ok
}

// pointers returns the field addresses in OccurrenceFields order.
func (o *Occurrence) pointers() []**string {
	return []**string{
		&o.ID,
		&o.InstitutionCode,
		&o.CollectionCode,
		&o.BasisOfRecord,
		&o.OccurrenceID,
		&o.CatalogNumber,
		&o.IndividualCount,
		&o.Sex,
		&o.LifeStage,
		&o.OccurrenceStatus,
		&o.EventDate,
		&o.EventTime,
		&o.Habitat,
		&o.SamplingProtocol,
		&o.WaterBody,
		&o.Country,
		&o.Locality,
		&o.MinimumDepthInMeters,
		&o.MaximumDepthInMeters,
		&o.DecimalLatitude,
		&o.DecimalLongitude,
		&o.IdentificationQualifier,
		&o.TypeStatus,
		&o.IdentifiedBy,
		&o.DateIdentified,
		&o.IdentificationReferences,
		&o.ScientificNameID,
		&o.ScientificName,
		&o.VernacularName,
		&o.ImageLinks,
	}
}

// Values returns the field values in OccurrenceFields order.
func (o *Occurrence) Values() []*string {
	ptrs := o.pointers()
	out := make([]*string, len(ptrs))
	for i, p := range ptrs {
		out[i] = *p
	}
	return out
}

// ScanTargets returns destinations for a database row laid out in
// OccurrenceFields order.
func (o *Occurrence) ScanTargets() []any {
	ptrs := o.pointers()
	out := make([]any, len(ptrs))
	for i, p := range ptrs {
		out[i] = p
	}
	return out
}

// Set assigns a field by name. Empty values clear the field.
// It returns false when name is not a stored attribute.
func (o *Occurrence) Set(name, value string) bool {
	idx, ok := fieldIndex[name]
	if !ok {
		return false
	}
	p := o.pointers()[idx]
	if value == "" {
		*p = nil
		return true
	}
	v := value
	*p = &v
	return true
}

// Text dereferences an optional attribute, returning "" for nil.
func Text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Present reports whether an optional attribute holds a non-empty value.
func Present(s *string) bool {
	return s != nil && *s != ""
}
