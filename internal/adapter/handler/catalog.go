package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/lessonforge/lessonforge/errors"
	"github.com/lessonforge/lessonforge/internal/domain/entities"
)

// Catalog serves the static configuration catalogs the lesson builder UI
// offers: languages, locations, situations, characters, difficulty levels,
// formats and segment display metadata.
type Catalog struct {
	logger *zap.Logger
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(logger *zap.Logger) *Catalog {
	return &Catalog{logger: logger}
}

// Languages lists the supported target languages.
// GET /v1/catalog/languages
func (h *Catalog) Languages(c echo.Context) error {
	return HandleSuccess(h.logger, c, entities.Languages)
}

// Locations lists the conversation settings.
// GET /v1/catalog/locations
func (h *Catalog) Locations(c echo.Context) error {
	return HandleSuccess(h.logger, c, entities.Locations)
}

// Situations lists the suggested scenarios for one location.
// GET /v1/catalog/locations/:location/situations
func (h *Catalog) Situations(c echo.Context) error {
	location := c.Param("location")
	situations, ok := entities.Situations[location]
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnknownLocation(location))
	}
	return HandleSuccess(h.logger, c, situations)
}

// Characters lists the selectable cast for one location.
// GET /v1/catalog/locations/:location/characters
func (h *Catalog) Characters(c echo.Context) error {
	location := c.Param("location")
	characters, ok := entities.Characters[location]
	if !ok {
		return HandleError(h.logger, c, errors.ErrUnknownLocation(location))
	}
	return HandleSuccess(h.logger, c, characters)
}

// Difficulties lists the proficiency levels.
// GET /v1/catalog/difficulties
func (h *Catalog) Difficulties(c echo.Context) error {
	return HandleSuccess(h.logger, c, entities.Difficulties)
}

// Formats lists the lesson format presets with their segment sequences.
// GET /v1/catalog/formats
func (h *Catalog) Formats(c echo.Context) error {
	type formatWithSegments struct {
		entities.FormatOption
		Segments []entities.SegmentType `json:"segments"`
	}

	out := make([]formatWithSegments, 0, len(entities.LessonFormats))
	for _, f := range entities.LessonFormats {
		out = append(out, formatWithSegments{
			FormatOption: f,
			Segments:     entities.FormatSegments(f.Value),
		})
	}
	return HandleSuccess(h.logger, c, out)
}

// Segments lists every segment type with its display metadata.
// GET /v1/catalog/segments
func (h *Catalog) Segments(c echo.Context) error {
	type segmentOption struct {
		Value entities.SegmentType `json:"value"`
		Tag   string               `json:"tag"`
		entities.DisplayInfo
	}

	out := make([]segmentOption, 0, len(entities.AllSegmentTypes))
	for _, s := range entities.AllSegmentTypes {
		out = append(out, segmentOption{
			Value:       s,
			Tag:         s.Tag(),
			DisplayInfo: entities.DisplayInfoOf(s.Tag()),
		})
	}
	return HandleSuccess(h.logger, c, out)
}

// QuizCardTypes lists the quiz card archetype toggles.
// GET /v1/catalog/quiz-card-types
func (h *Catalog) QuizCardTypes(c echo.Context) error {
	return HandleSuccess(h.logger, c, entities.QuizCardTypes)
}
