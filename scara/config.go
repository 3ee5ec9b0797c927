package scara

import (
	"encoding/json"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// GeometryFromAttributes returns DefaultGeometry with the given attributes applied on top. Keys are the json names of
// the Geometry fields; unknown keys are an error.
func GeometryFromAttributes(attrs map[string]interface{}) (Geometry, error) {
	g := DefaultGeometry()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &g,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Geometry{}, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return Geometry{}, errors.Wrap(err, "cannot decode geometry attributes")
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, errors.Wrap(err, "invalid geometry")
	}
	return g, nil
}

// ReadGeometryFile reads a json object of geometry attributes from path. See GeometryFromAttributes.
func ReadGeometryFile(path string) (Geometry, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return Geometry{}, err
	}
	var attrs map[string]interface{}
	if err := json.Unmarshal(data, &attrs); err != nil {
		return Geometry{}, errors.Wrapf(err, "cannot parse geometry file %q", path)
	}
	return GeometryFromAttributes(attrs)
}
