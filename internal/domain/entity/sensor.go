package entity

import (
	"slices"
	"time"
)

// SensorType is the tag that routes a sensor to its own collection.
type SensorType string

const (
	SensorGas      SensorType = "gas"
	SensorSmoke    SensorType = "humo"
	SensorMotion   SensorType = "movimiento"
	SensorSound    SensorType = "sonido"
	SensorMagnetic SensorType = "magnetico"
)

// DefaultSensorState is assigned to sensors attached without an explicit state.
const DefaultSensorState = "activo"

// SensorTypes lists every supported sensor type in a stable order.
var SensorTypes = []SensorType{SensorGas, SensorSmoke, SensorMotion, SensorSound, SensorMagnetic}

// SensorLocations lists the rooms a sensor can be installed in.
var SensorLocations = []string{"sala", "cocina", "dormitorio", "garage", "jardín", "entrada"}

// String returns the string representation of the SensorType.
func (t SensorType) String() string {
	return string(t)
}

// IsValid checks if the SensorType is one of the supported types.
func (t SensorType) IsValid() bool {
	return slices.Contains(SensorTypes, t)
}

// ParseSensorType validates a raw type tag at the boundary.
func ParseSensorType(raw string) (SensorType, bool) {
	t := SensorType(raw)

	return t, t.IsValid()
}

// IsValidSensorLocation reports whether location is a known room.
func IsValidSensorLocation(location string) bool {
	return slices.Contains(SensorLocations, location)
}

// Sensor is a device document. All five types share this shape; type-specific
// readings (gas level, smoke toxicity, sound level...) live in Readings.
type Sensor struct {
	ID            string         `json:"id"`
	Name          string         `json:"nombre"`
	Type          SensorType     `json:"tipo"`
	Location      string         `json:"ubicacion"`
	State         string         `json:"estado"`
	LastReadingAt time.Time      `json:"ultima_actualizacion"`
	Readings      map[string]any `json:"lecturas,omitempty"`
}
