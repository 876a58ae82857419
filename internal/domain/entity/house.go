package entity

// House is a monitored home owned by exactly one client.
type House struct {
	ID      string      `json:"id"`
	Name    string      `json:"nombre"`
	Address string      `json:"direccion"`
	OwnerID string      `json:"usuario_id"`
	Sensors []SensorRef `json:"sensores"`
}

// HouseSummary is the {id, name} pair mirrored into User.Houses.
type HouseSummary struct {
	ID   string `json:"id"`
	Name string `json:"nombre"`
}

// SensorRef points from a house to a sensor document. The type selects the collection.
type SensorRef struct {
	SensorID string     `json:"sensor_ref"`
	Type     SensorType `json:"sensor_type"`
}

// Summary returns the denormalized view of the house stored on its owner.
func (h *House) Summary() HouseSummary {
	return HouseSummary{ID: h.ID, Name: h.Name}
}

// HouseDetail is a house with its sensor references expanded to full documents.
type HouseDetail struct {
	ID      string    `json:"id"`
	Name    string    `json:"nombre"`
	Address string    `json:"direccion"`
	OwnerID string    `json:"usuario_id"`
	Sensors []*Sensor `json:"sensores"`
}
