package entities

import "strings"

// TransportType is the canonical modality stored on a deal.
type TransportType string

const (
	TransportAir        TransportType = "AIR"
	TransportOcean      TransportType = "OCEAN"
	TransportRoad       TransportType = "ROAD"
	TransportMultimodal TransportType = "MULTIMODAL"
)

// Modalities lists the forms in display order.
var Modalities = []TransportType{TransportAir, TransportOcean, TransportRoad, TransportMultimodal}

func (t TransportType) Valid() bool {
	switch t {
	case TransportAir, TransportOcean, TransportRoad, TransportMultimodal:
		return true
	}
	return false
}

// ParseTransportType upper-cases and validates; invalid input yields "".
func ParseTransportType(s string) TransportType {
	t := TransportType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return ""
	}
	return t
}

// legacyModalities translates the modalidad_carga custom field.
var legacyModalities = map[string]TransportType{
	"AEREO":      TransportAir,
	"MARITIMO":   TransportOcean,
	"TERRESTRE":  TransportRoad,
	"MULTIMODAL": TransportMultimodal,
}

// ResolveModality picks the modality a deal is edited under: the canonical
// transport type when valid, else the legacy custom field, else AIR.
func ResolveModality(transportType TransportType, modalidadCarga string) TransportType {
	if t := ParseTransportType(string(transportType)); t != "" {
		return t
	}
	if t, ok := legacyModalities[strings.ToUpper(strings.TrimSpace(modalidadCarga))]; ok {
		return t
	}
	return TransportAir
}

// ModalityForm is one of the four detail forms. Only the resolved one is editable.
type ModalityForm struct {
	Modality TransportType `json:"modality"`
	Editable bool          `json:"editable"`
}

type ModalityView struct {
	Resolved TransportType  `json:"resolved"`
	Forms    []ModalityForm `json:"forms"`
}

func NewModalityView(resolved TransportType) ModalityView {
	forms := make([]ModalityForm, 0, len(Modalities))
	for _, m := range Modalities {
		forms = append(forms, ModalityForm{Modality: m, Editable: m == resolved})
	}
	return ModalityView{Resolved: resolved, Forms: forms}
}
